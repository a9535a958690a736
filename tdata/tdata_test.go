// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tdata

import (
	"bytes"
	"errors"
	"testing"
)

func testTypedData(magic uint64) *TypedData {
	return CreateTypedData(
		magic, "authorize",
		[]Type{
			{Name: "recipient", Type: TypeAddress},
			{Name: "label", Type: TypeString},
			{Name: "namespace", Type: TypeString},
		},
		TypedDataMessage{
			"recipient": "0x0000000000000000000000000000000000000001",
			"label":     "alice",
			"namespace": "xns",
		},
	)
}

func TestEncodeType(t *testing.T) {
	t.Parallel()

	td := testTypedData(1)
	want := "authorize(address recipient,string label,string namespace)"
	if got := string(td.EncodeType("authorize")); got != want {
		t.Fatalf("encoded type expected %q, got %q", want, got)
	}
	want = "EIP712Domain(string name,string version,uint64 magic)"
	if got := string(td.EncodeType("EIP712Domain")); got != want {
		t.Fatalf("encoded domain expected %q, got %q", want, got)
	}
}

func TestDigestHash(t *testing.T) {
	t.Parallel()

	dh, err := DigestHash(testTypedData(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(dh) != 32 {
		t.Fatalf("digest length expected 32, got %d", len(dh))
	}

	dh2, err := DigestHash(testTypedData(1))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dh, dh2) {
		t.Fatal("digest not deterministic")
	}

	// The domain magic moves the digest.
	dh3, err := DigestHash(testTypedData(2))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(dh, dh3) {
		t.Fatal("digest must depend on the domain magic")
	}

	// So does every message field.
	td := testTypedData(1)
	td.Message["label"] = "bob"
	dh4, err := DigestHash(td)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(dh, dh4) {
		t.Fatal("digest must depend on the message")
	}
}

func TestEncodeDataErrors(t *testing.T) {
	t.Parallel()

	td := testTypedData(1)
	delete(td.Message, "label")
	if _, err := DigestHash(td); !errors.Is(err, ErrFieldMissing) {
		t.Fatalf("err expected %v, got %v", ErrFieldMissing, err)
	}

	td = testTypedData(1)
	td.Message["recipient"] = "not-an-address"
	if _, err := DigestHash(td); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("err expected %v, got %v", ErrInvalidAddress, err)
	}

	td = testTypedData(1)
	td.Types["authorize"] = append(td.Types["authorize"], Type{Name: "extra", Type: "bytes32"})
	td.Message["extra"] = "0x00"
	if _, err := DigestHash(td); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("err expected %v, got %v", ErrUnsupportedType, err)
	}
}
