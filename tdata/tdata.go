// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tdata implements EIP-712 typed data for signing payloads.
//
// Authorization payloads are flat (address/string/uint64 fields only), so
// this implementation does not support arrays or nested reference types.
package tdata

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	TypeString  = "string"
	TypeUint64  = "uint64"
	TypeAddress = "address"
)

var (
	ErrFieldMissing    = errors.New("typed data field missing")
	ErrInvalidAddress  = errors.New("invalid address value")
	ErrUnsupportedType = errors.New("unsupported typed data type")
)

// Type is the inner type of an EIP-712 message
type Type struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Types map[string][]Type

type TypedDataMessage = map[string]interface{}

// TypedDataDomain separates signatures between deployments. Name and Version
// identify the system, Magic the deployment instance, so a signature created
// for one instance or release can never be replayed against another.
type TypedDataDomain struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Magic   string `json:"magic"`
}

func (d *TypedDataDomain) Map() TypedDataMessage {
	return TypedDataMessage{
		"name":    d.Name,
		"version": d.Version,
		"magic":   d.Magic,
	}
}

type TypedData struct {
	Types       Types            `json:"types"`
	PrimaryType string           `json:"primaryType"`
	Domain      TypedDataDomain  `json:"domain"`
	Message     TypedDataMessage `json:"message"`
}

var EIP712Domain = []Type{
	{Name: "name", Type: TypeString},
	{Name: "version", Type: TypeString},
	{Name: "magic", Type: TypeUint64},
}

func namesDomain(m uint64) TypedDataDomain {
	return TypedDataDomain{
		Name:    "NameVM",
		Version: "1",
		Magic:   strconv.FormatUint(m, 10),
	}
}

func CreateTypedData(magic uint64, txType string, txFields []Type, msg TypedDataMessage) *TypedData {
	return &TypedData{
		Types: Types{
			txType:         txFields,
			"EIP712Domain": EIP712Domain,
		},
		PrimaryType: txType,
		Domain:      namesDomain(magic),
		Message:     msg,
	}
}

// DigestHash returns the hash signed over, per EIP-712:
// keccak256("\x19\x01" ‖ domainSeparator ‖ hashStruct(message))
func DigestHash(td *TypedData) ([]byte, error) {
	typedDataHash, err := td.HashStruct(td.PrimaryType, td.Message)
	if err != nil {
		return nil, err
	}
	domainSeparator, err := td.HashStruct("EIP712Domain", td.Domain.Map())
	if err != nil {
		return nil, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(typedDataHash)))
	return crypto.Keccak256Hash(rawData).Bytes(), nil
}

// HashStruct generates a keccak256 hash of the encoding of the provided data
func (td *TypedData) HashStruct(primaryType string, data TypedDataMessage) (hexutil.Bytes, error) {
	encodedData, err := td.EncodeData(primaryType, data)
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(encodedData), nil
}

// EncodeType generates the following encoding:
// `name ‖ "(" ‖ member₁ ‖ "," ‖ member₂ ‖ "," ‖ … ‖ memberₙ ")"`
func (td *TypedData) EncodeType(primaryType string) hexutil.Bytes {
	var buffer bytes.Buffer
	buffer.WriteString(primaryType)
	buffer.WriteString("(")
	for i, field := range td.Types[primaryType] {
		if i > 0 {
			buffer.WriteString(",")
		}
		buffer.WriteString(field.Type)
		buffer.WriteString(" ")
		buffer.WriteString(field.Name)
	}
	buffer.WriteString(")")
	return buffer.Bytes()
}

// TypeHash creates the keccak256 hash of the encoded type
func (td *TypedData) TypeHash(primaryType string) hexutil.Bytes {
	return crypto.Keccak256(td.EncodeType(primaryType))
}

// EncodeData generates the following encoding:
// `typeHash ‖ enc(value₁) ‖ enc(value₂) ‖ … ‖ enc(valueₙ)`
//
// each encoded member is 32-byte long
func (td *TypedData) EncodeData(primaryType string, data TypedDataMessage) (hexutil.Bytes, error) {
	buffer := bytes.Buffer{}
	buffer.Write(td.TypeHash(primaryType))

	for _, field := range td.Types[primaryType] {
		value, ok := data[field.Name].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrFieldMissing, field.Name)
		}
		enc, err := encodePrimitive(field.Type, value)
		if err != nil {
			return nil, err
		}
		buffer.Write(enc)
	}
	return buffer.Bytes(), nil
}

// All message values are provided as strings (hex addresses and formatted
// uints included), mirroring how they travel in JSON.
func encodePrimitive(fieldType string, value string) ([]byte, error) {
	switch fieldType {
	case TypeString:
		return crypto.Keccak256([]byte(value)), nil
	case TypeAddress:
		if !common.IsHexAddress(value) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, value)
		}
		return common.LeftPadBytes(common.HexToAddress(value).Bytes(), 32), nil
	case TypeUint64:
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, err
		}
		return math.U256Bytes(new(big.Int).SetUint64(v)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, fieldType)
	}
}
