// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// 0x0/ (namespace info)
//   -> [namespace]
// 0x1/ (public price index)
//   -> [price] -> namespace
// 0x2/ (names)
//   -> [label]/[namespace] -> owner
// 0x3/ (owner index)
//   -> [owner] -> [label]/[namespace]
// 0x4/ (pending fees)
// 0x5/ (balances)
// 0x6/ (burned totals)

const (
	namespacePrefix = 0x0
	pricePrefix     = 0x1
	namePrefix      = 0x2
	ownerPrefix     = 0x3
	feePrefix       = 0x4
	balancePrefix   = 0x5
	burnPrefix      = 0x6
)

// Label charset excludes the delimiter, so name keys are unambiguous.
const delimiter = byte(0x2f) // '/'

func NamespaceInfoKey(namespace string) []byte {
	return append([]byte{namespacePrefix, delimiter}, namespace...)
}

func PriceKey(price uint64) []byte {
	k := make([]byte, 2+8)
	k[0] = pricePrefix
	k[1] = delimiter
	binary.BigEndian.PutUint64(k[2:], price)
	return k
}

func NameKey(label string, namespace string) []byte {
	k := append([]byte{namePrefix, delimiter}, label...)
	k = append(k, delimiter)
	return append(k, namespace...)
}

func OwnerKey(owner common.Address) []byte {
	return append([]byte{ownerPrefix, delimiter}, owner[:]...)
}

func FeeKey(addr common.Address) []byte {
	return append([]byte{feePrefix, delimiter}, addr[:]...)
}

func BalanceKey(addr common.Address) []byte {
	return append([]byte{balancePrefix, delimiter}, addr[:]...)
}

func BurnKey(addr common.Address) []byte {
	return append([]byte{burnPrefix, delimiter}, addr[:]...)
}

func GetNamespaceInfo(db database.Database, namespace string) (*NamespaceInfo, bool, error) {
	k := NamespaceInfoKey(namespace)
	has, err := db.Has(k)
	if err != nil {
		return nil, false, err
	}
	if !has {
		return nil, false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return nil, false, err
	}
	var i NamespaceInfo
	if _, err := Unmarshal(v, &i); err != nil {
		return nil, false, err
	}
	return &i, true, nil
}

// PutNamespaceInfo writes the namespace record and, for public namespaces,
// indexes it by price.
func PutNamespaceInfo(db database.Database, namespace string, i *NamespaceInfo) error {
	v, err := Marshal(i)
	if err != nil {
		return err
	}
	if err := db.Put(NamespaceInfoKey(namespace), v); err != nil {
		return err
	}
	if i.Private {
		return nil
	}
	return db.Put(PriceKey(i.Price), []byte(namespace))
}

// GetNamespaceByPrice is the public-namespace-by-price reverse lookup.
// Private namespaces are not indexed.
func GetNamespaceByPrice(db database.Database, price uint64) (string, bool, error) {
	k := PriceKey(price)
	has, err := db.Has(k)
	if err != nil {
		return "", false, err
	}
	if !has {
		return "", false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return "", false, err
	}
	return string(v), true, nil
}

func GetNameOwner(db database.Database, label string, namespace string) (common.Address, bool, error) {
	k := NameKey(label, namespace)
	has, err := db.Has(k)
	if err != nil {
		return common.Address{}, false, err
	}
	if !has {
		return common.Address{}, false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return common.Address{}, false, err
	}
	return common.BytesToAddress(v), true, nil
}

// PutName commits name ownership and the reverse owner index together.
func PutName(db database.Database, label string, namespace string, owner common.Address) error {
	if err := db.Put(NameKey(label, namespace), owner[:]); err != nil {
		return err
	}
	v := append([]byte(label), delimiter)
	v = append(v, namespace...)
	return db.Put(OwnerKey(owner), v)
}

// GetOwnedName returns the single name held by owner, if any.
func GetOwnedName(db database.Database, owner common.Address) (string, string, bool, error) {
	k := OwnerKey(owner)
	has, err := db.Has(k)
	if err != nil {
		return "", "", false, err
	}
	if !has {
		return "", "", false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return "", "", false, err
	}
	idx := bytes.IndexByte(v, delimiter)
	return string(v[:idx]), string(v[idx+1:]), true, nil
}

func getAmount(db database.Database, k []byte) (uint64, error) {
	has, err := db.Has(k)
	if err != nil {
		return 0, err
	}
	if !has {
		return 0, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

func putAmount(db database.Database, k []byte, amount uint64) error {
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, amount)
	return db.Put(k, v)
}

func GetPendingFees(db database.Database, addr common.Address) (uint64, error) {
	return getAmount(db, FeeKey(addr))
}

func AddPendingFees(db database.Database, addr common.Address, amount uint64) error {
	b, err := GetPendingFees(db, addr)
	if err != nil {
		return err
	}
	return putAmount(db, FeeKey(addr), b+amount)
}

// ResetPendingFees zeroes the pending balance. Callers must do this before
// invoking the external transfer so a reentrant claim finds nothing owed.
func ResetPendingFees(db database.Database, addr common.Address) error {
	return db.Delete(FeeKey(addr))
}

func GetBalance(db database.Database, addr common.Address) (uint64, error) {
	return getAmount(db, BalanceKey(addr))
}

func SetBalance(db database.Database, addr common.Address, amount uint64) error {
	return putAmount(db, BalanceKey(addr), amount)
}

func ModifyBalance(db database.Database, addr common.Address, add bool, amount uint64) (uint64, error) {
	b, err := GetBalance(db, addr)
	if err != nil {
		return 0, err
	}
	var n uint64
	if add {
		n = b + amount
	} else {
		if b < amount {
			return 0, ErrInsufficientFunds
		}
		n = b - amount
	}
	return n, SetBalance(db, addr, n)
}

func GetBurned(db database.Database, addr common.Address) (uint64, error) {
	return getAmount(db, BurnKey(addr))
}

func AddBurned(db database.Database, addr common.Address, amount uint64) error {
	b, err := GetBurned(db, addr)
	if err != nil {
		return err
	}
	return putAmount(db, BurnKey(addr), b+amount)
}
