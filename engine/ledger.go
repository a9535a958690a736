// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namevm/chain"
)

// ledgerStore is the default BalanceLedger: transfers credit the native
// balance bucket of the invocation's database, so they commit or abort with
// the rest of the invocation.
type ledgerStore struct {
	db database.Database
}

func (l *ledgerStore) Transfer(to common.Address, amount uint64) error {
	_, err := chain.ModifyBalance(l.db, to, true, amount)
	return err
}

// burnStore is the default BurnLedger, backed by the burned-totals bucket.
type burnStore struct {
	db database.Database
}

func (b *burnStore) CreditBurn(payer common.Address, amount uint64) error {
	return chain.AddBurned(b.db, payer, amount)
}

func (b *burnStore) Burned(payer common.Address) (uint64, error) {
	return chain.GetBurned(b.db, payer)
}
