// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

var errTransferRejected = errors.New("transfer rejected")

type testLedger struct {
	transfers map[common.Address]uint64
	err       error
}

func newTestLedger() *testLedger {
	return &testLedger{transfers: map[common.Address]uint64{}}
}

func (l *testLedger) Transfer(to common.Address, amount uint64) error {
	if l.err != nil {
		return l.err
	}
	l.transfers[to] += amount
	return nil
}

type testBurner struct {
	burned map[common.Address]uint64
}

func newTestBurner() *testBurner {
	return &testBurner{burned: map[common.Address]uint64{}}
}

func (b *testBurner) CreditBurn(payer common.Address, amount uint64) error {
	b.burned[payer] += amount
	return nil
}

func (b *testBurner) Burned(payer common.Address) (uint64, error) {
	return b.burned[payer], nil
}

type testValidators map[common.Address]AccountValidator

func (v testValidators) ValidatorFor(addr common.Address) AccountValidator {
	return v[addr]
}

// approveValidator accepts or rejects every signature.
type approveValidator bool

func (a approveValidator) ValidateSignature([]byte, []byte) bool { return bool(a) }

func newTestContext(g *Genesis, db database.Database, sender common.Address, payment uint64, blockTime uint64) *TransactionContext {
	return &TransactionContext{
		Genesis:   g,
		Database:  db,
		BlockTime: blockTime,
		TxID:      ids.Empty,
		Sender:    sender,
		Payment:   payment,
		Ledger:    newTestLedger(),
		Burner:    newTestBurner(),
	}
}
