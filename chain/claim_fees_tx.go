// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var _ UnsignedTransaction = &ClaimFeesTx{}

// ClaimFeesTx moves the sender's entire pending fee balance to To in one
// transfer. The balance is zeroed before the transfer runs, so a reentrant
// claim finds nothing owed.
type ClaimFeesTx struct {
	To common.Address `serialize:"true" json:"to"`
}

// NewClaimFeesTx returns a claim paying out to the sender itself.
func NewClaimFeesTx(sender common.Address) *ClaimFeesTx {
	return &ClaimFeesTx{To: sender}
}

func (c *ClaimFeesTx) Execute(t *TransactionContext) error {
	if bytes.Equal(c.To[:], zeroAddress[:]) {
		return ErrZeroFeeRecipient
	}
	balance, err := GetPendingFees(t.Database, t.Sender)
	if err != nil {
		return err
	}
	if balance == 0 {
		return ErrNoFeesToClaim
	}
	if err := ResetPendingFees(t.Database, t.Sender); err != nil {
		return err
	}
	if err := t.Ledger.Transfer(c.To, balance); err != nil {
		return fmt.Errorf("%w: %v", ErrFeeTransferFailed, err)
	}
	return nil
}

func (c *ClaimFeesTx) Copy() UnsignedTransaction {
	to := make([]byte, common.AddressLength)
	copy(to, c.To[:])
	return &ClaimFeesTx{
		To: common.BytesToAddress(to),
	}
}

func (c *ClaimFeesTx) Activity() *Activity {
	return &Activity{
		Typ: ClaimFees,
		To:  c.To.Hex(),
	}
}
