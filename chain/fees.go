// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// distributeFees splits amount three ways: the burn share is credited to the
// payer through the burn ledger, the creator share (public namespaces only)
// and the remainder accrue as pending fees. The owner share is computed as
// the remainder so the three parts always sum to amount exactly.
func distributeFees(t *TransactionContext, i *NamespaceInfo, payer common.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	g := t.Genesis
	burn := amount * g.BurnBasisPoints / feeBasisPoints
	creator := uint64(0)
	if !i.Private {
		creator = amount * g.CreatorBasisPoints / feeBasisPoints
	}
	owner := amount - burn - creator

	if err := t.Burner.CreditBurn(payer, burn); err != nil {
		return err
	}
	if creator > 0 {
		if err := AddPendingFees(t.Database, i.Creator, creator); err != nil {
			return err
		}
	}
	if owner > 0 {
		if err := AddPendingFees(t.Database, g.Owner, owner); err != nil {
			return err
		}
	}
	return nil
}
