// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/namevm/parser"
)

var _ UnsignedTransaction = &ClaimNamespaceTx{}

// ClaimNamespaceTx registers a namespace. Public namespaces are at most 4
// characters and their price must be unused by any other public namespace;
// private namespaces are at most 16 characters, require a price of at least
// one step, and pay a smaller claim fee.
type ClaimNamespaceTx struct {
	Namespace string `serialize:"true" json:"namespace"`
	Price     uint64 `serialize:"true" json:"price"`
	Private   bool   `serialize:"true" json:"private"`
}

func (c *ClaimNamespaceTx) Execute(t *TransactionContext) error {
	g := t.Genesis
	maxSize, fee := parser.MaxPublicNamespaceSize, g.ClaimFee
	if c.Private {
		maxSize, fee = parser.MaxPrivateNamespaceSize, g.PrivateClaimFee
	}
	if err := parser.CheckNamespace(c.Namespace, maxSize); err != nil {
		return err
	}
	if c.Price == 0 {
		return ErrZeroPrice
	}
	if c.Private && c.Price < g.PriceStep {
		return ErrPriceTooLow
	}
	if c.Price%g.PriceStep != 0 {
		return ErrPriceNotMultiple
	}

	_, has, err := GetNamespaceInfo(t.Database, c.Namespace)
	if err != nil {
		return err
	}
	if has {
		return ErrNamespaceExists
	}
	if !c.Private {
		_, has, err := GetNamespaceByPrice(t.Database, c.Price)
		if err != nil {
			return err
		}
		if has {
			return ErrPriceTaken
		}
	}

	i := &NamespaceInfo{
		Price:   c.Price,
		Creator: t.Sender,
		Created: t.BlockTime,
		Private: c.Private,
	}
	if err := PutNamespaceInfo(t.Database, c.Namespace, i); err != nil {
		return err
	}

	// The system owner claims fee-free inside the grace period: nothing is
	// distributed and the whole payment comes back.
	if t.withinGrace() {
		return t.refund(t.Payment)
	}
	if t.Payment < fee {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientFee, t.Payment, fee)
	}
	if err := distributeFees(t, i, t.Sender, fee); err != nil {
		return err
	}
	return t.refund(t.Payment - fee)
}

func (c *ClaimNamespaceTx) Copy() UnsignedTransaction {
	return &ClaimNamespaceTx{
		Namespace: c.Namespace,
		Price:     c.Price,
		Private:   c.Private,
	}
}

func (c *ClaimNamespaceTx) Activity() *Activity {
	return &Activity{
		Typ:       ClaimNamespace,
		Namespace: c.Namespace,
		Units:     c.Price,
	}
}
