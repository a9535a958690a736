// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/namevm/parser"
)

var _ UnsignedTransaction = &RegisterTx{}

// RegisterTx registers a name for the sender itself. Only public namespaces
// accept direct registrations; inside the creator-exclusivity window only
// the namespace creator may register.
type RegisterTx struct {
	Label     string `serialize:"true" json:"label"`
	Namespace string `serialize:"true" json:"namespace"`
}

func (r *RegisterTx) Execute(t *TransactionContext) error {
	if err := parser.CheckLabel(r.Label); err != nil {
		return err
	}
	i, has, err := GetNamespaceInfo(t.Database, r.Namespace)
	if err != nil {
		return err
	}
	if !has {
		return ErrNamespaceMissing
	}
	if i.Private {
		return ErrPrivateNamespace
	}
	if t.exclusiveToCreator(i) {
		return ErrNotNamespaceCreator
	}
	if t.Payment < i.Price {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientPayment, t.Payment, i.Price)
	}
	// One name per owner, globally.
	if _, _, has, err := GetOwnedName(t.Database, t.Sender); err != nil {
		return err
	} else if has {
		return ErrSenderHasName
	}
	if _, has, err := GetNameOwner(t.Database, r.Label, r.Namespace); err != nil {
		return err
	} else if has {
		return ErrNameTaken
	}

	if err := PutName(t.Database, r.Label, r.Namespace, t.Sender); err != nil {
		return err
	}
	if err := distributeFees(t, i, t.Sender, i.Price); err != nil {
		return err
	}
	return t.refund(t.Payment - i.Price)
}

func (r *RegisterTx) Copy() UnsignedTransaction {
	return &RegisterTx{
		Label:     r.Label,
		Namespace: r.Namespace,
	}
}

func (r *RegisterTx) Activity() *Activity {
	return &Activity{
		Typ:       Register,
		Label:     r.Label,
		Namespace: r.Namespace,
	}
}
