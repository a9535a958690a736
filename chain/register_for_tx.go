// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/namevm/parser"
)

var _ UnsignedTransaction = &RegisterForTx{}

var zeroAddress [20]byte

// RegisterForTx registers a name for Auth.Recipient, paid for by the sender
// (the sponsor). The recipient proves consent by signing the authorization.
// Private namespaces accept sponsored registrations from their creator only,
// with no time limit; public namespaces apply the usual exclusivity window.
type RegisterForTx struct {
	Auth      *Authorization `serialize:"true" json:"authorization"`
	Signature []byte         `serialize:"true" json:"signature"`
}

func (r *RegisterForTx) Execute(t *TransactionContext) error {
	a := r.Auth
	if err := parser.CheckLabel(a.Label); err != nil {
		return err
	}
	if bytes.Equal(a.Recipient[:], zeroAddress[:]) {
		return ErrZeroRecipient
	}
	i, has, err := GetNamespaceInfo(t.Database, a.Namespace)
	if err != nil {
		return err
	}
	if !has {
		return ErrNamespaceMissing
	}
	if i.Private {
		// Permanent restriction, not a window.
		if !t.authorized(i.Creator) {
			return ErrPrivateCreatorOnly
		}
	} else if t.exclusiveToCreator(i) {
		return ErrNotNamespaceCreator
	}
	if t.Payment < i.Price {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientPayment, t.Payment, i.Price)
	}
	if !a.ValidSignature(t, r.Signature) {
		return ErrBadAuthorization
	}
	if _, _, has, err := GetOwnedName(t.Database, a.Recipient); err != nil {
		return err
	} else if has {
		return ErrRecipientHasName
	}
	if _, has, err := GetNameOwner(t.Database, a.Label, a.Namespace); err != nil {
		return err
	} else if has {
		return ErrNameTaken
	}

	// Ownership goes to the recipient; the burn credit goes to the sponsor.
	if err := PutName(t.Database, a.Label, a.Namespace, a.Recipient); err != nil {
		return err
	}
	if err := distributeFees(t, i, t.Sender, i.Price); err != nil {
		return err
	}
	return t.refund(t.Payment - i.Price)
}

func (r *RegisterForTx) Copy() UnsignedTransaction {
	sig := make([]byte, len(r.Signature))
	copy(sig, r.Signature)
	return &RegisterForTx{
		Auth:      r.Auth.Copy(),
		Signature: sig,
	}
}

func (r *RegisterForTx) Activity() *Activity {
	return &Activity{
		Typ:       Sponsor,
		Label:     r.Auth.Label,
		Namespace: r.Auth.Namespace,
		To:        r.Auth.Recipient.Hex(),
	}
}
