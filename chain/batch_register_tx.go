// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/namevm/parser"
)

var _ UnsignedTransaction = &BatchRegisterTx{}

// BatchRegisterTx drives any number of sponsored registrations in one
// invocation. All entries must target one namespace so the creator rules are
// evaluated once. Malformed entries (bad label, zero recipient, bad
// signature) abort the whole batch; entries whose recipient already holds a
// name, or whose name is taken, are skipped. The sender is charged price ×
// registered and refunded the rest exactly.
type BatchRegisterTx struct {
	Auths      []*Authorization `serialize:"true" json:"authorizations"`
	Signatures [][]byte         `serialize:"true" json:"signatures"`

	// set by Execute
	registered uint64
}

func (b *BatchRegisterTx) Execute(t *TransactionContext) error {
	if len(b.Auths) == 0 {
		return ErrEmptyBatch
	}
	if len(b.Auths) != len(b.Signatures) {
		return ErrLengthMismatch
	}
	namespace := b.Auths[0].Namespace
	for _, a := range b.Auths[1:] {
		if a.Namespace != namespace {
			return ErrNamespaceMismatch
		}
	}

	i, has, err := GetNamespaceInfo(t.Database, namespace)
	if err != nil {
		return err
	}
	if !has {
		return ErrNamespaceMissing
	}
	if i.Private {
		if !t.authorized(i.Creator) {
			return ErrPrivateCreatorOnly
		}
	} else if t.exclusiveToCreator(i) {
		return ErrNotNamespaceCreator
	}

	b.registered = 0
	for idx, a := range b.Auths {
		if err := parser.CheckLabel(a.Label); err != nil {
			return err
		}
		if bytes.Equal(a.Recipient[:], zeroAddress[:]) {
			return ErrZeroRecipient
		}
		if !a.ValidSignature(t, b.Signatures[idx]) {
			return ErrBadAuthorization
		}
		// Taken names and already-served recipients are skipped, not
		// failed; later entries observe earlier commits.
		if _, _, has, err := GetOwnedName(t.Database, a.Recipient); err != nil {
			return err
		} else if has {
			continue
		}
		if _, has, err := GetNameOwner(t.Database, a.Label, namespace); err != nil {
			return err
		} else if has {
			continue
		}
		if err := PutName(t.Database, a.Label, namespace, a.Recipient); err != nil {
			return err
		}
		b.registered++
	}

	charge := i.Price * b.registered
	if t.Payment < charge {
		return fmt.Errorf("%w: %d < %d", ErrInsufficientPayment, t.Payment, charge)
	}
	// One aggregate split: the burn is credited once for the total.
	if err := distributeFees(t, i, t.Sender, charge); err != nil {
		return err
	}
	return t.refund(t.Payment - charge)
}

// Registered returns how many entries committed in the last Execute.
func (b *BatchRegisterTx) Registered() uint64 { return b.registered }

func (b *BatchRegisterTx) Copy() UnsignedTransaction {
	auths := make([]*Authorization, len(b.Auths))
	for i, a := range b.Auths {
		auths[i] = a.Copy()
	}
	sigs := make([][]byte, len(b.Signatures))
	for i, s := range b.Signatures {
		sig := make([]byte, len(s))
		copy(sig, s)
		sigs[i] = sig
	}
	return &BatchRegisterTx{
		Auths:      auths,
		Signatures: sigs,
	}
}

func (b *BatchRegisterTx) Activity() *Activity {
	namespace := ""
	if len(b.Auths) > 0 {
		namespace = b.Auths[0].Namespace
	}
	return &Activity{
		Typ:       BatchRegister,
		Namespace: namespace,
		Units:     b.registered,
	}
}
