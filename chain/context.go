// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
)

// BalanceLedger moves native value out of the registry. Refunds and fee
// claims are the only operations that use it. A rejected transfer must
// surface as an error so the invocation can abort.
type BalanceLedger interface {
	Transfer(to common.Address, amount uint64) error
}

// BurnLedger records how much value a sponsor has irrevocably spent. Credits
// are purely additive; there is no withdrawal.
type BurnLedger interface {
	CreditBurn(payer common.Address, amount uint64) error
	Burned(payer common.Address) (uint64, error)
}

// AccountValidator is the signature-validation capability of a delegated
// (contract-style) identity that holds no signing key of its own.
type AccountValidator interface {
	ValidateSignature(digest []byte, sig []byte) bool
}

// ValidatorRegistry resolves the delegated validator for an address. A nil
// result means the address is a plain keypair identity.
type ValidatorRegistry interface {
	ValidatorFor(addr common.Address) AccountValidator
}

// TransactionContext is the single atomic invocation: the host guarantees
// Execute runs to completion against Database with no interleaving, and
// discards every write if it returns an error.
type TransactionContext struct {
	Genesis   *Genesis
	Database  database.Database
	BlockTime uint64
	TxID      ids.ID

	// Sender is the paying caller. It is always explicit; operations that
	// register on behalf of someone else carry the recipient separately.
	Sender  common.Address
	Payment uint64

	Ledger     BalanceLedger
	Burner     BurnLedger
	Validators ValidatorRegistry // nil means keypair identities only
}

func (t *TransactionContext) authorized(owner common.Address) bool {
	return bytes.Equal(owner[:], t.Sender[:])
}

// withinGrace reports whether the sender is the system owner inside the
// post-deployment grace period, during which namespace claim fees are waived.
func (t *TransactionContext) withinGrace() bool {
	g := t.Genesis
	return t.authorized(g.Owner) && t.BlockTime < g.DeployTime+g.GraceWindow
}

// exclusiveToCreator reports whether the namespace is still inside its
// creator-exclusivity window and the sender is not the creator.
func (t *TransactionContext) exclusiveToCreator(i *NamespaceInfo) bool {
	return t.BlockTime < i.Created+t.Genesis.ExclusivityWindow && !t.authorized(i.Creator)
}

// refund returns unused payment to the sender. It must be the last action of
// an operation: it is the only external effect that can fail after state has
// changed, and a failure aborts the whole invocation.
func (t *TransactionContext) refund(amount uint64) error {
	if amount == 0 {
		return nil
	}
	if err := t.Ledger.Transfer(t.Sender, amount); err != nil {
		return fmt.Errorf("%w: %v", ErrRefundFailed, err)
	}
	return nil
}
