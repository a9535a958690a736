// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namevm/parser"
)

const (
	// 1 token = 10^9 units
	Unit = 1_000_000_000

	feeBasisPoints = 10_000
)

type CustomAllocation struct {
	Address common.Address `serialize:"true" json:"address"`
	Balance uint64         `serialize:"true" json:"balance"`
}

type Genesis struct {
	// Magic identifies this deployment instance and is mixed into every
	// authorization digest.
	Magic uint64 `serialize:"true" json:"magic"`

	// Owner is the system owner: it performs the one-time special namespace
	// registration and collects the owner share of every fee split.
	Owner      common.Address `serialize:"true" json:"owner"`
	DeployTime uint64         `serialize:"true" json:"deployTime"`

	// SpecialNamespace is the single premium namespace whose names render
	// without a suffix. SpecialLabel is the registry's own bare name inside
	// it, owned by Owner from creation.
	SpecialNamespace      string `serialize:"true" json:"specialNamespace"`
	SpecialLabel          string `serialize:"true" json:"specialLabel"`
	SpecialNamespacePrice uint64 `serialize:"true" json:"specialNamespacePrice"`

	// PriceStep is the granularity of per-name prices. Public namespace
	// prices must be positive multiples of it; private namespace prices must
	// be at least one step.
	PriceStep       uint64 `serialize:"true" json:"priceStep"`
	ClaimFee        uint64 `serialize:"true" json:"claimFee"`
	PrivateClaimFee uint64 `serialize:"true" json:"privateClaimFee"`

	// ExclusivityWindow is how long (seconds) after a public namespace's
	// creation only its creator may register names in it. GraceWindow is how
	// long after deployment the Owner claims namespaces fee-free.
	ExclusivityWindow uint64 `serialize:"true" json:"exclusivityWindow"`
	GraceWindow       uint64 `serialize:"true" json:"graceWindow"`

	// Fee split. The owner share is the arithmetic remainder, absorbing any
	// truncation from the basis point multiplications.
	BurnBasisPoints    uint64 `serialize:"true" json:"burnBasisPoints"`
	CreatorBasisPoints uint64 `serialize:"true" json:"creatorBasisPoints"`

	CustomAllocation []*CustomAllocation `serialize:"true" json:"customAllocation"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		Magic: 1,

		SpecialNamespace:      "root",
		SpecialLabel:          "namevm",
		SpecialNamespacePrice: 100 * Unit,

		PriceStep:       Unit / 1000, // 0.001
		ClaimFee:        Unit,
		PrivateClaimFee: Unit / 10,

		ExclusivityWindow: 60 * 60 * 24 * 30, // 30 days
		GraceWindow:       60 * 60 * 24 * 7,  // 7 days

		BurnBasisPoints:    9_000,
		CreatorBasisPoints: 500,
	}
}

// Load performs the one-time initialization: it registers the special
// namespace for the Owner, registers the Owner's bare self-name inside it,
// and funds any custom allocations.
func (g *Genesis) Load(db database.Database) error {
	if err := parser.CheckNamespace(g.SpecialNamespace, parser.MaxPublicNamespaceSize); err != nil {
		return err
	}
	if err := parser.CheckLabel(g.SpecialLabel); err != nil {
		return err
	}
	_, has, err := GetNamespaceInfo(db, g.SpecialNamespace)
	if err != nil {
		return err
	}
	if has {
		return ErrNamespaceExists
	}
	i := &NamespaceInfo{
		Price:   g.SpecialNamespacePrice,
		Creator: g.Owner,
		Created: g.DeployTime,
		Private: false,
	}
	if err := PutNamespaceInfo(db, g.SpecialNamespace, i); err != nil {
		return err
	}
	if err := PutName(db, g.SpecialLabel, g.SpecialNamespace, g.Owner); err != nil {
		return err
	}
	for _, alloc := range g.CustomAllocation {
		if _, err := ModifyBalance(db, alloc.Address, true, alloc.Balance); err != nil {
			return err
		}
	}
	return nil
}
