// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// NamespaceInfo is immutable once written: namespaces are never deleted,
// repriced, or transferred.
type NamespaceInfo struct {
	// Price is the per-name registration price, a positive multiple of the
	// genesis price step. Unique among public namespaces.
	Price   uint64         `serialize:"true" json:"price"`
	Creator common.Address `serialize:"true" json:"creator"`
	Created uint64         `serialize:"true" json:"created"`
	Private bool           `serialize:"true" json:"private"`
}

func (i *NamespaceInfo) Copy() *NamespaceInfo {
	creator := make([]byte, common.AddressLength)
	copy(creator, i.Creator[:])
	return &NamespaceInfo{
		Price:   i.Price,
		Creator: common.BytesToAddress(creator),
		Created: i.Created,
		Private: i.Private,
	}
}
