// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

const (
	ClaimNamespace = "claimNamespace"
	Register       = "register"
	Sponsor        = "sponsor"
	BatchRegister  = "batchRegister"
	ClaimFees      = "claimFees"
)

type Activity struct {
	Tmstmp    int64  `serialize:"true" json:"timestamp"`
	Sender    string `serialize:"true" json:"sender"`
	Typ       string `serialize:"true" json:"type"`
	Label     string `serialize:"true" json:"label,omitempty"`
	Namespace string `serialize:"true" json:"namespace,omitempty"`
	To        string `serialize:"true" json:"to,omitempty"` // common.Address will be 0x000 when not populated
	Units     uint64 `serialize:"true" json:"units,omitempty"`
}
