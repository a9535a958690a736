// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namevm/tdata"
)

const (
	tdRecipient = "recipient"
	tdLabel     = "label"
	tdNamespace = "namespace"

	// Authorize is the typed data primary type for sponsored registrations.
	Authorize = "authorize"
)

// Authorization is the exact triple a recipient (or its delegated validator)
// signs to let a third party pay for and execute a registration on its
// behalf. It is never persisted.
type Authorization struct {
	Recipient common.Address `serialize:"true" json:"recipient"`
	Label     string         `serialize:"true" json:"label"`
	Namespace string         `serialize:"true" json:"namespace"`
}

func (a *Authorization) Copy() *Authorization {
	recipient := make([]byte, common.AddressLength)
	copy(recipient, a.Recipient[:])
	return &Authorization{
		Recipient: common.BytesToAddress(recipient),
		Label:     a.Label,
		Namespace: a.Namespace,
	}
}

func (a *Authorization) TypedData(g *Genesis) *tdata.TypedData {
	return tdata.CreateTypedData(
		g.Magic, Authorize,
		[]tdata.Type{
			{Name: tdRecipient, Type: tdata.TypeAddress},
			{Name: tdLabel, Type: tdata.TypeString},
			{Name: tdNamespace, Type: tdata.TypeString},
		},
		tdata.TypedDataMessage{
			tdRecipient: a.Recipient.Hex(),
			tdLabel:     a.Label,
			tdNamespace: a.Namespace,
		},
	)
}

// DigestHash canonically encodes the authorization with the deployment
// domain separator.
func (a *Authorization) DigestHash(g *Genesis) ([]byte, error) {
	return tdata.DigestHash(a.TypedData(g))
}

// ValidSignature reports whether sig authorizes this registration. Delegated
// recipients are asked through their registered validator; plain keypair
// recipients must match the recovered signer. Malformed signatures of either
// kind report false, never an error.
func (a *Authorization) ValidSignature(t *TransactionContext, sig []byte) bool {
	dh, err := a.DigestHash(t.Genesis)
	if err != nil {
		return false
	}
	if t.Validators != nil {
		if v := t.Validators.ValidatorFor(a.Recipient); v != nil {
			return v.ValidateSignature(dh, sig)
		}
	}
	sender, err := SenderAddress(dh, sig)
	if err != nil {
		return false
	}
	return sender == a.Recipient
}
