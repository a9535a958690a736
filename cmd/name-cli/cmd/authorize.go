// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/chain"
	"github.com/ava-labs/namevm/parser"
)

var authorizeCmd = &cobra.Command{
	Use:   "authorize [options] label.namespace",
	Short: "Signs a sponsorship authorization with the local key",
	Long: `
Signs a sponsorship authorization with the local key and prints the signature.
Hand the signature to the party paying for the registration; they submit it
with "name-cli sponsor".
`,
	RunE: authorizeFunc,
}

func authorizeFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	priv, recipient, err := loadKey()
	if err != nil {
		return err
	}
	g, err := loadGenesis()
	if err != nil {
		return err
	}

	label, namespace := parser.ResolveName(args[0])
	if namespace == "" {
		namespace = g.SpecialNamespace
	}
	auth := &chain.Authorization{
		Recipient: recipient,
		Label:     label,
		Namespace: namespace,
	}
	dh, err := auth.DigestHash(g)
	if err != nil {
		return err
	}
	sig, err := chain.Sign(dh, priv)
	if err != nil {
		return err
	}

	color.Yellow("recipient: %s", recipient.Hex())
	color.Yellow("signature: %s", hexutil.Encode(sig))
	color.Green("authorized sponsorship of %s", args[0])
	return nil
}
