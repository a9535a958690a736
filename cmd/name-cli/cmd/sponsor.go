// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/chain"
	"github.com/ava-labs/namevm/engine"
	"github.com/ava-labs/namevm/parser"
)

var (
	sponsorPayment uint64

	sponsorCmd = &cobra.Command{
		Use:   "sponsor [options] recipient label.namespace signature",
		Short: "Pays for a registration authorized by the recipient",
		RunE:  sponsorFunc,
	}
)

func init() {
	sponsorCmd.PersistentFlags().Uint64Var(
		&sponsorPayment,
		"payment",
		0,
		"payment to attach in units (0 = the exact namespace price)",
	)
}

func sponsorFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected exactly 3 arguments, got %d", len(args))
	}
	if !common.IsHexAddress(args[0]) {
		return fmt.Errorf("%s is not a valid address", args[0])
	}
	recipient := common.HexToAddress(args[0])
	sig, err := hexutil.Decode(args[2])
	if err != nil {
		return fmt.Errorf("%s is not a valid signature: %w", args[2], err)
	}
	_, sender, err := loadKey()
	if err != nil {
		return err
	}

	return withEngine(func(e *engine.Engine) error {
		label, namespace := parser.ResolveName(args[1])
		if namespace == "" {
			namespace = e.Genesis().SpecialNamespace
		}
		payment := sponsorPayment
		if payment == 0 {
			i, err := e.NamespaceInfo(namespace)
			if err != nil {
				return err
			}
			payment = i.Price
		}
		act, err := e.Execute(&chain.RegisterForTx{
			Auth: &chain.Authorization{
				Recipient: recipient,
				Label:     label,
				Namespace: namespace,
			},
			Signature: sig,
		}, sender, payment)
		if err != nil {
			return err
		}
		printActivity(act)
		color.Green("registered %s to %s (paid by %s)", args[1], recipient.Hex(), sender.Hex())
		return nil
	})
}
