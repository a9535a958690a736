// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/chain"
	"github.com/ava-labs/namevm/engine"
	"github.com/ava-labs/namevm/parser"
)

var (
	registerPayment uint64

	registerCmd = &cobra.Command{
		Use:   "register [options] label.namespace",
		Short: "Registers a name for the local key",
		RunE:  registerFunc,
	}
)

func init() {
	registerCmd.PersistentFlags().Uint64Var(
		&registerPayment,
		"payment",
		0,
		"payment to attach in units (0 = the exact namespace price)",
	)
}

func registerFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	_, sender, err := loadKey()
	if err != nil {
		return err
	}

	return withEngine(func(e *engine.Engine) error {
		label, namespace := parser.ResolveName(args[0])
		if namespace == "" {
			namespace = e.Genesis().SpecialNamespace
		}
		payment := registerPayment
		if payment == 0 {
			i, err := e.NamespaceInfo(namespace)
			if err != nil {
				return err
			}
			payment = i.Price
		}
		act, err := e.Execute(&chain.RegisterTx{
			Label:     label,
			Namespace: namespace,
		}, sender, payment)
		if err != nil {
			return err
		}
		printActivity(act)
		color.Green("registered %s to %s", args[0], sender.Hex())
		return nil
	})
}
