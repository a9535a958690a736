// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/chain"
	"github.com/ava-labs/namevm/engine"
)

var (
	claimPrivate bool
	claimPayment uint64

	claimCmd = &cobra.Command{
		Use:   "claim [options] namespace price",
		Short: "Claims a namespace at the given per-name price (in units)",
		RunE:  claimFunc,
	}
)

func init() {
	claimCmd.PersistentFlags().BoolVar(
		&claimPrivate,
		"private",
		false,
		"claim the namespace as private (creator-only registrations)",
	)
	claimCmd.PersistentFlags().Uint64Var(
		&claimPayment,
		"payment",
		0,
		"payment to attach in units (0 = the exact claim fee)",
	)
}

func claimFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	namespace := args[0]
	price, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%s is not a valid price: %w", args[1], err)
	}
	_, sender, err := loadKey()
	if err != nil {
		return err
	}

	return withEngine(func(e *engine.Engine) error {
		payment := claimPayment
		if payment == 0 {
			payment = e.Genesis().ClaimFee
			if claimPrivate {
				payment = e.Genesis().PrivateClaimFee
			}
		}
		act, err := e.Execute(&chain.ClaimNamespaceTx{
			Namespace: namespace,
			Price:     price,
			Private:   claimPrivate,
		}, sender, payment)
		if err != nil {
			return err
		}
		printActivity(act)
		color.Green("claimed namespace %s (price %d, private %v)", namespace, price, claimPrivate)
		return nil
	})
}
