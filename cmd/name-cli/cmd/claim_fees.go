// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/chain"
	"github.com/ava-labs/namevm/engine"
)

var claimFeesCmd = &cobra.Command{
	Use:   "claim-fees [options] [recipient]",
	Short: "Pays out the local key's accrued fees (to itself by default)",
	RunE:  claimFeesFunc,
}

func claimFeesFunc(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}
	_, sender, err := loadKey()
	if err != nil {
		return err
	}
	tx := chain.NewClaimFeesTx(sender)
	if len(args) == 1 {
		if !common.IsHexAddress(args[0]) {
			return fmt.Errorf("%s is not a valid address", args[0])
		}
		tx.To = common.HexToAddress(args[0])
	}

	return withEngine(func(e *engine.Engine) error {
		fees, err := e.PendingFees(sender)
		if err != nil {
			return err
		}
		act, err := e.Execute(tx, sender, 0)
		if err != nil {
			return err
		}
		printActivity(act)
		color.Green("paid out %d units to %s", fees, tx.To.Hex())
		return nil
	})
}
