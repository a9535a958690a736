// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/engine"
)

var feesCmd = &cobra.Command{
	Use:   "fees [options] [address]",
	Short: "Shows the pending fees owed to an address (the local key by default)",
	RunE:  feesFunc,
}

func feesFunc(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("expected at most 1 argument, got %d", len(args))
	}
	var addr common.Address
	if len(args) == 1 {
		if !common.IsHexAddress(args[0]) {
			return fmt.Errorf("%s is not a valid address", args[0])
		}
		addr = common.HexToAddress(args[0])
	} else {
		var err error
		if _, addr, err = loadKey(); err != nil {
			return err
		}
	}

	return withEngine(func(e *engine.Engine) error {
		fees, err := e.PendingFees(addr)
		if err != nil {
			return err
		}
		color.Yellow("%s has %d units of pending fees", addr.Hex(), fees)
		return nil
	})
}
