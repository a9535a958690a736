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

var balanceCmd = &cobra.Command{
	Use:   "balance [options] [address]",
	Short: "Shows balance, pending fees, and burn total for an address",
	RunE:  balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
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
		balance, err := e.Balance(addr)
		if err != nil {
			return err
		}
		fees, err := e.PendingFees(addr)
		if err != nil {
			return err
		}
		burned, err := e.Burned(addr)
		if err != nil {
			return err
		}
		color.Yellow("address: %s", addr.Hex())
		color.Yellow("balance: %d units", balance)
		color.Yellow("pending fees: %d units", fees)
		color.Yellow("burned: %d units", burned)
		return nil
	})
}
