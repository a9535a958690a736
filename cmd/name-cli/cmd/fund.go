// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/engine"
)

var fundCmd = &cobra.Command{
	Use:   "fund [options] address amount",
	Short: "Mints native balance for an address (local deployments only)",
	RunE:  fundFunc,
}

func fundFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	if !common.IsHexAddress(args[0]) {
		return fmt.Errorf("%s is not a valid address", args[0])
	}
	addr := common.HexToAddress(args[0])
	amount, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("%s is not a valid amount: %w", args[1], err)
	}

	return withEngine(func(e *engine.Engine) error {
		if err := e.Fund(addr, amount); err != nil {
			return err
		}
		color.Green("funded %s with %d units", addr.Hex(), amount)
		return nil
	})
}
