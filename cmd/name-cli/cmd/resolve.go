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

var resolveCmd = &cobra.Command{
	Use:   "resolve [options] name",
	Short: "Resolves a name to its owner address",
	RunE:  resolveFunc,
}

func resolveFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return withEngine(func(e *engine.Engine) error {
		addr, err := e.Resolve(args[0])
		if err != nil {
			return err
		}
		if addr == (common.Address{}) {
			color.Yellow("%s is not registered", args[0])
			return nil
		}
		color.Yellow("%s=>%s", args[0], addr.Hex())
		color.Green("resolved %s", args[0])
		return nil
	})
}
