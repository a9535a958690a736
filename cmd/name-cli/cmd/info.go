// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/engine"
)

var (
	infoByPrice bool

	infoCmd = &cobra.Command{
		Use:   "info [options] namespace",
		Short: "Reads namespace info",
		RunE:  infoFunc,
	}
)

func init() {
	infoCmd.PersistentFlags().BoolVar(
		&infoByPrice,
		"by-price",
		false,
		"treat the argument as a price (in units) and look the namespace up by it",
	)
}

func infoFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	return withEngine(func(e *engine.Engine) error {
		namespace := args[0]
		if infoByPrice {
			price, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%s is not a valid price: %w", args[0], err)
			}
			if namespace, _, err = e.NamespaceByPrice(price); err != nil {
				return err
			}
		}
		i, err := e.NamespaceInfo(namespace)
		if err != nil {
			return err
		}
		b, err := json.Marshal(i)
		if err != nil {
			return err
		}
		color.Yellow("%s=>%s", namespace, string(b))
		return nil
	})
}
