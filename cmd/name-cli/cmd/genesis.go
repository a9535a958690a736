// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/chain"
)

var (
	genesisMagic uint64

	genesisCmd = &cobra.Command{
		Use:   "genesis [options] owner-address",
		Short: "Creates a new genesis in the default location",
		RunE:  genesisFunc,
	}
)

func init() {
	genesisCmd.PersistentFlags().Uint64Var(
		&genesisMagic,
		"magic",
		1,
		"deployment instance identifier, mixed into every authorization digest",
	)
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	if !common.IsHexAddress(args[0]) {
		return fmt.Errorf("%s is not a valid address", args[0])
	}

	g := chain.DefaultGenesis()
	g.Magic = genesisMagic
	g.Owner = common.HexToAddress(args[0])
	g.DeployTime = uint64(time.Now().Unix())

	b, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
		return err
	}
	color.Green("created genesis and saved to %s", genesisFile)
	return nil
}
