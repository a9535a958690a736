// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "name-cli" implements namevm operation interface.
package cmd

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/namevm/chain"
	"github.com/ava-labs/namevm/engine"
	"github.com/ava-labs/namevm/storage"
)

const fsModeWrite = 0o600

var (
	privateKeyFile string
	genesisFile    string
	dbFile         string
	verbose        bool

	rootCmd = &cobra.Command{
		Use:        "name-cli",
		Short:      "NameVM CLI",
		SuggestFor: []string{"name-cli", "namecli", "namectl"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		createCmd,
		genesisCmd,
		claimCmd,
		registerCmd,
		authorizeCmd,
		sponsorCmd,
		batchCmd,
		claimFeesCmd,
		feesCmd,
		resolveCmd,
		ownedCmd,
		infoCmd,
		balanceCmd,
		fundCmd,
		versionCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&privateKeyFile,
		"private-key-file",
		".name-cli-pk",
		"private key file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		"genesis.json",
		"genesis file path",
	)
	rootCmd.PersistentFlags().StringVar(
		&dbFile,
		"db-file",
		".name-cli-db.json",
		"state snapshot file path",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verbose,
		"verbose",
		false,
		"Print verbose information about operations",
	)
}

func Execute() error {
	return rootCmd.Execute()
}

func loadGenesis() (*chain.Genesis, error) {
	b, err := os.ReadFile(genesisFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis (run \"name-cli genesis\" first): %w", err)
	}
	g := new(chain.Genesis)
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	return g, nil
}

func loadKey() (*ecdsa.PrivateKey, common.Address, error) {
	priv, err := crypto.LoadECDSA(privateKeyFile)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("failed to load key (run \"name-cli create\" first): %w", err)
	}
	return priv, crypto.PubkeyToAddress(priv.PublicKey), nil
}

// withEngine opens the engine over the snapshot store, runs fn, and writes
// the snapshot back when fn succeeds.
func withEngine(fn func(e *engine.Engine) error) error {
	g, err := loadGenesis()
	if err != nil {
		return err
	}
	db, err := storage.OpenSnapshot(dbFile)
	if err != nil {
		return err
	}
	defer db.Close()

	e, err := engine.New(g, db)
	if err != nil {
		return err
	}
	if err := fn(e); err != nil {
		return err
	}
	return storage.WriteSnapshot(db, dbFile, fsModeWrite)
}

func printActivity(act *chain.Activity) {
	if !verbose {
		return
	}
	b, err := json.Marshal(act)
	if err != nil {
		return
	}
	color.Yellow("activity: %s", string(b))
}
