// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/namevm/chain"
	"github.com/ava-labs/namevm/engine"
)

// batchEntry pairs a recipient key file with the label it wants. All entries
// in a batch file share one namespace.
type batchEntry struct {
	KeyFile string `json:"keyFile"`
	Label   string `json:"label"`
}

var (
	batchNamespace string
	batchPayment   uint64

	batchCmd = &cobra.Command{
		Use:   "batch [options] entries.json",
		Short: "Registers names for many recipients in one invocation",
		Long: `
Registers names for many recipients in one invocation, paid by the local key.
The entries file holds a JSON array of {"keyFile": ..., "label": ...}; each
key signs its own authorization. Recipients that already hold a name, and
labels already taken, are skipped and their cost refunded.
`,
		RunE: batchFunc,
	}
)

func init() {
	batchCmd.PersistentFlags().StringVar(
		&batchNamespace,
		"namespace",
		"",
		"namespace shared by every entry (default: the special namespace)",
	)
	batchCmd.PersistentFlags().Uint64Var(
		&batchPayment,
		"payment",
		0,
		"payment to attach in units (0 = price for every entry)",
	)
}

func batchFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var entries []*batchEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return err
	}
	if len(entries) == 0 {
		return chain.ErrEmptyBatch
	}
	_, sender, err := loadKey()
	if err != nil {
		return err
	}

	return withEngine(func(e *engine.Engine) error {
		g := e.Genesis()
		namespace := batchNamespace
		if namespace == "" {
			namespace = g.SpecialNamespace
		}

		auths := make([]*chain.Authorization, len(entries))
		sigs := make([][]byte, len(entries))
		eg := new(errgroup.Group)
		for i, entry := range entries {
			i, entry := i, entry
			eg.Go(func() error {
				priv, err := crypto.LoadECDSA(entry.KeyFile)
				if err != nil {
					return fmt.Errorf("failed to load key %s: %w", entry.KeyFile, err)
				}
				auth := &chain.Authorization{
					Recipient: crypto.PubkeyToAddress(priv.PublicKey),
					Label:     entry.Label,
					Namespace: namespace,
				}
				dh, err := auth.DigestHash(g)
				if err != nil {
					return err
				}
				sig, err := chain.Sign(dh, priv)
				if err != nil {
					return err
				}
				auths[i] = auth
				sigs[i] = sig
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		payment := batchPayment
		if payment == 0 {
			i, err := e.NamespaceInfo(namespace)
			if err != nil {
				return err
			}
			payment = i.Price * uint64(len(entries))
		}
		tx := &chain.BatchRegisterTx{Auths: auths, Signatures: sigs}
		act, err := e.Execute(tx, sender, payment)
		if err != nil {
			return err
		}
		printActivity(act)
		color.Green("registered %d/%d names in %s", tx.Registered(), len(entries), namespace)
		return nil
	})
}
