// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage persists an in-memory database as a JSON snapshot file.
// Hosts that embed the registry bring their own database; the snapshot store
// serves one-shot tools that need state to survive between invocations.
package storage

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
)

// OpenSnapshot returns an in-memory database seeded from the snapshot at
// path. A missing file yields an empty database.
func OpenSnapshot(path string) (database.Database, error) {
	db := memdb.New()

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return db, nil
	}
	if err != nil {
		return nil, err
	}
	kvs := map[string]string{}
	if err := json.Unmarshal(b, &kvs); err != nil {
		return nil, err
	}
	for k, v := range kvs {
		kb, err := hex.DecodeString(k)
		if err != nil {
			return nil, err
		}
		vb, err := hex.DecodeString(v)
		if err != nil {
			return nil, err
		}
		if err := db.Put(kb, vb); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// WriteSnapshot dumps every key-value pair in db to path.
func WriteSnapshot(db database.Database, path string, mode fs.FileMode) error {
	it := db.NewIterator()
	defer it.Release()

	kvs := map[string]string{}
	for it.Next() {
		kvs[hex.EncodeToString(it.Key())] = hex.EncodeToString(it.Value())
	}
	if err := it.Error(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(kvs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, mode)
}
