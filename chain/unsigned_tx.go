// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

type UnsignedTransaction interface {
	Copy() UnsignedTransaction

	// Execute runs the operation inside a single atomic invocation. Any
	// returned error aborts every write made through t.Database.
	Execute(t *TransactionContext) error

	Activity() *Activity
}
