// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package engine hosts the registry state machine. Every Execute call is one
// atomic invocation: it runs serialized against all others over a versioned
// view of the store and either fully commits or leaves no trace.
package engine

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
	"golang.org/x/crypto/sha3"

	"github.com/ava-labs/namevm/chain"
	"github.com/ava-labs/namevm/parser"
)

const defaultActivityCacheSize = 128

type Engine struct {
	mu sync.RWMutex

	genesis *chain.Genesis
	db      database.Database

	clock      func() uint64
	ledger     chain.BalanceLedger
	burner     chain.BurnLedger
	validators chain.ValidatorRegistry

	activity          []*chain.Activity
	activityCacheSize int
}

type Option func(*Engine)

// WithClock overrides the invocation timestamp source.
func WithClock(clock func() uint64) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithLedger replaces the in-store balance ledger with an external
// value-transfer collaborator.
func WithLedger(ledger chain.BalanceLedger) Option {
	return func(e *Engine) { e.ledger = ledger }
}

// WithBurner replaces the in-store burn ledger with an external
// burn-accounting collaborator.
func WithBurner(burner chain.BurnLedger) Option {
	return func(e *Engine) { e.burner = burner }
}

// WithValidators registers the resolver for delegated (contract-style)
// identities.
func WithValidators(validators chain.ValidatorRegistry) Option {
	return func(e *Engine) { e.validators = validators }
}

func WithActivityCacheSize(size int) Option {
	return func(e *Engine) { e.activityCacheSize = size }
}

// New opens an engine over db, loading genesis state on first use.
func New(genesis *chain.Genesis, db database.Database, opts ...Option) (*Engine, error) {
	e := &Engine{
		genesis:           genesis,
		db:                db,
		clock:             func() uint64 { return uint64(time.Now().Unix()) },
		activityCacheSize: defaultActivityCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	_, has, err := chain.GetNamespaceInfo(db, genesis.SpecialNamespace)
	if err != nil {
		return nil, err
	}
	if !has {
		vdb := versiondb.New(db)
		defer vdb.Abort()
		if err := genesis.Load(vdb); err != nil {
			return nil, err
		}
		if err := vdb.Commit(); err != nil {
			return nil, err
		}
		log.Info("loaded genesis",
			"owner", genesis.Owner.Hex(),
			"specialNamespace", genesis.SpecialNamespace,
			"magic", genesis.Magic,
		)
	}
	return e, nil
}

func (e *Engine) Genesis() *chain.Genesis { return e.genesis }

func (e *Engine) ledgerFor(db database.Database) chain.BalanceLedger {
	if e.ledger != nil {
		return e.ledger
	}
	return &ledgerStore{db: db}
}

func (e *Engine) burnerFor(db database.Database) chain.BurnLedger {
	if e.burner != nil {
		return e.burner
	}
	return &burnStore{db: db}
}

func txID(utx chain.UnsignedTransaction, sender common.Address, payment uint64, blockTime uint64) (ids.ID, error) {
	b, err := chain.Marshal(utx)
	if err != nil {
		return ids.Empty, err
	}
	payload := make([]byte, len(b)+common.AddressLength+16)
	copy(payload, b)
	copy(payload[len(b):], sender[:])
	binary.BigEndian.PutUint64(payload[len(b)+common.AddressLength:], payment)
	binary.BigEndian.PutUint64(payload[len(b)+common.AddressLength+8:], blockTime)
	h := sha3.Sum256(payload)
	return ids.ToID(h[:])
}

// Execute runs one operation for sender with the attached payment. The
// payment is debited from the sender's native balance up front; every write,
// including the debit, is discarded if the operation errors.
func (e *Engine) Execute(utx chain.UnsignedTransaction, sender common.Address, payment uint64) (*chain.Activity, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	blockTime := e.clock()
	id, err := txID(utx, sender, payment, blockTime)
	if err != nil {
		return nil, err
	}

	vdb := versiondb.New(e.db)
	defer vdb.Abort()

	if payment > 0 {
		if _, err := chain.ModifyBalance(vdb, sender, false, payment); err != nil {
			return nil, err
		}
	}
	tc := &chain.TransactionContext{
		Genesis:    e.genesis,
		Database:   vdb,
		BlockTime:  blockTime,
		TxID:       id,
		Sender:     sender,
		Payment:    payment,
		Ledger:     e.ledgerFor(vdb),
		Burner:     e.burnerFor(vdb),
		Validators: e.validators,
	}
	if err := utx.Execute(tc); err != nil {
		log.Debug("transaction aborted", "txID", id, "err", err)
		return nil, err
	}
	if err := vdb.Commit(); err != nil {
		return nil, err
	}

	act := utx.Activity()
	act.Tmstmp = int64(blockTime)
	act.Sender = sender.Hex()
	e.activity = append(e.activity, act)
	if len(e.activity) > e.activityCacheSize {
		e.activity = e.activity[len(e.activity)-e.activityCacheSize:]
	}
	log.Debug("transaction committed", "txID", id, "type", act.Typ, "sender", act.Sender)
	return act, nil
}

// Lookup returns the owner of (label, namespace), or the zero address when
// unregistered.
func (e *Engine) Lookup(label string, namespace string) (common.Address, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	owner, _, err := chain.GetNameOwner(e.db, label, namespace)
	return owner, err
}

// Resolve parses a full name (right-most delimiter wins) and looks it up. A
// bare label resolves inside the special namespace.
func (e *Engine) Resolve(name string) (common.Address, error) {
	label, namespace := parser.ResolveName(name)
	if namespace == "" {
		namespace = e.genesis.SpecialNamespace
	}
	return e.Lookup(label, namespace)
}

// ReverseName reconstructs owner's full name. Names in the special namespace
// render as the bare label; an ownerless address yields "".
func (e *Engine) ReverseName(owner common.Address) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	label, namespace, has, err := chain.GetOwnedName(e.db, owner)
	if err != nil || !has {
		return "", err
	}
	if namespace == e.genesis.SpecialNamespace {
		return label, nil
	}
	return label + parser.Delimiter + namespace, nil
}

func (e *Engine) NamespaceInfo(namespace string) (*chain.NamespaceInfo, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	i, has, err := chain.GetNamespaceInfo(e.db, namespace)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, chain.ErrNamespaceMissing
	}
	return i, nil
}

// NamespaceByPrice is the public-namespace-by-price reverse lookup.
func (e *Engine) NamespaceByPrice(price uint64) (string, *chain.NamespaceInfo, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	namespace, has, err := chain.GetNamespaceByPrice(e.db, price)
	if err != nil {
		return "", nil, err
	}
	if !has {
		return "", nil, chain.ErrNamespaceMissing
	}
	i, _, err := chain.GetNamespaceInfo(e.db, namespace)
	if err != nil {
		return "", nil, err
	}
	return namespace, i, nil
}

func (e *Engine) PendingFees(addr common.Address) (uint64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return chain.GetPendingFees(e.db, addr)
}

func (e *Engine) Burned(addr common.Address) (uint64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.burnerFor(e.db).Burned(addr)
}

func (e *Engine) Balance(addr common.Address) (uint64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return chain.GetBalance(e.db, addr)
}

// Fund mints native balance for addr. It exists for hosts that settle value
// off-engine (faucets, test fixtures); the registry itself never mints.
func (e *Engine) Fund(addr common.Address, amount uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := chain.ModifyBalance(e.db, addr, true, amount)
	return err
}

// Activity returns the most recent committed operations, oldest first.
func (e *Engine) Activity() []*chain.Activity {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]*chain.Activity, len(e.activity))
	copy(out, e.activity)
	return out
}
