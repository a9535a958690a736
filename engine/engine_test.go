// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/namevm/chain"
)

func newTestEngine(t *testing.T, g *chain.Genesis, opts ...Option) *Engine {
	t.Helper()
	db := memdb.New()
	t.Cleanup(func() { db.Close() })

	now := uint64(1)
	opts = append([]Option{WithClock(func() uint64 { return now })}, opts...)
	e, err := New(g, db, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestEngineLifecycle(t *testing.T) {
	t.Parallel()

	owner := common.Address{0x01}
	alice := common.Address{0x02}

	g := chain.DefaultGenesis()
	g.Owner = owner

	var now uint64 = 1
	db := memdb.New()
	defer db.Close()
	e, err := New(g, db, WithClock(func() uint64 { return now }))
	if err != nil {
		t.Fatal(err)
	}

	// Genesis state is queryable immediately.
	i, err := e.NamespaceInfo(g.SpecialNamespace)
	if err != nil {
		t.Fatal(err)
	}
	if i.Creator != owner || i.Price != g.SpecialNamespacePrice {
		t.Fatalf("unexpected namespace info %+v", i)
	}
	if name, err := e.ReverseName(owner); err != nil || name != g.SpecialLabel {
		t.Fatalf("reverse name expected %q, got %q (%v)", g.SpecialLabel, name, err)
	}
	if addr, err := e.Resolve(g.SpecialLabel); err != nil || addr != owner {
		t.Fatalf("bare resolve expected %v, got %v (%v)", owner, addr, err)
	}

	// Reopening over the same store does not reload genesis.
	if _, err := New(g, db, WithClock(func() uint64 { return now })); err != nil {
		t.Fatal(err)
	}

	// An unfunded sender cannot attach a payment.
	_, err = e.Execute(&chain.ClaimNamespaceTx{Namespace: "xns", Price: g.PriceStep}, alice, g.ClaimFee)
	if !errors.Is(err, chain.ErrInsufficientFunds) {
		t.Fatalf("err expected %v, got %v", chain.ErrInsufficientFunds, err)
	}

	if err := e.Fund(alice, 10*chain.Unit); err != nil {
		t.Fatal(err)
	}

	now = g.GraceWindow + 1
	act, err := e.Execute(&chain.ClaimNamespaceTx{Namespace: "xns", Price: g.PriceStep}, alice, g.ClaimFee+3)
	if err != nil {
		t.Fatal(err)
	}
	if act.Typ != chain.ClaimNamespace || act.Namespace != "xns" {
		t.Fatalf("unexpected activity %+v", act)
	}

	// Fee debited, refund re-credited through the default ledger.
	if b, _ := e.Balance(alice); b != 10*chain.Unit-g.ClaimFee {
		t.Fatalf("balance expected %d, got %d", 10*chain.Unit-g.ClaimFee, b)
	}
	if burned, _ := e.Burned(alice); burned != g.ClaimFee*g.BurnBasisPoints/10_000 {
		t.Fatalf("unexpected burned total %d", burned)
	}
	if fees, _ := e.PendingFees(alice); fees != g.ClaimFee*g.CreatorBasisPoints/10_000 {
		t.Fatalf("unexpected creator fees %d", fees)
	}

	// Creator registers inside its own window.
	if _, err := e.Execute(&chain.RegisterTx{Label: "alice", Namespace: "xns"}, alice, g.PriceStep); err != nil {
		t.Fatal(err)
	}
	if addr, err := e.Resolve("alice.xns"); err != nil || addr != alice {
		t.Fatalf("resolve expected %v, got %v (%v)", alice, addr, err)
	}
	if name, err := e.ReverseName(alice); err != nil || name != "alice.xns" {
		t.Fatalf("reverse name expected alice.xns, got %q (%v)", name, err)
	}
	if name, _ := e.ReverseName(common.Address{0x99}); name != "" {
		t.Fatalf("unowned reverse name expected empty, got %q", name)
	}

	ns, _, err := e.NamespaceByPrice(g.PriceStep)
	if err != nil || ns != "xns" {
		t.Fatalf("price lookup expected xns, got %q (%v)", ns, err)
	}
	if _, err := e.NamespaceInfo("nope"); !errors.Is(err, chain.ErrNamespaceMissing) {
		t.Fatalf("err expected %v, got %v", chain.ErrNamespaceMissing, err)
	}

	// Activity log, oldest first.
	acts := e.Activity()
	if len(acts) != 2 {
		t.Fatalf("activity length expected 2, got %d", len(acts))
	}
	if acts[0].Typ != chain.ClaimNamespace || acts[1].Typ != chain.Register {
		t.Fatalf("unexpected activity order %+v", acts)
	}
}

func TestEngineAtomicity(t *testing.T) {
	t.Parallel()

	owner := common.Address{0x01}
	alice := common.Address{0x02}

	g := chain.DefaultGenesis()
	g.Owner = owner

	rejecting := &rejectLedger{}
	e := newTestEngine(t, g, WithLedger(rejecting))

	if err := e.Fund(alice, 10*chain.Unit); err != nil {
		t.Fatal(err)
	}

	// The refund transfer fails, so the whole claim must unwind: no
	// namespace record, no debit.
	_, err := e.Execute(&chain.ClaimNamespaceTx{Namespace: "xns", Price: g.PriceStep}, alice, g.ClaimFee+1)
	if !errors.Is(err, chain.ErrRefundFailed) {
		t.Fatalf("err expected %v, got %v", chain.ErrRefundFailed, err)
	}
	if _, err := e.NamespaceInfo("xns"); !errors.Is(err, chain.ErrNamespaceMissing) {
		t.Fatalf("aborted claim must leave no record, got %v", err)
	}
	if b, _ := e.Balance(alice); b != 10*chain.Unit {
		t.Fatalf("aborted claim must not debit, balance %d", b)
	}
}

func TestEngineSponsorFlow(t *testing.T) {
	t.Parallel()

	owner := common.Address{0x01}
	sponsor := common.Address{0x02}

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	recipient := crypto.PubkeyToAddress(priv.PublicKey)

	g := chain.DefaultGenesis()
	g.Owner = owner

	var now uint64 = 1
	db := memdb.New()
	defer db.Close()
	e, err := New(g, db, WithClock(func() uint64 { return now }))
	if err != nil {
		t.Fatal(err)
	}

	if err := e.Fund(sponsor, 10*chain.Unit); err != nil {
		t.Fatal(err)
	}
	now = g.GraceWindow + 1
	if _, err := e.Execute(&chain.ClaimNamespaceTx{Namespace: "xns", Price: g.PriceStep}, sponsor, g.ClaimFee); err != nil {
		t.Fatal(err)
	}

	auth := &chain.Authorization{Recipient: recipient, Label: "carol", Namespace: "xns"}
	dh, err := auth.DigestHash(g)
	if err != nil {
		t.Fatal(err)
	}
	sig, err := chain.Sign(dh, priv)
	if err != nil {
		t.Fatal(err)
	}

	act, err := e.Execute(&chain.RegisterForTx{Auth: auth, Signature: sig}, sponsor, g.PriceStep)
	if err != nil {
		t.Fatal(err)
	}
	if act.Typ != chain.Sponsor || act.To != recipient.Hex() {
		t.Fatalf("unexpected activity %+v", act)
	}
	if addr, err := e.Lookup("carol", "xns"); err != nil || addr != recipient {
		t.Fatalf("lookup expected %v, got %v (%v)", recipient, addr, err)
	}

	// The recipient paid nothing and can claim nothing; the sponsor carries
	// the burn.
	if b, _ := e.Balance(recipient); b != 0 {
		t.Fatalf("recipient balance expected 0, got %d", b)
	}
	wantBurn := (g.ClaimFee + g.PriceStep) * g.BurnBasisPoints / 10_000
	if burned, _ := e.Burned(sponsor); burned != wantBurn {
		t.Fatalf("sponsor burn expected %d, got %d", wantBurn, burned)
	}

	// Fees claim pays out through the balance bucket.
	if _, err := e.Execute(chain.NewClaimFeesTx(sponsor), sponsor, 0); err != nil {
		t.Fatal(err)
	}
	if fees, _ := e.PendingFees(sponsor); fees != 0 {
		t.Fatalf("pending fees expected 0 after claim, got %d", fees)
	}
}

type rejectLedger struct{}

func (*rejectLedger) Transfer(common.Address, uint64) error {
	return errors.New("transfer rejected")
}
