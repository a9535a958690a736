// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/namevm/parser"
)

func TestClaimNamespaceTx(t *testing.T) {
	t.Parallel()

	owner := common.Address{0x01}
	sender := common.Address{0x02}

	g := DefaultGenesis()
	g.Owner = owner
	g.DeployTime = 0
	afterGrace := g.GraceWindow + 1

	db := memdb.New()
	defer db.Close()

	tt := []struct {
		tx        *ClaimNamespaceTx
		sender    common.Address
		payment   uint64
		blockTime uint64
		err       error
	}{
		{ // owner claims fee-free inside the grace period
			tx:        &ClaimNamespaceTx{Namespace: "ava", Price: 5 * g.PriceStep},
			sender:    owner,
			payment:   0,
			blockTime: 1,
			err:       nil,
		},
		{ // reserved identifier rejected regardless of class
			tx:        &ClaimNamespaceTx{Namespace: parser.ReservedNamespace, Price: g.PriceStep},
			sender:    sender,
			payment:   g.ClaimFee,
			blockTime: afterGrace,
			err:       parser.ErrReservedNamespace,
		},
		{ // public namespaces are at most 4 characters
			tx:        &ClaimNamespaceTx{Namespace: "toolong", Price: g.PriceStep},
			sender:    sender,
			payment:   g.ClaimFee,
			blockTime: afterGrace,
			err:       parser.ErrInvalidNamespace,
		},
		{
			tx:        &ClaimNamespaceTx{Namespace: "zero", Price: 0},
			sender:    sender,
			payment:   g.ClaimFee,
			blockTime: afterGrace,
			err:       ErrZeroPrice,
		},
		{
			tx:        &ClaimNamespaceTx{Namespace: "odd", Price: g.PriceStep + 1},
			sender:    sender,
			payment:   g.ClaimFee,
			blockTime: afterGrace,
			err:       ErrPriceNotMultiple,
		},
		{ // private prices must be at least one step
			tx:        &ClaimNamespaceTx{Namespace: "lowpriced", Price: g.PriceStep - 1, Private: true},
			sender:    sender,
			payment:   g.PrivateClaimFee,
			blockTime: afterGrace,
			err:       ErrPriceTooLow,
		},
		{
			tx:        &ClaimNamespaceTx{Namespace: "ava", Price: 7 * g.PriceStep},
			sender:    sender,
			payment:   g.ClaimFee,
			blockTime: afterGrace,
			err:       ErrNamespaceExists,
		},
		{ // public price uniqueness
			tx:        &ClaimNamespaceTx{Namespace: "dup", Price: 5 * g.PriceStep},
			sender:    sender,
			payment:   g.ClaimFee,
			blockTime: afterGrace,
			err:       ErrPriceTaken,
		},
		{
			tx:        &ClaimNamespaceTx{Namespace: "yolo", Price: 2 * g.PriceStep},
			sender:    sender,
			payment:   g.ClaimFee - 1,
			blockTime: afterGrace,
			err:       ErrInsufficientFee,
		},
		{ // non-owner outside grace, full fee plus excess
			tx:        &ClaimNamespaceTx{Namespace: "yolo", Price: 2 * g.PriceStep},
			sender:    sender,
			payment:   g.ClaimFee + 42,
			blockTime: afterGrace,
			err:       nil,
		},
		{ // private namespaces may reuse a public price
			tx:        &ClaimNamespaceTx{Namespace: "private-dup", Price: 5 * g.PriceStep, Private: true},
			sender:    sender,
			payment:   g.PrivateClaimFee,
			blockTime: afterGrace,
			err:       nil,
		},
	}
	for i, tv := range tt {
		tc := newTestContext(g, db, tv.sender, tv.payment, tv.blockTime)
		err := tv.tx.Execute(tc)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: tx.Execute err expected %v, got %v", i, tv.err, err)
		}
	}

	// Grace-period claim: record written, nothing distributed.
	i, has, err := GetNamespaceInfo(db, "ava")
	if err != nil || !has {
		t.Fatalf("failed to get namespace info: %v", err)
	}
	if i.Creator != owner || i.Price != 5*g.PriceStep || i.Private {
		t.Fatalf("unexpected namespace info %+v", i)
	}

	// Paid claim: creator recorded, split sums to the fee.
	i, has, err = GetNamespaceInfo(db, "yolo")
	if err != nil || !has {
		t.Fatalf("failed to get namespace info: %v", err)
	}
	if i.Creator != sender || i.Private {
		t.Fatalf("unexpected namespace info %+v", i)
	}
	ns, has, err := GetNamespaceByPrice(db, 2*g.PriceStep)
	if err != nil || !has || ns != "yolo" {
		t.Fatalf("price index expected yolo, got %q (%v)", ns, err)
	}
	senderFees, err := GetPendingFees(db, sender)
	if err != nil {
		t.Fatal(err)
	}
	burn := g.ClaimFee * g.BurnBasisPoints / feeBasisPoints
	creator := g.ClaimFee * g.CreatorBasisPoints / feeBasisPoints
	privBurn := g.PrivateClaimFee * g.BurnBasisPoints / feeBasisPoints
	if senderFees != creator {
		t.Fatalf("creator fees expected %d, got %d", creator, senderFees)
	}
	// Owner share: public remainder plus the whole non-burn share of the
	// private claim. The grace-period claim contributed nothing.
	wantOwner := (g.ClaimFee - burn - creator) + (g.PrivateClaimFee - privBurn)
	if got, _ := GetPendingFees(db, owner); got != wantOwner {
		t.Fatalf("owner fees expected %d, got %d", wantOwner, got)
	}
}

func TestClaimNamespaceTxRefund(t *testing.T) {
	t.Parallel()

	owner := common.Address{0x01}
	sender := common.Address{0x02}

	g := DefaultGenesis()
	g.Owner = owner

	db := memdb.New()
	defer db.Close()

	// Owner inside grace: the entire payment comes back untouched.
	tc := newTestContext(g, db, owner, 99, 1)
	if err := (&ClaimNamespaceTx{Namespace: "free", Price: g.PriceStep}).Execute(tc); err != nil {
		t.Fatal(err)
	}
	if got := tc.Ledger.(*testLedger).transfers[owner]; got != 99 {
		t.Fatalf("grace refund expected 99, got %d", got)
	}
	if fees, _ := GetPendingFees(db, owner); fees != 0 {
		t.Fatalf("grace claim must not distribute, got %d", fees)
	}

	// Paid claim: only the excess over the fee comes back.
	tc = newTestContext(g, db, sender, g.ClaimFee+7, g.GraceWindow+1)
	if err := (&ClaimNamespaceTx{Namespace: "paid", Price: 2 * g.PriceStep}).Execute(tc); err != nil {
		t.Fatal(err)
	}
	if got := tc.Ledger.(*testLedger).transfers[sender]; got != 7 {
		t.Fatalf("refund expected 7, got %d", got)
	}
	burn := g.ClaimFee * g.BurnBasisPoints / feeBasisPoints
	if got := tc.Burner.(*testBurner).burned[sender]; got != burn {
		t.Fatalf("burn expected %d, got %d", burn, got)
	}

	// A rejected refund aborts the claim.
	tc = newTestContext(g, db, sender, g.ClaimFee+1, g.GraceWindow+1)
	tc.Ledger.(*testLedger).err = errTransferRejected
	err := (&ClaimNamespaceTx{Namespace: "bad", Price: 3 * g.PriceStep}).Execute(tc)
	if !errors.Is(err, ErrRefundFailed) {
		t.Fatalf("err expected %v, got %v", ErrRefundFailed, err)
	}
}
