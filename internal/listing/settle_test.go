package listing

import (
	"testing"
	"time"

	"listing-engine/internal/commitment"
	"listing-engine/internal/listingerrors"
	"listing-engine/internal/models"

	"github.com/stretchr/testify/require"
)

func meritTable(m map[string]int) func(string) (int, error) {
	return func(addr string) (int, error) {
		return m[addr], nil
	}
}

// Helper running a full pre-settlement lifecycle: buyers join, suppliers
// commit, everyone reveals.
type settlementFixture struct {
	l        *Listing
	settleAt time.Time
}

func setupSettlement(t *testing.T, groupable, firstPrice bool, buyers map[string]uint64, supplierBids []struct {
	addr  string
	value uint64
	qty   uint64
}) settlementFixture {
	t.Helper()

	l, _ := newTestListing(groupable, firstPrice, 100)
	open := baseTime.Add(time.Minute)
	bidding := auctionAt.Add(time.Minute)
	revealing := revealAt.Add(time.Minute)

	block := uint64(0)
	for _, addr := range sortedKeys(buyers) {
		block++
		qty := buyers[addr]
		require.NoError(t, l.JoinAsBuyer(opAt(open, block), addr, qty, qty*100))
	}
	for _, s := range supplierBids {
		block++
		c := commitment.Compute(s.addr, s.value, "salt-"+s.addr)
		require.NoError(t, l.JoinAsSupplier(opAt(bidding, block), s.addr, 5, c, s.qty, 300))
	}
	for _, s := range supplierBids {
		block++
		require.NoError(t, l.RevealBid(opAt(revealing, block), s.addr, s.value, "salt-"+s.addr))
	}

	return settlementFixture{l: l, settleAt: endAt.Add(time.Minute)}
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

type bidSpec = struct {
	addr  string
	value uint64
	qty   uint64
}

// Test groupable settlement with partial fulfillment, pay-as-bid pricing
func TestListing_Settle_GroupablePartial(t *testing.T) {
	t.Parallel()

	fx := setupSettlement(t, true, true,
		map[string]uint64{"0xbuyer1": 3, "0xbuyer2": 5},
		[]bidSpec{
			{addr: "0xsupplier1", value: 90, qty: 5},
			{addr: "0xsupplier2", value: 95, qty: 5},
		})

	merits := meritTable(map[string]int{"0xsupplier1": 5, "0xsupplier2": 5})
	res, err := fx.l.Settle(opAt(fx.settleAt, 100), merits)
	require.NoError(t, err)

	require.Equal(t, "0xsupplier1", res.Winner)
	require.Equal(t, uint64(8), res.Fulfilled)
	require.Equal(t, []Acceptance{
		{Supplier: "0xsupplier1", Quantity: 5, UnitPrice: 90},
		{Supplier: "0xsupplier2", Quantity: 3, UnitPrice: 95},
	}, res.Accepted)

	snap := fx.l.Snapshot(fx.settleAt)
	require.Equal(t, models.PhaseSettled, snap.Phase)
	require.Equal(t, "0xsupplier1", snap.Listing.Winner)
	require.Equal(t, uint64(90), snap.Listing.BestPrice)

	// S1 fully fulfilled, S2 partially: 3 of 5 units, 2 unfulfilled
	for _, s := range snap.Suppliers {
		switch s.Address {
		case "0xsupplier1":
			require.Equal(t, uint64(5), s.FulfilledQuantity)
			require.Equal(t, uint64(5*90+300), s.Payout, "price x qty plus bond")
		case "0xsupplier2":
			require.Equal(t, uint64(3), s.FulfilledQuantity)
			require.Equal(t, uint64(3*95+300), s.Payout)
		}
		require.True(t, s.CanWithdraw)
	}

	// buyers are allocated in join order: buyer1 covered at 90, buyer2
	// straddles both suppliers
	for _, b := range snap.Buyers {
		switch b.Address {
		case "0xbuyer1":
			require.Equal(t, uint64(3), b.FulfilledQuantity)
			require.Equal(t, uint64(300-3*90), b.Payout)
		case "0xbuyer2":
			require.Equal(t, uint64(5), b.FulfilledQuantity)
			require.Equal(t, uint64(500-(2*90+3*95)), b.Payout)
		}
		require.True(t, b.CanWithdraw)
	}
}

// Test uniform clearing pricing when first-price mode is off
func TestListing_Settle_UniformClearing(t *testing.T) {
	t.Parallel()

	fx := setupSettlement(t, true, false,
		map[string]uint64{"0xbuyer1": 8},
		[]bidSpec{
			{addr: "0xsupplier1", value: 90, qty: 5},
			{addr: "0xsupplier2", value: 95, qty: 5},
		})

	merits := meritTable(map[string]int{"0xsupplier1": 5, "0xsupplier2": 5})
	res, err := fx.l.Settle(opAt(fx.settleAt, 100), merits)
	require.NoError(t, err)

	require.Equal(t, uint64(95), res.ClearingPrice, "uniform mode clears at the marginal accepted price")
	for _, a := range res.Accepted {
		require.Equal(t, uint64(95), a.UnitPrice)
	}

	snap := fx.l.Snapshot(fx.settleAt)
	require.Equal(t, uint64(800-8*95), snap.Buyers[0].Payout)
}

// Test money conservation: deposits and bonds in equal payouts out
func TestListing_Settle_Conservation(t *testing.T) {
	t.Parallel()

	fx := setupSettlement(t, true, true,
		map[string]uint64{"0xbuyer1": 3, "0xbuyer2": 5},
		[]bidSpec{
			{addr: "0xsupplier1", value: 90, qty: 5},
			{addr: "0xsupplier2", value: 95, qty: 5},
			{addr: "0xsupplier3", value: 99, qty: 4},
		})

	merits := meritTable(map[string]int{"0xsupplier1": 5, "0xsupplier2": 5, "0xsupplier3": 5})
	_, err := fx.l.Settle(opAt(fx.settleAt, 100), merits)
	require.NoError(t, err)

	snap := fx.l.Snapshot(fx.settleAt)
	in := uint64(300 + 500 + 3*300) // deposits + bonds
	var out uint64
	for _, b := range snap.Buyers {
		out += b.Payout
	}
	for _, s := range snap.Suppliers {
		out += s.Payout
	}
	require.Equal(t, in, out)
}

// Test non-groupable settlement picks the single best covering bid
func TestListing_Settle_NonGroupable(t *testing.T) {
	t.Parallel()

	fx := setupSettlement(t, false, true,
		map[string]uint64{"0xbuyer1": 4},
		[]bidSpec{
			{addr: "0xsupplier1", value: 80, qty: 2}, // best price but cannot cover
			{addr: "0xsupplier2", value: 90, qty: 5},
		})

	merits := meritTable(map[string]int{"0xsupplier1": 5, "0xsupplier2": 5})
	res, err := fx.l.Settle(opAt(fx.settleAt, 100), merits)
	require.NoError(t, err)

	require.Equal(t, "0xsupplier2", res.Winner, "winner must cover the full requested quantity")
	require.Equal(t, uint64(4), res.Fulfilled)
	require.Len(t, res.Accepted, 1)

	snap := fx.l.Snapshot(fx.settleAt)
	for _, s := range snap.Suppliers {
		if s.Address == "0xsupplier1" {
			require.Equal(t, uint64(300), s.Payout, "losing supplier recovers the bond")
		}
	}
}

// Test settlement with no qualifying bid: no winner, buyers fully refundable
func TestListing_Settle_NoQualifyingBid(t *testing.T) {
	t.Parallel()

	fx := setupSettlement(t, false, true,
		map[string]uint64{"0xbuyer1": 4},
		[]bidSpec{{addr: "0xsupplier1", value: 90, qty: 5}})

	// supplier tier dropped below the minimum after joining
	merits := meritTable(map[string]int{"0xsupplier1": 1})
	res, err := fx.l.Settle(opAt(fx.settleAt, 100), merits)
	require.NoError(t, err)

	require.Empty(t, res.Winner)
	require.Zero(t, res.Fulfilled)

	snap := fx.l.Snapshot(fx.settleAt)
	require.True(t, snap.Listing.Settled)
	b := snap.Buyers[0]
	require.True(t, b.CanWithdraw)
	require.Equal(t, uint64(400), b.Payout, "deposit withdrawable in full")
}

// Test revealed values above the ceiling are never executable
func TestListing_Settle_AboveCeilingSkipped(t *testing.T) {
	t.Parallel()

	fx := setupSettlement(t, true, true,
		map[string]uint64{"0xbuyer1": 4},
		[]bidSpec{{addr: "0xsupplier1", value: 120, qty: 5}})

	merits := meritTable(map[string]int{"0xsupplier1": 5})
	res, err := fx.l.Settle(opAt(fx.settleAt, 100), merits)
	require.NoError(t, err)
	require.Empty(t, res.Accepted)
}

// Test settle gating: too early, double settle, after cancel
func TestListing_Settle_Gating(t *testing.T) {
	t.Parallel()

	fx := setupSettlement(t, true, true,
		map[string]uint64{"0xbuyer1": 2},
		[]bidSpec{{addr: "0xsupplier1", value: 90, qty: 5}})
	merits := meritTable(map[string]int{"0xsupplier1": 5})

	_, err := fx.l.Settle(opAt(revealAt.Add(time.Minute), 99), merits)
	require.ErrorIs(t, err, listingerrors.ErrWrongPhase)

	_, err = fx.l.Settle(opAt(fx.settleAt, 100), merits)
	require.NoError(t, err)

	_, err = fx.l.Settle(opAt(fx.settleAt, 101), merits)
	require.ErrorIs(t, err, listingerrors.ErrAlreadySettled)

	l2, _ := newTestListing(true, true, 100)
	require.NoError(t, l2.Cancel(opAt(baseTime.Add(time.Minute), 1)))
	_, err = l2.Settle(opAt(endAt.Add(time.Minute), 2), merits)
	require.ErrorIs(t, err, listingerrors.ErrWrongPhase)
}

// Test ties resolve to the earlier reveal, matching the live leader
func TestListing_Settle_TieBreak(t *testing.T) {
	t.Parallel()

	fx := setupSettlement(t, false, true,
		map[string]uint64{"0xbuyer1": 2},
		[]bidSpec{
			{addr: "0xsupplier1", value: 90, qty: 5},
			{addr: "0xsupplier2", value: 90, qty: 5},
		})

	merits := meritTable(map[string]int{"0xsupplier1": 5, "0xsupplier2": 5})
	res, err := fx.l.Settle(opAt(fx.settleAt, 100), merits)
	require.NoError(t, err)
	require.Equal(t, "0xsupplier1", res.Winner, "first revealer keeps the lead on equal prices")
}

// Test withdrawal flow after a settlement with an invalid bid in the mix
func TestListing_Settle_WithdrawAfterInvalidBid(t *testing.T) {
	t.Parallel()

	l, _ := newTestListing(true, true, 100)
	open := baseTime.Add(time.Minute)
	bidding := auctionAt.Add(time.Minute)
	revealing := revealAt.Add(time.Minute)

	require.NoError(t, l.JoinAsBuyer(opAt(open, 1), "0xbuyer1", 2, 200))

	c1 := commitment.Compute("0xsupplier1", 90, "s1")
	c2 := commitment.Compute("0xsupplier2", 85, "s2")
	require.NoError(t, l.JoinAsSupplier(opAt(bidding, 2), "0xsupplier1", 5, c1, 5, 300))
	require.NoError(t, l.JoinAsSupplier(opAt(bidding, 3), "0xsupplier2", 5, c2, 5, 300))

	require.NoError(t, l.RevealBid(opAt(revealing, 4), "0xsupplier1", 90, "s1"))
	// wrong salt invalidates supplier2's cheaper bid
	require.NoError(t, l.RevealBid(opAt(revealing, 5), "0xsupplier2", 85, "bad"))

	res, err := l.Settle(opAt(endAt.Add(time.Minute), 6), meritTable(map[string]int{"0xsupplier1": 5, "0xsupplier2": 5}))
	require.NoError(t, err)
	require.Equal(t, "0xsupplier1", res.Winner, "invalid bid is out of the running")

	// invalid bidder was already refunded at reveal, nothing left to pull
	_, err = l.Withdraw(opAt(endAt.Add(time.Minute), 7), "0xsupplier2")
	require.ErrorIs(t, err, listingerrors.ErrNothingToWithdraw)

	r, err := l.Withdraw(opAt(endAt.Add(time.Minute), 8), "0xsupplier1")
	require.NoError(t, err)
	require.Equal(t, uint64(2*90+300), r[0].Amount)

	r, err = l.Withdraw(opAt(endAt.Add(time.Minute), 9), "0xbuyer1")
	require.NoError(t, err)
	require.Equal(t, uint64(200-2*90), r[0].Amount)
}
