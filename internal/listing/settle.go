package listing

import (
	"fmt"
	"sort"

	"listing-engine/internal/events"
	"listing-engine/internal/listingerrors"
)

// Acceptance is one supplier's share of a settlement.
type Acceptance struct {
	Supplier  string `json:"supplier"`
	Quantity  uint64 `json:"quantity"`
	UnitPrice uint64 `json:"unit_price"`
}

// Result summarizes a completed settlement. Fulfilled is zero when the
// listing settled with no winner.
type Result struct {
	Winner        string       `json:"winner,omitempty"`
	Fulfilled     uint64       `json:"fulfilled"`
	ClearingPrice uint64       `json:"clearing_price"`
	Accepted      []Acceptance `json:"accepted,omitempty"`
}

type candidate struct {
	addr      string
	value     uint64
	revealSeq uint64
	quantity  uint64
}

// Settle determines the winner set and computes every participant's payout
// in one pass. Payouts are stored on the records and collected by pull-based
// Withdraw calls. meritOf re-checks eligibility at settlement time, since
// re-registration can change a supplier's tier after joining.
//
// Ordering rule: lowest revealed price wins; ties go to the earlier reveal.
// Under first-price mode each accepted supplier is paid their own price,
// otherwise every accepted unit clears at the marginal (highest accepted)
// price.
func (l *Listing) Settle(op Op, meritOf func(string) (int, error)) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.data.Settled {
		return Result{}, fmt.Errorf("settle listing %s: %w", l.data.ID, listingerrors.ErrAlreadySettled)
	}
	if l.data.Canceled || op.Now.Before(l.data.EndTime) {
		return Result{}, fmt.Errorf("settle listing %s: %w", l.data.ID, listingerrors.ErrWrongPhase)
	}

	accepted := l.selectWinners(meritOf)

	res := Result{Accepted: accepted}
	for _, a := range accepted {
		res.Fulfilled += a.Quantity
	}
	if len(accepted) > 0 {
		res.Winner = accepted[0].Supplier
		res.ClearingPrice = accepted[len(accepted)-1].UnitPrice
	}

	l.applySettlement(op, res)
	return res, nil
}

// selectWinners walks the valid revealed bids in improving-price order.
// Bids above the price ceiling are never executable: buyers only deposited
// ceiling * quantity.
func (l *Listing) selectWinners(meritOf func(string) (int, error)) []Acceptance {
	var cands []candidate
	for _, addr := range l.supOrder {
		s := l.suppliers[addr]
		bid := l.bids[addr]
		if !s.Revealed || s.InvalidBid || bid.RevealedValue == nil {
			continue
		}
		value := *bid.RevealedValue
		if value > l.data.PriceCeiling {
			continue
		}
		merit, err := meritOf(addr)
		if err != nil || merit < l.data.MinMerit {
			continue
		}
		cands = append(cands, candidate{addr: addr, value: value, revealSeq: s.RevealSeq, quantity: s.Quantity})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].value != cands[j].value {
			return cands[i].value < cands[j].value
		}
		return cands[i].revealSeq < cands[j].revealSeq
	})

	var accepted []Acceptance

	if !l.data.Groupable {
		if l.data.QuantityRequested == 0 {
			return nil
		}
		for _, c := range cands {
			if c.quantity >= l.data.QuantityRequested {
				accepted = append(accepted, Acceptance{Supplier: c.addr, Quantity: l.data.QuantityRequested})
				break
			}
		}
	} else {
		remaining := l.data.QuantityTotal
		for _, c := range cands {
			if remaining == 0 {
				break
			}
			take := c.quantity
			if take > remaining {
				take = remaining
			}
			accepted = append(accepted, Acceptance{Supplier: c.addr, Quantity: take})
			remaining -= take
		}
	}

	// Price each acceptance. The marginal price is only known once the
	// whole set is fixed.
	if len(accepted) > 0 {
		marginal := l.valueOf(accepted[len(accepted)-1].Supplier)
		for i := range accepted {
			if l.data.FirstPriceMode {
				accepted[i].UnitPrice = l.valueOf(accepted[i].Supplier)
			} else {
				accepted[i].UnitPrice = marginal
			}
		}
	}
	return accepted
}

func (l *Listing) valueOf(supplier string) uint64 {
	return *l.bids[supplier].RevealedValue
}

// applySettlement stores payouts on every record and flips the listing into
// its terminal settled state. Accepted units are assigned to buyers in join
// order, so each buyer's cost accrues at the price of the supplier covering
// their units.
func (l *Listing) applySettlement(op Op, res Result) {
	costs := make(map[string]uint64)
	fulfilled := make(map[string]uint64)

	buyerIdx := 0
	var buyerLeft uint64
	if len(l.buyerOrder) > 0 {
		buyerLeft = l.buyers[l.buyerOrder[0]].Quantity
	}

	for _, a := range res.Accepted {
		s := l.suppliers[a.Supplier]
		s.FulfilledQuantity = a.Quantity
		s.Payout = a.UnitPrice*a.Quantity + s.BondAmount

		units := a.Quantity
		for units > 0 && buyerIdx < len(l.buyerOrder) {
			if buyerLeft == 0 {
				buyerIdx++
				if buyerIdx < len(l.buyerOrder) {
					buyerLeft = l.buyers[l.buyerOrder[buyerIdx]].Quantity
				}
				continue
			}
			assign := units
			if assign > buyerLeft {
				assign = buyerLeft
			}
			addr := l.buyerOrder[buyerIdx]
			fulfilled[addr] += assign
			costs[addr] += assign * a.UnitPrice
			buyerLeft -= assign
			units -= assign
		}
	}

	for _, addr := range l.buyerOrder {
		b := l.buyers[addr]
		b.FulfilledQuantity = fulfilled[addr]
		b.Payout = b.DepositAmount - costs[addr]
		b.CanWithdraw = true
	}
	for _, addr := range l.supOrder {
		s := l.suppliers[addr]
		if s.InvalidBid {
			continue // bond accounting already finalized at reveal
		}
		if s.FulfilledQuantity == 0 {
			s.Payout = s.BondAmount
		}
		s.CanWithdraw = true
	}

	l.data.Settled = true
	if res.Winner != "" {
		winnerPrice := l.valueOf(res.Winner)
		if l.data.Winner != res.Winner || l.data.BestPrice != winnerPrice {
			l.data.Winner = res.Winner
			l.data.BestPrice = winnerPrice
			l.emit.Emit(op.Now, events.WinnerUpdated{
				ListingID: l.data.ID,
				Winner:    res.Winner,
				BestPrice: winnerPrice,
			})
		}
	}
}
