package listing

import (
	"fmt"
	"math"
	"time"

	"listing-engine/internal/commitment"
	"listing-engine/internal/events"
	"listing-engine/internal/listingerrors"
	"listing-engine/internal/models"

	"sync"
)

// Op carries the per-operation context: the single time snapshot phase
// checks are made against, plus the block/tx references stamped onto
// participation events.
type Op struct {
	Now   time.Time
	Block uint64
	Tx    string
}

// Params are the creation-time parameters of a listing, validated by the
// factory before a Listing is instantiated.
type Params struct {
	ID             string
	Creator        string
	ProductRef     string
	Groupable      bool
	LeadTimeMax    time.Duration
	CreationTime   time.Time
	AuctionTime    time.Time
	RevealTime     time.Time
	EndTime        time.Time
	MinMerit       int
	PriceCeiling   uint64
	FirstPriceMode bool
}

// Listing owns one procurement round's full lifecycle. All mutation goes
// through its methods; two operations on the same listing are linearized by
// the mutex, and every operation either completes fully or leaves no trace.
type Listing struct {
	mu   sync.Mutex
	data models.Listing

	buyers     map[string]*models.BuyerRecord
	buyerOrder []string
	suppliers  map[string]*models.SupplierRecord
	supOrder   []string
	bids       map[string]*models.Bid

	revealSeq uint64

	emit events.Emitter
}

// Snapshot is a consistent copy of the listing and all its participation
// records, taken under the listing lock.
type Snapshot struct {
	Listing   models.Listing          `json:"listing"`
	Phase     models.Phase            `json:"phase"`
	Buyers    []models.BuyerRecord    `json:"buyers"`
	Suppliers []models.SupplierRecord `json:"suppliers"`
	Bids      []models.Bid            `json:"bids"`
}

// New instantiates a listing in the Open phase. Schedule validation is the
// factory's job; BestPrice is seeded at the price ceiling and only ever
// improves downward.
func New(p Params, emit events.Emitter) *Listing {
	return &Listing{
		data: models.Listing{
			ID:             p.ID,
			Creator:        p.Creator,
			ProductRef:     p.ProductRef,
			Groupable:      p.Groupable,
			LeadTimeMax:    p.LeadTimeMax,
			CreationTime:   p.CreationTime,
			AuctionTime:    p.AuctionTime,
			RevealTime:     p.RevealTime,
			EndTime:        p.EndTime,
			MinMerit:       p.MinMerit,
			PriceCeiling:   p.PriceCeiling,
			BestPrice:      p.PriceCeiling,
			FirstPriceMode: p.FirstPriceMode,
		},
		buyers:    make(map[string]*models.BuyerRecord),
		suppliers: make(map[string]*models.SupplierRecord),
		bids:      make(map[string]*models.Bid),
		emit:      emit,
	}
}

// ID returns the listing id.
func (l *Listing) ID() string {
	return l.data.ID
}

// phaseAt derives the phase from one time snapshot. After the end time an
// unsettled listing still reports Revealing; settlement is what moves it to
// a terminal phase.
func (l *Listing) phaseAt(now time.Time) models.Phase {
	switch {
	case l.data.Canceled:
		return models.PhaseCanceled
	case l.data.Settled:
		return models.PhaseSettled
	case now.Before(l.data.AuctionTime):
		return models.PhaseOpen
	case now.Before(l.data.RevealTime):
		return models.PhaseBidding
	default:
		return models.PhaseRevealing
	}
}

// PhaseAt returns the phase the listing is in at the given time.
func (l *Listing) PhaseAt(now time.Time) models.Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phaseAt(now)
}

// Snapshot returns a consistent copy of all listing state.
func (l *Listing) Snapshot(now time.Time) Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	snap := Snapshot{
		Listing: l.data,
		Phase:   l.phaseAt(now),
	}
	for _, addr := range l.buyerOrder {
		snap.Buyers = append(snap.Buyers, *l.buyers[addr])
	}
	for _, addr := range l.supOrder {
		snap.Suppliers = append(snap.Suppliers, *l.suppliers[addr])
		snap.Bids = append(snap.Bids, *l.bids[addr])
	}
	return snap
}

// JoinAsBuyer pools demand for the listing. Payment must be exactly
// quantity * priceCeiling; it is held as the buyer's deposit until
// settlement or leave.
func (l *Listing) JoinAsBuyer(op Op, buyer string, quantity, payment uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ph := l.phaseAt(op.Now); ph != models.PhaseOpen {
		return fmt.Errorf("join buyer %s in phase %s: %w", buyer, ph, listingerrors.ErrWrongPhase)
	}
	if quantity == 0 {
		return fmt.Errorf("join buyer %s: %w", buyer, listingerrors.ErrZeroQuantity)
	}
	if b, ok := l.buyers[buyer]; ok && b.IsParticipating {
		return fmt.Errorf("join buyer %s: %w", buyer, listingerrors.ErrDuplicateUser)
	}
	if l.data.PriceCeiling != 0 && quantity > math.MaxUint64/l.data.PriceCeiling {
		return fmt.Errorf("join buyer %s: deposit overflows: %w", buyer, listingerrors.ErrInsufficientFee)
	}
	if expected := quantity * l.data.PriceCeiling; payment != expected {
		return fmt.Errorf("join buyer %s: paid %d, need %d: %w",
			buyer, payment, expected, listingerrors.ErrInsufficientFee)
	}

	l.buyers[buyer] = &models.BuyerRecord{
		Address:         buyer,
		DepositAmount:   payment,
		Quantity:        quantity,
		IsParticipating: true,
		JoinedSeq:       op.Block,
	}
	l.buyerOrder = append(l.buyerOrder, buyer)
	l.data.QuantityRequested += quantity
	l.data.QuantityTotal += quantity

	l.emit.Emit(op.Now, events.NewBuyer{
		Buyer:           buyer,
		ListingID:       l.data.ID,
		DepositedAmount: payment,
		Quantity:        quantity,
		BlockRef:        op.Block,
		TxRef:           op.Tx,
	})
	return nil
}

// LeaveAsBuyer refunds the buyer's deposit immediately and removes them from
// the pool. The record is zeroed, not deleted, so it stays auditable.
func (l *Listing) LeaveAsBuyer(op Op, buyer string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ph := l.phaseAt(op.Now); ph != models.PhaseOpen {
		return fmt.Errorf("leave buyer %s in phase %s: %w", buyer, ph, listingerrors.ErrWrongPhase)
	}
	b, ok := l.buyers[buyer]
	if !ok || !b.IsParticipating {
		return fmt.Errorf("leave buyer %s: %w", buyer, listingerrors.ErrNotParticipating)
	}

	l.data.QuantityRequested -= b.Quantity
	l.data.QuantityTotal -= b.Quantity

	b.DepositAmount = 0
	b.Quantity = 0
	b.IsParticipating = false

	for i, addr := range l.buyerOrder {
		if addr == buyer {
			l.buyerOrder = append(l.buyerOrder[:i], l.buyerOrder[i+1:]...)
			break
		}
	}

	l.emit.Emit(op.Now, events.LeftListing{Buyer: buyer, ListingID: l.data.ID})
	return nil
}

// JoinAsSupplier registers a sealed bid. The offered quantity is public;
// only the price is committed. The bond is a flat amount from config.
func (l *Listing) JoinAsSupplier(op Op, supplier string, merit int, commit string, quantity, bond uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ph := l.phaseAt(op.Now); ph != models.PhaseBidding {
		return fmt.Errorf("join supplier %s in phase %s: %w", supplier, ph, listingerrors.ErrWrongPhase)
	}
	if merit < l.data.MinMerit {
		return fmt.Errorf("join supplier %s: tier %d below %d: %w",
			supplier, merit, l.data.MinMerit, listingerrors.ErrInsufficientMerit)
	}
	if quantity == 0 {
		return fmt.Errorf("join supplier %s: %w", supplier, listingerrors.ErrZeroQuantity)
	}
	if _, ok := l.suppliers[supplier]; ok {
		return fmt.Errorf("join supplier %s: %w", supplier, listingerrors.ErrDuplicateUser)
	}

	l.suppliers[supplier] = &models.SupplierRecord{
		Address:    supplier,
		BondAmount: bond,
		Quantity:   quantity,
		JoinedSeq:  op.Block,
	}
	l.supOrder = append(l.supOrder, supplier)
	l.bids[supplier] = &models.Bid{
		Supplier:   supplier,
		Commitment: commit,
		BlockRef:   op.Block,
		TxRef:      op.Tx,
	}
	l.data.HasSuppliers = true

	l.emit.Emit(op.Now, events.SupplierJoined{
		Supplier:        supplier,
		ListingID:       l.data.ID,
		DepositedAmount: bond,
		Commitment:      commit,
		Quantity:        quantity,
		BlockRef:        op.Block,
		TxRef:           op.Tx,
	})
	return nil
}

// RevealBid opens a sealed bid. A commitment mismatch is a recorded terminal
// outcome for the bid, not a failure of the call: the record is marked
// invalid and the bond refunded immediately, so the reveal cannot be retried
// to probe the sealed value.
func (l *Listing) RevealBid(op Op, supplier string, value uint64, salt string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ph := l.phaseAt(op.Now)
	if ph != models.PhaseRevealing || !op.Now.Before(l.data.EndTime) {
		return fmt.Errorf("reveal by %s in phase %s: %w", supplier, ph, listingerrors.ErrWrongPhase)
	}
	s, ok := l.suppliers[supplier]
	if !ok {
		return fmt.Errorf("reveal by %s: %w", supplier, listingerrors.ErrNotParticipating)
	}
	if s.Revealed {
		return fmt.Errorf("reveal by %s: %w", supplier, listingerrors.ErrAlreadyRevealed)
	}
	bid := l.bids[supplier]

	l.revealSeq++
	s.Revealed = true
	s.RevealSeq = l.revealSeq

	if !commitment.Matches(bid.Commitment, supplier, value, salt) {
		s.InvalidBid = true
		s.Refunded = true

		l.emit.Emit(op.Now, events.InvalidBid{
			Bidder:        supplier,
			ListingID:     l.data.ID,
			RevealedValue: value,
		})
		l.emit.Emit(op.Now, events.RefundMade{Refundee: supplier, ListingID: l.data.ID})
		return nil
	}

	v := value
	bid.RevealedValue = &v

	l.emit.Emit(op.Now, events.RevealMade{
		Revealee:      supplier,
		ListingID:     l.data.ID,
		RevealedValue: value,
	})

	// Lowest revealed price leads; the seed at the ceiling means a bid at
	// exactly the ceiling stays executable but never displaces a leader.
	if value < l.data.BestPrice {
		l.data.BestPrice = value
		l.data.Winner = supplier
		l.emit.Emit(op.Now, events.WinnerUpdated{
			ListingID: l.data.ID,
			Winner:    supplier,
			BestPrice: value,
		})
	}
	return nil
}

// Cancel aborts the listing before commitments lock in settlement risk.
// Every deposit and bond becomes withdrawable; no token is ever minted.
func (l *Listing) Cancel(op Op) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ph := l.phaseAt(op.Now)
	if ph != models.PhaseOpen && ph != models.PhaseBidding {
		return fmt.Errorf("cancel in phase %s: %w", ph, listingerrors.ErrWrongPhase)
	}

	l.data.Canceled = true
	for _, b := range l.buyers {
		if b.IsParticipating {
			b.Payout = b.DepositAmount
			b.CanWithdraw = true
		}
	}
	for _, s := range l.suppliers {
		s.Payout = s.BondAmount
		s.CanWithdraw = true
	}

	l.emit.Emit(op.Now, events.ListingCanceled{ListingID: l.data.ID})
	return nil
}

// WithdrawalReceipt reports one side of a completed withdrawal.
type WithdrawalReceipt struct {
	Kind   models.ParticipantKind `json:"kind"`
	Amount uint64                 `json:"amount"`
}

// Withdraw pays out whatever the caller is owed after settlement or
// cancellation. Pull-based so settlement's work stays bounded regardless of
// participant count. An address holding both a buyer and a supplier record
// is paid for both in one call.
func (l *Listing) Withdraw(op Op, caller string) ([]WithdrawalReceipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var receipts []WithdrawalReceipt

	if b, ok := l.buyers[caller]; ok && b.CanWithdraw && !b.Withdrawn && b.Payout > 0 {
		amount := b.Payout
		b.Payout = 0
		b.Withdrawn = true
		b.IsParticipating = false
		receipts = append(receipts, WithdrawalReceipt{Kind: models.KindBuyer, Amount: amount})
		l.emit.Emit(op.Now, events.FullWithdrawal{
			Withdrawee:      caller,
			ListingID:       l.data.ID,
			ParticipantKind: models.KindBuyer,
		})
	}
	if s, ok := l.suppliers[caller]; ok && s.CanWithdraw && !s.Withdrawn && s.Payout > 0 {
		amount := s.Payout
		s.Payout = 0
		s.Withdrawn = true
		receipts = append(receipts, WithdrawalReceipt{Kind: models.KindSupplier, Amount: amount})
		l.emit.Emit(op.Now, events.FullWithdrawal{
			Withdrawee:      caller,
			ListingID:       l.data.ID,
			ParticipantKind: models.KindSupplier,
		})
	}

	if len(receipts) == 0 {
		return nil, fmt.Errorf("withdraw by %s: %w", caller, listingerrors.ErrNothingToWithdraw)
	}
	return receipts, nil
}

// RecordDistribution attaches the minted token to the settled listing and
// emits the distribution event. TokenID is empty when nothing was fulfilled.
func (l *Listing) RecordDistribution(op Op, tokenID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.data.TokenID = tokenID
	l.emit.Emit(op.Now, events.DistributionComplete{ListingID: l.data.ID, TokenID: tokenID})
}
