package interaction

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"listing-engine/internal/events"
	"listing-engine/internal/factory"
	"listing-engine/internal/listing"
	"listing-engine/internal/listingerrors"
	"listing-engine/internal/models"
	"listing-engine/utils"
)

// Registry gates supplier eligibility and owns the account records.
type Registry interface {
	AddUser(address string, merit int) error
	RemoveUser(address string) error
	MeritOf(address string) (int, error)
	Get(address string) (models.User, error)
}

// TokenLedger records fulfillment provenance for settled listings.
type TokenLedger interface {
	Mint(tokenID, owner string, quantity uint64) error
	Transfer(tokenID, to string, quantity uint64) error
	Get(tokenID string) (models.Token, error)
}

// Clock supplies the single time snapshot each operation reads.
type Clock func() time.Time

// Service is the single entry point multiplexing user actions onto the
// correct listing. It holds no listing state of its own; each operation
// reads the clock once and forwards with a stamped block/tx reference.
type Service struct {
	registry Registry
	tokens   TokenLedger
	store    *listing.Store
	factory  *factory.Factory
	log      *events.Log
	clock    Clock
	bidBond  uint64
	blockSeq atomic.Uint64
}

func NewService(reg Registry, tokens TokenLedger, store *listing.Store, fac *factory.Factory, log *events.Log, clock Clock, bidBond uint64) *Service {
	return &Service{
		registry: reg,
		tokens:   tokens,
		store:    store,
		factory:  fac,
		log:      log,
		clock:    clock,
		bidBond:  bidBond,
	}
}

func (s *Service) op() listing.Op {
	return listing.Op{
		Now:   s.clock(),
		Block: s.blockSeq.Add(1),
		Tx:    utils.GenerateTxRef(),
	}
}

// AddUser registers an account and announces it on the event stream.
func (s *Service) AddUser(address string, merit int) error {
	op := s.op()
	if err := s.registry.AddUser(address, merit); err != nil {
		return fmt.Errorf("service: add user: %w", err)
	}
	s.log.Emit(op.Now, events.UserAdded{Account: address, Role: merit})
	return nil
}

// RemoveUser deactivates an account.
func (s *Service) RemoveUser(address string) error {
	op := s.op()
	if err := s.registry.RemoveUser(address); err != nil {
		return fmt.Errorf("service: remove user: %w", err)
	}
	s.log.Emit(op.Now, events.UserRemoved{Account: address})
	return nil
}

// GetUser returns an account record, active or not.
func (s *Service) GetUser(address string) (models.User, error) {
	u, err := s.registry.Get(address)
	if err != nil {
		return models.User{}, fmt.Errorf("service: get user: %w", err)
	}
	return u, nil
}

// NewListing creates a listing through the factory.
func (s *Service) NewListing(req factory.Request) (string, error) {
	op := s.op()
	id, err := s.factory.NewListing(op.Now, req)
	if err != nil {
		return "", fmt.Errorf("service: new listing: %w", err)
	}
	return id, nil
}

// ListingIDs returns all listing ids in creation order.
func (s *Service) ListingIDs() []string {
	return s.factory.ListingIDs()
}

// GetListing returns a consistent snapshot of one listing.
func (s *Service) GetListing(listingID string) (listing.Snapshot, error) {
	l, err := s.store.Get(listingID)
	if err != nil {
		return listing.Snapshot{}, fmt.Errorf("service: get listing: %w", err)
	}
	return l.Snapshot(s.clock()), nil
}

// JoinAsBuyer pools demand on an open listing.
func (s *Service) JoinAsBuyer(listingID, buyer string, quantity, payment uint64) error {
	l, err := s.store.Get(listingID)
	if err != nil {
		return fmt.Errorf("service: join buyer: %w", err)
	}
	if err := l.JoinAsBuyer(s.op(), buyer, quantity, payment); err != nil {
		return fmt.Errorf("service: join buyer: %w", err)
	}
	return nil
}

// LeaveAsBuyer exits the pool with an immediate refund.
func (s *Service) LeaveAsBuyer(listingID, buyer string) error {
	l, err := s.store.Get(listingID)
	if err != nil {
		return fmt.Errorf("service: leave buyer: %w", err)
	}
	if err := l.LeaveAsBuyer(s.op(), buyer); err != nil {
		return fmt.Errorf("service: leave buyer: %w", err)
	}
	return nil
}

// JoinAsSupplier submits a sealed bid. The router is the central point for
// the role check: an unregistered account has no tier and cannot bid.
func (s *Service) JoinAsSupplier(listingID, supplier, commit string, quantity, bond uint64) error {
	l, err := s.store.Get(listingID)
	if err != nil {
		return fmt.Errorf("service: join supplier: %w", err)
	}
	merit, err := s.registry.MeritOf(supplier)
	if err != nil {
		if errors.Is(err, listingerrors.ErrNotFound) {
			return fmt.Errorf("service: join supplier %s unregistered: %w", supplier, listingerrors.ErrInsufficientMerit)
		}
		return fmt.Errorf("service: join supplier: %w", err)
	}
	if bond != s.bidBond {
		return fmt.Errorf("service: join supplier %s: bond %d, need %d: %w",
			supplier, bond, s.bidBond, listingerrors.ErrInsufficientFee)
	}
	if err := l.JoinAsSupplier(s.op(), supplier, merit, commit, quantity, bond); err != nil {
		return fmt.Errorf("service: join supplier: %w", err)
	}
	return nil
}

// RevealBid opens a sealed bid during the reveal window.
func (s *Service) RevealBid(listingID, supplier string, value uint64, salt string) error {
	l, err := s.store.Get(listingID)
	if err != nil {
		return fmt.Errorf("service: reveal: %w", err)
	}
	if err := l.RevealBid(s.op(), supplier, value, salt); err != nil {
		return fmt.Errorf("service: reveal: %w", err)
	}
	return nil
}

// Settle closes the auction, and on any fulfilled quantity instructs the
// token ledger to mint the tracking batch before recording distribution.
func (s *Service) Settle(listingID string) (listing.Result, error) {
	l, err := s.store.Get(listingID)
	if err != nil {
		return listing.Result{}, fmt.Errorf("service: settle: %w", err)
	}

	op := s.op()
	res, err := l.Settle(op, s.registry.MeritOf)
	if err != nil {
		return listing.Result{}, fmt.Errorf("service: settle: %w", err)
	}

	tokenID := ""
	if res.Fulfilled > 0 {
		tokenID = utils.GenerateID()
		if err := s.tokens.Mint(tokenID, res.Winner, res.Fulfilled); err != nil {
			utils.Error("settlement token mint failed", map[string]any{
				"listing_id": listingID,
				"token_id":   tokenID,
				"error":      err.Error(),
			})
			return listing.Result{}, fmt.Errorf("service: settle: %w", err)
		}
	}
	l.RecordDistribution(op, tokenID)

	utils.Info("listing settled", map[string]any{
		"listing_id": listingID,
		"winner":     res.Winner,
		"fulfilled":  res.Fulfilled,
		"token_id":   tokenID,
	})
	return res, nil
}

// Cancel aborts a listing before reveals begin.
func (s *Service) Cancel(listingID string) error {
	l, err := s.store.Get(listingID)
	if err != nil {
		return fmt.Errorf("service: cancel: %w", err)
	}
	if err := l.Cancel(s.op()); err != nil {
		return fmt.Errorf("service: cancel: %w", err)
	}
	return nil
}

// Withdraw pulls whatever the caller is owed on a terminal listing.
func (s *Service) Withdraw(listingID, caller string) ([]listing.WithdrawalReceipt, error) {
	l, err := s.store.Get(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: withdraw: %w", err)
	}
	receipts, err := l.Withdraw(s.op(), caller)
	if err != nil {
		return nil, fmt.Errorf("service: withdraw: %w", err)
	}
	return receipts, nil
}

// GetToken resolves a tracking token batch.
func (s *Service) GetToken(tokenID string) (models.Token, error) {
	tok, err := s.tokens.Get(tokenID)
	if err != nil {
		return models.Token{}, fmt.Errorf("service: get token: %w", err)
	}
	return tok, nil
}

// TransferToken attributes a batch to the receiving buyer as provenance.
func (s *Service) TransferToken(tokenID, to string, quantity uint64) error {
	if err := s.tokens.Transfer(tokenID, to, quantity); err != nil {
		return fmt.Errorf("service: transfer token: %w", err)
	}
	return nil
}

// EventsFor returns the ordered event sub-stream of one listing.
func (s *Service) EventsFor(listingID string) []events.Entry {
	return s.log.ForListing(listingID)
}
