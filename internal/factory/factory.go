package factory

import (
	"fmt"
	"time"

	"listing-engine/internal/events"
	"listing-engine/internal/listing"
	"listing-engine/internal/listingerrors"

	"listing-engine/utils"
)

// Request carries the creator-supplied listing parameters plus the payment
// attached to cover the creation fee.
type Request struct {
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
	Payment        uint64
}

// Factory validates listing parameters and the creation fee, then
// instantiates the listing. The fee is forfeited to the treasury regardless
// of the listing's outcome; it exists purely as a spam deterrent.
type Factory struct {
	store       *listing.Store
	emit        events.Emitter
	creationFee uint64
	treasury    string
}

func New(store *listing.Store, emit events.Emitter, creationFee uint64, treasury string) *Factory {
	return &Factory{
		store:       store,
		emit:        emit,
		creationFee: creationFee,
		treasury:    treasury,
	}
}

// NewListing validates the schedule and fee and instantiates a listing in
// the Open phase, emitting ListingProduced and ListingBuilt.
func (f *Factory) NewListing(now time.Time, req Request) (string, error) {
	if !req.CreationTime.Before(req.AuctionTime) ||
		!req.AuctionTime.Before(req.RevealTime) ||
		!req.RevealTime.Before(req.EndTime) {
		return "", fmt.Errorf("new listing by %s: %w", req.Creator, listingerrors.ErrInvalidSchedule)
	}
	if req.Payment != f.creationFee {
		return "", fmt.Errorf("new listing by %s: paid %d, fee is %d: %w",
			req.Creator, req.Payment, f.creationFee, listingerrors.ErrInsufficientFee)
	}

	id := utils.GenerateID()
	l := listing.New(listing.Params{
		ID:             id,
		Creator:        req.Creator,
		ProductRef:     req.ProductRef,
		Groupable:      req.Groupable,
		LeadTimeMax:    req.LeadTimeMax,
		CreationTime:   req.CreationTime,
		AuctionTime:    req.AuctionTime,
		RevealTime:     req.RevealTime,
		EndTime:        req.EndTime,
		MinMerit:       req.MinMerit,
		PriceCeiling:   req.PriceCeiling,
		FirstPriceMode: req.FirstPriceMode,
	}, f.emit)
	f.store.Add(l)

	f.emit.Emit(now, events.ListingProduced{ListingID: id, Creator: req.Creator})
	f.emit.Emit(now, events.ListingBuilt{
		ListingID:      id,
		Groupable:      req.Groupable,
		LeadTimeMax:    req.LeadTimeMax,
		CreationTime:   req.CreationTime,
		AuctionTime:    req.AuctionTime,
		RevealTime:     req.RevealTime,
		EndTime:        req.EndTime,
		MinMerit:       req.MinMerit,
		PriceCeiling:   req.PriceCeiling,
		ProductRef:     req.ProductRef,
		FirstPriceMode: req.FirstPriceMode,
	})

	utils.Info("listing created", map[string]any{
		"listing_id": id,
		"creator":    req.Creator,
		"groupable":  req.Groupable,
		"fee":        req.Payment,
		"treasury":   f.treasury,
	})
	return id, nil
}

// ListingIDs returns every created listing id in creation order.
func (f *Factory) ListingIDs() []string {
	return f.store.IDs()
}
