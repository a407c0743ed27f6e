package events

import (
	"time"

	"listing-engine/internal/models"
)

// Event is one entry of the wire contract consumed by downstream indexers.
// Field names are the contract; changing them breaks replay.
type Event interface {
	Type() string
	// Listing returns the listing the event is scoped to, or "" for
	// registry-level events.
	Listing() string
}

type ListingProduced struct {
	ListingID string `json:"listingId"`
	Creator   string `json:"creator"`
}

type ListingBuilt struct {
	ListingID      string        `json:"listingId"`
	Groupable      bool          `json:"groupable"`
	Winner         string        `json:"winner,omitempty"`
	LeadTimeMax    time.Duration `json:"leadTimeMax"`
	CreationTime   time.Time     `json:"creationTime"`
	AuctionTime    time.Time     `json:"auctionTime"`
	RevealTime     time.Time     `json:"revealTime"`
	EndTime        time.Time     `json:"endTime"`
	MinMerit       int           `json:"minMerit"`
	PriceCeiling   uint64        `json:"priceCeiling"`
	ProductRef     string        `json:"productRef"`
	FirstPriceMode bool          `json:"firstPriceMode"`
}

type NewBuyer struct {
	Buyer           string `json:"buyer"`
	ListingID       string `json:"listingId"`
	DepositedAmount uint64 `json:"depositedAmount"`
	Quantity        uint64 `json:"quantity"`
	BlockRef        uint64 `json:"blockRef"`
	TxRef           string `json:"txRef"`
}

type LeftListing struct {
	Buyer     string `json:"buyer"`
	ListingID string `json:"listingId"`
}

type SupplierJoined struct {
	Supplier        string `json:"supplier"`
	ListingID       string `json:"listingId"`
	DepositedAmount uint64 `json:"depositedAmount"`
	Commitment      string `json:"commitment"`
	Quantity        uint64 `json:"quantity"`
	BlockRef        uint64 `json:"blockRef"`
	TxRef           string `json:"txRef"`
}

type RevealMade struct {
	Revealee      string `json:"revealee"`
	ListingID     string `json:"listingId"`
	RevealedValue uint64 `json:"revealedValue"`
}

type InvalidBid struct {
	Bidder        string `json:"bidder"`
	ListingID     string `json:"listingId"`
	RevealedValue uint64 `json:"revealedValue"`
}

type WinnerUpdated struct {
	ListingID string `json:"listingId"`
	Winner    string `json:"winner"`
	BestPrice uint64 `json:"bestPrice"`
}

// DistributionComplete is emitted exactly once per settlement. TokenID is
// empty when the listing settled without any fulfilled quantity.
type DistributionComplete struct {
	ListingID string `json:"listingId"`
	TokenID   string `json:"tokenId"`
}

type ListingCanceled struct {
	ListingID string `json:"listingId"`
}

type RefundMade struct {
	Refundee  string `json:"refundee"`
	ListingID string `json:"listingId"`
}

type FullWithdrawal struct {
	Withdrawee      string                 `json:"withdrawee"`
	ListingID       string                 `json:"listingId"`
	ParticipantKind models.ParticipantKind `json:"participantKind"`
}

type UserAdded struct {
	Account string `json:"account"`
	Role    int    `json:"role"`
}

type UserRemoved struct {
	Account string `json:"account"`
}

func (ListingProduced) Type() string      { return "ListingProduced" }
func (ListingBuilt) Type() string         { return "ListingBuilt" }
func (NewBuyer) Type() string             { return "NewBuyer" }
func (LeftListing) Type() string          { return "LeftListing" }
func (SupplierJoined) Type() string       { return "SupplierJoined" }
func (RevealMade) Type() string           { return "RevealMade" }
func (InvalidBid) Type() string           { return "InvalidBid" }
func (WinnerUpdated) Type() string        { return "WinnerUpdated" }
func (DistributionComplete) Type() string { return "DistributionComplete" }
func (ListingCanceled) Type() string      { return "ListingCanceled" }
func (RefundMade) Type() string           { return "RefundMade" }
func (FullWithdrawal) Type() string       { return "FullWithdrawal" }
func (UserAdded) Type() string            { return "UserAdded" }
func (UserRemoved) Type() string          { return "UserRemoved" }

func (e ListingProduced) Listing() string      { return e.ListingID }
func (e ListingBuilt) Listing() string         { return e.ListingID }
func (e NewBuyer) Listing() string             { return e.ListingID }
func (e LeftListing) Listing() string          { return e.ListingID }
func (e SupplierJoined) Listing() string       { return e.ListingID }
func (e RevealMade) Listing() string           { return e.ListingID }
func (e InvalidBid) Listing() string           { return e.ListingID }
func (e WinnerUpdated) Listing() string        { return e.ListingID }
func (e DistributionComplete) Listing() string { return e.ListingID }
func (e ListingCanceled) Listing() string      { return e.ListingID }
func (e RefundMade) Listing() string           { return e.ListingID }
func (e FullWithdrawal) Listing() string       { return e.ListingID }
func (UserAdded) Listing() string              { return "" }
func (UserRemoved) Listing() string            { return "" }
