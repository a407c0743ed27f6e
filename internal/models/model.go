package models

import "time"

// Phase is the lifecycle phase of a listing. A listing is in exactly one
// phase at any point in time.
type Phase string

const (
	PhaseOpen      Phase = "open"
	PhaseBidding   Phase = "bidding"
	PhaseRevealing Phase = "revealing"
	PhaseSettled   Phase = "settled"
	PhaseCanceled  Phase = "canceled"
)

// ParticipantKind distinguishes buyer and supplier sides of a listing.
type ParticipantKind int

const (
	KindBuyer    ParticipantKind = 0
	KindSupplier ParticipantKind = 1
)

// User is a registered marketplace account. Users are deactivated, never
// deleted, so historical references keep resolving.
type User struct {
	Address string `json:"address"`
	Merit   int    `json:"merit"`
	Active  bool   `json:"active"`
}

// Listing holds one procurement round's parameters and mutable state.
// Schedule invariant: CreationTime < AuctionTime < RevealTime < EndTime.
type Listing struct {
	ID                string        `json:"id"`
	Creator           string        `json:"creator"`
	ProductRef        string        `json:"product_ref"`
	Groupable         bool          `json:"groupable"`
	LeadTimeMax       time.Duration `json:"lead_time_max"`
	CreationTime      time.Time     `json:"creation_time"`
	AuctionTime       time.Time     `json:"auction_time"`
	RevealTime        time.Time     `json:"reveal_time"`
	EndTime           time.Time     `json:"end_time"`
	MinMerit          int           `json:"min_merit"`
	PriceCeiling      uint64        `json:"price_ceiling"`
	BestPrice         uint64        `json:"best_price"`
	QuantityRequested uint64        `json:"quantity_requested"`
	QuantityTotal     uint64        `json:"quantity_total"`
	FirstPriceMode    bool          `json:"first_price_mode"`
	Winner            string        `json:"winner,omitempty"`
	TokenID           string        `json:"token_id,omitempty"`
	Canceled          bool          `json:"canceled"`
	Settled           bool          `json:"settled"`
	HasSuppliers      bool          `json:"has_suppliers"`
}

// BuyerRecord is one buyer's participation in one listing. Records are
// zeroed on leave, never removed, so they stay auditable.
type BuyerRecord struct {
	Address           string `json:"address"`
	DepositAmount     uint64 `json:"deposit_amount"`
	Quantity          uint64 `json:"quantity"`
	FulfilledQuantity uint64 `json:"fulfilled_quantity"`
	Payout            uint64 `json:"payout"`
	IsParticipating   bool   `json:"is_participating"`
	CanWithdraw       bool   `json:"can_withdraw"`
	Withdrawn         bool   `json:"withdrawn"`
	JoinedSeq         uint64 `json:"joined_seq"`
}

// SupplierRecord is one supplier's participation in one listing. Quantity is
// the publicly offered quantity; only the price is sealed.
type SupplierRecord struct {
	Address           string `json:"address"`
	BondAmount        uint64 `json:"bond_amount"`
	Quantity          uint64 `json:"quantity"`
	FulfilledQuantity uint64 `json:"fulfilled_quantity"`
	Payout            uint64 `json:"payout"`
	Revealed          bool   `json:"revealed"`
	Refunded          bool   `json:"refunded"`
	InvalidBid        bool   `json:"invalid_bid"`
	CanWithdraw       bool   `json:"can_withdraw"`
	Withdrawn         bool   `json:"withdrawn"`
	JoinedSeq         uint64 `json:"joined_seq"`
	RevealSeq         uint64 `json:"reveal_seq"`
}

// Bid is a supplier's sealed bid on a listing, 1:1 with the supplier record.
type Bid struct {
	Supplier      string  `json:"supplier"`
	Commitment    string  `json:"commitment"`
	RevealedValue *uint64 `json:"revealed_value,omitempty"`
	BlockRef      uint64  `json:"block_ref"`
	TxRef         string  `json:"tx_ref"`
}

// Token is a semi-fungible tracking batch minted once per settled listing.
// Provenance records the buyer the batch was attributed to; tokens are never
// burned.
type Token struct {
	ID         string `json:"id"`
	Owner      string `json:"owner"`
	Quantity   uint64 `json:"quantity"`
	Provenance string `json:"provenance,omitempty"`
}
