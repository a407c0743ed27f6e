package helpers

import (
	"time"

	"listing-engine/internal/listing"
)

// Request/Response DTOs
type CreateListingRequest struct {
	Creator          string    `json:"creator" binding:"required"`
	ProductRef       string    `json:"product_ref" binding:"required"`
	Groupable        bool      `json:"groupable"`
	LeadTimeMaxHours int64     `json:"lead_time_max_hours" binding:"required,gt=0"`
	CreationTime     time.Time `json:"creation_time"` // defaults to server time
	AuctionTime      time.Time `json:"auction_time" binding:"required"`
	RevealTime       time.Time `json:"reveal_time" binding:"required"`
	EndTime          time.Time `json:"end_time" binding:"required"`
	MinMerit         int       `json:"min_merit"`
	PriceCeiling     uint64    `json:"price_ceiling" binding:"required,gt=0"`
	FirstPriceMode   bool      `json:"first_price_mode"`
	Payment          uint64    `json:"payment"`
}

type CreateListingResponse struct {
	ListingID string `json:"listing_id"`
}

type JoinBuyerRequest struct {
	Buyer    string `json:"buyer" binding:"required"`
	Quantity uint64 `json:"quantity" binding:"required,gt=0"`
	Payment  uint64 `json:"payment"`
}

type JoinSupplierRequest struct {
	Supplier   string `json:"supplier" binding:"required"`
	Commitment string `json:"commitment" binding:"required"`
	Quantity   uint64 `json:"quantity" binding:"required,gt=0"`
	Bond       uint64 `json:"bond"`
}

type RevealBidRequest struct {
	Supplier string `json:"supplier" binding:"required"`
	Value    uint64 `json:"value"`
	Salt     string `json:"salt" binding:"required"`
}

type WithdrawRequest struct {
	Caller string `json:"caller" binding:"required"`
}

type WithdrawResponse struct {
	Receipts     []listing.WithdrawalReceipt `json:"receipts"`
	Total        uint64                      `json:"total"`
	TotalDisplay string                      `json:"total_display"`
}

type SettleResponse struct {
	listing.Result
	ClearingPriceDisplay string `json:"clearing_price_display"`
}

type TransferTokenRequest struct {
	To       string `json:"to" binding:"required"`
	Quantity uint64 `json:"quantity" binding:"required,gt=0"`
}

type AddUserRequest struct {
	Address string `json:"address" binding:"required"`
	Merit   int    `json:"merit" binding:"required,gte=1,lte=3"`
}
