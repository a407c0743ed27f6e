package handler

import (
	"fmt"
	"net/http"
	"time"

	"listing-engine/internal/events"
	"listing-engine/internal/factory"
	"listing-engine/internal/listing"
	model "listing-engine/internal/models"
	"listing-engine/services/listing/helpers"
	"listing-engine/utils"

	"github.com/gin-gonic/gin"
)

type ListingServiceInterface interface {
	AddUser(address string, merit int) error
	RemoveUser(address string) error
	GetUser(address string) (model.User, error)
	NewListing(req factory.Request) (string, error)
	ListingIDs() []string
	GetListing(listingID string) (listing.Snapshot, error)
	JoinAsBuyer(listingID, buyer string, quantity, payment uint64) error
	LeaveAsBuyer(listingID, buyer string) error
	JoinAsSupplier(listingID, supplier, commit string, quantity, bond uint64) error
	RevealBid(listingID, supplier string, value uint64, salt string) error
	Settle(listingID string) (listing.Result, error)
	Cancel(listingID string) error
	Withdraw(listingID, caller string) ([]listing.WithdrawalReceipt, error)
	GetToken(tokenID string) (model.Token, error)
	TransferToken(tokenID, to string, quantity uint64) error
	EventsFor(listingID string) []events.Entry
}

type ListingHandler struct {
	service         ListingServiceInterface
	displayDecimals int32
}

func NewListingHandler(service ListingServiceInterface, displayDecimals int32) *ListingHandler {
	return &ListingHandler{service: service, displayDecimals: displayDecimals}
}

// CreateListingHandler handles POST /listings
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	creationTime := req.CreationTime
	if creationTime.IsZero() {
		creationTime = time.Now().UTC()
	}

	id, err := h.service.NewListing(factory.Request{
		Creator:        req.Creator,
		ProductRef:     req.ProductRef,
		Groupable:      req.Groupable,
		LeadTimeMax:    time.Duration(req.LeadTimeMaxHours) * time.Hour,
		CreationTime:   creationTime,
		AuctionTime:    req.AuctionTime,
		RevealTime:     req.RevealTime,
		EndTime:        req.EndTime,
		MinMerit:       req.MinMerit,
		PriceCeiling:   req.PriceCeiling,
		FirstPriceMode: req.FirstPriceMode,
		Payment:        req.Payment,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateListingHandler: failed to create listing", map[string]any{
			"creator": req.Creator,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.CreateListingResponse{ListingID: id}, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": id,
		"creator":    req.Creator,
	})
}

// ListListingsHandler handles GET /listings
func (h *ListingHandler) ListListingsHandler(c *gin.Context) {
	ids := h.service.ListingIDs()
	if ids == nil {
		ids = []string{}
	}
	utils.JSONResponse(c, http.StatusOK, ids, "listings retrieved successfully")
}

// GetListingHandler handles GET /listings/:listing_id
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	snap, err := h.service.GetListing(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetListingHandler: error retrieving listing", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, snap, "listing retrieved successfully")
}

// JoinBuyerHandler handles POST /listings/:listing_id/buyers
func (h *ListingHandler) JoinBuyerHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	var req helpers.JoinBuyerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "JoinBuyerHandler", err)
		return
	}

	if err := h.service.JoinAsBuyer(listingID, req.Buyer, req.Quantity, req.Payment); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("JoinBuyerHandler: failed to join", map[string]any{
			"listing_id": listingID,
			"buyer":      req.Buyer,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"listing_id": listingID, "buyer": req.Buyer}, "buyer joined successfully")
	helpers.LogSuccess("JoinBuyerHandler", "buyer joined successfully", map[string]any{
		"listing_id": listingID,
		"buyer":      req.Buyer,
		"quantity":   req.Quantity,
		"deposit":    utils.DisplayAmount(req.Payment, h.displayDecimals),
	})
}

// LeaveBuyerHandler handles DELETE /listings/:listing_id/buyers/:address
func (h *ListingHandler) LeaveBuyerHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	buyer := c.Param("address")

	if err := h.service.LeaveAsBuyer(listingID, buyer); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LeaveBuyerHandler: failed to leave", map[string]any{
			"listing_id": listingID,
			"buyer":      buyer,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID, "buyer": buyer}, "buyer left successfully")
	helpers.LogSuccess("LeaveBuyerHandler", "buyer left successfully", map[string]any{
		"listing_id": listingID,
		"buyer":      buyer,
	})
}

// JoinSupplierHandler handles POST /listings/:listing_id/suppliers
func (h *ListingHandler) JoinSupplierHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	var req helpers.JoinSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "JoinSupplierHandler", err)
		return
	}

	if err := h.service.JoinAsSupplier(listingID, req.Supplier, req.Commitment, req.Quantity, req.Bond); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("JoinSupplierHandler: failed to join", map[string]any{
			"listing_id": listingID,
			"supplier":   req.Supplier,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, gin.H{"listing_id": listingID, "supplier": req.Supplier}, "supplier joined successfully")
	helpers.LogSuccess("JoinSupplierHandler", "supplier joined successfully", map[string]any{
		"listing_id": listingID,
		"supplier":   req.Supplier,
		"quantity":   req.Quantity,
	})
}

// RevealBidHandler handles POST /listings/:listing_id/reveals
func (h *ListingHandler) RevealBidHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	var req helpers.RevealBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RevealBidHandler", err)
		return
	}

	if err := h.service.RevealBid(listingID, req.Supplier, req.Value, req.Salt); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RevealBidHandler: failed to reveal", map[string]any{
			"listing_id": listingID,
			"supplier":   req.Supplier,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID, "supplier": req.Supplier}, "bid revealed")
	helpers.LogSuccess("RevealBidHandler", "bid revealed", map[string]any{
		"listing_id": listingID,
		"supplier":   req.Supplier,
	})
}

// SettleHandler handles POST /listings/:listing_id/settlement
func (h *ListingHandler) SettleHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	result, err := h.service.Settle(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SettleHandler: settlement failed", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	resp := helpers.SettleResponse{
		Result:               result,
		ClearingPriceDisplay: utils.DisplayAmount(result.ClearingPrice, h.displayDecimals),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "listing settled successfully")
	helpers.LogSuccess("SettleHandler", "listing settled successfully", map[string]any{
		"listing_id": listingID,
		"winner":     result.Winner,
		"fulfilled":  result.Fulfilled,
	})
}

// CancelHandler handles POST /listings/:listing_id/cancellation
func (h *ListingHandler) CancelHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	if err := h.service.Cancel(listingID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelHandler: cancellation failed", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID}, "listing canceled")
	helpers.LogSuccess("CancelHandler", "listing canceled", map[string]any{"listing_id": listingID})
}

// WithdrawHandler handles POST /listings/:listing_id/withdrawals
func (h *ListingHandler) WithdrawHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	var req helpers.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "WithdrawHandler", err)
		return
	}

	receipts, err := h.service.Withdraw(listingID, req.Caller)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("WithdrawHandler: withdrawal failed", map[string]any{
			"listing_id": listingID,
			"caller":     req.Caller,
			"error":      err.Error(),
		})
		return
	}

	var total uint64
	for _, r := range receipts {
		total += r.Amount
	}
	resp := helpers.WithdrawResponse{
		Receipts:     receipts,
		Total:        total,
		TotalDisplay: utils.DisplayAmount(total, h.displayDecimals),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "withdrawal completed")
	helpers.LogSuccess("WithdrawHandler", "withdrawal completed", map[string]any{
		"listing_id": listingID,
		"caller":     req.Caller,
		"total":      total,
	})
}

// GetEventsHandler handles GET /listings/:listing_id/events
func (h *ListingHandler) GetEventsHandler(c *gin.Context) {
	listingID := c.Param("listing_id")

	// 404 for unknown listings, empty stream for known-but-quiet ones
	if _, err := h.service.GetListing(listingID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	entries := h.service.EventsFor(listingID)
	if entries == nil {
		entries = []events.Entry{}
	}

	utils.JSONResponse(c, http.StatusOK, entries, "events retrieved successfully")
	helpers.LogSuccess("GetEventsHandler", "events retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(entries),
	})
}
