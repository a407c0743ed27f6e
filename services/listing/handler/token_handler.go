package handler

import (
	"fmt"
	"net/http"

	"listing-engine/services/listing/helpers"
	"listing-engine/utils"

	"github.com/gin-gonic/gin"
)

// GetTokenHandler handles GET /tokens/:token_id
func (h *ListingHandler) GetTokenHandler(c *gin.Context) {
	tokenID := c.Param("token_id")

	token, err := h.service.GetToken(tokenID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetTokenHandler: token lookup failed", map[string]any{"token_id": tokenID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, token, "token retrieved successfully")
}

// TransferTokenHandler handles POST /tokens/:token_id/transfers
func (h *ListingHandler) TransferTokenHandler(c *gin.Context) {
	tokenID := c.Param("token_id")
	var req helpers.TransferTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TransferTokenHandler", err)
		return
	}

	if err := h.service.TransferToken(tokenID, req.To, req.Quantity); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("TransferTokenHandler: transfer failed", map[string]any{
			"token_id": tokenID,
			"to":       req.To,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"token_id": tokenID, "to": req.To, "quantity": req.Quantity}, "token transferred successfully")
	helpers.LogSuccess("TransferTokenHandler", "token transferred successfully", map[string]any{
		"token_id": tokenID,
		"to":       req.To,
		"quantity": req.Quantity,
	})
}
