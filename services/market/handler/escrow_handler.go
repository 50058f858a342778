package handler

import (
	"net/http"

	"domain-market/internal/models"
	"domain-market/services/market/helpers"
	"domain-market/utils"

	"github.com/gin-gonic/gin"
)

// CreateEscrowHandler handles POST /escrows
func (h *MarketHandler) CreateEscrowHandler(c *gin.Context) {
	var req helpers.CreateEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateEscrowHandler", err)
		return
	}

	tx, err := h.service.CreateEscrow(req.Asset, req.Seller, req.Buyer, req.Amount)
	if err != nil {
		helpers.RespondError(c, "CreateEscrowHandler", err, map[string]any{
			"asset":  req.Asset,
			"seller": req.Seller,
			"buyer":  req.Buyer,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToEscrowResponse(tx), "escrow created successfully")
	helpers.LogSuccess("CreateEscrowHandler", "escrow created successfully", map[string]any{
		"escrow_id": tx.ID,
		"asset":     tx.Asset,
		"amount":    tx.Amount,
	})
}

// GetEscrowHandler handles GET /escrows/:id
func (h *MarketHandler) GetEscrowHandler(c *gin.Context) {
	id := c.Param("id")
	tx, err := h.service.GetEscrow(id)
	if err != nil {
		helpers.RespondError(c, "GetEscrowHandler", err, map[string]any{"escrow_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToEscrowResponse(tx), "escrow retrieved successfully")
}

// FundEscrowHandler handles POST /escrows/:id/fund
func (h *MarketHandler) FundEscrowHandler(c *gin.Context) {
	h.advanceEscrow(c, "FundEscrowHandler", "escrow funded successfully", h.service.FundEscrow)
}

// ReleaseEscrowHandler handles POST /escrows/:id/release
func (h *MarketHandler) ReleaseEscrowHandler(c *gin.Context) {
	h.advanceEscrow(c, "ReleaseEscrowHandler", "escrow released successfully", h.service.ReleaseEscrow)
}

// CancelEscrowHandler handles POST /escrows/:id/cancel
func (h *MarketHandler) CancelEscrowHandler(c *gin.Context) {
	h.advanceEscrow(c, "CancelEscrowHandler", "escrow cancelled successfully", h.service.CancelEscrow)
}

func (h *MarketHandler) advanceEscrow(c *gin.Context, handlerName, message string, step func(string) (models.EscrowTransaction, error)) {
	id := c.Param("id")
	tx, err := step(id)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"escrow_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToEscrowResponse(tx), message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"escrow_id": id,
		"status":    tx.Status,
	})
}

// SettleEscrowHandler handles POST /escrows/:id/settle
func (h *MarketHandler) SettleEscrowHandler(c *gin.Context) {
	id := c.Param("id")
	var req helpers.SettleEscrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SettleEscrowHandler", err)
		return
	}

	record, err := h.service.SettleEscrow(id, req.TransactionHash)
	if err != nil {
		helpers.RespondError(c, "SettleEscrowHandler", err, map[string]any{"escrow_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToSettlementResponse(record), "escrow settled successfully")
	helpers.LogSuccess("SettleEscrowHandler", "escrow settled successfully", map[string]any{
		"escrow_id":        id,
		"transaction_hash": record.TransactionHash,
	})
}

// GetSettlementHandler handles GET /escrows/:id/settlement
func (h *MarketHandler) GetSettlementHandler(c *gin.Context) {
	id := c.Param("id")
	record, err := h.service.GetSettlement(id)
	if err != nil {
		helpers.RespondError(c, "GetSettlementHandler", err, map[string]any{"escrow_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToSettlementResponse(record), "settlement retrieved successfully")
}

// VerifySettlementHandler handles POST /escrows/:id/settlement/verify
func (h *MarketHandler) VerifySettlementHandler(c *gin.Context) {
	id := c.Param("id")
	record, err := h.service.VerifySettlement(c.Request.Context(), id)
	if err != nil {
		helpers.RespondError(c, "VerifySettlementHandler", err, map[string]any{"escrow_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToSettlementResponse(record), "settlement verified successfully")
	helpers.LogSuccess("VerifySettlementHandler", "settlement verified successfully", map[string]any{
		"escrow_id":        id,
		"transaction_hash": record.TransactionHash,
	})
}
