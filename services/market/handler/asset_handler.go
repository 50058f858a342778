package handler

import (
	"net/http"

	"domain-market/internal/models"
	"domain-market/services/market/helpers"
	"domain-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// RegisterAssetHandler handles POST /assets
func (h *MarketHandler) RegisterAssetHandler(c *gin.Context) {
	var req helpers.RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterAssetHandler", err)
		return
	}

	reg, err := h.service.RegisterAsset(req.Asset, req.Owner)
	if err != nil {
		helpers.RespondError(c, "RegisterAssetHandler", err, map[string]any{
			"asset": req.Asset,
			"owner": req.Owner,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAssetResponse(reg), "asset registered successfully")
	helpers.LogSuccess("RegisterAssetHandler", "asset registered successfully", map[string]any{
		"asset": reg.Asset,
		"owner": reg.Owner,
	})
}

// GetAssetHandler handles GET /assets/:asset
func (h *MarketHandler) GetAssetHandler(c *gin.Context) {
	asset := c.Param("asset")
	reg, err := h.service.GetAsset(asset)
	if err != nil {
		helpers.RespondError(c, "GetAssetHandler", err, map[string]any{"asset": asset})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAssetResponse(reg), "asset retrieved successfully")
}

// TransferAssetHandler handles POST /assets/:asset/transfer
func (h *MarketHandler) TransferAssetHandler(c *gin.Context) {
	asset := c.Param("asset")
	var req helpers.TransferAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TransferAssetHandler", err)
		return
	}

	tx, err := h.service.TransferAsset(asset, req.From, req.To)
	if err != nil {
		helpers.RespondError(c, "TransferAssetHandler", err, map[string]any{
			"asset": asset,
			"from":  req.From,
			"to":    req.To,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToOwnershipTransactionResponse(tx), "asset transferred successfully")
	helpers.LogSuccess("TransferAssetHandler", "asset transferred successfully", map[string]any{
		"asset": asset,
		"to":    tx.To,
	})
}

// VerifyOwnershipHandler handles POST /assets/:asset/verify
func (h *MarketHandler) VerifyOwnershipHandler(c *gin.Context) {
	asset := c.Param("asset")
	var req helpers.VerifyOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VerifyOwnershipHandler", err)
		return
	}

	v, err := h.service.VerifyOwnership(asset, req.Address)
	if err != nil {
		helpers.RespondError(c, "VerifyOwnershipHandler", err, map[string]any{
			"asset":   asset,
			"address": req.Address,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToVerificationResponse(v), "ownership verified")
}

// AssetHistoryHandler handles GET /assets/:asset/history
func (h *MarketHandler) AssetHistoryHandler(c *gin.Context) {
	asset := c.Param("asset")
	history, err := h.service.AssetHistory(asset)
	if err != nil {
		helpers.RespondError(c, "AssetHistoryHandler", err, map[string]any{"asset": asset})
		return
	}

	resp := lo.Map(history, func(tx models.OwnershipTransaction, _ int) helpers.OwnershipTransactionResponse {
		return helpers.ToOwnershipTransactionResponse(tx)
	})

	utils.JSONResponse(c, http.StatusOK, resp, "asset history retrieved successfully")
}
