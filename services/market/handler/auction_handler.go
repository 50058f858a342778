package handler

import (
	"errors"
	"net/http"

	"domain-market/internal/models"
	"domain-market/services/market/helpers"
	"domain-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

var errUnknownStatus = errors.New("unknown auction status")

// CreateAuctionHandler handles POST /auctions
func (h *MarketHandler) CreateAuctionHandler(c *gin.Context) {
	var req helpers.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	a, err := h.service.CreateAuction(req.Asset, req.Seller, req.StartTime, req.EndTime, req.StartingPrice)
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"asset": req.Asset, "seller": req.Seller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(a), "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"asset":          a.Asset,
		"seller":         a.Seller,
		"starting_price": a.StartingPrice,
	})
}

// ListAuctionsHandler handles GET /auctions
func (h *MarketHandler) ListAuctionsHandler(c *gin.Context) {
	status := models.AuctionStatus(c.Query("status"))
	switch status {
	case "", models.AuctionPending, models.AuctionActive, models.AuctionCompleted, models.AuctionCancelled:
	default:
		utils.JSONError(c, http.StatusBadRequest, errUnknownStatus, "invalid status filter")
		utils.Warn("ListAuctionsHandler: invalid status filter", map[string]any{"status": status})
		return
	}

	auctions := lo.Map(h.service.ListAuctions(status), func(a models.Auction, _ int) helpers.AuctionResponse {
		return helpers.ToAuctionResponse(a)
	})

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"status": status,
		"count":  len(auctions),
	})
}

// GetAuctionHandler handles GET /auctions/:asset
func (h *MarketHandler) GetAuctionHandler(c *gin.Context) {
	asset := c.Param("asset")
	a, err := h.service.GetAuction(asset)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"asset": asset})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(a), "auction retrieved successfully")
}

// ActivateAuctionHandler handles POST /auctions/:asset/activate
func (h *MarketHandler) ActivateAuctionHandler(c *gin.Context) {
	asset := c.Param("asset")
	a, err := h.service.ActivateAuction(asset)
	if err != nil {
		helpers.RespondError(c, "ActivateAuctionHandler", err, map[string]any{"asset": asset})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(a), "auction activated successfully")
	helpers.LogSuccess("ActivateAuctionHandler", "auction activated successfully", map[string]any{"asset": asset})
}

// CancelAuctionHandler handles POST /auctions/:asset/cancel
func (h *MarketHandler) CancelAuctionHandler(c *gin.Context) {
	asset := c.Param("asset")
	a, err := h.service.CancelAuction(asset)
	if err != nil {
		helpers.RespondError(c, "CancelAuctionHandler", err, map[string]any{"asset": asset})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(a), "auction cancelled successfully")
	helpers.LogSuccess("CancelAuctionHandler", "auction cancelled successfully", map[string]any{"asset": asset})
}

// PlaceBidHandler handles POST /auctions/:asset/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	asset := c.Param("asset")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(asset, req.Bidder, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"asset":  asset,
			"bidder": req.Bidder,
			"amount": req.Amount,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"asset":  asset,
		"bidder": bid.Bidder,
		"amount": bid.Amount,
	})
}

// GetBidsHandler handles GET /auctions/:asset/bids
func (h *MarketHandler) GetBidsHandler(c *gin.Context) {
	asset := c.Param("asset")
	bids, err := h.service.GetBids(asset)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", err, map[string]any{"asset": asset})
		return
	}

	resp := lo.Map(bids, func(b models.Bid, _ int) helpers.BidResponse {
		return helpers.ToBidResponse(b)
	})

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsHandler", "bids retrieved successfully", map[string]any{
		"asset": asset,
		"count": len(resp),
	})
}

// SettleAuctionHandler handles POST /auctions/:asset/settle
func (h *MarketHandler) SettleAuctionHandler(c *gin.Context) {
	asset := c.Param("asset")
	outcome, err := h.service.SettleAuction(c.Request.Context(), asset)
	if err != nil {
		fields := map[string]any{
			"asset":  asset,
			"winner": outcome.Winner.Bidder,
		}
		// the auction may already be completed when only the escrow hand-off failed
		if outcome.Auction.Status == models.AuctionCompleted {
			helpers.RespondErrorWithData(c, "SettleAuctionHandler", err, helpers.ToAuctionOutcomeResponse(outcome), fields)
			return
		}
		helpers.RespondError(c, "SettleAuctionHandler", err, fields)
		return
	}

	resp := helpers.ToAuctionOutcomeResponse(outcome)

	utils.JSONResponse(c, http.StatusOK, resp, "auction settled successfully")
	helpers.LogSuccess("SettleAuctionHandler", "auction settled successfully", map[string]any{
		"asset":     asset,
		"winner":    outcome.Winner.Bidder,
		"amount":    outcome.Winner.Amount,
		"escrow_id": outcome.EscrowID,
	})
}
