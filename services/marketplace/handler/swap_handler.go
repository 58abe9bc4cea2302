package handler

import (
	"net/http"
	"strconv"

	model "rewear/internal/models"
	settlement "rewear/internal/settlementService"
	"rewear/services/marketplace/helpers"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

type SettlementServiceInterface interface {
	ProposeSwap(targetItemID, requesterID, offeredItemID string) (model.Swap, error)
	RedeemWithPoints(targetItemID, redeemerID string) (model.Item, model.User, error)
	DecideSwap(swapID string, decision settlement.Decision, deciderID string) (model.Swap, error)
	SwapsForRequester(userID string) ([]model.Swap, error)
	IncomingRequests(ownerID string, pendingOnly bool) ([]model.Swap, error)
	AllSwaps() ([]model.Swap, error)
}

type SwapHandler struct {
	service SettlementServiceInterface
}

func NewSwapHandler(service SettlementServiceInterface) *SwapHandler {
	return &SwapHandler{service: service}
}

// ProposeSwapHandler handles POST /swaps
func (h *SwapHandler) ProposeSwapHandler(c *gin.Context) {
	var req helpers.ProposeSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ProposeSwapHandler", err)
		return
	}

	actorID := helpers.CurrentActorID(c)
	swap, err := h.service.ProposeSwap(req.ItemID, actorID, req.OfferedItemID)
	if err != nil {
		helpers.RespondServiceError(c, "ProposeSwapHandler", err, map[string]any{
			"item_id":         req.ItemID,
			"offered_item_id": req.OfferedItemID,
			"user_id":         actorID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewSwapResponse(swap), "swap requested successfully")
	helpers.LogSuccess("ProposeSwapHandler", "swap requested successfully", map[string]any{
		"swap_id": swap.SwapID,
		"item_id": swap.ItemID,
		"user_id": actorID,
	})
}

// DecideSwapHandler handles POST /swaps/:swap_id/decision
func (h *SwapHandler) DecideSwapHandler(c *gin.Context) {
	var req helpers.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DecideSwapHandler", err)
		return
	}

	swapID := c.Param("swap_id")
	actorID := helpers.CurrentActorID(c)
	swap, err := h.service.DecideSwap(swapID, settlement.Decision(req.Decision), actorID)
	if err != nil {
		helpers.RespondServiceError(c, "DecideSwapHandler", err, map[string]any{
			"swap_id":  swapID,
			"decision": req.Decision,
			"user_id":  actorID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSwapResponse(swap), "swap decided successfully")
	helpers.LogSuccess("DecideSwapHandler", "swap decided successfully", map[string]any{
		"swap_id":  swap.SwapID,
		"decision": req.Decision,
		"user_id":  actorID,
	})
}

// RedeemItemHandler handles POST /items/:item_id/redeem
func (h *SwapHandler) RedeemItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	actorID := helpers.CurrentActorID(c)

	item, redeemer, err := h.service.RedeemWithPoints(itemID, actorID)
	if err != nil {
		helpers.RespondServiceError(c, "RedeemItemHandler", err, map[string]any{
			"item_id": itemID,
			"user_id": actorID,
		})
		return
	}

	resp := helpers.RedeemResponse{Item: item, RemainingPoints: redeemer.Points}
	utils.JSONResponse(c, http.StatusOK, resp, "item redeemed successfully")
	helpers.LogSuccess("RedeemItemHandler", "item redeemed successfully", map[string]any{
		"item_id":          itemID,
		"user_id":          actorID,
		"remaining_points": redeemer.Points,
	})
}

// MySwapsHandler handles GET /me/swaps
func (h *SwapHandler) MySwapsHandler(c *gin.Context) {
	actorID := helpers.CurrentActorID(c)
	swaps, err := h.service.SwapsForRequester(actorID)
	if err != nil {
		helpers.RespondServiceError(c, "MySwapsHandler", err, map[string]any{"user_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSwapResponses(swaps), "swaps retrieved successfully")
}

// IncomingRequestsHandler handles GET /me/requests
func (h *SwapHandler) IncomingRequestsHandler(c *gin.Context) {
	actorID := helpers.CurrentActorID(c)
	pendingOnly, _ := strconv.ParseBool(c.Query("pending"))

	swaps, err := h.service.IncomingRequests(actorID, pendingOnly)
	if err != nil {
		helpers.RespondServiceError(c, "IncomingRequestsHandler", err, map[string]any{"user_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSwapResponses(swaps), "requests retrieved successfully")
}
