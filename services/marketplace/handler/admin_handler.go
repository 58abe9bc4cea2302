package handler

import (
	"net/http"

	listing "rewear/internal/listingService"
	"rewear/services/marketplace/helpers"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the moderation screens. Routes using it sit behind the
// admin-role middleware.
type AdminHandler struct {
	listings   ListingServiceInterface
	accounts   AuthServiceInterface
	settlement SettlementServiceInterface
}

func NewAdminHandler(listings ListingServiceInterface, accounts AuthServiceInterface, settlement SettlementServiceInterface) *AdminHandler {
	return &AdminHandler{listings: listings, accounts: accounts, settlement: settlement}
}

// PendingItemsHandler handles GET /admin/items/pending
func (h *AdminHandler) PendingItemsHandler(c *gin.Context) {
	items, err := h.listings.PendingItems()
	if err != nil {
		helpers.RespondServiceError(c, "PendingItemsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, items, "pending items retrieved successfully")
}

// ModerateItemHandler handles POST /admin/items/:item_id/moderate
func (h *AdminHandler) ModerateItemHandler(c *gin.Context) {
	var req helpers.ModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ModerateItemHandler", err)
		return
	}

	itemID := c.Param("item_id")
	item, err := h.listings.ModerateItem(itemID, listing.ModerationDecision(req.Decision))
	if err != nil {
		helpers.RespondServiceError(c, "ModerateItemHandler", err, map[string]any{
			"item_id":  itemID,
			"decision": req.Decision,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item moderated successfully")
	helpers.LogSuccess("ModerateItemHandler", "item moderated successfully", map[string]any{
		"item_id":  item.ItemID,
		"decision": req.Decision,
		"status":   string(item.Status),
		"admin_id": helpers.CurrentActorID(c),
	})
}

// ListUsersHandler handles GET /admin/users
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.accounts.Users()
	if err != nil {
		helpers.RespondServiceError(c, "ListUsersHandler", err, nil)
		return
	}

	resp := make([]helpers.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, helpers.NewUserResponse(user))
	}
	utils.JSONResponse(c, http.StatusOK, resp, "users retrieved successfully")
}

// ListSwapsHandler handles GET /admin/swaps
func (h *AdminHandler) ListSwapsHandler(c *gin.Context) {
	swaps, err := h.settlement.AllSwaps()
	if err != nil {
		helpers.RespondServiceError(c, "ListSwapsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSwapResponses(swaps), "swaps retrieved successfully")
}
