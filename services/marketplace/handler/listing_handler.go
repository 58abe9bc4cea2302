package handler

import (
	"net/http"

	listing "rewear/internal/listingService"
	model "rewear/internal/models"
	"rewear/services/marketplace/helpers"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

type ListingServiceInterface interface {
	CreateItem(ownerID string, input listing.NewItem) (model.Item, error)
	ItemByID(itemID string) (model.Item, error)
	BrowseAvailable(category string) ([]model.Item, error)
	ItemsForUser(userID string) ([]model.Item, error)
	DeleteItem(itemID, actorID string) error
	PendingItems() ([]model.Item, error)
	ModerateItem(itemID string, decision listing.ModerationDecision) (model.Item, error)
}

type ListingHandler struct {
	service ListingServiceInterface
}

func NewListingHandler(service ListingServiceInterface) *ListingHandler {
	return &ListingHandler{service: service}
}

// BrowseItemsHandler handles GET /items
func (h *ListingHandler) BrowseItemsHandler(c *gin.Context) {
	items, err := h.service.BrowseAvailable(c.Query("category"))
	if err != nil {
		helpers.RespondServiceError(c, "BrowseItemsHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}

// GetItemHandler handles GET /items/:item_id
func (h *ListingHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	item, err := h.service.ItemByID(itemID)
	if err != nil {
		helpers.RespondServiceError(c, "GetItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, item, "item retrieved successfully")
}

// CreateItemHandler handles POST /items
func (h *ListingHandler) CreateItemHandler(c *gin.Context) {
	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}

	actorID := helpers.CurrentActorID(c)
	item, err := h.service.CreateItem(actorID, listing.NewItem{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Size:        req.Size,
		Condition:   req.Condition,
		Tags:        req.Tags,
		Points:      req.Points,
	})
	if err != nil {
		helpers.RespondServiceError(c, "CreateItemHandler", err, map[string]any{"user_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, item, "item listed successfully")
	helpers.LogSuccess("CreateItemHandler", "item listed successfully", map[string]any{
		"item_id": item.ItemID,
		"user_id": actorID,
		"points":  item.Points,
	})
}

// DeleteItemHandler handles DELETE /items/:item_id
func (h *ListingHandler) DeleteItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	actorID := helpers.CurrentActorID(c)

	if err := h.service.DeleteItem(itemID, actorID); err != nil {
		helpers.RespondServiceError(c, "DeleteItemHandler", err, map[string]any{"item_id": itemID, "user_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"item_id": itemID}, "item deleted successfully")
	helpers.LogSuccess("DeleteItemHandler", "item deleted successfully", map[string]any{
		"item_id": itemID,
		"user_id": actorID,
	})
}

// MyItemsHandler handles GET /me/items
func (h *ListingHandler) MyItemsHandler(c *gin.Context) {
	actorID := helpers.CurrentActorID(c)
	items, err := h.service.ItemsForUser(actorID)
	if err != nil {
		helpers.RespondServiceError(c, "MyItemsHandler", err, map[string]any{"user_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, items, "items retrieved successfully")
}
