package listing

import (
	"errors"
	"fmt"

	"rewear/internal/models"
	"rewear/internal/repository"
	"rewear/internal/swaperrors"
	"rewear/utils"
)

// ModerationDecision is the admin verdict on a pending listing
type ModerationDecision string

const (
	ModerationApprove ModerationDecision = "approve"
	ModerationReject  ModerationDecision = "reject"
)

// defaultValuation is assigned when a lister does not price the garment.
const defaultValuation = 250

// NewItem carries the lister-supplied fields of a listing
type NewItem struct {
	Title       string
	Description string
	Category    string
	Type        string
	Size        string
	Condition   string
	Tags        []string
	Points      int
}

// ListingService owns item creation, browsing and admin moderation. Settlement
// transitions (reserve, settle, release) belong to the settlement service.
type ListingService struct {
	repo repository.LedgerStore
}

// NewListingService creates a new ListingService instance
func NewListingService(repo repository.LedgerStore) *ListingService {
	return &ListingService{
		repo: repo,
	}
}

// CreateItem lists a new garment for its owner. Items enter the marketplace
// as pending and only become available through admin approval.
func (s *ListingService) CreateItem(ownerID string, input NewItem) (models.Item, error) {
	if ownerID == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty owner ID", swaperrors.ErrInvalidRequest)
	}
	if input.Title == "" {
		return models.Item{}, fmt.Errorf("service: %w - missing title", swaperrors.ErrInvalidRequest)
	}
	if input.Points < 0 {
		return models.Item{}, fmt.Errorf("service: %w - negative points valuation", swaperrors.ErrInvalidRequest)
	}

	points := input.Points
	if points == 0 {
		points = defaultValuation
	}

	item := models.Item{
		ItemID:      utils.GenerateID(),
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Type:        input.Type,
		Size:        input.Size,
		Condition:   input.Condition,
		Tags:        input.Tags,
		Status:      models.ItemPending,
		Points:      points,
	}

	if err := s.repo.CreateItem(item); err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create item for user %s: %w", ownerID, err)
	}

	return item, nil
}

// ItemByID returns a single item
func (s *ListingService) ItemByID(itemID string) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty item ID", swaperrors.ErrInvalidRequest)
	}
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %s: %w", itemID, err)
	}
	return item, nil
}

// BrowseAvailable returns the available listings, optionally narrowed to a
// category.
func (s *ListingService) BrowseAvailable(category string) ([]models.Item, error) {
	items, err := s.repo.ListItemsByStatus(models.ItemAvailable)
	if err != nil {
		return nil, fmt.Errorf("service: failed to browse items: %w", err)
	}
	if category == "" {
		return items, nil
	}
	filtered := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// ItemsForUser returns all items a user owns, in any status
func (s *ListingService) ItemsForUser(userID string) ([]models.Item, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", swaperrors.ErrInvalidRequest)
	}
	items, err := s.repo.ListItemsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get items for user %s: %w", userID, err)
	}
	return items, nil
}

// DeleteItem removes a listing. Only the owner may delete, and not while the
// item is reserved by an open swap or already settled.
func (s *ListingService) DeleteItem(itemID, actorID string) error {
	if itemID == "" || actorID == "" {
		return fmt.Errorf("service: %w - missing item ID or actor ID", swaperrors.ErrInvalidRequest)
	}
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if item.UserID != actorID {
		return fmt.Errorf("service: %w - item %s is not owned by actor", swaperrors.ErrUnauthorized, itemID)
	}
	if item.Status == models.ItemPendingSwap || item.Status == models.ItemSwapped {
		return fmt.Errorf("service: %w - item %s is %q and cannot be deleted", swaperrors.ErrInvalidState, itemID, item.Status)
	}
	if err := s.repo.DeleteItem(itemID); err != nil {
		return fmt.Errorf("service: failed to delete item %s: %w", itemID, err)
	}
	return nil
}

// PendingItems returns the admin moderation queue
func (s *ListingService) PendingItems() ([]models.Item, error) {
	items, err := s.repo.ListItemsByStatus(models.ItemPending)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list pending items: %w", err)
	}
	return items, nil
}

// ModerateItem applies an admin decision to a pending listing: approval
// publishes it as available, rejection retires it. The write is conditional
// on the item still being pending, so two moderators racing on one listing
// cannot both apply.
func (s *ListingService) ModerateItem(itemID string, decision ModerationDecision) (models.Item, error) {
	if itemID == "" {
		return models.Item{}, fmt.Errorf("service: %w - empty item ID", swaperrors.ErrInvalidRequest)
	}
	if decision != ModerationApprove && decision != ModerationReject {
		return models.Item{}, fmt.Errorf("service: %w - unknown decision %q", swaperrors.ErrInvalidRequest, decision)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if item.Status != models.ItemPending {
		return models.Item{}, fmt.Errorf("service: %w - item %s is %q, not pending", swaperrors.ErrInvalidState, itemID, item.Status)
	}

	moderated := item
	if decision == ModerationApprove {
		moderated.Status = models.ItemAvailable
	} else {
		moderated.Status = models.ItemRejected
	}

	if err := s.repo.UpdateItem(moderated, models.ItemPending); err != nil {
		if errors.Is(err, swaperrors.ErrStoreConflict) {
			return models.Item{}, fmt.Errorf("service: %w - item %s was moderated concurrently", swaperrors.ErrInvalidState, itemID)
		}
		return models.Item{}, fmt.Errorf("service: failed to moderate item %s: %w", itemID, err)
	}

	return moderated, nil
}
