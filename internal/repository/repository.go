package repository

import (
	"fmt"
	"strings"
	"sync"

	model "rewear/internal/models"
	"rewear/internal/swaperrors"
)

// LedgerStore defines the persistence contract for the marketplace. Update
// methods are conditional: the write only applies while the expectation read
// earlier still holds, otherwise swaperrors.ErrStoreConflict is returned.
// This is the optimistic-concurrency primitive the settlement engine builds on.
type LedgerStore interface {
	GetUser(userID string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)
	GetItem(itemID string) (model.Item, error)
	GetSwap(swapID string) (model.Swap, error)

	CreateUser(user model.User) error
	CreateItem(item model.Item) error
	CreateSwap(swap model.Swap) error

	UpdateItem(item model.Item, expectedPriorStatus model.ItemStatus) error
	UpdateUser(user model.User, expectedPriorPoints int) error
	UpdateSwap(swap model.Swap, expectedPriorStatus model.SwapStatus) error

	DeleteItem(itemID string) error

	ListItemsByStatus(status model.ItemStatus) ([]model.Item, error)
	ListItemsByUser(userID string) ([]model.Item, error)
	ListUsers() ([]model.User, error)
	ListSwaps() ([]model.Swap, error)
	ListSwapsByRequester(userID string) ([]model.Swap, error)
	ListSwapsByOwner(userID string) ([]model.Swap, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of LedgerStore
type MemoryRepo struct {
	mu      sync.RWMutex
	users   map[string]model.User // key: userID
	emails  map[string]string     // key: lowercased email -> userID
	items   map[string]model.Item // key: itemID
	swaps   map[string]model.Swap // key: swapID
	swapIDs []string              // creation order, for stable listings
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:  make(map[string]model.User),
		emails: make(map[string]string),
		items:  make(map[string]model.Item),
		swaps:  make(map[string]model.Swap),
	}
}

// GetUser returns the user with the given id
func (r *MemoryRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, swaperrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail returns the user registered under the given email
func (r *MemoryRepo) GetUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.emails[strings.ToLower(email)]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email %s: %w", email, swaperrors.ErrUserNotFound)
	}
	return r.users[userID], nil
}

// GetItem returns the item with the given id
func (r *MemoryRepo) GetItem(itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, swaperrors.ErrItemNotFound)
	}
	return item, nil
}

// GetSwap returns the swap with the given id
func (r *MemoryRepo) GetSwap(swapID string) (model.Swap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	swap, ok := r.swaps[swapID]
	if !ok {
		return model.Swap{}, fmt.Errorf("get swap %s: %w", swapID, swaperrors.ErrSwapNotFound)
	}
	return swap, nil
}

// CreateUser stores a new user. The email must not already be registered.
func (r *MemoryRepo) CreateUser(user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, taken := r.emails[email]; taken {
		return fmt.Errorf("create user %s: %w", user.UserID, swaperrors.ErrEmailTaken)
	}
	r.users[user.UserID] = user
	r.emails[email] = user.UserID
	return nil
}

// CreateItem stores a new item
func (r *MemoryRepo) CreateItem(item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ItemID] = item
	return nil
}

// CreateSwap stores a new swap request
func (r *MemoryRepo) CreateSwap(swap model.Swap) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.swaps[swap.SwapID] = swap
	r.swapIDs = append(r.swapIDs, swap.SwapID)
	return nil
}

// UpdateItem replaces the stored item if its status still matches
// expectedPriorStatus at write time.
func (r *MemoryRepo) UpdateItem(item model.Item, expectedPriorStatus model.ItemStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[item.ItemID]
	if !ok {
		return fmt.Errorf("update item %s: %w", item.ItemID, swaperrors.ErrItemNotFound)
	}
	if current.Status != expectedPriorStatus {
		return fmt.Errorf("update item %s: status is %q, expected %q: %w",
			item.ItemID, current.Status, expectedPriorStatus, swaperrors.ErrStoreConflict)
	}
	r.items[item.ItemID] = item
	return nil
}

// UpdateUser replaces the stored user if their points balance still matches
// expectedPriorPoints at write time.
func (r *MemoryRepo) UpdateUser(user model.User, expectedPriorPoints int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.UserID]
	if !ok {
		return fmt.Errorf("update user %s: %w", user.UserID, swaperrors.ErrUserNotFound)
	}
	if current.Points != expectedPriorPoints {
		return fmt.Errorf("update user %s: points are %d, expected %d: %w",
			user.UserID, current.Points, expectedPriorPoints, swaperrors.ErrStoreConflict)
	}
	r.users[user.UserID] = user
	return nil
}

// UpdateSwap replaces the stored swap if its status still matches
// expectedPriorStatus at write time.
func (r *MemoryRepo) UpdateSwap(swap model.Swap, expectedPriorStatus model.SwapStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.swaps[swap.SwapID]
	if !ok {
		return fmt.Errorf("update swap %s: %w", swap.SwapID, swaperrors.ErrSwapNotFound)
	}
	if current.Status != expectedPriorStatus {
		return fmt.Errorf("update swap %s: status is %q, expected %q: %w",
			swap.SwapID, current.Status, expectedPriorStatus, swaperrors.ErrStoreConflict)
	}
	r.swaps[swap.SwapID] = swap
	return nil
}

// DeleteItem removes an item
func (r *MemoryRepo) DeleteItem(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("delete item %s: %w", itemID, swaperrors.ErrItemNotFound)
	}
	delete(r.items, itemID)
	return nil
}

// ListItemsByStatus returns all items currently in the given status
func (r *MemoryRepo) ListItemsByStatus(status model.ItemStatus) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0)
	for _, item := range r.items {
		if item.Status == status {
			items = append(items, item)
		}
	}
	return items, nil
}

// ListItemsByUser returns all items owned by a user
func (r *MemoryRepo) ListItemsByUser(userID string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

// ListUsers returns all registered users
func (r *MemoryRepo) ListUsers() ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

// ListSwaps returns all swaps in creation order
func (r *MemoryRepo) ListSwaps() ([]model.Swap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	swaps := make([]model.Swap, 0, len(r.swapIDs))
	for _, id := range r.swapIDs {
		swaps = append(swaps, r.swaps[id])
	}
	return swaps, nil
}

// ListSwapsByRequester returns the swaps a user has proposed, in creation order
func (r *MemoryRepo) ListSwapsByRequester(userID string) ([]model.Swap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	swaps := make([]model.Swap, 0)
	for _, id := range r.swapIDs {
		if s := r.swaps[id]; s.RequesterID == userID {
			swaps = append(swaps, s)
		}
	}
	return swaps, nil
}

// ListSwapsByOwner returns the swaps targeting a user's items, in creation order
func (r *MemoryRepo) ListSwapsByOwner(userID string) ([]model.Swap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	swaps := make([]model.Swap, 0)
	for _, id := range r.swapIDs {
		if s := r.swaps[id]; s.OwnerID == userID {
			swaps = append(swaps, s)
		}
	}
	return swaps, nil
}
