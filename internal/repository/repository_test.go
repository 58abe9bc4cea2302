package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	model "rewear/internal/models"
	"rewear/internal/swaperrors"
)

func testUser(id string, points int) model.User {
	return model.User{UserID: id, Name: "User " + id, Email: id + "@rewear.local", PasswordHash: "x", Points: points, Role: model.RoleUser}
}

func testItem(id, ownerID string, status model.ItemStatus) model.Item {
	return model.Item{ItemID: id, UserID: ownerID, Title: "Item " + id, Category: "Tops", Tags: []string{"tag"}, Status: status, Points: 100}
}

func testSwap(id, itemID, requesterID, ownerID string) model.Swap {
	return model.Swap{SwapID: id, ItemID: itemID, RequesterID: requesterID, OwnerID: ownerID, Status: model.SwapPending, CreatedAt: time.Now().UTC()}
}

// Test conditional item updates
func TestMemoryRepo_UpdateItem(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateItem(testItem("item1", "u1", model.ItemAvailable)))

	tests := []struct {
		name      string
		item      model.Item
		expected  model.ItemStatus
		wantError error
	}{
		{
			name:     "matching_expectation_applies",
			item:     testItem("item1", "u1", model.ItemPendingSwap),
			expected: model.ItemAvailable,
		},
		{
			name:      "stale_expectation_conflicts",
			item:      testItem("item1", "u1", model.ItemSwapped),
			expected:  model.ItemAvailable, // now pending_swap
			wantError: swaperrors.ErrStoreConflict,
		},
		{
			name:      "missing_item",
			item:      testItem("ghost", "u1", model.ItemAvailable),
			expected:  model.ItemAvailable,
			wantError: swaperrors.ErrItemNotFound,
		},
	}

	// Cases depend on each other's writes, so they run sequentially.
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.UpdateItem(tc.item, tc.expected)
			if tc.wantError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantError), "expected %v, got %v", tc.wantError, err)
			} else {
				require.NoError(t, err)
				stored, getErr := repo.GetItem(tc.item.ItemID)
				require.NoError(t, getErr)
				require.Equal(t, tc.item.Status, stored.Status)
			}
		})
	}
}

// Under concurrent conditional updates, exactly one writer wins.
func TestMemoryRepo_UpdateItem_ConcurrentCAS(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateItem(testItem("item1", "u1", model.ItemAvailable)))

	const writers = 20
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			item := testItem("item1", "u1", model.ItemPendingSwap)
			errs[i] = repo.UpdateItem(item, model.ItemAvailable)
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			require.True(t, errors.Is(err, swaperrors.ErrStoreConflict))
		}
	}
	require.Equal(t, 1, winners)
}

// Test conditional points updates
func TestMemoryRepo_UpdateUser(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(testUser("u1", 500)))

	debited := testUser("u1", 300)
	require.NoError(t, repo.UpdateUser(debited, 500))

	// A second writer holding the stale balance loses.
	err := repo.UpdateUser(testUser("u1", 100), 500)
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrStoreConflict))

	stored, err := repo.GetUser("u1")
	require.NoError(t, err)
	require.Equal(t, 300, stored.Points)
}

// Test user creation and email uniqueness
func TestMemoryRepo_CreateUser(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateUser(testUser("u1", 500)))

	dup := testUser("u2", 500)
	dup.Email = "U1@rewear.local" // same address, different case
	err := repo.CreateUser(dup)
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrEmailTaken))

	byEmail, err := repo.GetUserByEmail("u1@rewear.local")
	require.NoError(t, err)
	require.Equal(t, "u1", byEmail.UserID)

	_, err = repo.GetUserByEmail("nobody@rewear.local")
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrUserNotFound))
}

// Test swap storage and listings
func TestMemoryRepo_Swaps(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateSwap(testSwap("s1", "item1", "u2", "u1")))
	require.NoError(t, repo.CreateSwap(testSwap("s2", "item2", "u3", "u1")))
	require.NoError(t, repo.CreateSwap(testSwap("s3", "item3", "u2", "u4")))

	all, err := repo.ListSwaps()
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "s1", all[0].SwapID, "listing preserves creation order")

	byRequester, err := repo.ListSwapsByRequester("u2")
	require.NoError(t, err)
	require.Len(t, byRequester, 2)

	byOwner, err := repo.ListSwapsByOwner("u1")
	require.NoError(t, err)
	require.Len(t, byOwner, 2)

	decided := testSwap("s1", "item1", "u2", "u1")
	decided.Status = model.SwapAccepted
	require.NoError(t, repo.UpdateSwap(decided, model.SwapPending))

	err = repo.UpdateSwap(decided, model.SwapPending)
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrStoreConflict), "re-deciding loses the CAS")

	_, err = repo.GetSwap("ghost")
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrSwapNotFound))
}

// Test item listings and deletion
func TestMemoryRepo_Items(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateItem(testItem("item1", "u1", model.ItemAvailable)))
	require.NoError(t, repo.CreateItem(testItem("item2", "u1", model.ItemPending)))
	require.NoError(t, repo.CreateItem(testItem("item3", "u2", model.ItemAvailable)))

	available, err := repo.ListItemsByStatus(model.ItemAvailable)
	require.NoError(t, err)
	require.Len(t, available, 2)

	owned, err := repo.ListItemsByUser("u1")
	require.NoError(t, err)
	require.Len(t, owned, 2)

	require.NoError(t, repo.DeleteItem("item2"))
	err = repo.DeleteItem("item2")
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrItemNotFound))

	// Concurrent reads while a writer mutates an unrelated item.
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, listErr := repo.ListItemsByUser("u2")
			require.NoError(t, listErr)
			require.Len(t, items, 1)
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			require.NoError(t, repo.CreateItem(testItem(fmt.Sprintf("extra%d", i), "u1", model.ItemPending)))
		}()
	}
	wg.Wait()
}
