package settlement

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	model "rewear/internal/models"
	"rewear/internal/repository"
	"rewear/internal/swaperrors"
)

func newUser(id string, points int) model.User {
	return model.User{UserID: id, Name: id, Email: id + "@rewear.local", Points: points, Role: model.RoleUser}
}

func newItem(id, ownerID string, points int, status model.ItemStatus) model.Item {
	return model.Item{ItemID: id, UserID: ownerID, Title: "Item " + id, Category: "Tops", Status: status, Points: points}
}

// seededRepo builds a memory repo with the given users and items
func seededRepo(t *testing.T, users []model.User, items []model.Item) *repository.MemoryRepo {
	t.Helper()
	repo := repository.NewMemoryRepo()
	for _, u := range users {
		require.NoError(t, repo.CreateUser(u))
	}
	for _, i := range items {
		require.NoError(t, repo.CreateItem(i))
	}
	return repo
}

// Tests ProposeSwap preconditions against a mocked store
func TestSettlementService_ProposeSwap_Preconditions(t *testing.T) {
	tests := []struct {
		name          string
		targetID      string
		requesterID   string
		offeredID     string
		mockSetup     func(m *repository.MockLedgerStore)
		expectedError error
	}{
		{
			name:          "empty_target_id",
			targetID:      "",
			requesterID:   "u2",
			mockSetup:     func(m *repository.MockLedgerStore) {},
			expectedError: swaperrors.ErrInvalidRequest,
		},
		{
			name:          "empty_requester_id",
			targetID:      "item1",
			requesterID:   "",
			mockSetup:     func(m *repository.MockLedgerStore) {},
			expectedError: swaperrors.ErrInvalidRequest,
		},
		{
			name:          "offered_equals_target",
			targetID:      "item1",
			requesterID:   "u2",
			offeredID:     "item1",
			mockSetup:     func(m *repository.MockLedgerStore) {},
			expectedError: swaperrors.ErrInvalidRequest,
		},
		{
			name:        "target_not_found",
			targetID:    "missing",
			requesterID: "u2",
			mockSetup: func(m *repository.MockLedgerStore) {
				m.EXPECT().GetItem("missing").Return(model.Item{}, swaperrors.ErrItemNotFound)
			},
			expectedError: swaperrors.ErrItemNotFound,
		},
		{
			name:        "self_dealing",
			targetID:    "item1",
			requesterID: "u1",
			mockSetup: func(m *repository.MockLedgerStore) {
				m.EXPECT().GetItem("item1").Return(newItem("item1", "u1", 100, model.ItemAvailable), nil)
			},
			expectedError: swaperrors.ErrUnauthorized,
		},
		{
			name:        "target_not_available",
			targetID:    "item1",
			requesterID: "u2",
			mockSetup: func(m *repository.MockLedgerStore) {
				m.EXPECT().GetItem("item1").Return(newItem("item1", "u1", 100, model.ItemPendingSwap), nil)
			},
			expectedError: swaperrors.ErrInvalidState,
		},
		{
			name:        "offered_not_owned_by_requester",
			targetID:    "item1",
			requesterID: "u2",
			offeredID:   "item2",
			mockSetup: func(m *repository.MockLedgerStore) {
				m.EXPECT().GetItem("item1").Return(newItem("item1", "u1", 100, model.ItemAvailable), nil)
				m.EXPECT().GetItem("item2").Return(newItem("item2", "u3", 100, model.ItemAvailable), nil)
			},
			expectedError: swaperrors.ErrUnauthorized,
		},
		{
			name:        "offered_not_available",
			targetID:    "item1",
			requesterID: "u2",
			offeredID:   "item2",
			mockSetup: func(m *repository.MockLedgerStore) {
				m.EXPECT().GetItem("item1").Return(newItem("item1", "u1", 100, model.ItemAvailable), nil)
				m.EXPECT().GetItem("item2").Return(newItem("item2", "u2", 100, model.ItemSwapped), nil)
			},
			expectedError: swaperrors.ErrInvalidState,
		},
		{
			name:        "reservation_lost_race",
			targetID:    "item1",
			requesterID: "u2",
			mockSetup: func(m *repository.MockLedgerStore) {
				m.EXPECT().GetItem("item1").Return(newItem("item1", "u1", 100, model.ItemAvailable), nil)
				m.EXPECT().UpdateItem(gomock.Any(), model.ItemAvailable).Return(fmt.Errorf("update: %w", swaperrors.ErrStoreConflict))
			},
			expectedError: swaperrors.ErrInvalidState,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockLedgerStore(ctrl)
			tc.mockSetup(mockRepo)
			service := NewSettlementService(mockRepo)

			_, err := service.ProposeSwap(tc.targetID, tc.requesterID, tc.offeredID)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
		})
	}
}

// A failed offered-item reservation must release the target reservation.
func TestSettlementService_ProposeSwap_RollbackOnOfferedConflict(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t,
		[]model.User{newUser("u1", 500), newUser("u2", 500)},
		[]model.Item{
			newItem("itemA", "u1", 200, model.ItemAvailable),
			newItem("itemC", "u2", 150, model.ItemPendingSwap), // already reserved elsewhere
		})
	service := NewSettlementService(repo)

	_, err := service.ProposeSwap("itemA", "u2", "itemC")
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrInvalidState))

	target, err := repo.GetItem("itemA")
	require.NoError(t, err)
	require.Equal(t, model.ItemAvailable, target.Status, "target reservation must be rolled back")
}

func TestSettlementService_ProposeSwap_ReservesBothSides(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t,
		[]model.User{newUser("u1", 500), newUser("u2", 500)},
		[]model.Item{
			newItem("itemA", "u1", 200, model.ItemAvailable),
			newItem("itemC", "u2", 150, model.ItemAvailable),
		})
	service := NewSettlementService(repo)

	swap, err := service.ProposeSwap("itemA", "u2", "itemC")
	require.NoError(t, err)
	require.Equal(t, model.SwapPending, swap.Status)
	require.Equal(t, "u1", swap.OwnerID)
	require.Equal(t, "u2", swap.RequesterID)
	_, parseErr := uuid.Parse(swap.SwapID)
	require.NoError(t, parseErr, "SwapID should be a valid UUID")
	require.WithinDuration(t, time.Now().UTC(), swap.CreatedAt, 2*time.Second)

	target, _ := repo.GetItem("itemA")
	offered, _ := repo.GetItem("itemC")
	require.Equal(t, model.ItemPendingSwap, target.Status)
	require.Equal(t, model.ItemPendingSwap, offered.Status)
}

// Two proposers racing on one available item: exactly one wins.
func TestSettlementService_ProposeSwap_ConcurrentRace(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t,
		[]model.User{newUser("u1", 500), newUser("u2", 500), newUser("u3", 500)},
		[]model.Item{newItem("itemA", "u1", 200, model.ItemAvailable)})
	service := NewSettlementService(repo)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, requester := range []string{"u2", "u3"} {
		i, requester := i, requester
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = service.ProposeSwap("itemA", requester, "")
		}()
	}
	wg.Wait()

	var successes, invalidStates int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, swaperrors.ErrInvalidState):
			invalidStates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, successes, "exactly one proposer must win the reservation")
	require.Equal(t, 1, invalidStates, "the loser must observe an invalid-state failure")
}

// Tests RedeemWithPoints
func TestSettlementService_RedeemWithPoints(t *testing.T) {
	t.Parallel()

	t.Run("success_debits_redeemer_and_credits_owner", func(t *testing.T) {
		t.Parallel()

		repo := seededRepo(t,
			[]model.User{newUser("u1", 500), newUser("u2", 250)},
			[]model.Item{newItem("itemA", "u1", 200, model.ItemAvailable)})
		service := NewSettlementService(repo)

		item, redeemer, err := service.RedeemWithPoints("itemA", "u2")
		require.NoError(t, err)
		require.Equal(t, model.ItemSwapped, item.Status)
		require.Equal(t, 50, redeemer.Points)

		stored, _ := repo.GetItem("itemA")
		require.Equal(t, model.ItemSwapped, stored.Status)

		owner, _ := repo.GetUser("u1")
		require.Equal(t, 700, owner.Points, "owner is credited the item valuation")
	})

	t.Run("insufficient_points_mutates_nothing", func(t *testing.T) {
		t.Parallel()

		repo := seededRepo(t,
			[]model.User{newUser("u1", 500), newUser("u2", 100)},
			[]model.Item{newItem("itemA", "u1", 200, model.ItemAvailable)})
		service := NewSettlementService(repo)

		_, _, err := service.RedeemWithPoints("itemA", "u2")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrInsufficientPoints))

		stored, _ := repo.GetItem("itemA")
		require.Equal(t, model.ItemAvailable, stored.Status)
		redeemer, _ := repo.GetUser("u2")
		require.Equal(t, 100, redeemer.Points)
		owner, _ := repo.GetUser("u1")
		require.Equal(t, 500, owner.Points)
	})

	t.Run("own_item_is_unauthorized", func(t *testing.T) {
		t.Parallel()

		repo := seededRepo(t,
			[]model.User{newUser("u1", 500)},
			[]model.Item{newItem("itemA", "u1", 200, model.ItemAvailable)})
		service := NewSettlementService(repo)

		_, _, err := service.RedeemWithPoints("itemA", "u1")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrUnauthorized))
	})

	t.Run("reserved_item_is_invalid_state", func(t *testing.T) {
		t.Parallel()

		repo := seededRepo(t,
			[]model.User{newUser("u1", 500), newUser("u2", 500)},
			[]model.Item{newItem("itemA", "u1", 200, model.ItemPendingSwap)})
		service := NewSettlementService(repo)

		_, _, err := service.RedeemWithPoints("itemA", "u2")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrInvalidState))
	})
}

// Concurrent redemptions of distinct items against one balance can never
// drive it negative: the debit is re-validated at commit time.
func TestSettlementService_RedeemWithPoints_ConcurrentBalance(t *testing.T) {
	t.Parallel()

	const itemCount = 8
	const price = 200
	const balance = 500 // at most two redemptions can fit

	users := []model.User{newUser("owner", 0), newUser("buyer", balance)}
	items := make([]model.Item, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		items = append(items, newItem(fmt.Sprintf("item%d", i), "owner", price, model.ItemAvailable))
	}
	repo := seededRepo(t, users, items)
	service := NewSettlementService(repo)

	var wg sync.WaitGroup
	errs := make([]error, itemCount)
	for i := 0; i < itemCount; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, errs[i] = service.RedeemWithPoints(fmt.Sprintf("item%d", i), "buyer")
		}()
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		require.True(t,
			errors.Is(err, swaperrors.ErrInsufficientPoints) || errors.Is(err, swaperrors.ErrStoreConflict),
			"unexpected error: %v", err)
	}

	buyer, err := repo.GetUser("buyer")
	require.NoError(t, err)
	require.GreaterOrEqual(t, buyer.Points, 0, "balance must never go negative")
	require.Equal(t, balance-successes*price, buyer.Points)
	require.LessOrEqual(t, successes, balance/price)

	owner, err := repo.GetUser("owner")
	require.NoError(t, err)
	require.Equal(t, successes*price, owner.Points, "points are conserved across the ledger")
}

// Tests DecideSwap
func TestSettlementService_DecideSwap(t *testing.T) {
	t.Parallel()

	// proposeTrade seeds a repo with an open item-for-item swap
	proposeTrade := func(t *testing.T) (*repository.MemoryRepo, *SettlementService, model.Swap) {
		t.Helper()
		repo := seededRepo(t,
			[]model.User{newUser("u1", 500), newUser("u2", 500)},
			[]model.Item{
				newItem("itemA", "u1", 200, model.ItemAvailable),
				newItem("itemC", "u2", 150, model.ItemAvailable),
			})
		service := NewSettlementService(repo)
		swap, err := service.ProposeSwap("itemA", "u2", "itemC")
		require.NoError(t, err)
		return repo, service, swap
	}

	t.Run("accept_trade_transfers_ownership", func(t *testing.T) {
		t.Parallel()

		repo, service, swap := proposeTrade(t)

		decided, err := service.DecideSwap(swap.SwapID, DecisionAccept, "u1")
		require.NoError(t, err)
		require.Equal(t, model.SwapAccepted, decided.Status)

		target, _ := repo.GetItem("itemA")
		offered, _ := repo.GetItem("itemC")
		require.Equal(t, "u2", target.UserID, "target item goes to the requester")
		require.Equal(t, "u1", offered.UserID, "offered item goes to the original owner")
		require.Equal(t, model.ItemAvailable, target.Status)
		require.Equal(t, model.ItemAvailable, offered.Status)

		// A pure trade moves no points.
		u1, _ := repo.GetUser("u1")
		u2, _ := repo.GetUser("u2")
		require.Equal(t, 500, u1.Points)
		require.Equal(t, 500, u2.Points)
	})

	t.Run("reject_releases_both_reservations", func(t *testing.T) {
		t.Parallel()

		repo, service, swap := proposeTrade(t)

		decided, err := service.DecideSwap(swap.SwapID, DecisionReject, "u1")
		require.NoError(t, err)
		require.Equal(t, model.SwapRejected, decided.Status)

		target, _ := repo.GetItem("itemA")
		offered, _ := repo.GetItem("itemC")
		require.Equal(t, model.ItemAvailable, target.Status)
		require.Equal(t, model.ItemAvailable, offered.Status)
		require.Equal(t, "u1", target.UserID, "rejection does not move ownership")
		require.Equal(t, "u2", offered.UserID)

		u1, _ := repo.GetUser("u1")
		u2, _ := repo.GetUser("u2")
		require.Equal(t, 500, u1.Points, "rejection leaves points untouched")
		require.Equal(t, 500, u2.Points)
	})

	t.Run("accept_points_only_settles_balances", func(t *testing.T) {
		t.Parallel()

		repo := seededRepo(t,
			[]model.User{newUser("u1", 500), newUser("u2", 500)},
			[]model.Item{newItem("itemA", "u1", 200, model.ItemAvailable)})
		service := NewSettlementService(repo)

		swap, err := service.ProposeSwap("itemA", "u2", "")
		require.NoError(t, err)

		decided, err := service.DecideSwap(swap.SwapID, DecisionAccept, "u1")
		require.NoError(t, err)
		require.Equal(t, model.SwapAccepted, decided.Status)

		target, _ := repo.GetItem("itemA")
		require.Equal(t, model.ItemSwapped, target.Status)

		u1, _ := repo.GetUser("u1")
		u2, _ := repo.GetUser("u2")
		require.Equal(t, 700, u1.Points)
		require.Equal(t, 300, u2.Points)
	})

	t.Run("accept_points_only_insufficient_balance_rolls_back", func(t *testing.T) {
		t.Parallel()

		repo := seededRepo(t,
			[]model.User{newUser("u1", 500), newUser("u2", 100)},
			[]model.Item{newItem("itemA", "u1", 200, model.ItemAvailable)})
		service := NewSettlementService(repo)

		swap, err := service.ProposeSwap("itemA", "u2", "")
		require.NoError(t, err)

		_, err = service.DecideSwap(swap.SwapID, DecisionAccept, "u1")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrInsufficientPoints))

		// The swap returns to pending and all entities are untouched.
		stored, _ := repo.GetSwap(swap.SwapID)
		require.Equal(t, model.SwapPending, stored.Status)
		target, _ := repo.GetItem("itemA")
		require.Equal(t, model.ItemPendingSwap, target.Status)
		u2, _ := repo.GetUser("u2")
		require.Equal(t, 100, u2.Points)
	})

	t.Run("only_owner_may_decide", func(t *testing.T) {
		t.Parallel()

		_, service, swap := proposeTrade(t)

		_, err := service.DecideSwap(swap.SwapID, DecisionAccept, "u2")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrUnauthorized))
	})

	t.Run("unknown_swap", func(t *testing.T) {
		t.Parallel()

		_, service, _ := proposeTrade(t)

		_, err := service.DecideSwap("missing", DecisionAccept, "u1")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrSwapNotFound))
	})

	t.Run("unknown_decision", func(t *testing.T) {
		t.Parallel()

		_, service, swap := proposeTrade(t)

		_, err := service.DecideSwap(swap.SwapID, Decision("maybe"), "u1")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrInvalidRequest))
	})

	t.Run("second_decision_is_already_decided", func(t *testing.T) {
		t.Parallel()

		repo, service, swap := proposeTrade(t)

		_, err := service.DecideSwap(swap.SwapID, DecisionAccept, "u1")
		require.NoError(t, err)

		targetBefore, _ := repo.GetItem("itemA")
		offeredBefore, _ := repo.GetItem("itemC")

		_, err = service.DecideSwap(swap.SwapID, DecisionAccept, "u1")
		require.Error(t, err)
		require.True(t, errors.Is(err, swaperrors.ErrAlreadyDecided))

		targetAfter, _ := repo.GetItem("itemA")
		offeredAfter, _ := repo.GetItem("itemC")
		require.Equal(t, targetBefore, targetAfter, "a second decision must not reapply effects")
		require.Equal(t, offeredBefore, offeredAfter)
	})

	t.Run("concurrent_decisions_apply_once", func(t *testing.T) {
		t.Parallel()

		repo, service, swap := proposeTrade(t)

		var wg sync.WaitGroup
		results := make([]error, 4)
		for i := 0; i < 4; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, results[i] = service.DecideSwap(swap.SwapID, DecisionAccept, "u1")
			}()
		}
		wg.Wait()

		successes := 0
		for _, err := range results {
			if err == nil {
				successes++
			} else {
				require.True(t, errors.Is(err, swaperrors.ErrAlreadyDecided), "unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, successes)

		target, _ := repo.GetItem("itemA")
		require.Equal(t, "u2", target.UserID, "trade applied exactly once")
	})
}

// Tests the swap view helpers
func TestSettlementService_SwapViews(t *testing.T) {
	t.Parallel()

	repo := seededRepo(t,
		[]model.User{newUser("u1", 500), newUser("u2", 500)},
		[]model.Item{
			newItem("itemA", "u1", 200, model.ItemAvailable),
			newItem("itemB", "u1", 100, model.ItemAvailable),
		})
	service := NewSettlementService(repo)

	first, err := service.ProposeSwap("itemA", "u2", "")
	require.NoError(t, err)
	second, err := service.ProposeSwap("itemB", "u2", "")
	require.NoError(t, err)

	_, err = service.DecideSwap(first.SwapID, DecisionReject, "u1")
	require.NoError(t, err)

	outgoing, err := service.SwapsForRequester("u2")
	require.NoError(t, err)
	require.Len(t, outgoing, 2)

	incoming, err := service.IncomingRequests("u1", false)
	require.NoError(t, err)
	require.Len(t, incoming, 2)

	pending, err := service.IncomingRequests("u1", true)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, second.SwapID, pending[0].SwapID)

	all, err := service.AllSwaps()
	require.NoError(t, err)
	require.Len(t, all, 2)

	_, err = service.SwapsForRequester("")
	require.Error(t, err)
	require.True(t, errors.Is(err, swaperrors.ErrInvalidRequest))
}
