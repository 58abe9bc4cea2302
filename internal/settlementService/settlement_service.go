package settlement

import (
	"errors"
	"fmt"
	"time"

	"rewear/internal/models"
	"rewear/internal/repository"
	"rewear/internal/swaperrors"
	"rewear/utils"
)

// Decision is the owner's verdict on a pending swap
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// maxCommitAttempts bounds the re-read-and-retry loop on point-balance
// writes that lose an optimistic-concurrency race.
const maxCommitAttempts = 3

// SettlementService owns the state transitions of items, swaps and point
// balances. Every operation either applies all of its writes or none: a
// conditional write that fails partway through triggers compensating writes
// for everything already applied, then surfaces the error.
type SettlementService struct {
	repo repository.LedgerStore
}

// NewSettlementService creates a new SettlementService instance
func NewSettlementService(repo repository.LedgerStore) *SettlementService {
	return &SettlementService{
		repo: repo,
	}
}

// ProposeSwap creates a pending swap on an available target item, reserving
// the target (and the offered item, for an item-for-item trade) so neither
// can be committed elsewhere while the request is open. Of two proposers
// racing on the same item, exactly one wins the reservation; the other
// observes ErrInvalidState.
func (s *SettlementService) ProposeSwap(targetItemID, requesterID, offeredItemID string) (models.Swap, error) {
	if targetItemID == "" || requesterID == "" {
		return models.Swap{}, fmt.Errorf("service: %w - missing target item ID or requester ID", swaperrors.ErrInvalidRequest)
	}
	if offeredItemID == targetItemID {
		return models.Swap{}, fmt.Errorf("service: %w - offered item equals target item", swaperrors.ErrInvalidRequest)
	}

	target, err := s.repo.GetItem(targetItemID)
	if err != nil {
		return models.Swap{}, fmt.Errorf("service: failed to load target item: %w", err)
	}
	if target.UserID == requesterID {
		return models.Swap{}, fmt.Errorf("service: %w - cannot request own item %s", swaperrors.ErrUnauthorized, targetItemID)
	}
	if target.Status != models.ItemAvailable {
		return models.Swap{}, fmt.Errorf("service: %w - item %s is %q, not available", swaperrors.ErrInvalidState, targetItemID, target.Status)
	}

	var offered models.Item
	if offeredItemID != "" {
		offered, err = s.repo.GetItem(offeredItemID)
		if err != nil {
			return models.Swap{}, fmt.Errorf("service: failed to load offered item: %w", err)
		}
		if offered.UserID != requesterID {
			return models.Swap{}, fmt.Errorf("service: %w - offered item %s is not owned by requester", swaperrors.ErrUnauthorized, offeredItemID)
		}
		if offered.Status != models.ItemAvailable {
			return models.Swap{}, fmt.Errorf("service: %w - offered item %s is %q, not available", swaperrors.ErrInvalidState, offeredItemID, offered.Status)
		}
	}

	// Reserve the target. Losing this write means another settlement got
	// there first, which callers see as the item no longer being available.
	if err := s.setItemStatus(target, models.ItemPendingSwap, models.ItemAvailable); err != nil {
		return models.Swap{}, err
	}

	if offeredItemID != "" {
		if err := s.setItemStatus(offered, models.ItemPendingSwap, models.ItemAvailable); err != nil {
			s.rollbackItemStatus(target, models.ItemAvailable, models.ItemPendingSwap)
			return models.Swap{}, err
		}
	}

	swap := models.Swap{
		SwapID:        utils.GenerateID(),
		ItemID:        targetItemID,
		OfferedItemID: offeredItemID,
		RequesterID:   requesterID,
		OwnerID:       target.UserID,
		Status:        models.SwapPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateSwap(swap); err != nil {
		if offeredItemID != "" {
			s.rollbackItemStatus(offered, models.ItemAvailable, models.ItemPendingSwap)
		}
		s.rollbackItemStatus(target, models.ItemAvailable, models.ItemPendingSwap)
		return models.Swap{}, fmt.Errorf("service: failed to create swap for item %s: %w", targetItemID, err)
	}

	return swap, nil
}

// RedeemWithPoints exchanges the redeemer's points for an available item,
// bypassing the swap-request step. The balance is re-checked at commit time;
// the item is reserved first so at most one redemption of it can succeed.
// Returns the settled item and the redeemer's updated account.
func (s *SettlementService) RedeemWithPoints(targetItemID, redeemerID string) (models.Item, models.User, error) {
	if targetItemID == "" || redeemerID == "" {
		return models.Item{}, models.User{}, fmt.Errorf("service: %w - missing item ID or redeemer ID", swaperrors.ErrInvalidRequest)
	}

	item, err := s.repo.GetItem(targetItemID)
	if err != nil {
		return models.Item{}, models.User{}, fmt.Errorf("service: failed to load item: %w", err)
	}
	if item.UserID == redeemerID {
		return models.Item{}, models.User{}, fmt.Errorf("service: %w - cannot redeem own item %s", swaperrors.ErrUnauthorized, targetItemID)
	}
	if item.Status != models.ItemAvailable {
		return models.Item{}, models.User{}, fmt.Errorf("service: %w - item %s is %q, not available", swaperrors.ErrInvalidState, targetItemID, item.Status)
	}

	redeemer, err := s.repo.GetUser(redeemerID)
	if err != nil {
		return models.Item{}, models.User{}, fmt.Errorf("service: failed to load redeemer: %w", err)
	}
	if redeemer.Points < item.Points {
		return models.Item{}, models.User{}, fmt.Errorf("service: %w - need %d points, have %d", swaperrors.ErrInsufficientPoints, item.Points, redeemer.Points)
	}

	// Reserve the item before touching any balance.
	settled := item
	settled.Status = models.ItemSwapped
	if err := s.setItemStatus(item, models.ItemSwapped, models.ItemAvailable); err != nil {
		return models.Item{}, models.User{}, err
	}

	debited, err := s.applyPointsDelta(redeemerID, -item.Points)
	if err != nil {
		s.rollbackItemStatus(item, models.ItemAvailable, models.ItemSwapped)
		return models.Item{}, models.User{}, err
	}

	if _, err := s.applyPointsDelta(item.UserID, item.Points); err != nil {
		s.compensatePoints(redeemerID, item.Points)
		s.rollbackItemStatus(item, models.ItemAvailable, models.ItemSwapped)
		return models.Item{}, models.User{}, err
	}

	return settled, debited, nil
}

// DecideSwap resolves a pending swap. Only the target item's owner may
// decide, and a swap can be decided exactly once: the pending->decided write
// on the swap record is the idempotency guard, so a second decision observes
// ErrAlreadyDecided with no further effects.
func (s *SettlementService) DecideSwap(swapID string, decision Decision, deciderID string) (models.Swap, error) {
	if swapID == "" || deciderID == "" {
		return models.Swap{}, fmt.Errorf("service: %w - missing swap ID or decider ID", swaperrors.ErrInvalidRequest)
	}
	if decision != DecisionAccept && decision != DecisionReject {
		return models.Swap{}, fmt.Errorf("service: %w - unknown decision %q", swaperrors.ErrInvalidRequest, decision)
	}

	swap, err := s.repo.GetSwap(swapID)
	if err != nil {
		return models.Swap{}, fmt.Errorf("service: failed to load swap: %w", err)
	}
	if swap.Decided() {
		return models.Swap{}, fmt.Errorf("service: %w - swap %s is %q", swaperrors.ErrAlreadyDecided, swapID, swap.Status)
	}
	if swap.OwnerID != deciderID {
		return models.Swap{}, fmt.Errorf("service: %w - only the item owner may decide swap %s", swaperrors.ErrUnauthorized, swapID)
	}

	decided := swap
	if decision == DecisionAccept {
		decided.Status = models.SwapAccepted
	} else {
		decided.Status = models.SwapRejected
	}

	if err := s.repo.UpdateSwap(decided, models.SwapPending); err != nil {
		if errors.Is(err, swaperrors.ErrStoreConflict) {
			return models.Swap{}, fmt.Errorf("service: %w - swap %s", swaperrors.ErrAlreadyDecided, swapID)
		}
		return models.Swap{}, fmt.Errorf("service: failed to mark swap %s decided: %w", swapID, err)
	}

	if decision == DecisionReject {
		err = s.releaseReservations(swap)
	} else if swap.OfferedItemID != "" {
		err = s.settleTrade(swap)
	} else {
		err = s.settlePoints(swap)
	}
	if err != nil {
		s.revertDecision(swap, decided.Status)
		return models.Swap{}, err
	}

	return decided, nil
}

// releaseReservations returns the target and offered items to available
// after a rejection.
func (s *SettlementService) releaseReservations(swap models.Swap) error {
	target, err := s.repo.GetItem(swap.ItemID)
	if err != nil {
		return fmt.Errorf("service: failed to load target item: %w", err)
	}
	if err := s.setItemStatus(target, models.ItemAvailable, models.ItemPendingSwap); err != nil {
		return err
	}

	if swap.OfferedItemID == "" {
		return nil
	}
	offered, err := s.repo.GetItem(swap.OfferedItemID)
	if err == nil {
		err = s.setItemStatus(offered, models.ItemAvailable, models.ItemPendingSwap)
	}
	if err != nil {
		s.rollbackItemStatus(target, models.ItemPendingSwap, models.ItemAvailable)
		return fmt.Errorf("service: failed to release offered item: %w", err)
	}
	return nil
}

// settleTrade commits an accepted item-for-item swap: ownership of the two
// reserved items crosses over and both relist as available under their new
// owners.
func (s *SettlementService) settleTrade(swap models.Swap) error {
	target, err := s.repo.GetItem(swap.ItemID)
	if err != nil {
		return fmt.Errorf("service: failed to load target item: %w", err)
	}
	offered, err := s.repo.GetItem(swap.OfferedItemID)
	if err != nil {
		return fmt.Errorf("service: failed to load offered item: %w", err)
	}

	tradedTarget := target
	tradedTarget.UserID = swap.RequesterID
	tradedTarget.Status = models.ItemAvailable
	if err := s.repo.UpdateItem(tradedTarget, models.ItemPendingSwap); err != nil {
		return fmt.Errorf("service: failed to transfer item %s: %w", target.ItemID, err)
	}

	tradedOffered := offered
	tradedOffered.UserID = swap.OwnerID
	tradedOffered.Status = models.ItemAvailable
	if err := s.repo.UpdateItem(tradedOffered, models.ItemPendingSwap); err != nil {
		// Undo the first transfer so the trade is all-or-none.
		if rbErr := s.repo.UpdateItem(target, models.ItemAvailable); rbErr != nil {
			utils.Error("settlement: rollback of item transfer failed", map[string]any{
				"swap_id": swap.SwapID,
				"item_id": target.ItemID,
				"error":   rbErr.Error(),
			})
		}
		return fmt.Errorf("service: failed to transfer item %s: %w", offered.ItemID, err)
	}

	return nil
}

// settlePoints commits an accepted points-only swap: the requester pays the
// target item's valuation to the owner and the item settles as swapped.
func (s *SettlementService) settlePoints(swap models.Swap) error {
	target, err := s.repo.GetItem(swap.ItemID)
	if err != nil {
		return fmt.Errorf("service: failed to load target item: %w", err)
	}

	if _, err := s.applyPointsDelta(swap.RequesterID, -target.Points); err != nil {
		return err
	}
	if _, err := s.applyPointsDelta(swap.OwnerID, target.Points); err != nil {
		s.compensatePoints(swap.RequesterID, target.Points)
		return err
	}

	settled := target
	settled.Status = models.ItemSwapped
	if err := s.repo.UpdateItem(settled, models.ItemPendingSwap); err != nil {
		s.compensatePoints(swap.OwnerID, -target.Points)
		s.compensatePoints(swap.RequesterID, target.Points)
		return fmt.Errorf("service: failed to settle item %s: %w", target.ItemID, err)
	}

	return nil
}

// applyPointsDelta adjusts a user's balance through the conditional-update
// contract, re-reading and retrying a bounded number of times when the write
// loses a race. A debit is re-validated against the fresh balance on every
// attempt so no interleaving can drive points negative.
func (s *SettlementService) applyPointsDelta(userID string, delta int) (models.User, error) {
	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		user, err := s.repo.GetUser(userID)
		if err != nil {
			return models.User{}, fmt.Errorf("service: failed to load user: %w", err)
		}
		if user.Points+delta < 0 {
			return models.User{}, fmt.Errorf("service: %w - need %d points, have %d", swaperrors.ErrInsufficientPoints, -delta, user.Points)
		}

		updated := user
		updated.Points += delta
		err = s.repo.UpdateUser(updated, user.Points)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, swaperrors.ErrStoreConflict) {
			return models.User{}, fmt.Errorf("service: failed to update points for user %s: %w", userID, err)
		}
	}
	return models.User{}, fmt.Errorf("service: points update for user %s lost %d races: %w", userID, maxCommitAttempts, swaperrors.ErrStoreConflict)
}

// setItemStatus writes an item status change conditioned on the status read
// earlier. A lost race surfaces as ErrInvalidState: the item left the
// required state before this settlement could claim it.
func (s *SettlementService) setItemStatus(item models.Item, to, expectedPrior models.ItemStatus) error {
	updated := item
	updated.Status = to
	if err := s.repo.UpdateItem(updated, expectedPrior); err != nil {
		if errors.Is(err, swaperrors.ErrStoreConflict) {
			return fmt.Errorf("service: %w - item %s left status %q concurrently", swaperrors.ErrInvalidState, item.ItemID, expectedPrior)
		}
		return fmt.Errorf("service: failed to update item %s: %w", item.ItemID, err)
	}
	return nil
}

// rollbackItemStatus is the compensating write for setItemStatus. Failures
// are logged rather than returned: the original error is already on its way
// to the caller.
func (s *SettlementService) rollbackItemStatus(item models.Item, to, expectedPrior models.ItemStatus) {
	reverted := item
	reverted.Status = to
	if err := s.repo.UpdateItem(reverted, expectedPrior); err != nil {
		utils.Error("settlement: item rollback failed", map[string]any{
			"item_id": item.ItemID,
			"status":  string(to),
			"error":   err.Error(),
		})
	}
}

// compensatePoints undoes a committed points delta on an error path.
func (s *SettlementService) compensatePoints(userID string, delta int) {
	if _, err := s.applyPointsDelta(userID, delta); err != nil {
		utils.Error("settlement: points compensation failed", map[string]any{
			"user_id": userID,
			"delta":   delta,
			"error":   err.Error(),
		})
	}
}

// revertDecision returns a swap to pending after its effects could not be
// applied, so the operation as a whole leaves no partial state.
func (s *SettlementService) revertDecision(swap models.Swap, from models.SwapStatus) {
	if err := s.repo.UpdateSwap(swap, from); err != nil {
		utils.Error("settlement: swap decision rollback failed", map[string]any{
			"swap_id": swap.SwapID,
			"error":   err.Error(),
		})
	}
}

// SwapsForRequester returns the swaps a user has proposed
func (s *SettlementService) SwapsForRequester(userID string) ([]models.Swap, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", swaperrors.ErrInvalidRequest)
	}
	swaps, err := s.repo.ListSwapsByRequester(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list swaps for requester %s: %w", userID, err)
	}
	return swaps, nil
}

// IncomingRequests returns the swap requests targeting a user's items,
// optionally narrowed to the ones still awaiting a decision.
func (s *SettlementService) IncomingRequests(ownerID string, pendingOnly bool) ([]models.Swap, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", swaperrors.ErrInvalidRequest)
	}
	swaps, err := s.repo.ListSwapsByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list swaps for owner %s: %w", ownerID, err)
	}
	if !pendingOnly {
		return swaps, nil
	}
	pending := make([]models.Swap, 0, len(swaps))
	for _, swap := range swaps {
		if swap.Status == models.SwapPending {
			pending = append(pending, swap)
		}
	}
	return pending, nil
}

// AllSwaps returns every swap on record
func (s *SettlementService) AllSwaps() ([]models.Swap, error) {
	swaps, err := s.repo.ListSwaps()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list swaps: %w", err)
	}
	return swaps, nil
}
