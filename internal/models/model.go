package models

import "time"

// ItemStatus is the lifecycle state of a listed garment.
type ItemStatus string

const (
	ItemPending     ItemStatus = "pending"      // awaiting admin moderation
	ItemAvailable   ItemStatus = "available"    // listed, open to swap or redeem
	ItemPendingSwap ItemStatus = "pending_swap" // reserved by an open swap request
	ItemSwapped     ItemStatus = "swapped"      // settled, no longer listed
	ItemRejected    ItemStatus = "rejected"     // refused by admin moderation
)

// SwapStatus is the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapPending   SwapStatus = "pending"
	SwapAccepted  SwapStatus = "accepted"
	SwapRejected  SwapStatus = "rejected"
	SwapCompleted SwapStatus = "completed" // legacy terminal status, treated as decided
)

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a marketplace participant
type User struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Points       int    `json:"points"`
	Role         string `json:"role"`
}

// Item represents a listed garment
type Item struct {
	ItemID      string     `json:"item_id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Type        string     `json:"type"`
	Size        string     `json:"size"`
	Condition   string     `json:"condition"`
	Tags        []string   `json:"tags"`
	Status      ItemStatus `json:"status"`
	Points      int        `json:"points"`
}

// Swap represents a swap request on a target item. OfferedItemID is empty
// for a points-only request.
type Swap struct {
	SwapID        string     `json:"swap_id"`
	ItemID        string     `json:"item_id"`
	OfferedItemID string     `json:"offered_item_id,omitempty"`
	RequesterID   string     `json:"requester_id"`
	OwnerID       string     `json:"owner_id"`
	Status        SwapStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Decided reports whether the swap has reached a terminal status.
func (s Swap) Decided() bool {
	return s.Status != SwapPending
}
