package helpers

import model "rewear/internal/models"

// Request/Response DTOs
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateItemRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Type        string   `json:"type"`
	Size        string   `json:"size"`
	Condition   string   `json:"condition"`
	Tags        []string `json:"tags"`
	Points      int      `json:"points" binding:"gte=0"`
}

type ProposeSwapRequest struct {
	ItemID        string `json:"item_id" binding:"required"`
	OfferedItemID string `json:"offered_item_id"`
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept reject"`
}

type ModerationRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}

type UserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int    `json:"points"`
	Role   string `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type SwapResponse struct {
	SwapID        string `json:"swap_id"`
	ItemID        string `json:"item_id"`
	OfferedItemID string `json:"offered_item_id,omitempty"`
	RequesterID   string `json:"requester_id"`
	OwnerID       string `json:"owner_id"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type RedeemResponse struct {
	Item            model.Item `json:"item"`
	RemainingPoints int        `json:"remaining_points"`
}

// NewUserResponse strips credentials from a user record
func NewUserResponse(user model.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Points: user.Points,
		Role:   user.Role,
	}
}
