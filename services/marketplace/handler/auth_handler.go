package handler

import (
	"net/http"

	model "rewear/internal/models"
	"rewear/services/marketplace/helpers"
	"rewear/utils"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Register(name, email, password string) (model.User, string, error)
	Login(email, password string) (model.User, string, error)
	UserByID(userID string) (model.User, error)
	Users() ([]model.User, error)
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterHandler handles POST /auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, signed, err := h.service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		helpers.RespondServiceError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	resp := helpers.AuthResponse{Token: signed, User: helpers.NewUserResponse(user)}
	utils.JSONResponse(c, http.StatusCreated, resp, "account created successfully")
	helpers.LogSuccess("RegisterHandler", "account created successfully", map[string]any{
		"user_id": user.UserID,
		"email":   user.Email,
	})
}

// LoginHandler handles POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, signed, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.RespondServiceError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	resp := helpers.AuthResponse{Token: signed, User: helpers.NewUserResponse(user)}
	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"user_id": user.UserID})
}

// MeHandler handles GET /me
func (h *AuthHandler) MeHandler(c *gin.Context) {
	actorID := helpers.CurrentActorID(c)
	user, err := h.service.UserByID(actorID)
	if err != nil {
		helpers.RespondServiceError(c, "MeHandler", err, map[string]any{"user_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewUserResponse(user), "account retrieved successfully")
}
