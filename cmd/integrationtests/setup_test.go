package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	auth "rewear/internal/authService"
	listing "rewear/internal/listingService"
	model "rewear/internal/models"
	"rewear/internal/repository"
	"rewear/internal/server"
	settlement "rewear/internal/settlementService"
	"rewear/internal/token"
	"rewear/services/marketplace/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestEnv bundles the router with the backing store and token service so
// tests can seed state directly when the API flow is not under test.
type TestEnv struct {
	Router *gin.Engine
	Repo   *repository.MemoryRepo
	Tokens *token.Service
}

// SetupTestEnv initializes the full HTTP stack over an in-memory store.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	tokens := token.NewService("integration-test-key", "rewear", time.Hour)

	authSvc := auth.NewAuthService(repo, tokens)
	listingSvc := listing.NewListingService(repo)
	settlementSvc := settlement.NewSettlementService(repo)

	router := server.SetupRouter(authSvc, listingSvc, settlementSvc, tokens)
	return &TestEnv{Router: router, Repo: repo, Tokens: tokens}
}

// ExecuteRequest executes an HTTP request and returns the parsed response
// envelope. An empty bearer leaves the request unauthenticated.
func ExecuteRequest(t *testing.T, env *TestEnv, method, url, bearer string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// RegisterUser creates an account through the API and returns its id and token.
func RegisterUser(t *testing.T, env *TestEnv, name, email string) (userID, bearer string) {
	t.Helper()

	resp, w := ExecuteRequest(t, env, "POST", "/auth/register", "", helpers.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "password123!",
	})
	require.Equal(t, 201, w.Code)

	data := resp["data"].(map[string]any)
	user := data["user"].(map[string]any)
	return user["user_id"].(string), data["token"].(string)
}

// SeedAdmin creates an admin account directly in the store and mints its token.
func SeedAdmin(t *testing.T, env *TestEnv) (userID, bearer string) {
	t.Helper()

	admin := model.User{
		UserID: "admin-integration",
		Name:   "Admin",
		Email:  "admin@rewear.local",
		Points: 500,
		Role:   model.RoleAdmin,
	}
	require.NoError(t, env.Repo.CreateUser(admin))

	signed, err := env.Tokens.Generate(admin.UserID, admin.Email, admin.Role)
	require.NoError(t, err)
	return admin.UserID, signed
}

// SeedAvailableItem plants a moderated listing directly in the store.
func SeedAvailableItem(t *testing.T, env *TestEnv, itemID, ownerID string, points int) {
	t.Helper()

	require.NoError(t, env.Repo.CreateItem(model.Item{
		ItemID:   itemID,
		UserID:   ownerID,
		Title:    "Seeded " + itemID,
		Category: "tops",
		Status:   model.ItemAvailable,
		Points:   points,
	}))
}
