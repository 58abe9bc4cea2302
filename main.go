package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	auth "rewear/internal/authService"
	"rewear/internal/config"
	listing "rewear/internal/listingService"
	model "rewear/internal/models"
	"rewear/internal/repository"
	"rewear/internal/server"
	settlement "rewear/internal/settlementService"
	"rewear/internal/token"
	"rewear/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	repo, err := openStore(cfg)
	if err != nil {
		utils.Fatal("failed to open ledger store", map[string]any{"store": cfg.Store, "error": err.Error()})
	}

	if cfg.Seed {
		if err := seedDemoData(repo); err != nil {
			utils.Fatal("failed to seed demo data", map[string]any{"error": err.Error()})
		}
	}

	tokens := token.NewService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTTTL)
	authSvc := auth.NewAuthService(repo, tokens)
	listingSvc := listing.NewListingService(repo)
	settlementSvc := settlement.NewSettlementService(repo)

	router := server.SetupRouter(authSvc, listingSvc, settlementSvc, tokens)

	addr := fmt.Sprintf(":%s", cfg.Port)
	utils.Info("starting rewear server", map[string]any{"addr": addr, "store": cfg.Store})
	if err := router.Run(addr); err != nil {
		utils.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}

// openStore picks the ledger backend from configuration
func openStore(cfg config.Config) (repository.LedgerStore, error) {
	switch cfg.Store {
	case "sqlite":
		return repository.NewSQLiteRepo(cfg.SQLitePath)
	case "memory":
		return repository.NewMemoryRepo(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// seedDemoData populates demo accounts and listings for local development
func seedDemoData(repo repository.LedgerStore) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	users := []model.User{
		{UserID: "admin-demo", Name: "Admin", Email: "admin@rewear.local", Points: 500, Role: model.RoleAdmin},
		{UserID: "jane-demo", Name: "Jane Doe", Email: "jane@rewear.local", Points: 500, Role: model.RoleUser},
		{UserID: "john-demo", Name: "John Smith", Email: "john@rewear.local", Points: 500, Role: model.RoleUser},
	}
	for _, user := range users {
		user.PasswordHash = string(hash)
		if err := repo.CreateUser(user); err != nil {
			return err
		}
	}

	items := []model.Item{
		{ItemID: "item-tee", UserID: "jane-demo", Title: "Anime Printed T-shirt", Description: "Oversized t-shirt with an aesthetic anime print.", Category: "Tops", Type: "Casual", Size: "M", Condition: "New", Tags: []string{"anime", "oversized"}, Status: model.ItemAvailable, Points: 180},
		{ItemID: "item-jeans", UserID: "jane-demo", Title: "Baggy Wide Leg Jeans", Description: "High-rise stretchable baggy jeans.", Category: "Pants", Type: "Casual", Size: "L", Condition: "Gently Used", Tags: []string{"baggy", "jeans"}, Status: model.ItemAvailable, Points: 220},
		{ItemID: "item-cargo", UserID: "john-demo", Title: "Breathable Cargo Pants", Description: "Light baggy cargo pants.", Category: "Pants", Type: "Casual", Size: "S", Condition: "Gently Used", Tags: []string{"cargo"}, Status: model.ItemPending, Points: 150},
		{ItemID: "item-bomber", UserID: "john-demo", Title: "Bomber Jacket", Description: "Comfortable bomber jacket.", Category: "Jackets", Type: "Casual", Size: "M", Condition: "Gently Used", Tags: []string{"jacket"}, Status: model.ItemAvailable, Points: 300},
	}
	for _, item := range items {
		if err := repo.CreateItem(item); err != nil {
			return err
		}
	}

	return nil
}
