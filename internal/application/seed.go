package application

import (
	"context"
	"fmt"

	"github.com/itbasis/go-clock"

	"github.com/accadex/accadex/internal/domain/entity"
	repo "github.com/accadex/accadex/internal/domain/repository"
	"github.com/accadex/accadex/pkg/helpers"
)

// Demo account created by the seed command.
const (
	DemoName     = "Demo Player"
	DemoEmail    = "demo@accadex.com"
	DemoPassword = "demo123"
	DemoAcademy  = "Elite Sports Academy"
)

// SeedDemo wipes users, matches and insights, then creates the demo player
// with its match history and insight feed. Schedules are left untouched.
func SeedDemo(ctx context.Context, store repo.Store, clk clock.Clock) (*entity.User, error) {
	if err := store.Users().DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear users: %w", err)
	}
	if err := store.Matches().DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear matches: %w", err)
	}
	if err := store.Insights().DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear insights: %w", err)
	}

	hash, err := helpers.HashPassword(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := clk.Now().UTC()
	u := &entity.User{
		Name:      DemoName,
		Email:     DemoEmail,
		Password:  hash,
		Academy:   DemoAcademy,
		Role:      entity.RolePlayer,
		CreatedAt: now,
	}
	if err := store.Users().Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create demo user: %w", err)
	}
	if err := store.Matches().CreateMany(ctx, DemoMatches(u.ID, now)); err != nil {
		return nil, fmt.Errorf("create demo matches: %w", err)
	}
	if err := store.Insights().CreateMany(ctx, DemoInsights(u.ID, now)); err != nil {
		return nil, fmt.Errorf("create demo insights: %w", err)
	}
	return u, nil
}
