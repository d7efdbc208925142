package testutils

import (
	"time"

	"github.com/itbasis/go-clock"

	"github.com/accadex/accadex/config"
	"github.com/accadex/accadex/internal/container"
	"github.com/accadex/accadex/internal/infrastructure/memory"
	"github.com/accadex/accadex/pkg/helpers"
)

// Now is the time the mock clock of NewMemoryContainer starts at.
var Now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// NewMemoryContainer wires an in-memory store, a mock clock and no optional
// integrations: chat runs in demo mode, uploads and search are disabled.
func NewMemoryContainer() (*container.Container, *clock.Mock) {
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		ChatRateLimit:  30,
		UploadMaxBytes: 1 << 20,
	}
	clk := clock.NewMock()
	clk.Set(Now)
	return &container.Container{
		Cfg:    cfg,
		Logger: helpers.NewNopLogger(),
		Clock:  clk,
		Store:  memory.NewStore(),
		JWT:    helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL).WithClock(clk.Now),
	}, clk
}
