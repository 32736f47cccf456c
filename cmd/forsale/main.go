package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shinyyama/forsale/internal/catalog"
	"github.com/shinyyama/forsale/internal/config"
	"github.com/shinyyama/forsale/internal/logging"
	"github.com/shinyyama/forsale/internal/repository"
	"github.com/shinyyama/forsale/internal/service"
	"github.com/shinyyama/forsale/internal/shell"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// After the first signal, restore default handling so a second one kills the process.
		<-ctx.Done()
		stop()
	}()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr); err != nil && !errors.Is(err, context.Canceled) {
		stop()
		log.Fatalf("forsale: %v", err)
	}
}

// run wires one marketplace for the life of the process. Logs go to stderr so
// they stay out of the menu.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)

	market := service.NewMarketplace(repository.NewItemRepository(), logger)

	if cfg.Catalog != "" {
		listings, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		n := catalog.Seed(market, listings)
		logger.Info("catalog seeded", slog.String("path", cfg.Catalog), slog.Int("listings", n))
	}

	return shell.New(market, stdin, stdout, logger).Run(ctx)
}
