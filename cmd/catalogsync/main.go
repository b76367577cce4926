package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/app"
	"github.com/niksmo/storefront/pkg/sigctx"
)

const (
	closeTimeout = 5 * time.Second

	exitOK        = 0
	exitFailed    = 1
	exitBadConfig = 2
)

type catalogPublisher interface {
	PublishCatalog(context.Context) (int, error)
}

func main() {
	os.Exit(run())
}

// run returns the process exit code once the app is closed.
func run() int {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	if !cfg.BrokerEnabled() {
		fmt.Println("broker is not configured: set broker.seed_brokers, " +
			"broker.schema_registry_urls and broker.products_topic")
		return exitBadConfig
	}

	syncer := app.New(sigCtx, cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		syncer.Close(ctx)
	}()

	return publish(sigCtx, syncer)
}

func publish(ctx context.Context, p catalogPublisher) int {
	start := time.Now()
	n, err := p.PublishCatalog(ctx)
	if err != nil {
		fmt.Printf("failed to publish catalog: %s\n", err)
		return exitFailed
	}
	fmt.Printf("published %d products in %s\n", n, time.Since(start))
	return exitOK
}
