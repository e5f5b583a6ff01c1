package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"renovahub/internal/adapter/persistence/repository"
	"renovahub/internal/infrastructure/database"
	"renovahub/internal/infrastructure/identity"
	"renovahub/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

const defaultSweepInterval = time.Minute

// The sweeper closes bidding windows whose deadline has passed. It runs the
// same routine the API exposes under /v1/maintenance/bidding-sweep, on a
// ticker, so expired requests transition even when nobody calls the API.
func main() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository.NewRenovationRequestDynamoRepository(ddb)
	interestRepo := repository.NewInspectionInterestDynamoRepository(ddb)
	directory := identity.NewUserDirectory(ddb)

	// Notifications ride on the lifecycle use case; the sweeper itself only
	// needs the close transition, so it runs without a notifier when SES is
	// not configured.
	lifecycle := usecase.NewRequestLifecycleUseCase(requestRepo, interestRepo, directory, nil)
	sweep := usecase.NewSweepUseCase(requestRepo, lifecycle)

	interval := sweepInterval()
	log.Printf("[sweeper] starting interval=%s", interval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runOnce(ctx, sweep)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[sweeper] shutting down")
			return
		case <-ticker.C:
			runOnce(ctx, sweep)
		}
	}
}

func runOnce(ctx context.Context, sweep usecase.ISweepUseCase) {
	summary, err := sweep.SweepExpiredBidding(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("[sweeper] sweep failed: %v", err)
		return
	}
	if summary.Found > 0 {
		log.Printf("[sweeper] sweep done found=%d closed=%d failed=%d", summary.Found, summary.Closed, summary.Failed)
	}
}

func sweepInterval() time.Duration {
	v := os.Getenv("SWEEP_INTERVAL")
	if v == "" {
		return defaultSweepInterval
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[sweeper] invalid SWEEP_INTERVAL %q, using %s", v, defaultSweepInterval)
		return defaultSweepInterval
	}
	return d
}
