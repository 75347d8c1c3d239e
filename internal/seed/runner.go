package seed

import (
	"context"
	"fmt"

	"github.com/denniswu/swinglab/internal/adapters/history"
	"github.com/denniswu/swinglab/pkg/logger"
)

// Run generates cfg.Sessions records and submits them one by one. Partial
// failures are logged and counted; the run only errors when nothing was
// stored.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get().Named("seed")
	client := history.New(cfg.BaseURL, history.WithTimeout(cfg.Timeout))

	records := Generate(cfg)
	log.Info(ctx, "generated sessions",
		logger.Int("count", len(records)),
		logger.String("target", cfg.BaseURL))

	stored := 0
	for i, rec := range records {
		select {
		case <-ctx.Done():
			return fmt.Errorf("seeding cancelled after %d of %d: %w", stored, len(records), ctx.Err())
		default:
		}

		id, err := client.Submit(ctx, rec)
		if err != nil {
			log.Warn(ctx, "submit failed",
				logger.Int("index", i),
				logger.String("athlete", rec.AthleteName),
				logger.Error(err))
			continue
		}
		stored++
		if cfg.Verbose {
			log.Info(ctx, "stored session",
				logger.String("id", id),
				logger.String("athlete", rec.AthleteName),
				logger.Float64("avgScore", rec.AvgScore))
		}
	}

	if stored == 0 && len(records) > 0 {
		return fmt.Errorf("no sessions stored out of %d attempted", len(records))
	}
	log.Info(ctx, "seeding complete",
		logger.Int("stored", stored),
		logger.Int("attempted", len(records)))
	return nil
}
