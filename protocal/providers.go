package protocal

import (
	"context"
	"fmt"
	"time"

	"getcooked/configs"
	"getcooked/internal/adapters/output/gemini"
	"getcooked/internal/adapters/output/lmstudio"
	"getcooked/internal/adapters/output/memory"
	"getcooked/internal/adapters/output/redis"
	"getcooked/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const ledgerSweepInterval = 5 * time.Minute

func setupLogger(cfg configs.App) {
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if cfg.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func newTextGenerator(ctx context.Context, cfg *configs.Config) (output.TextGenerator, error) {
	switch cfg.Model.Provider {
	case "", "gemini":
		generator, err := gemini.NewGeminiClientAdapter(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return generator, nil
	case "lmstudio":
		return lmstudio.NewLMStudioClientAdapter(cfg.LMStudio)
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Model.Provider)
	}
}

// newStateLedger builds the configured ledger. The memory ledger is swept until ctx is done.
func newStateLedger(ctx context.Context, cfg configs.StateStore) (output.StateLedger, error) {
	switch cfg.Driver {
	case "", "memory":
		ledger := memory.NewMemoryStateLedger()
		go sweepLedger(ctx, ledger, ledgerSweepInterval)
		return ledger, nil
	case "redis":
		ledger, err := redis.NewRedisStateLedger(ctx, cfg.RedisURL, cfg.Prefix)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis state ledger: %w", err)
		}
		return ledger, nil
	default:
		return nil, fmt.Errorf("unknown state store driver %q", cfg.Driver)
	}
}

func sweepLedger(ctx context.Context, ledger *memory.MemoryStateLedger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := ledger.Sweep(); removed > 0 {
				logrus.Debugf("Swept %d expired oauth states", removed)
			}
		}
	}
}
