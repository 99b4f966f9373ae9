package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/optimode/contactkit"
	"github.com/optimode/contactkit/internal/config"
	"github.com/optimode/contactkit/internal/logging"
	"github.com/optimode/contactkit/internal/messages"
	"github.com/optimode/contactkit/internal/metrics"
	"github.com/optimode/contactkit/internal/resultcache"
)

// app is everything a command needs once configuration is loaded.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	metrics   *metrics.Metrics
	validator *contactkit.Validator
}

func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd.Flags(), logging.BootstrapLogger())
	if err != nil {
		return nil, err
	}
	logger, err := logging.BuildLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	logger.Debug("configuration loaded", zap.String("config", cfg.Dump()))

	m := metrics.New()
	v, err := buildValidator(ctx, cfg, logger, m)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, metrics: m, validator: v}, nil
}

func (a *app) close() {
	if err := a.validator.Close(); err != nil {
		a.logger.Warn("closing cache", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// buildValidator wires a Validator from the service configuration.
func buildValidator(ctx context.Context, cfg *config.Config, logger *zap.Logger, rec contactkit.Recorder) (*contactkit.Validator, error) {
	catalog, err := loadCatalog(cfg.Validation.MessagesDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("message catalog loaded", zap.Strings("locales", catalog.Locales()))

	var store contactkit.CacheStore
	switch cfg.Cache.Backend {
	case "redis":
		store, err = resultcache.DialRedis(ctx, cfg.Cache.RedisURL, cfg.Cache.RedisPrefix)
		if err != nil {
			return nil, fmt.Errorf("connect cache: %w", err)
		}
	default:
		store = contactkit.NewMemoryCache(cfg.Cache.MaxEntries)
	}

	v := contactkit.New(cfg.Library()).
		WithCatalog(catalog).
		WithLogger(logger).
		WithRecorder(rec).
		WithCache(store, cfg.Cache.TTL).
		WithDNS(cfg.DNSOptions())
	if opts := cfg.SMTPOptions(); opts != nil {
		v = v.WithSMTP(*opts)
	}
	return v, nil
}

// loadCatalog adds every <locale>.json in dir to the built-in messages.
func loadCatalog(dir string) (*messages.Catalog, error) {
	catalog := messages.Default()
	if dir == "" {
		return catalog, nil
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	for _, f := range files {
		locale := strings.TrimSuffix(filepath.Base(f), ".json")
		if err := catalog.LoadJSON(locale, f); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}
