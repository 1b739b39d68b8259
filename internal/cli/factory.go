package cli

import (
	"log/slog"

	"github.com/tabula-historica/snapshot"
	"github.com/tabula-historica/snapshot/internal/config"
	"github.com/tabula-historica/snapshot/pkg/adapters/file"
	"github.com/tabula-historica/snapshot/pkg/adapters/redis"
	"github.com/tabula-historica/snapshot/pkg/ports"
)

// newRedisStore builds the configured Redis mirror, or nil when none is configured.
func newRedisStore(cfg config.Config) *redis.Store {
	if !cfg.Redis.Enabled() {
		return nil
	}
	return redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		redis.WithKey(cfg.Redis.Key),
		redis.WithTTL(cfg.Redis.TTL),
	)
}

// newExporter wires the exporter described by cfg.
// The returned cleanup function releases any connections and is never nil.
func newExporter(cfg config.Config, logger *slog.Logger) (*snapshot.Exporter, func()) {
	opts := []snapshot.Option{
		snapshot.WithStripKeys(cfg.Strip...),
		snapshot.WithAllowMissing(cfg.AllowMissing),
		snapshot.WithIndent(cfg.Indent),
		snapshot.WithLogger(logger),
	}

	cleanup := func() {}
	if rs := newRedisStore(cfg); rs != nil {
		opts = append(opts, snapshot.WithMirror(rs))
		cleanup = func() {
			if err := rs.Close(); err != nil {
				logger.Debug("Failed to close redis client", "error", err)
			}
		}
	}

	exp := snapshot.New(file.New(cfg.Input), file.New(cfg.Output), opts...)
	return exp, cleanup
}

// publishedStore is the location the snapshot is served from: the Redis mirror when
// configured, the output file otherwise.
func publishedStore(cfg config.Config) (ports.DocumentLoader, func()) {
	if rs := newRedisStore(cfg); rs != nil {
		return rs, func() { _ = rs.Close() }
	}
	return file.New(cfg.Output), func() {}
}
