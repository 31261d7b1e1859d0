package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sternrassler/pagelinks/pkg/cache"
	"github.com/Sternrassler/pagelinks/pkg/config"
	"github.com/Sternrassler/pagelinks/pkg/logging"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var configPath, envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo HTTP server",
		Long: `Serve a synthetic paged item list at /items with a pagination control,
plus /pagination (control fragment), /health, /ready and /metrics.

Configuration comes from --config (YAML), then the environment
(PORT, REDIS_URL, LOG_LEVEL, LOG_PRETTY, CACHE_TTL, NUMBER_OF_LINKS,
PAGE_SIZE, ITEM_COUNT). An empty REDIS_URL disables the markup cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	return cmd
}

func runServe(ctx context.Context, cfg config.ServerConfig) error {
	logger := logging.Setup(cfg.Log)

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("connect to Redis at %s: %w", cfg.RedisURL, err)
		}
		logger.Info().Str("redis", cfg.RedisURL).Msg("Connected to Redis")
	} else {
		logger.Info().Msg("Markup cache disabled")
	}

	srv := newServer(cfg, redisClient, logger)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", httpServer.Addr).
			Int("number_of_links", cfg.NumberOfLinks).
			Int("page_size", cfg.PageSize).
			Int("item_count", cfg.ItemCount).
			Msg("Starting pagelinks server")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newCacheManager returns nil when caching is disabled.
func newCacheManager(redisClient *redis.Client, cfg config.ServerConfig) *cache.Manager {
	if redisClient == nil {
		return nil
	}
	return cache.NewManager(redisClient, cfg.CacheTTL, logging.NewLogger("cache"))
}
