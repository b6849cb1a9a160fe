package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/luxurahair/luxura-inventory-api/internal/application/wixsync"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/config"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/lock"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/logger"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/persistence"
	"github.com/luxurahair/luxura-inventory-api/internal/infrastructure/wix"
)

// main runs one synchronization pass and exits. Intended for cron jobs and
// manual operation; the same pass is available over HTTP via POST /wix/sync.
func main() {
	var (
		limit  int
		dryRun bool
	)
	flag.IntVar(&limit, "limit", 0, "Bound the number of catalog parents processed (0 = whole catalog)")
	flag.BoolVar(&dryRun, "dry-run", false, "Execute the full pass and roll everything back")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if cfg.Wix.APIKey == "" || cfg.Wix.SiteID == "" {
		log.Fatal("Wix credentials not configured (set LUXURA_WIX_API_KEY and LUXURA_WIX_SITE_ID)")
	}

	wixCfg := wix.NewConfig(cfg.Wix.APIKey, cfg.Wix.SiteID)
	if cfg.Wix.BaseURL != "" {
		wixCfg.BaseURL = cfg.Wix.BaseURL
	}
	if cfg.Wix.Timeout > 0 {
		wixCfg.TimeoutSeconds = int(cfg.Wix.Timeout.Seconds())
	}
	source, err := wix.NewClient(wixCfg)
	if err != nil {
		log.Fatal("Failed to initialize Wix client", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	runLock := buildRunLock(cfg, log)

	syncService := wixsync.NewSyncService(
		source,
		persistence.NewGormSyncTransactionScope(db.DB),
		persistence.NewGormSyncRunRepository(db.DB),
		runLock,
		cfg.Sync.SalonCode,
		cfg.Sync.SalonName,
		log,
	)

	// Ctrl-C cancels the run; the transaction rolls back and the run record
	// is finalized as cancelled.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := syncService.RunSync(ctx, wixsync.Options{
		Limit:  limit,
		DryRun: dryRun,
	})
	if err != nil {
		log.Fatal("Sync run failed to start", zap.Error(err))
	}

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))

	if !summary.Ok {
		os.Exit(1)
	}
}

// buildRunLock returns the Redis-backed run lock when Redis is reachable so
// a cron-triggered run cannot overlap an HTTP-triggered one. Without Redis
// the in-process lock still guards this process.
func buildRunLock(cfg *config.Config, log *zap.Logger) wixsync.RunLock {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, using in-process run lock",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Error(err),
		)
		_ = client.Close()
		return wixsync.NewInProcessRunLock()
	}

	return lock.NewRedisRunLock(client, "sync:run:lock", cfg.Sync.LockTTL)
}
