// Package application wires the planner to its storage, transports and
// background workers.
package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"seatplan/internal/config"
	"seatplan/internal/domain/service/planner"
	"seatplan/internal/infrastructure/cache"
	"seatplan/internal/infrastructure/notifier"
	"seatplan/internal/infrastructure/persistence"
	"seatplan/internal/server"
	"seatplan/internal/transport/bot"
	"seatplan/internal/transport/bot/handler"
	"seatplan/internal/worker"
	"seatplan/pkg/application/connectors"
	"seatplan/pkg/application/modules"
	"seatplan/pkg/contextx"
	"seatplan/pkg/logx"
	"seatplan/pkg/metrics"
	"seatplan/pkg/probe"
)

// Run serves until ctx is done or a module fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log := logx.NewLogger(cfg.App.LogLevel).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	g, ctx := errgroup.WithContext(ctx)

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	checks := map[string]probe.Check{"postgres": pg.Ping}

	var (
		layoutCache planner.LayoutCache = cache.NewMemoryLayoutCache(cfg.Planner.LayoutTTL)
		redisConn   *connectors.Redis
	)

	if cfg.Redis.Enabled() {
		redisConn = &connectors.Redis{
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			Address:            cfg.Redis.Address,
			DatabaseNumber:     cfg.Redis.DB,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdle,
			MaxIdleConnections: cfg.Redis.MaxIdle,
		}
		defer redisConn.Close(ctx)

		layoutCache = cache.NewRedisLayoutCache(redisConn.Client(ctx), cfg.Planner.LayoutTTL)
		checks["redis"] = redisConn.Ping
	}

	svc := planner.NewService(
		persistence.NewRosterRepository(db),
		persistence.NewBallotRepository(db),
		persistence.NewArrangementRepository(db),
		layoutCache,
		planner.Settings{
			Thresholds:   cfg.Planner.Thresholds(),
			Columns:      cfg.Planner.Columns,
			SeatCapacity: cfg.Planner.SeatCapacity,
		},
	).WithRecorder(metrics.NewPlanner(registry))

	if redisConn != nil {
		asynqServer := modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DB,
			Concurrency:   cfg.Planner.RefreshWorkers,
		}

		client := asynq.NewClient(asynqServer.RedisOpt())
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("asynqClient.Close", logx.Error(err))
			}
		}()

		svc.WithRefreshQueue(worker.NewEnqueuer(client))

		asynqServer.Run(ctx, g, modules.AsynqQueues{worker.QueueName: 1}, worker.RefreshHandler(svc))
	} else {
		log.Info("redis not configured, layouts are cached in memory and refreshed inline")
	}

	if err = runBot(ctx, g, cfg.Bot, svc); err != nil {
		return err
	}

	router := server.NewRouter(
		server.NewServer(server.NewCohortServer(svc), server.NewLayoutServer(svc)),
		server.RouterOptions{
			Masker:         logx.NewSensitiveDataMasker(),
			LogFieldMaxLen: cfg.HTTP.LogFieldMaxLen,
			CORSOrigins:    cfg.HTTP.CORSOrigins,
			Metrics:        metrics.NewHTTP(registry),
		},
	)

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	if err = g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

// runBot attaches the notifier when a chat is configured and starts the
// command bot when an admin is.
func runBot(ctx context.Context, g *errgroup.Group, cfg config.Bot, svc *planner.Service) error {
	if !cfg.Enabled() {
		logger(ctx).Info("bot token not set, telegram disabled")
		return nil
	}

	if cfg.ChatID != 0 {
		n, err := notifier.NewTelegramBot(cfg.Token, cfg.ChatID)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		svc.WithNotifier(n)
	}

	if cfg.AdminID != 0 {
		b, err := bot.New(cfg.Token, cfg.AdminID, handler.New(svc))
		if err != nil {
			return fmt.Errorf("bot.New: %w", err)
		}

		g.Go(func() error {
			if err := b.Run(ctx); err != nil {
				return fmt.Errorf("bot.Run: %w", err)
			}
			return nil
		})
	}

	return nil
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
