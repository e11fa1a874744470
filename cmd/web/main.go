// Command web serves the course enrollment pages in front of the REST API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/enroll/modules/user"
	"github.com/dmitrymomot/enroll/pkg/apiclient"
	"github.com/dmitrymomot/enroll/pkg/config"
	"github.com/dmitrymomot/enroll/pkg/httpserver"
	"github.com/dmitrymomot/enroll/pkg/i18n"
	"github.com/dmitrymomot/enroll/pkg/logger"
	"github.com/dmitrymomot/enroll/pkg/redis"
	"github.com/dmitrymomot/enroll/pkg/requestid"
	"github.com/dmitrymomot/enroll/pkg/session"
	"github.com/dmitrymomot/enroll/web/locales"
)

// Config is read from the environment (and .env) on start.
type Config struct {
	App     config.App
	API     apiclient.Config
	HTTP    httpserver.Config
	Redis   redis.Config
	Session session.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.App.Env, cfg.App.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), user.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	translator, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithDefaultLanguage(cfg.App.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	var (
		store  session.Store
		checks []httpserver.Check
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		store = session.NewRedisStore(client, cfg.Redis.KeyPrefix)
		checks = append(checks, redis.Check(client))
		log.InfoContext(ctx, "sessions stored in redis")
	} else {
		memory := session.NewMemoryStore(cfg.Session.CleanupInterval)
		defer memory.Close()
		store = memory
		log.WarnContext(ctx, "REDIS_URL not set, sessions kept in memory")
	}

	sessions, err := session.NewFromConfig(cfg.Session, session.WithStore(store))
	if err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	defer sessions.Close()

	api, err := apiclient.NewFromConfig(cfg.API,
		apiclient.WithHTTPClient(&http.Client{Transport: requestid.Transport{}}),
		apiclient.WithLogger(log),
	)
	if err != nil {
		return fmt.Errorf("api client: %w", err)
	}

	router := newRouter(routerDeps{
		log:        log,
		translator: translator,
		sessions:   sessions,
		api:        api,
		checks:     checks,
	})

	log.InfoContext(ctx, "starting web client",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("api", api.BaseURL()),
	)
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}
