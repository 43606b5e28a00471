// Command formkit-demo serves a sign-up form validated with pkg/form and a
// plan price rendered with the currency view helper.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/currency"
	"github.com/dmitrymomot/formkit/pkg/environment"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/redis"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/viewhelper"
)

type appConfig struct {
	Env       string   `env:"APP_ENV" envDefault:"development"`
	Locale    string   `env:"APP_LOCALE" envDefault:"en_US"`
	Currency  string   `env:"APP_CURRENCY"`
	ProPrice  float64  `env:"APP_PRO_PRICE" envDefault:"19.99"`
	Languages []string `env:"APP_LANGUAGES" envSeparator:"," envDefault:"en-US,de-DE,de-AT,fr-FR"`
	UseRedis  bool     `env:"APP_USE_REDIS" envDefault:"false"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("formkit-demo stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "formkit-demo"),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	)
	logger.SetAsDefault(log)
	currency.SetLogger(log)

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}
	var cacheCfg currency.CacheConfig
	if err := config.Load(&cacheCfg); err != nil {
		return err
	}

	opts := []httpserver.Option{httpserver.WithLogger(log)}
	var checks []httpserver.HealthCheck

	if cfg.UseRedis {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		currency.UseCache(redis.NewStoreFromConfig(client, redisCfg), cacheCfg)
		checks = append(checks, redis.Healthcheck(client))
		opts = append(opts, httpserver.WithOnShutdown(func(context.Context) error { return client.Close() }))
	} else {
		currency.UseCache(cacheCfg.MemoryStore(), cacheCfg)
	}

	var currencyOpts []currency.Option
	if cfg.Currency != "" {
		currencyOpts = append(currencyOpts, currency.WithCurrency(cfg.Currency))
	}
	base, err := currency.NewWithContext(ctx, cfg.Locale, currencyOpts...)
	if err != nil {
		return err
	}

	a, err := newApp(viewhelper.NewCurrency(base), cfg.ProPrice, log)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(environment.Parse(cfg.Env)),
		i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(cfg.Languages...))),
	)
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, checks...))
	r.Get("/signup", a.showSignup)
	r.Post("/signup", a.submitSignup)

	log.InfoContext(ctx, "currency configured",
		logger.Locale(base.Locale()),
		logger.Currency(base.Code()),
		slog.Bool("redis_cache", cfg.UseRedis),
	)

	return httpserver.NewFromConfig(srvCfg, opts...).Run(ctx, r)
}
