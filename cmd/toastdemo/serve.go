package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toastkit/internal/gallery"
	"github.com/dmitrymomot/toastkit/pkg/config"
	"github.com/dmitrymomot/toastkit/pkg/httpserver"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/requestid"
	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/toastmetrics"
	"github.com/dmitrymomot/toastkit/pkg/toastweb"
)

const (
	serviceName   = "toastdemo"
	toastBasePath = "/toasts"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`
	HTTP        httpserver.Config
	Toast       toast.Config
}

func serveCmd() *cobra.Command {
	var (
		envFiles []string
		addr     string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gallery and toast API",
		Long: `Serve the gallery page at /, the toast API under /toasts and
Prometheus metrics. Configuration comes from the environment (and .env):

  APP_ENV                development | staging | production
  HTTP_ADDR              listen address (default :8080)
  TOAST_MAX_TOASTS       toasts kept per position (default 5)
  TOAST_POSITION         default position (default top-right)
  TOAST_DURATION         default auto-dismiss delay (default 5s)
  TOAST_CAPACITY_POLICY  per-position | global
  TOAST_PERSISTENT       never auto-dismiss by default`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(envFiles...); err != nil {
				return err
			}
			var cfg appConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Extra .env files to load")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address, overrides HTTP_ADDR")
	return cmd
}

func serve(ctx context.Context, cfg appConfig) error {
	log := logger.New(
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	catalog, err := gallery.Load()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	provider := toast.NewProvider(cfg.Toast,
		toast.WithLogger(log),
		toast.WithObserver(toastmetrics.New(toastmetrics.WithRegistry(reg))),
	)
	defer provider.Close()

	srv := httpserver.New(
		httpserver.WithConfig(cfg.HTTP),
		httpserver.WithLogger(log),
		httpserver.WithDrainHook(func() { _ = provider.Close() }),
	)

	log.InfoContext(ctx, "starting toast demo",
		"version", version,
		"max_toasts", provider.Store().Config().MaxToasts,
		"capacity_policy", string(provider.Store().Config().Policy),
	)
	return srv.Run(ctx, newRouter(cfg, log, provider, catalog, reg))
}

func newRouter(cfg appConfig, log *slog.Logger, provider *toast.Provider, catalog gallery.Catalog, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(toastweb.Middleware(provider))

	r.Get("/healthz", httpserver.HealthHandler(log))
	r.Get("/readyz", httpserver.HealthHandler(log, provider.Ping))
	r.Handle(cfg.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Mount(toastBasePath, toastweb.New(provider,
		toastweb.WithLogger(log),
		toastweb.WithBasePath(toastBasePath),
	))
	r.Mount("/", gallery.NewHandler(catalog,
		gallery.WithLogger(log),
		gallery.WithToastBasePath(toastBasePath),
	))
	return r
}
