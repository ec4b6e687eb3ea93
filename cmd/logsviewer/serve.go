package main

import (
	stderrors "errors"
	"io"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/logsviewer/logsviewer/app"
	"github.com/logsviewer/logsviewer/internal/config"
	"github.com/logsviewer/logsviewer/internal/errors"
	"github.com/logsviewer/logsviewer/pkg/middleware"
	"github.com/logsviewer/logsviewer/pkg/nav"
	"github.com/logsviewer/logsviewer/pkg/router"
	"github.com/logsviewer/logsviewer/pkg/routes"
	"github.com/logsviewer/logsviewer/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the LogsViewer server",
		Long: `Start the HTTP server.

Configuration is read from --config, or from logsviewer.json or
logsviewer.toml in the working directory. Without either, defaults
are used.

Examples:
  logsviewer serve
  logsviewer serve --port=9090
  logsviewer serve -c deploy/logsviewer.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg, cmd.ErrOrStderr())
			srv, err := buildServer(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := srv.Run(ctx); err != nil {
				return errors.New("E500").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}

// loadConfig reads the file named by --config, or the working directory
// config, falling back to defaults when neither exists.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var path string
	if f := cmd.Flag("config"); f != nil {
		path = f.Value.String()
	}
	if path != "" {
		return config.LoadFile(path)
	}

	cfg, err := config.Load(".")
	if stderrors.Is(err, errors.New("E100")) {
		return config.New(), nil
	}
	return cfg, err
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("app", cfg.Name)
}

// buildServer wires the route table, navigation middleware and pipeline
// settings from cfg into a server.
func buildServer(cfg *config.Config, logger *slog.Logger) (*server.Server, error) {
	table, err := app.Routes(routes.WithDuplicatePolicy(cfg.DuplicatePolicy()))
	if err != nil {
		return nil, err
	}
	if dups := table.Duplicates(); len(dups) > 0 {
		logger.Warn("duplicate route paths shadowed", "paths", dups)
	}

	sw := router.NewSwitch(table, app.Fallback(cfg.Navigation.NotFoundTitle), router.WithSwitchLogger(logger))

	serverConfig := &server.ServerConfig{
		Address:            cfg.Address(),
		ShutdownTimeout:    cfg.ShutdownTimeout(),
		SessionReadTimeout: cfg.ReadTimeout(),
		WriteTimeout:       cfg.WriteTimeout(),
		MaxSessions:        cfg.Server.MaxSessions,
	}

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithLayout(app.Shell(table)),
		server.WithPipelineOptions(
			nav.WithFocusDelay(cfg.FocusDelay()),
			nav.WithFocusTarget(cfg.Navigation.FocusTarget),
			nav.WithLogger(logger),
		),
	}

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics := middleware.NewMetrics(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(reg),
		)
		serverConfig.MetricsPath = cfg.Metrics.Path
		serverConfig.Gatherer = reg
		opts = append(opts, server.WithMetrics(metrics))
	}

	if cfg.Tracing.Enabled {
		opts = append(opts, server.WithNavigationMiddleware(
			middleware.OpenTelemetry(middleware.WithTracerName(cfg.Tracing.TracerName)),
		))
	}

	return server.New(sw, serverConfig, opts...), nil
}
