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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	bulmaecho "github.com/pthm/bulma/adapters/echo"
	"github.com/pthm/bulma/lib/config"
	"github.com/pthm/bulma/lib/logger"
	"github.com/pthm/bulma/lib/showcase"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	addr  string
	watch bool
}

func newServeCmd(flags *rootFlags) *cobra.Command {
	opts := serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the component showcase",
		Long: `Serve the component showcase over HTTP.

With --config the file is watched and theme, title and accent changes
apply to the next request without a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address, overriding the config")
	cmd.Flags().BoolVar(&opts.watch, "watch", true, "Reload the config file when it changes")

	return cmd
}

// newServer builds the Echo server around the showcase.
func newServer(app *showcase.Showcase, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(bulmaecho.RequestLogger(log))
	bulmaecho.Mount(e, app.Handler())
	return e
}

func runServe(ctx context.Context, flags *rootFlags, opts serveOptions) error {
	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Addr = opts.addr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	log, err := flags.newLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app, err := showcase.New(cfg, log, showcase.NewMetrics(reg))
	if err != nil {
		return err
	}

	if flags.configPath != "" && opts.watch {
		watcher, err := config.NewWatcher(flags.configPath, flags.envFile, func(next *config.Config) {
			if opts.addr != "" {
				next.Addr = opts.addr
			}
			app.SetConfig(next)
		}, log)
		if err != nil {
			return err
		}
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = watcher.Stop() }()
	}

	e := newServer(app, log)
	errCh := make(chan error, 1)
	go func() {
		log.With("addr", cfg.Addr).Info("showcase listening")
		errCh <- e.Start(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
