// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/momeni/vehicles-api/pkg/adapter/config"
	"github.com/momeni/vehicles-api/pkg/adapter/observability"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin"
	"github.com/momeni/vehicles-api/pkg/adapter/restful/gin/routes"
	"github.com/momeni/vehicles-api/pkg/core/log"
	"github.com/momeni/vehicles-api/pkg/core/repo"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start one of the REST services",
	Long: `Start one of the REST services, listening on the gin.address of
the configuration file. All services expose /healthz and /metrics too.
The service stops gracefully on SIGINT or SIGTERM.`,
}

var serveVehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Serve the vehicles API under /api/vehicles/v1",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve(withPool(func(
			e *gin.Engine, p repo.Pool, c *config.Config,
			m *observability.Metrics,
		) error {
			return routes.RegisterVehicles(e, p, c, m)
		}))
	},
}

var servePricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Serve the pricing API under /api/pricing/v1 and /services",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve(withPool(func(
			e *gin.Engine, p repo.Pool, c *config.Config,
			_ *observability.Metrics,
		) error {
			return routes.RegisterPricing(e, p, c)
		}))
	},
}

var serveMapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Serve the mock maps API under /maps",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve(func(
			_ context.Context, _ *config.Config, e *gin.Engine,
			_ *observability.Metrics,
		) (func(), error) {
			routes.RegisterMaps(e, nil)
			return func() {}, nil
		})
	},
}

// registerer adds the service routes to the e engine and returns a
// closer which releases its resources after the server is stopped.
type registerer func(
	ctx context.Context,
	c *config.Config,
	e *gin.Engine,
	m *observability.Metrics,
) (closer func(), err error)

// withPool creates a registerer which opens a connection pool with the
// normal role and passes it to the register function.
func withPool(
	register func(
		e *gin.Engine, p repo.Pool, c *config.Config,
		m *observability.Metrics,
	) error,
) registerer {
	return func(
		ctx context.Context, c *config.Config, e *gin.Engine,
		m *observability.Metrics,
	) (func(), error) {
		p, err := c.ConnectionPool(ctx, repo.NormalRole)
		if err != nil {
			return nil, fmt.Errorf("creating DB pool: %w", err)
		}
		if err = register(e, p, c, m); err != nil {
			p.Close()
			return nil, fmt.Errorf("registering routes: %w", err)
		}
		return func() {
			if err := p.Close(); err != nil {
				log.Warn(ctx, "closing DB pool", log.Err("err", err))
			}
		}, nil
	}
}

// serve loads the configs, creates a gin engine having the ops routes,
// lets the register function add the service routes, and serves them
// until a termination signal is received.
func serve(register registerer) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	m := observability.NewMetrics()
	e := c.Gin.NewEngine(m)
	routes.RegisterOps(e)
	closer, err := register(ctx, c, e, m)
	if err != nil {
		return err
	}
	defer closer()

	srv := &http.Server{
		Addr:              c.Gin.Address,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	errs := make(chan error, 1)
	go func() {
		log.Info(ctx, "http server starting", slog.String("addr", srv.Addr))
		errs <- srv.ListenAndServe()
	}()
	select {
	case err = <-errs:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), shutdownTimeout,
	)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	if err = <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func init() {
	serveCmd.AddCommand(serveVehiclesCmd, servePricingCmd, serveMapsCmd)
	rootCmd.AddCommand(serveCmd)
}
