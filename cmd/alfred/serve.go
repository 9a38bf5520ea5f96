package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/alfredhq/alfred/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the recurrence scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		if conf.JWT.Secret == "" {
			return errors.New("jwt.secret is required (set ALFRED_JWT_SECRET)")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, conf)
		if err != nil {
			return err
		}
		defer a.Close()

		if conf.Recurrence.Schedule != "" {
			c := cron.New()
			if _, err := a.recurrence.Schedule(c, conf.Recurrence.Schedule); err != nil {
				return fmt.Errorf("recurrence schedule %q: %w", conf.Recurrence.Schedule, err)
			}
			c.Start()
			defer c.Stop()
		}

		gin.SetMode(conf.Server.Mode)
		r := gin.New()
		r.Use(gin.Logger(), gin.Recovery())
		api.RegisterRoutes(r, a.controllers(), conf.JWT.Secret)

		srv := &http.Server{Addr: conf.Server.Port, Handler: r}
		errCh := make(chan error, 1)
		go func() {
			slog.Info("alfred server starting", "port", conf.Server.Port, "db", conf.Database.Driver, "model", conf.Model.Provider)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		slog.Info("alfred server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
