package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/skuledger/skuledger/api/v1"
	"github.com/skuledger/skuledger/internal/config"
	"github.com/skuledger/skuledger/internal/handlers"
	"github.com/skuledger/skuledger/internal/server"
	"github.com/skuledger/skuledger/internal/services"
	"github.com/skuledger/skuledger/pkg/scheduler"
)

func newServeCommand(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Configuration) error {
	log := zap.S().Named("serve")

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	// one worker: pipeline steps commit separately and must not interleave
	sched := scheduler.NewScheduler(1)
	defer sched.Close()

	jobs := services.NewJobService(sched, a.pipeline, a.view, a.retention).
		WithMaxFinished(cfg.Jobs.MaxFinishedJobs)
	h := handlers.New(a.inventory, a.metrics, a.delta, a.analytics, jobs)

	if date, rows, err := a.view.RefreshLatest(ctx); err != nil {
		log.Warnw("initial view refresh failed", "error", err)
	} else if date != "" {
		log.Infow("view ready", "as_of", date, "rows", rows)
	}

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("signal received")
		return srv.Stop(context.Background())
	}
}
