package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iudanet/expensekeeper/internal/server"
	"github.com/iudanet/expensekeeper/internal/server/events"
	"github.com/iudanet/expensekeeper/internal/server/jwt"
	"github.com/iudanet/expensekeeper/internal/server/storage/backend"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the HTTP API server",
		PreRunE: a.initConfig,
		RunE:    a.runServe,
	}

	cmd.Flags().String("addr", ":3000", "HTTP listen address")
	cmd.Flags().String("nats-url", "", "NATS server URL for transaction events (disabled when empty)")
	_ = a.v.BindPFlag("http.addr", cmd.Flags().Lookup("addr"))
	_ = a.v.BindPFlag("events.nats_url", cmd.Flags().Lookup("nats-url"))

	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := a.cfg
	logger := a.logger

	logger.Info("starting ExpenseKeeper server",
		slog.String("version", Version),
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("db_driver", cfg.Database.Driver))

	store, err := backend.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	tokens, err := jwt.NewService([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Events.NATSURL != "" {
		natsPublisher, err := events.NewNATSPublisher(cfg.Events.NATSURL, cfg.Events.SubjectPrefix)
		if err != nil {
			return err
		}
		publisher = natsPublisher
		logger.Info("publishing transaction events to NATS", slog.String("url", cfg.Events.NATSURL))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("failed to close event publisher", slog.Any("error", err))
		}
	}()

	router := server.NewRouter(server.Deps{
		Logger:      logger,
		Storage:     store,
		Tokens:      tokens,
		Publisher:   publisher,
		Version:     Version,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	srv := server.New(cfg.HTTP.Addr, router, logger, cfg.HTTP.ShutdownTimeout)
	return srv.Run(ctx)
}
