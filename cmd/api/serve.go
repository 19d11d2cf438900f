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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/trift/moneycheck/internal/config"
	"github.com/trift/moneycheck/internal/handler"
	"github.com/trift/moneycheck/internal/integrations/payment"
	"github.com/trift/moneycheck/internal/repository"
	"github.com/trift/moneycheck/internal/service"
	"github.com/trift/moneycheck/internal/utils/email"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: ./moneycheck.yaml)")
	return cmd
}

func serve(configPath string) error {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize layers
	var opts []service.Option
	if cfg.PaymentsEnabled() {
		opts = append(opts, service.WithPayments(payment.NewClient(cfg, logger)))
	} else {
		logger.Warn("Stripe is not configured, checkout is disabled")
	}
	if cfg.MailEnabled() {
		opts = append(opts, service.WithMailer(email.NewSender(cfg, logger)))
	}

	repo := repository.NewRepository()
	svc, err := service.NewService(repo, logger, cfg, opts...)
	if err != nil {
		return err
	}
	h := handler.NewHandler(svc, logger)

	sweeper, err := svc.StartSweeper()
	if err != nil {
		return err
	}
	defer sweeper.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(h, svc, logger, cfg.SessionTTL, cfg.BaseURL),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
