package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"socialmedia/internal/service"
	"socialmedia/internal/store"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

var configFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "socialmedia",
		Short:        "Accounts and messages over a JSON HTTP API",
		SilenceUsage: true,
		RunE:         runServe,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (default ./config.yaml or ./config/config.yaml)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	})
	rootCmd.AddCommand(newMessagesCmd())
	return rootCmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	a, err := newApp(db, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      setupRouter(a),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("listening", "addr", cfg.Server.Addr, "driver", cfg.Database.Driver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newApp wires the stores and services on top of db.
func newApp(db *bun.DB, logger *zap.SugaredLogger) (*app, error) {
	accountStore, err := store.NewAccountStore(db)
	if err != nil {
		return nil, err
	}
	messageStore, err := store.NewMessageStore(db)
	if err != nil {
		return nil, err
	}

	accounts := service.NewAccountService(accountStore, logger)
	return &app{
		accounts: accounts,
		messages: service.NewMessageService(messageStore, accounts, logger),
		logger:   logger,
	}, nil
}

func setupRouter(a *app) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, a.logMiddleware)

	r.HandleFunc("/register", a.registerHandler).Methods(http.MethodPost)
	r.HandleFunc("/login", a.loginHandler).Methods(http.MethodPost)
	r.HandleFunc("/messages", a.createMessageHandler).Methods(http.MethodPost)
	r.HandleFunc("/messages", a.listMessagesHandler).Methods(http.MethodGet)
	r.HandleFunc("/messages/{message_id:[0-9]+}", a.getMessageHandler).Methods(http.MethodGet)
	r.HandleFunc("/messages/{message_id:[0-9]+}", a.deleteMessageHandler).Methods(http.MethodDelete)
	r.HandleFunc("/messages/{message_id:[0-9]+}", a.updateMessageHandler).Methods(http.MethodPatch)
	r.HandleFunc("/accounts/{account_id:[0-9]+}/messages", a.userMessagesHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", a.healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
