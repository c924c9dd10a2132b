package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notenest/notenest/config"
	"notenest/notenest/routes"
	"notenest/notenest/sources/psql"
	"notenest/notenest/utils/logging"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Bootstrap loads config and starts logging. Callers must defer logging.Sync.
func Bootstrap() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := logging.InitLogger(logging.Options{Dir: cfg.LogDir, Level: cfg.LogLevel, Console: cfg.LogConsole}); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func connect(cfg config.Config) (*psql.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}
	return db, nil
}

// Migrate applies the schema and returns.
func Migrate(cfg config.Config) error {
	db, err := connect(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := psql.Migrate(ctx, db.DB); err != nil {
		return err
	}
	logging.AppLogger.Info("schema migrated")
	return nil
}

// Run serves HTTP until SIGINT or SIGTERM, then drains in-flight requests
// and closes the pool.
func Run(cfg config.Config) error {
	db, err := connect(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := psql.Migrate(ctx, db.DB)
		cancel()
		if err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           routes.NewRouter(db, cfg.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.AppLogger.Info("starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server listen error: %w", err)
		}
		return nil
	case sig := <-sigCh:
		logging.AppLogger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	logging.AppLogger.Info("server shutdown complete")
	return nil
}
