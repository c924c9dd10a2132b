package psql

import (
	"context"
	"fmt"
	"time"

	"notenest/notenest/config"
	"notenest/notenest/sources/psql/models"
	"notenest/notenest/utils/logging"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

// PoolOptions bounds the connection pool behind *gorm.DB.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	return Open(ctx, postgres.Open(cfg.DSN()), PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
}

// Open connects through any gorm dialector, applies the pool limits and pings
// the store before returning.
func Open(ctx context.Context, dialector gorm.Dialector, pool PoolOptions) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(),
		TranslateError: true,
		NowFunc:        storeNow,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql pool: %w", err)
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logging.AppLogger.Info("Connected to database", zap.String("dialect", dialector.Name()))
	return &Database{DB: db}, nil
}

// storeNow stamps created_at and updated_at at the precision Postgres keeps,
// so every store holds the same instant the handlers return.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Migrate creates or updates the notes and checklist_items tables, including
// the cascading foreign key from items to notes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&models.Note{}, &models.ChecklistItem{}); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}

func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *Database) Close() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logging.ErrorLogger.Error("database close error", zap.Error(err))
	}
}

// gormWriter sends gorm's own log lines (slow queries, errors) to the app log.
type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warnf(format, args...)
}

func newGormLogger() logger.Interface {
	return logger.New(gormWriter{log: logging.AppLogger.Sugar()}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
