package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Alijeyrad/complaintdesk/config"
)

// NewGormClient opens a gorm handle over the lib/pq pool built from central config.
func NewGormClient(cfg config.DatabaseConfig) (*gorm.DB, error) {
	return NewGormClientFromConfig(FromCentralConfig(cfg))
}

// NewGormClientFromConfig opens a gorm handle over the lib/pq pool built from cfg.
func NewGormClientFromConfig(cfg Config) (*gorm.DB, error) {
	sqlDB, err := openSQLDB(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger: logger.Discard,
	}
	if cfg.EnableLogging {
		gormCfg.Logger = logger.New(slogWriter{}, logger.Config{
			SlowThreshold:             cfg.SlowQueryThreshold(),
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the tables for the given models.
func Migrate(ctx context.Context, db *gorm.DB, models ...any) error {
	return db.WithContext(ctx).AutoMigrate(models...)
}

// Close releases the pool underneath a gorm handle.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// slogWriter routes gorm's printf-style logger into the default slog logger.
type slogWriter struct{}

func (slogWriter) Printf(format string, args ...any) {
	slog.Warn(fmt.Sprintf(format, args...), "component", "gorm")
}

// Shared is a process-wide gorm handle opened at most once.
// Concurrent first callers block on the same connection attempt.
type Shared struct {
	mu  sync.Mutex
	cfg Config
	db  *gorm.DB
}

func NewShared(cfg Config) *Shared {
	return &Shared{cfg: cfg}
}

// Get returns the shared handle, opening it on first use.
// A failed attempt is not cached, so the next call retries.
func (s *Shared) Get() (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := NewGormClientFromConfig(s.cfg)
	if err != nil {
		return nil, err
	}
	s.db = db
	return db, nil
}

// Close closes the shared handle if it was opened.
func (s *Shared) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := Close(s.db)
	s.db = nil
	return err
}
