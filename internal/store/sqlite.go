package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/selene-app/selene/internal/models"
)

// ErrSourceUnavailable marks a load failure of the underlying observation
// source. Callers surface it as "no data"; it is never swallowed.
var ErrSourceUnavailable = errors.New("observation source unavailable")

func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := database.AutoMigrate(&DayEntry{}); err != nil {
		return nil, fmt.Errorf("migrate day entries: %w", err)
	}

	return database, nil
}

// SQLiteSource is the query-engine-backed observation source: day entries
// live in a sqlite table and range loads are a single ordered query.
type SQLiteSource struct {
	database *gorm.DB
}

func NewSQLiteSource(database *gorm.DB) *SQLiteSource {
	return &SQLiteSource{database: database}
}

func (source *SQLiteSource) Load(ctx context.Context, from time.Time, to time.Time) (map[string]models.SymptomRecord, error) {
	entries := make([]DayEntry, 0)
	err := source.database.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: query day entries: %v", ErrSourceUnavailable, err)
	}

	records := make(map[string]models.SymptomRecord, len(entries))
	for _, entry := range entries {
		records[entry.Date.Format(models.DateLayout)] = entry.toRecord()
	}
	return records, nil
}
