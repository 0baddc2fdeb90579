package database

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StoreFileName is the single on-disk artifact the core owns. Its absence
// (or an empty table inside it) is what triggers a full corpus re-ingestion.
const StoreFileName = "vectors.db"

func getLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

// NewGormDB opens (creating if needed) the SQLite vector store under
// persistDir.
func NewGormDB(persistDir string) (*gorm.DB, error) {
	if err := os.MkdirAll(persistDir, 0o755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(persistDir, StoreFileName)
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers itself; keep one connection to avoid
	// SQLITE_BUSY churn during bulk ingestion.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
