// Package sqlite is the embedded, transactional implementation of the
// repository interfaces, built on gorm and a pure-Go SQLite driver.
package sqlite

import (
	"errors"
	"fmt"
	"strings"

	gormsqlite "github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open establishes a SQLite connection and migrates the schema. Use
// ":memory:" for a throwaway database.
func Open(path string, logger *zap.Logger) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// A single connection serialises transactions, which is what makes the
	// ledger's check-and-insert sequences atomic on SQLite.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&exerciseRow{}, &trainingPlanRow{}, &planExerciseRow{}, &clientPlanRow{}, &workoutLogRow{}); err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Info("database initialized", zap.String("driver", "sqlite"), zap.String("path", path))
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
