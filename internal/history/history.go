// Package history records every patch outcome in a local SQLite database so
// that an operator can reconstruct what was done to a server's binaries and
// when.
package history

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Application is one recorded engine outcome.
type Application struct {
	ID         uint64 `gorm:"primaryKey"`
	PatchSet   string
	TargetPath string
	Offset     int64
	Result     string
	DryRun     bool
	CreatedAt  time.Time
}

// Initialize opens (creating if necessary) the history database at filename.
func Initialize(filename string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(filename), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening history database: %w", err)
	}

	if err := db.AutoMigrate(&Application{}); err != nil {
		return nil, fmt.Errorf("error auto migrating db: %w", err)
	}
	return db, nil
}

// Record persists a single application outcome.
func Record(db *gorm.DB, application *Application) error {
	return db.Create(application).Error
}

// ListApplications returns every recorded outcome, most recent first.
func ListApplications(db *gorm.DB) ([]Application, error) {
	var applications []Application
	if err := db.Order("created_at desc, id desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
