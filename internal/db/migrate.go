package db

import (
	"errors" // Error inspection
	"fmt"    // Error wrapping

	"emerge/internal/config" // Custom package for configuration
	"emerge/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger levels
)

// Open connects to the configured store. The sqlite file is created if absent.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	case "mysql":
		dialector = mysql.Open(cfg.MySQLDSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	gormCfg := &gorm.Config{}
	if cfg.IsProd {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent) // Keep SQL out of production logs
	}
	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// Migrate creates missing tables, foreign keys and indexes
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(&domain.User{}, &domain.Journey{}, &domain.Goal{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logrus.Info("Migration completed.")
	return nil
}

// Seed inserts the demo user and its journey when they are missing.
// Running it again is a no-op.
func Seed(db *gorm.DB) error {
	inserted := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var user domain.User
		err := tx.Select("id").First(&user, domain.DemoUserID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = domain.User{ID: domain.DemoUserID, Username: domain.SeedUsername, IsNew: true}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("seed user: %w", err)
			}
			inserted = true
		case err != nil:
			return fmt.Errorf("lookup seed user: %w", err)
		}

		var journeys int64
		if err := tx.Model(&domain.Journey{}).Where("user_id = ?", domain.DemoUserID).Count(&journeys).Error; err != nil {
			return fmt.Errorf("count seed journey: %w", err)
		}
		if journeys == 0 {
			journey := domain.Journey{UserID: domain.DemoUserID, Level: domain.SeedLevel, Progress: 0}
			if err := tx.Create(&journey).Error; err != nil {
				return fmt.Errorf("seed journey: %w", err)
			}
			inserted = true
		}
		return nil
	})
	if err != nil {
		return err
	}
	if inserted {
		logrus.WithField("user_id", domain.DemoUserID).Info("Database initialized with seed data")
	}
	return nil
}

// Bootstrap runs Migrate followed by Seed
func Bootstrap(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}
	return Seed(db)
}
