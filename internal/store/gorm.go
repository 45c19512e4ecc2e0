package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diyakohli02/rwh-assessment-service/internal/config"
	"github.com/diyakohli02/rwh-assessment-service/internal/store/model"
)

// InitDB opens the configured database. SQLite is the default for local and
// single-node deployments; pgsql for anything shared.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	var dia gorm.Dialector

	if cfg.DatabaseType == "pgsql" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s port=%d dbname=%s",
			cfg.DatabaseHost,
			cfg.DatabaseUser,
			cfg.DatabasePassword,
			cfg.DatabasePort,
			cfg.DatabaseName,
		)
		dia = postgres.Open(dsn)
	} else {
		dia = sqlite.Open(cfg.DatabaseName)
	}

	db, err := gorm.Open(dia, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("configure connections: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

// Migrate creates or updates the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Assessment{}, &model.Report{})
}
