package database

import (
	"fmt"
	"time"

	"estimate_request_service/internal/config"
	"estimate_request_service/internal/domain/entities"
	"estimate_request_service/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const connectAttempts = 10

// Models lists every relational table owned by the service.
var Models = []any{
	&entities.Company{},
	&entities.User{},
	&entities.EmailNotificationSetting{},
	&entities.SlackSetting{},
	&entities.Project{},
	&entities.Currency{},
	&entities.Estimate{},
	&entities.EstimateRequest{},
}

// ConnectRelational opens the relational store and brings its schema up to
// date: SQL migrations when MIGRATIONS is set on postgres, AutoMigrate
// otherwise.
func ConnectRelational(cfg config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel))}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.DatabaseDSN), gormCfg)
	default:
		for i := 1; i <= connectAttempts; i++ {
			db, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), gormCfg)
			if err == nil {
				break
			}
			logger.Warn("database connection failed, retrying", "attempt", i, "error", err)
			time.Sleep(2 * time.Second)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Migrations && cfg.DBDriver == "postgres" {
		if err := RunSQLMigrations(cfg.DatabaseDSN); err != nil {
			return nil, fmt.Errorf("sql migrations: %w", err)
		}
		return db, nil
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	for _, m := range Models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

func gormLogLevel(level string) gormlogger.LogLevel {
	if level == "debug" {
		return gormlogger.Info
	}
	return gormlogger.Silent
}
