// Package db provides the GORM database bootstrap for the server.
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"watchlist_backend/internal/platform/config"

	authentity "watchlist_backend/internal/feature/auth/domain/entity"
	watchlistentity "watchlist_backend/internal/feature/watchlist/domain/entity"
)

// connectTimeout is how long Open keeps retrying before giving up.
const connectTimeout = 60 * time.Second

// BuildDSN builds a MySQL DSN from the given settings.
// A Cloud SQL instance name takes precedence over host/port.
func BuildDSN(cfg config.DBConfig) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Open connects to the database, retrying until connectTimeout elapses.
// DATABASE_URL selects Postgres; otherwise the MySQL settings are used.
// When cfg.RunMigrations is set, the schema is auto-migrated.
func Open(cfg *config.Config) *gorm.DB {
	dialector := dialectorFor(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after %v: %v", connectTimeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		// マイグレーション（User, UserStock）
		if err := db.AutoMigrate(
			&authentity.User{},
			&watchlistentity.UserStock{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// dialectorFor picks the GORM dialector for the configured store.
func dialectorFor(cfg *config.Config) gorm.Dialector {
	if cfg.DatabaseURL != "" {
		return gpostgres.Open(cfg.DatabaseURL)
	}
	return gmysql.Open(BuildDSN(cfg.DB))
}
