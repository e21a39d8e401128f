package db

import (
	"fmt"

	"energy-tracker/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured database. TranslateError is on so unique
// constraint violations surface as gorm.ErrDuplicatedKey on both drivers.
func Connect(cfg config.DB) (*gorm.DB, error) {
	gc := &gorm.Config{TranslateError: true}
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Pass, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), gc)
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.Path), gc)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.Driver)
	}
}
