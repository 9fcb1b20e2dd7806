package infra

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storefront/internal/devserver/entity"
)

// Connect はsqliteに接続して *gorm.DB を返す。
// DSNは file:dev.db のほか、テスト用に file::memory: も使える。
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Order{},
		&entity.Payment{},
		&entity.ReturnRequest{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
