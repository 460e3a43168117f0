package store

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dao persists swap records in MySQL.
type Dao struct {
	db *gorm.DB
}

// NewDao opens dsn and migrates the swap table.
func NewDao(dsn string) (*Dao, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.AutoMigrate(&SwapRecord{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Dao{db: db}, nil
}

func (dao *Dao) SaveSwap(rec *SwapRecord) error {
	return dao.db.Create(rec).Error
}

func (dao *Dao) Close() error {
	sqlDB, err := dao.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
