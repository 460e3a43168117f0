package store

import (
	"time"

	"github.com/mem-vault/mem-coin/pkg/amm"
)

// SwapRecord is the persisted form of a swap event.
type SwapRecord struct {
	Id           uint64    `gorm:"primaryKey;autoIncrement;type:bigint(20);not null"`
	PoolId       string    `gorm:"index;type:varchar(66);not null"`
	Caller       string    `gorm:"index;type:varchar(42);not null"`
	InputSide    string    `gorm:"type:varchar(1);not null"`
	InputAmount  uint64    `gorm:"type:bigint(20) unsigned;not null"`
	OutputAmount uint64    `gorm:"type:bigint(20) unsigned;not null"`
	AdminFee     uint64    `gorm:"type:bigint(20) unsigned;not null"`
	ExecutedAt   time.Time `gorm:"not null"`
}

func newSwapRecord(e amm.SwapEvent) *SwapRecord {
	return &SwapRecord{
		PoolId:       e.PoolID.Hex(),
		Caller:       e.Caller.Hex(),
		InputSide:    e.InputSide.String(),
		InputAmount:  e.InputAmount,
		OutputAmount: e.OutputAmount,
		AdminFee:     e.AdminFee,
		ExecutedAt:   e.Time,
	}
}
