package models

import "time"

// MaterialMonthlyUsage: Ay sonu fiili sayım sonucu (gerçek tüketim).
type MaterialMonthlyUsage struct {
	ID           uint    `gorm:"primaryKey"`
	StoreID      uint    `gorm:"index;not null;uniqueIndex:idx_usage_store_material_period"`
	MaterialID   uint    `gorm:"not null;uniqueIndex:idx_usage_store_material_period"`
	Year         int     `gorm:"not null;uniqueIndex:idx_usage_store_material_period"`
	Month        int     `gorm:"not null;uniqueIndex:idx_usage_store_material_period"`
	QuantityUsed float64 `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
