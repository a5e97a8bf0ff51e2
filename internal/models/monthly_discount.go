package models

import "time"

// MonthlyDiscount: Store bazında aylık toplam indirim tutarı.
type MonthlyDiscount struct {
	ID            uint    `gorm:"primaryKey"`
	StoreID       uint    `gorm:"index;not null;uniqueIndex:idx_discount_store_period"`
	Year          int     `gorm:"not null;uniqueIndex:idx_discount_store_period"`
	Month         int     `gorm:"not null;uniqueIndex:idx_discount_store_period"`
	TotalDiscount float64 `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
