package models

import "time"

// DishMonthlySale: Aylık satış ve iade toplamları. Net miktar = satış - iade.
type DishMonthlySale struct {
	ID           uint    `gorm:"primaryKey"`
	StoreID      uint    `gorm:"index;not null;uniqueIndex:idx_sale_store_dish_period"`
	DishID       uint    `gorm:"not null;uniqueIndex:idx_sale_store_dish_period"`
	Year         int     `gorm:"not null;uniqueIndex:idx_sale_store_dish_period"`
	Month        int     `gorm:"not null;uniqueIndex:idx_sale_store_dish_period"`
	SaleAmount   float64 `gorm:"not null;default:0"`
	ReturnAmount float64 `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s DishMonthlySale) NetQuantity() float64 {
	return s.SaleAmount - s.ReturnAmount
}
