package models

import "time"

// RecipeLine: Bir ürünün bir malzemeden standart tüketimi (BOM satırı).
type RecipeLine struct {
	ID                 uint    `gorm:"primaryKey"`
	StoreID            uint    `gorm:"index;not null;uniqueIndex:idx_recipe_store_dish_material"`
	DishID             uint    `gorm:"not null;uniqueIndex:idx_recipe_store_dish_material"`
	MaterialID         uint    `gorm:"not null;uniqueIndex:idx_recipe_store_dish_material"`
	StandardQuantity   float64 `gorm:"not null;default:0"`
	LossRate           float64 `gorm:"not null;default:0"` // 0.1 = %10 fire payı
	UnitConversionRate float64 `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
