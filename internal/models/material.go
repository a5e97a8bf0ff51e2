package models

import "time"

// Maliyet hesabına sadece bu kullanım türündeki malzemeler girer.
const MaterialUseTypeCost = "cost"

type Material struct {
	ID             uint   `gorm:"primaryKey"`
	StoreID        uint   `gorm:"index;not null;uniqueIndex:idx_material_store_number"`
	MaterialNumber string `gorm:"size:50;not null;uniqueIndex:idx_material_store_number"`
	Name           string `gorm:"size:100;not null"`
	Unit           string `gorm:"size:20"`
	UseType        string `gorm:"size:20;index"` // "cost" dışındakiler hesap dışı
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
