package models

import "time"

// Dish: Menüdeki ürün. Aynı ürün farklı boylarda (大/小 vb.) ayrı kayıt tutar,
// bu yüzden doğal anahtar (store, full_code, size) üçlüsüdür.
type Dish struct {
	ID        uint   `gorm:"primaryKey"`
	StoreID   uint   `gorm:"index;not null;uniqueIndex:idx_dish_store_code_size"`
	FullCode  string `gorm:"size:50;not null;uniqueIndex:idx_dish_store_code_size"`
	Size      string `gorm:"size:20;uniqueIndex:idx_dish_store_code_size"`
	ShortCode string `gorm:"size:50;index"`
	Name      string `gorm:"size:100;not null"`
	BroadType string `gorm:"size:50;index"` // Kategori (boşsa raporda 'Diğer' altında toplanır)
	Unit      string `gorm:"size:20"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
