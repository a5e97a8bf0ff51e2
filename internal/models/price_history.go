package models

import "time"

// Fiyat geçmişi: Bir dönem için geçerli fiyat, effective_year/month <= dönem
// koşulunu sağlayan EN SON kayıttır. is_active sadece bilgi amaçlıdır,
// fiyat seçiminde kullanılmaz (geçmiş dönem raporları için).

type DishPriceHistory struct {
	ID             uint    `gorm:"primaryKey"`
	StoreID        uint    `gorm:"index;not null"`
	DishID         uint    `gorm:"index;not null"`
	EffectiveYear  int     `gorm:"not null"`
	EffectiveMonth int     `gorm:"not null"`
	Price          float64 `gorm:"not null;default:0"`
	IsActive       bool    `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type MaterialPriceHistory struct {
	ID             uint    `gorm:"primaryKey"`
	StoreID        uint    `gorm:"index;not null"`
	MaterialID     uint    `gorm:"index;not null"`
	EffectiveYear  int     `gorm:"not null"`
	EffectiveMonth int     `gorm:"not null"`
	Price          float64 `gorm:"not null;default:0"`
	IsActive       bool    `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
