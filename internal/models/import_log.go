package models

import "time"

// ImportLog: Excel yüklemelerinin sonucu (kaç satır girdi/güncellendi/atlandı).
type ImportLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	StoreID  *uint  `json:"store_id"`
	UserID   uint   `json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"`

	// Yükleme türü: "dish_sales", "material_usage", "recipes", "dish_prices",
	// "material_prices", "discounts"
	ImportType string `gorm:"size:30;index" json:"import_type"`
	FileName   string `gorm:"size:255" json:"file_name"`

	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`

	// Atlanan satırların nedenleri (JSON dizi)
	SkipReasons string `gorm:"type:jsonb" json:"skip_reasons"`
}
