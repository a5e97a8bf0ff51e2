package models

import "time"

type MarginReportKind string

const (
	ReportKindCategoryComparison MarginReportKind = "category_comparison"
	ReportKindStoreRevenue       MarginReportKind = "store_revenue"
	ReportKindYoYDecomposition   MarginReportKind = "yoy_decomposition"
)

// MonthlyMarginReport: Üretilen rapor dosyasının kaydı
type MonthlyMarginReport struct {
	ID         uint             `gorm:"primaryKey"`
	StoreID    *uint            `gorm:"index"` // nil = tüm store'lar
	Year       int              `gorm:"index;not null"`
	Month      int              `gorm:"index;not null"`
	Kind       MarginReportKind `gorm:"size:30;index;not null"`
	FileName   string           `gorm:"size:255;not null"`
	ReportDate time.Time        `gorm:"index;not null"`

	// Rapor özet verileri (JSONB)
	ReportData string `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
