package report

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"maliyet-backend/internal/costing"
	"maliyet-backend/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDiscountChangePct(t *testing.T) {
	if got := discountChangePct(120, 100); !almostEqual(got, 20) {
		t.Errorf("%%20 beklenirdi, %v geldi", got)
	}
	if got := discountChangePct(80, 100); !almostEqual(got, -20) {
		t.Errorf("%%-20 beklenirdi, %v geldi", got)
	}
	// Geçen yıl indirim yoksa değişim tanımsız, 0 yazılır
	if got := discountChangePct(50, 0); got != 0 {
		t.Errorf("0 beklenirdi, %v geldi", got)
	}
}

func TestPctScaling(t *testing.T) {
	// Motor yüzdeleri 0-100, Excel %-formatlı hücre 0-1 bekler
	if got := pct(62.5); !almostEqual(got, 0.625) {
		t.Errorf("0.625 beklenirdi, %v geldi", got)
	}
}

func TestRenderYoYWorkbookWritesFile(t *testing.T) {
	dir := t.TempDir()

	results := []StoreDecomposition{
		{
			Store: models.Store{ID: 1, Name: "一店"},
			Result: costing.MarginDecomposition{
				Current:  costing.PeriodSummary{Revenue: 1000, MaterialCost: 400, GrossMarginPct: 60},
				LastYear: costing.PeriodSummary{Revenue: 900, MaterialCost: 405, GrossMarginPct: 55},
			},
		},
	}

	fileName, err := renderYoYWorkbook(results, costing.Period{Year: 2025, Month: 6}, dir)
	if err != nil {
		t.Fatalf("rapor üretilemedi: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, fileName)); err != nil {
		t.Errorf("rapor dosyası bulunamadı: %v", err)
	}
}

func TestRenderCategoryWorkbookEmptyResults(t *testing.T) {
	// Veri yokken bile başlıklı boş bir dosya üretilir, hata dönmez
	dir := t.TempDir()
	fileName, err := renderCategoryWorkbook(nil, costing.Period{Year: 2025, Month: 6}, dir)
	if err != nil {
		t.Fatalf("boş rapor üretilemedi: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, fileName)); err != nil {
		t.Errorf("rapor dosyası bulunamadı: %v", err)
	}
}
