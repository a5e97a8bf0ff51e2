package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Ortak excelize yardımcıları. Stil düzeni orijinal aylık raporlarla aynı:
// koyu mavi ana başlık, açık mavi alt başlık, ince kenarlıklar.

type sheetStyles struct {
	header    int
	subheader int
	cell      int
	money     int
	percent   int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	border := []excelize.Border{
		{Type: "left", Style: 1}, {Type: "right", Style: 1},
		{Type: "top", Style: 1}, {Type: "bottom", Style: 1},
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Font:      &excelize.Font{Color: "FFFFFF", Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return s, err
	}

	s.subheader, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"5B9BD5"}},
		Font:      &excelize.Font{Color: "FFFFFF", Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return s, err
	}

	s.cell, err = f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return s, err
	}

	moneyFmt := "#,##0.00"
	s.money, err = f.NewStyle(&excelize.Style{Border: border, CustomNumFmt: &moneyFmt})
	if err != nil {
		return s, err
	}

	percentFmt := "0.00%"
	s.percent, err = f.NewStyle(&excelize.Style{Border: border, CustomNumFmt: &percentFmt})
	if err != nil {
		return s, err
	}

	return s, nil
}

func cellRef(col, row int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("%s%d", name, row)
}

// saveWorkbook: Dosyayı uuid ekli bir adla çıktı klasörüne yazar.
func saveWorkbook(f *excelize.File, outputPath, prefix string, year, month int) (string, error) {
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return "", fmt.Errorf("rapor klasörü oluşturulamadı: %w", err)
	}
	fileName := fmt.Sprintf("%s_%04d-%02d_%s.xlsx", prefix, year, month, uuid.NewString()[:8])
	if err := f.SaveAs(filepath.Join(outputPath, fileName)); err != nil {
		return "", fmt.Errorf("rapor kaydedilemedi: %w", err)
	}
	return fileName, nil
}

// Yüzde hücreleri Excel'e 0-1 aralığında yazılır (0.00% formatı kendisi 100
// ile çarpar), motor yüzdeleri ise 0-100 aralığındadır.
func pct(v float64) float64 {
	return v / 100
}
