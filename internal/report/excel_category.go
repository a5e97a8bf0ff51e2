package report

import (
	"fmt"

	"maliyet-backend/internal/costing"

	"github.com/xuri/excelize/v2"
)

// renderCategoryWorkbook: Kategori bazlı marj karşılaştırma sayfası.
// Store başına bir blok; her kategori için bu ay / geçen ay / geçen yılın
// aynı ayı marjları ve puan farkları.
func renderCategoryWorkbook(results []StoreCategoryMargins, p costing.Period, outputPath string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "分类毛利对比"
	f.SetSheetName("Sheet1", sheet)

	styles, err := newSheetStyles(f)
	if err != nil {
		return "", err
	}

	prev := p.Prev()
	lastYear := p.LastYear()

	headers := []string{
		"门店名称", "菜品分类",
		fmt.Sprintf("本月收入 (%d-%02d)", p.Year, p.Month),
		"本月成本", "本月毛利率(%)",
		fmt.Sprintf("上月毛利率(%%) (%d-%02d)", prev.Year, prev.Month),
		"环比(pp)",
		fmt.Sprintf("去年同期毛利率(%%) (%d-%02d)", lastYear.Year, lastYear.Month),
		"同比(pp)",
	}
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(i+1, 1), h)
		f.SetCellStyle(sheet, cellRef(i+1, 1), cellRef(i+1, 1), styles.header)
	}
	f.SetColWidth(sheet, "A", "B", 18)
	f.SetColWidth(sheet, "C", "I", 15)

	rowNum := 2
	for _, r := range results {
		// Dönem bazlı satırları kategoriye göre yeniden indeksle
		type periodMargins struct {
			current, prev, lastYear *costing.MarginRow
		}
		byGroup := make(map[string]*periodMargins)
		var order []string
		for i := range r.Rows {
			row := &r.Rows[i]
			pm, ok := byGroup[row.Group]
			if !ok {
				pm = &periodMargins{}
				byGroup[row.Group] = pm
				order = append(order, row.Group)
			}
			switch {
			case row.Period == p:
				pm.current = row
			case row.Period == prev:
				pm.prev = row
			case row.Period == lastYear:
				pm.lastYear = row
			}
		}

		for _, group := range order {
			pm := byGroup[group]

			f.SetCellValue(sheet, cellRef(1, rowNum), r.Store.Name)
			f.SetCellValue(sheet, cellRef(2, rowNum), group)
			f.SetCellStyle(sheet, cellRef(1, rowNum), cellRef(2, rowNum), styles.cell)

			var curRevenue, curCost, curMargin float64
			if pm.current != nil {
				curRevenue = pm.current.Revenue
				curCost = pm.current.MaterialCost
				curMargin = pm.current.GrossMarginPct
			}
			var prevMargin float64
			if pm.prev != nil {
				prevMargin = pm.prev.GrossMarginPct
			}
			var lyMargin float64
			if pm.lastYear != nil {
				lyMargin = pm.lastYear.GrossMarginPct
			}

			f.SetCellValue(sheet, cellRef(3, rowNum), curRevenue)
			f.SetCellValue(sheet, cellRef(4, rowNum), curCost)
			f.SetCellStyle(sheet, cellRef(3, rowNum), cellRef(4, rowNum), styles.money)

			f.SetCellValue(sheet, cellRef(5, rowNum), pct(curMargin))
			f.SetCellValue(sheet, cellRef(6, rowNum), pct(prevMargin))
			f.SetCellValue(sheet, cellRef(7, rowNum), pct(curMargin-prevMargin))
			f.SetCellValue(sheet, cellRef(8, rowNum), pct(lyMargin))
			f.SetCellValue(sheet, cellRef(9, rowNum), pct(curMargin-lyMargin))
			f.SetCellStyle(sheet, cellRef(5, rowNum), cellRef(9, rowNum), styles.percent)

			rowNum++
		}
	}

	return saveWorkbook(f, outputPath, "category_margin", p.Year, p.Month)
}
