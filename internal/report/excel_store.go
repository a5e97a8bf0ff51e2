package report

import (
	"maliyet-backend/internal/costing"

	"github.com/xuri/excelize/v2"
)

// renderStoreRevenueWorkbook: Store ciro ve marj sayfası. Özet sayfada store
// başına bir satır, ayrıca her store için ürün kırılımı sayfası.
func renderStoreRevenueWorkbook(results []StoreRevenueBreakdown, p costing.Period, outputPath string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "门店汇总"
	f.SetSheetName("Sheet1", summarySheet)

	styles, err := newSheetStyles(f)
	if err != nil {
		return "", err
	}

	summaryHeaders := []string{"门店名称", "收入", "原材料成本", "毛利率(%)"}
	for i, h := range summaryHeaders {
		f.SetCellValue(summarySheet, cellRef(i+1, 1), h)
		f.SetCellStyle(summarySheet, cellRef(i+1, 1), cellRef(i+1, 1), styles.header)
	}
	f.SetColWidth(summarySheet, "A", "D", 16)

	rowNum := 2
	for _, r := range results {
		f.SetCellValue(summarySheet, cellRef(1, rowNum), r.Store.Name)
		f.SetCellStyle(summarySheet, cellRef(1, rowNum), cellRef(1, rowNum), styles.cell)

		f.SetCellValue(summarySheet, cellRef(2, rowNum), r.Summary.Revenue)
		f.SetCellValue(summarySheet, cellRef(3, rowNum), r.Summary.MaterialCost)
		f.SetCellStyle(summarySheet, cellRef(2, rowNum), cellRef(3, rowNum), styles.money)

		f.SetCellValue(summarySheet, cellRef(4, rowNum), pct(r.Summary.GrossMarginPct))
		f.SetCellStyle(summarySheet, cellRef(4, rowNum), cellRef(4, rowNum), styles.percent)

		rowNum++
	}

	// Ürün kırılımı: store başına ayrı sayfa
	detailHeaders := []string{"菜品编码", "菜品名称", "规格", "净销量", "单价", "收入", "分摊成本", "毛利率(%)"}
	for _, r := range results {
		if len(r.Dishes) == 0 {
			continue
		}
		sheet := r.Store.Name
		if _, err := f.NewSheet(sheet); err != nil {
			continue
		}

		for i, h := range detailHeaders {
			f.SetCellValue(sheet, cellRef(i+1, 1), h)
			f.SetCellStyle(sheet, cellRef(i+1, 1), cellRef(i+1, 1), styles.header)
		}
		f.SetColWidth(sheet, "A", "C", 16)
		f.SetColWidth(sheet, "D", "H", 12)

		detailRow := 2
		for _, d := range r.Dishes {
			f.SetCellValue(sheet, cellRef(1, detailRow), d.Dish.FullCode)
			f.SetCellValue(sheet, cellRef(2, detailRow), d.Dish.Name)
			f.SetCellValue(sheet, cellRef(3, detailRow), d.Dish.Size)
			f.SetCellStyle(sheet, cellRef(1, detailRow), cellRef(3, detailRow), styles.cell)

			f.SetCellValue(sheet, cellRef(4, detailRow), d.NetQuantity)
			f.SetCellStyle(sheet, cellRef(4, detailRow), cellRef(4, detailRow), styles.cell)

			f.SetCellValue(sheet, cellRef(5, detailRow), d.Price)
			f.SetCellValue(sheet, cellRef(6, detailRow), d.Revenue)
			f.SetCellValue(sheet, cellRef(7, detailRow), d.MaterialCost)
			f.SetCellStyle(sheet, cellRef(5, detailRow), cellRef(7, detailRow), styles.money)

			f.SetCellValue(sheet, cellRef(8, detailRow), pct(d.MarginPct))
			f.SetCellStyle(sheet, cellRef(8, detailRow), cellRef(8, detailRow), styles.percent)

			detailRow++
		}
	}

	return saveWorkbook(f, outputPath, "store_revenue", p.Year, p.Month)
}
