package report

import (
	"maliyet-backend/internal/costing"

	"github.com/xuri/excelize/v2"
)

// renderYoYWorkbook: Yıllık marj ayrıştırma sayfası. Store başına bir satır,
// 21 kolon: marj karşılaştırması, dört etki bloğu ve iki ciro kolonu.
func renderYoYWorkbook(results []StoreDecomposition, p costing.Period, outputPath string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "毛利率同比分析"
	f.SetSheetName("Sheet1", sheet)

	styles, err := newSheetStyles(f)
	if err != nil {
		return "", err
	}

	// Satır 1: birleştirilmiş ana başlıklar
	mainHeaders := []struct {
		title    string
		from, to int
	}{
		{"门店名称", 1, 1},
		{"毛利率同比", 2, 4},
		{"菜品价格影响", 5, 7},
		{"原材料价格影响", 8, 10},
		{"优惠影响", 11, 16},
		{"菜品损耗影响", 17, 19},
		{"本月收入", 20, 20},
		{"去年同期收入", 21, 21},
	}
	for _, h := range mainHeaders {
		if h.from != h.to {
			f.MergeCell(sheet, cellRef(h.from, 1), cellRef(h.to, 1))
		}
		f.SetCellValue(sheet, cellRef(h.from, 1), h.title)
		for col := h.from; col <= h.to; col++ {
			f.SetCellStyle(sheet, cellRef(col, 1), cellRef(col, 1), styles.header)
		}
	}

	// Satır 2: alt başlıklar
	subheaders := []string{
		"",
		"本月(%)", "去年同期(%)", "同比(pp)",
		"变动金额", "还原毛利率(%)", "毛利率影响(pp)",
		"变动金额", "还原毛利率(%)", "毛利率影响(pp)",
		"本月", "去年同期", "同比(%)", "本月还原毛利率(%)", "去年还原毛利率(%)", "毛利率影响(pp)",
		"变动金额", "还原毛利率(%)", "毛利率影响(pp)",
		"", "",
	}
	for i, sub := range subheaders {
		col := i + 1
		f.SetCellValue(sheet, cellRef(col, 2), sub)
		style := styles.subheader
		if sub == "" {
			style = styles.header
		}
		f.SetCellStyle(sheet, cellRef(col, 2), cellRef(col, 2), style)
	}

	// İki satırı kaplayan kolonlar
	f.MergeCell(sheet, cellRef(1, 1), cellRef(1, 2))
	f.MergeCell(sheet, cellRef(20, 1), cellRef(20, 2))
	f.MergeCell(sheet, cellRef(21, 1), cellRef(21, 2))

	f.SetColWidth(sheet, "A", "A", 18)
	colU, _ := excelize.ColumnNumberToName(21)
	f.SetColWidth(sheet, "B", colU, 13)

	rowNum := 3
	for _, r := range results {
		d := r.Result

		setMoney := func(col int, v float64) {
			f.SetCellValue(sheet, cellRef(col, rowNum), v)
			f.SetCellStyle(sheet, cellRef(col, rowNum), cellRef(col, rowNum), styles.money)
		}
		setPct := func(col int, v float64) {
			f.SetCellValue(sheet, cellRef(col, rowNum), pct(v))
			f.SetCellStyle(sheet, cellRef(col, rowNum), cellRef(col, rowNum), styles.percent)
		}

		f.SetCellValue(sheet, cellRef(1, rowNum), r.Store.Name)
		f.SetCellStyle(sheet, cellRef(1, rowNum), cellRef(1, rowNum), styles.cell)

		// Marj karşılaştırması
		setPct(2, d.Current.GrossMarginPct)
		setPct(3, d.LastYear.GrossMarginPct)
		setPct(4, d.MarginChange)

		// Ürün fiyat etkisi
		setMoney(5, d.DishPrice.Amount)
		setPct(6, d.DishPrice.RestoredMargin)
		setPct(7, d.DishPrice.MarginImpact)

		// Malzeme fiyat etkisi
		setMoney(8, d.MaterialPrice.Amount)
		setPct(9, d.MaterialPrice.RestoredMargin)
		setPct(10, d.MaterialPrice.MarginImpact)

		// İndirim etkisi
		setMoney(11, d.Discount.CurrentAmount)
		setMoney(12, d.Discount.LastYearAmount)
		setPct(13, discountChangePct(d.Discount.CurrentAmount, d.Discount.LastYearAmount))
		setPct(14, d.Discount.CurrentRestoredMargin)
		setPct(15, d.Discount.LastYearRestoredMargin)
		setPct(16, d.Discount.MarginImpact)

		// Zayiat etkisi
		setMoney(17, d.DishLoss.Amount)
		setPct(18, d.DishLoss.RestoredMargin)
		setPct(19, d.DishLoss.MarginImpact)

		// Cirolar
		setMoney(20, d.Current.Revenue)
		setMoney(21, d.LastYear.Revenue)

		rowNum++
	}

	return saveWorkbook(f, outputPath, "yoy_margin", p.Year, p.Month)
}

// discountChangePct: indirim tutarının yıllık değişim yüzdesi. Geçen yıl 0
// ise tanımsız, 0 yazılır.
func discountChangePct(current, lastYear float64) float64 {
	if lastYear == 0 {
		return 0
	}
	return (current - lastYear) / lastYear * 100
}
