package costing

import "testing"

// İki dönemde de aynı satış/kullanım/fiyat verisini kuran yardımcı.
// Fiyat defteri her iki döneme de ulaşan tek bir geçerlilik kaydı taşır,
// yani fiyat değişimi yoktur.
func identicalPeriods(t *testing.T) (PeriodData, PeriodData, *PriceBook, map[uint]DishInfo) {
	t.Helper()
	cur := Period{2025, 6}
	ly := cur.LastYear()

	prices := NewPriceBook()
	prices.AddDishPrice(1, 1, Period{2023, 1}, 25)
	prices.AddMaterialPrice(10, 1, Period{2023, 1}, 2)

	dishes := map[uint]DishInfo{1: {ID: 1, StoreID: 1, FullCode: "10010001", BroadType: "A"}}

	mk := func(p Period) PeriodData {
		return PeriodData{
			StoreID: 1,
			Period:  p,
			Sales:   []SalesRecord{{DishID: 1, StoreID: 1, Period: p, NetQuantity: 40}},
			Usage:   []ActualUsage{{MaterialID: 10, StoreID: 1, Period: p, QuantityUsed: 100}},
			Theoretical: []TheoreticalUsage{
				{DishID: 1, MaterialID: 10, StoreID: 1, Period: p, Quantity: 90},
			},
			Discount: 50,
		}
	}
	return mk(cur), mk(ly), prices, dishes
}

func TestDecomposeIdempotence(t *testing.T) {
	// Özdeş dönemler: tek dönemli üç faktörün restore marjı mevcut marja eşit,
	// dört faktörün marj etkisi de 0 olmalı.
	cur, ly, prices, dishes := identicalPeriods(t)

	d := DecomposeMarginChange(cur, ly, prices, dishes)

	if !almostEqual(d.MarginChange, 0) {
		t.Errorf("marj değişimi 0 beklenirdi, %v geldi", d.MarginChange)
	}
	if !almostEqual(d.DishPrice.RestoredMargin, d.Current.GrossMarginPct) {
		t.Errorf("ürün fiyatı restore marjı %v, mevcut %v", d.DishPrice.RestoredMargin, d.Current.GrossMarginPct)
	}
	if !almostEqual(d.MaterialPrice.RestoredMargin, d.Current.GrossMarginPct) {
		t.Errorf("malzeme fiyatı restore marjı %v, mevcut %v", d.MaterialPrice.RestoredMargin, d.Current.GrossMarginPct)
	}
	if !almostEqual(d.DishLoss.RestoredMargin, d.Current.GrossMarginPct) {
		t.Errorf("zayiat restore marjı %v, mevcut %v", d.DishLoss.RestoredMargin, d.Current.GrossMarginPct)
	}
	for name, impact := range map[string]float64{
		"ürün fiyatı":   d.DishPrice.MarginImpact,
		"malzeme fiyat": d.MaterialPrice.MarginImpact,
		"indirim":       d.Discount.MarginImpact,
		"zayiat":        d.DishLoss.MarginImpact,
	} {
		if !almostEqual(impact, 0) {
			t.Errorf("%s etkisi 0 beklenirdi, %v geldi", name, impact)
		}
	}
}

func TestDishPriceRestoredMargin(t *testing.T) {
	// ciro = 1000, marj 0.60, fiyat etkisi = 100
	// restored = (1 - 0.40 × 1000/900) × 100 ≈ %55.56, etki ≈ 4.44 puan
	cur := Period{2025, 6}
	prices := NewPriceBook()
	prices.AddDishPrice(1, 1, Period{2024, 1}, 9)  // geçen yıl 9
	prices.AddDishPrice(1, 1, Period{2025, 1}, 10) // bu yıl 10; etki = 1 × 100 = 100
	prices.AddMaterialPrice(10, 1, Period{2024, 1}, 4)

	dishes := map[uint]DishInfo{1: {ID: 1, StoreID: 1, FullCode: "10010001"}}
	curData := PeriodData{
		StoreID: 1,
		Period:  cur,
		Sales:   []SalesRecord{{DishID: 1, StoreID: 1, Period: cur, NetQuantity: 100}},
		Usage:   []ActualUsage{{MaterialID: 10, StoreID: 1, Period: cur, QuantityUsed: 100}}, // maliyet 400
	}
	lyData := PeriodData{StoreID: 1, Period: cur.LastYear()}

	d := DecomposeMarginChange(curData, lyData, prices, dishes)

	if !almostEqual(d.Current.Revenue, 1000) || !almostEqual(d.Current.GrossMarginPct, 60) {
		t.Fatalf("özet beklenenden farklı: %+v", d.Current)
	}
	if !almostEqual(d.DishPrice.Amount, 100) {
		t.Fatalf("fiyat etkisi 100 beklenirdi, %v geldi", d.DishPrice.Amount)
	}
	want := (1 - 0.40*1000/900) * 100
	if !almostEqual(d.DishPrice.RestoredMargin, want) {
		t.Errorf("restore marj %v beklenirdi, %v geldi", want, d.DishPrice.RestoredMargin)
	}
	if !almostEqual(d.DishPrice.MarginImpact, 60-want) {
		t.Errorf("marj etkisi %v beklenirdi, %v geldi", 60-want, d.DishPrice.MarginImpact)
	}
}

func TestDishPriceImpactSkipsUnknownAndExcluded(t *testing.T) {
	cur := Period{2025, 6}
	prices := NewPriceBook()
	// Ürün 1: geçen yıl fiyatı yok -> katkı 0
	prices.AddDishPrice(1, 1, Period{2025, 1}, 10)
	// Ürün 2: dahili yer tutucu -> hariç
	prices.AddDishPrice(2, 1, Period{2023, 1}, 5)
	prices.AddDishPrice(2, 1, Period{2025, 1}, 8)
	// Ürün 3: normal, etki (12-10) × 20 = 40
	prices.AddDishPrice(3, 1, Period{2023, 1}, 10)
	prices.AddDishPrice(3, 1, Period{2025, 1}, 12)

	dishes := map[uint]DishInfo{
		1: {ID: 1, StoreID: 1, FullCode: "10010001"},
		2: {ID: 2, StoreID: 1, FullCode: ExcludedDishFullCode},
		3: {ID: 3, StoreID: 1, FullCode: "10010003"},
	}
	data := PeriodData{
		StoreID: 1,
		Period:  cur,
		Sales: []SalesRecord{
			{DishID: 1, StoreID: 1, Period: cur, NetQuantity: 100},
			{DishID: 2, StoreID: 1, Period: cur, NetQuantity: 100},
			{DishID: 3, StoreID: 1, Period: cur, NetQuantity: 20},
		},
	}

	if got := DishPriceImpact(data, prices, dishes); !almostEqual(got, 40) {
		t.Errorf("fiyat etkisi 40 beklenirdi, %v geldi", got)
	}
}

func TestMaterialPriceImpact(t *testing.T) {
	cur := Period{2025, 6}
	prices := NewPriceBook()
	// Malzeme 10: 2 -> 2.5, kullanım 100 => etki 50
	prices.AddMaterialPrice(10, 1, Period{2023, 1}, 2)
	prices.AddMaterialPrice(10, 1, Period{2025, 2}, 2.5)
	// Malzeme 11: geçen yıl fiyatı yok => katkı 0
	prices.AddMaterialPrice(11, 1, Period{2025, 1}, 7)

	data := PeriodData{
		StoreID: 1,
		Period:  cur,
		Usage: []ActualUsage{
			{MaterialID: 10, StoreID: 1, Period: cur, QuantityUsed: 100},
			{MaterialID: 11, StoreID: 1, Period: cur, QuantityUsed: 30},
		},
	}

	if got := MaterialPriceImpact(data, prices); !almostEqual(got, 50) {
		t.Errorf("malzeme fiyat etkisi 50 beklenirdi, %v geldi", got)
	}
}

func TestDiscountImpactTwoPeriods(t *testing.T) {
	// Bu ay: ciro 1000, indirim 100 (%10), marj 0.60 => restore %64.0
	// Geçen yıl: ciro 900, indirim 180 (%20), marj 0.55 => restore %64.0
	// Etki = 0.0
	cur := Period{2025, 6}
	prices := NewPriceBook()
	prices.AddDishPrice(1, 1, Period{2023, 1}, 10)
	prices.AddMaterialPrice(10, 1, Period{2023, 1}, 1)

	curData := PeriodData{
		StoreID:  1,
		Period:   cur,
		Sales:    []SalesRecord{{DishID: 1, StoreID: 1, Period: cur, NetQuantity: 100}},
		Usage:    []ActualUsage{{MaterialID: 10, StoreID: 1, Period: cur, QuantityUsed: 400}},
		Discount: 100,
	}
	lyData := PeriodData{
		StoreID:  1,
		Period:   cur.LastYear(),
		Sales:    []SalesRecord{{DishID: 1, StoreID: 1, Period: cur.LastYear(), NetQuantity: 90}},
		Usage:    []ActualUsage{{MaterialID: 10, StoreID: 1, Period: cur.LastYear(), QuantityUsed: 405}},
		Discount: 180,
	}
	dishes := map[uint]DishInfo{1: {ID: 1, StoreID: 1, FullCode: "10010001"}}

	d := DecomposeMarginChange(curData, lyData, prices, dishes)

	if !almostEqual(d.Current.GrossMarginPct, 60) || !almostEqual(d.LastYear.GrossMarginPct, 55) {
		t.Fatalf("marjlar beklenenden farklı: %v / %v", d.Current.GrossMarginPct, d.LastYear.GrossMarginPct)
	}
	if !almostEqual(d.Discount.CurrentRestoredMargin, 64.0) {
		t.Errorf("bu ay restore %%64 beklenirdi, %v geldi", d.Discount.CurrentRestoredMargin)
	}
	if !almostEqual(d.Discount.LastYearRestoredMargin, 64.0) {
		t.Errorf("geçen yıl restore %%64 beklenirdi, %v geldi", d.Discount.LastYearRestoredMargin)
	}
	if !almostEqual(d.Discount.MarginImpact, 0) {
		t.Errorf("indirim etkisi 0 beklenirdi, %v geldi", d.Discount.MarginImpact)
	}
}

func TestDiscountRestoredMarginGuards(t *testing.T) {
	if got := discountRestoredMargin(0.6, 100, 0); got != 0 {
		t.Errorf("cirosuz dönemde 0 beklenirdi, %v geldi", got)
	}
	// İndirim oranı >= 1: tanım gereği 0
	if got := discountRestoredMargin(0.6, 1200, 1000); got != 0 {
		t.Errorf("oran >= 1 için 0 beklenirdi, %v geldi", got)
	}
}

func TestLossAmount(t *testing.T) {
	p := Period{2025, 6}
	prices := NewPriceBook()
	prices.AddMaterialPrice(10, 1, Period{2024, 1}, 2) // gerçek 120 - teorik 100 => +40
	prices.AddMaterialPrice(11, 1, Period{2024, 1}, 3) // sadece teorik 10 => -30
	prices.AddMaterialPrice(12, 1, Period{2024, 1}, 5) // sadece gerçek 4 => +20
	prices.AddMaterialPrice(13, 1, Period{2024, 1}, 9) // hiç kaydı yok => atlanır

	data := PeriodData{
		StoreID: 1,
		Period:  p,
		Theoretical: []TheoreticalUsage{
			{DishID: 1, MaterialID: 10, StoreID: 1, Period: p, Quantity: 100},
			{DishID: 1, MaterialID: 11, StoreID: 1, Period: p, Quantity: 10},
		},
		Usage: []ActualUsage{
			{MaterialID: 10, StoreID: 1, Period: p, QuantityUsed: 120},
			{MaterialID: 12, StoreID: 1, Period: p, QuantityUsed: 4},
		},
	}

	if got := LossAmount(data, prices); !almostEqual(got, 30) {
		t.Errorf("zayiat tutarı 30 beklenirdi, %v geldi", got)
	}
}

func TestDecomposeZeroRevenueGuard(t *testing.T) {
	// Mevcut dönem cirosuzsa hiçbir restore marj hesaplanmaz, hata da olmaz
	cur := Period{2025, 6}
	prices := NewPriceBook()
	dishes := map[uint]DishInfo{}

	d := DecomposeMarginChange(
		PeriodData{StoreID: 1, Period: cur},
		PeriodData{StoreID: 1, Period: cur.LastYear()},
		prices, dishes,
	)

	if d.Current.GrossMarginPct != 0 || d.DishPrice.RestoredMargin != 0 ||
		d.MaterialPrice.RestoredMargin != 0 || d.DishLoss.RestoredMargin != 0 ||
		d.Discount.CurrentRestoredMargin != 0 {
		t.Errorf("cirosuz dönemde tüm restore marjlar 0 olmalıydı: %+v", d)
	}
}

func TestDecomposeDishPriceDivisionGuard(t *testing.T) {
	// ciro == fiyat etkisi durumunda restore marj 0 tanımlanır (sıfıra bölme
	// koruması). Kurgu: negatif net satışlı kayıt ciroya girer ama fiyat
	// etkisi toplamına girmez, böylece iki değer eşitlenebilir.
	cur := Period{2025, 6}
	prices := NewPriceBook()
	prices.AddDishPrice(1, 1, Period{2024, 1}, 5)  // geçen yıl 5
	prices.AddDishPrice(1, 1, Period{2025, 1}, 10) // etki = (10-5) × 100 = 500
	prices.AddDishPrice(2, 1, Period{2024, 1}, 10)

	dishes := map[uint]DishInfo{
		1: {ID: 1, StoreID: 1, FullCode: "10010001"},
		2: {ID: 2, StoreID: 1, FullCode: "10010002"},
	}
	data := PeriodData{
		StoreID: 1,
		Period:  cur,
		Sales: []SalesRecord{
			{DishID: 1, StoreID: 1, Period: cur, NetQuantity: 100}, // ciro +1000
			{DishID: 2, StoreID: 1, Period: cur, NetQuantity: -50}, // ciro -500, etkide atlanır
		},
	}
	lyData := PeriodData{StoreID: 1, Period: cur.LastYear()}

	d := DecomposeMarginChange(data, lyData, prices, dishes)
	if !almostEqual(d.Current.Revenue, 500) || !almostEqual(d.DishPrice.Amount, 500) {
		t.Fatalf("ciro ve etki 500 beklenirdi: ciro=%v etki=%v", d.Current.Revenue, d.DishPrice.Amount)
	}
	if d.DishPrice.RestoredMargin != 0 {
		t.Errorf("ciro == etki için restore marj 0 beklenirdi, %v geldi", d.DishPrice.RestoredMargin)
	}
}
