package costing

import "testing"

func TestAllocateActualCostProportional(t *testing.T) {
	// Malzeme M: teorik toplam 100 (D1=60, D2=40), gerçek 120, fiyat 2.0
	// D1 = 0.6 × 120 × 2 = 144, D2 = 0.4 × 120 × 2 = 96, toplam = 240 = 120 × 2
	p := Period{2025, 6}
	theoretical := []TheoreticalUsage{
		{DishID: 1, MaterialID: 10, StoreID: 1, Period: p, Quantity: 60},
		{DishID: 2, MaterialID: 10, StoreID: 1, Period: p, Quantity: 40},
	}
	actual := []ActualUsage{{MaterialID: 10, StoreID: 1, Period: p, QuantityUsed: 120}}
	prices := NewPriceBook()
	prices.AddMaterialPrice(10, 1, Period{2025, 1}, 2.0)

	got := AllocateActualCost(theoretical, actual, prices, p)
	if len(got) != 2 {
		t.Fatalf("2 satır beklenirdi, %d geldi", len(got))
	}

	totals := DishTotalCosts(got)
	if !almostEqual(totals[1], 144.0) {
		t.Errorf("D1 maliyeti 144 beklenirdi, %v geldi", totals[1])
	}
	if !almostEqual(totals[2], 96.0) {
		t.Errorf("D2 maliyeti 96 beklenirdi, %v geldi", totals[2])
	}

	// Korunum: payların toplamı = gerçek miktar × birim fiyat
	var sum float64
	for _, c := range got {
		sum += c.AllocatedCost
	}
	if !almostEqual(sum, 240.0) {
		t.Errorf("toplam dağıtılan maliyet 240 beklenirdi, %v geldi", sum)
	}

	// Miktar payları da orantılı olmalı
	for _, c := range got {
		switch c.DishID {
		case 1:
			if !almostEqual(c.AllocatedQuantity, 72) {
				t.Errorf("D1 miktar payı 72 beklenirdi, %v geldi", c.AllocatedQuantity)
			}
		case 2:
			if !almostEqual(c.AllocatedQuantity, 48) {
				t.Errorf("D2 miktar payı 48 beklenirdi, %v geldi", c.AllocatedQuantity)
			}
		}
	}
}

func TestAllocateActualCostZeroBasis(t *testing.T) {
	// Teorik toplam 0 iken gerçek kullanım pozitif olsa bile pay dağıtılmaz;
	// bu maliyet kırılım dışında kalır, eşit dağıtım yapılmaz.
	p := Period{2025, 6}
	theoretical := []TheoreticalUsage{
		{DishID: 1, MaterialID: 10, StoreID: 1, Period: p, Quantity: 0},
		{DishID: 2, MaterialID: 10, StoreID: 1, Period: p, Quantity: 0},
	}
	actual := []ActualUsage{{MaterialID: 10, StoreID: 1, Period: p, QuantityUsed: 50}}
	prices := NewPriceBook()
	prices.AddMaterialPrice(10, 1, Period{2025, 1}, 3.0)

	got := AllocateActualCost(theoretical, actual, prices, p)
	for _, c := range got {
		if c.AllocatedCost != 0 || c.AllocatedQuantity != 0 {
			t.Errorf("sıfır teorik tabanda pay 0 olmalıydı: %+v", c)
		}
	}
}

func TestAllocateActualCostMissingCountAndPrice(t *testing.T) {
	p := Period{2025, 6}
	theoretical := []TheoreticalUsage{
		{DishID: 1, MaterialID: 10, StoreID: 1, Period: p, Quantity: 30}, // sayımı yok
		{DishID: 1, MaterialID: 11, StoreID: 1, Period: p, Quantity: 20}, // fiyatı yok
	}
	actual := []ActualUsage{{MaterialID: 11, StoreID: 1, Period: p, QuantityUsed: 25}}
	prices := NewPriceBook()
	prices.AddMaterialPrice(10, 1, Period{2025, 1}, 4.0)

	got := AllocateActualCost(theoretical, actual, prices, p)
	for _, c := range got {
		if c.AllocatedCost != 0 {
			t.Errorf("eksik sayım/fiyat sıfır maliyet üretmeliydi: %+v", c)
		}
	}

	// Fiyatı eksik ama sayımı olan malzemenin miktar payı yine dağıtılır
	for _, c := range got {
		if c.MaterialID == 11 && !almostEqual(c.AllocatedQuantity, 25) {
			t.Errorf("malzeme 11 miktar payı 25 beklenirdi, %v geldi", c.AllocatedQuantity)
		}
	}
}

func TestAllocateActualCostPeriodFiltered(t *testing.T) {
	// Başka dönemin teorik/gerçek kayıtları hesaba karışmamalı
	p := Period{2025, 6}
	other := Period{2025, 5}
	theoretical := []TheoreticalUsage{
		{DishID: 1, MaterialID: 10, StoreID: 1, Period: p, Quantity: 10},
		{DishID: 1, MaterialID: 10, StoreID: 1, Period: other, Quantity: 990},
	}
	actual := []ActualUsage{
		{MaterialID: 10, StoreID: 1, Period: p, QuantityUsed: 10},
		{MaterialID: 10, StoreID: 1, Period: other, QuantityUsed: 500},
	}
	prices := NewPriceBook()
	prices.AddMaterialPrice(10, 1, Period{2025, 1}, 1.0)

	got := AllocateActualCost(theoretical, actual, prices, p)
	if len(got) != 1 {
		t.Fatalf("sadece hedef dönemin satırı beklenirdi, %d geldi", len(got))
	}
	if !almostEqual(got[0].AllocatedCost, 10) {
		t.Errorf("maliyet 10 beklenirdi, %v geldi", got[0].AllocatedCost)
	}
}

func TestAllocateActualCostStoreIsolation(t *testing.T) {
	// Aynı malzeme numarası farklı store'larda bağımsız dağıtılır
	p := Period{2025, 6}
	theoretical := []TheoreticalUsage{
		{DishID: 1, MaterialID: 10, StoreID: 1, Period: p, Quantity: 50},
		{DishID: 2, MaterialID: 10, StoreID: 2, Period: p, Quantity: 50},
	}
	actual := []ActualUsage{
		{MaterialID: 10, StoreID: 1, Period: p, QuantityUsed: 100},
		{MaterialID: 10, StoreID: 2, Period: p, QuantityUsed: 40},
	}
	prices := NewPriceBook()
	prices.AddMaterialPrice(10, 1, Period{2025, 1}, 1.0)
	prices.AddMaterialPrice(10, 2, Period{2025, 1}, 2.0)

	totals := DishTotalCosts(AllocateActualCost(theoretical, actual, prices, p))
	if !almostEqual(totals[1], 100) {
		t.Errorf("store 1 ürünü 100 beklenirdi, %v geldi", totals[1])
	}
	if !almostEqual(totals[2], 80) {
		t.Errorf("store 2 ürünü 80 beklenirdi, %v geldi", totals[2])
	}
}
