package costing

import "testing"

func TestPriceBookLookupRule(t *testing.T) {
	b := NewPriceBook()
	b.AddDishPrice(1, 1, Period{2024, 1}, 10)
	b.AddDishPrice(1, 1, Period{2024, 6}, 12)
	b.AddDishPrice(1, 1, Period{2025, 3}, 15)

	cases := []struct {
		name   string
		period Period
		want   float64
		wantOK bool
	}{
		{"ilk kayıttan önce", Period{2023, 12}, 0, false},
		{"tam ilk kayıt", Period{2024, 1}, 10, true},
		{"iki kayıt arası", Period{2024, 5}, 10, true},
		{"ikinci kayıt sonrası", Period{2024, 12}, 12, true},
		{"son kayıt sonrası", Period{2025, 7}, 15, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := b.DishPrice(1, 1, tc.period)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("DishPrice(%v) = (%v, %v), beklenen (%v, %v)", tc.period, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestPriceBookUnknownEntity(t *testing.T) {
	b := NewPriceBook()
	b.AddMaterialPrice(5, 1, Period{2024, 1}, 3.5)

	if got, ok := b.MaterialPrice(99, 1, Period{2025, 1}); ok || got != 0 {
		t.Errorf("bilinmeyen malzeme için (0, false) beklenirdi, (%v, %v) geldi", got, ok)
	}
	// Aynı malzeme, farklı store: fiyat geçişi olmamalı
	if got, ok := b.MaterialPrice(5, 2, Period{2025, 1}); ok || got != 0 {
		t.Errorf("farklı store için (0, false) beklenirdi, (%v, %v) geldi", got, ok)
	}
}

func TestPriceBookUnorderedInsert(t *testing.T) {
	// Kayıt sırası sonucu etkilememeli
	b := NewPriceBook()
	b.AddMaterialPrice(7, 3, Period{2025, 4}, 9)
	b.AddMaterialPrice(7, 3, Period{2023, 1}, 5)
	b.AddMaterialPrice(7, 3, Period{2024, 8}, 7)

	if got, _ := b.MaterialPrice(7, 3, Period{2024, 12}); got != 7 {
		t.Errorf("2024-12 için 7 beklenirdi, %v geldi", got)
	}
	if got, _ := b.MaterialPrice(7, 3, Period{2025, 4}); got != 9 {
		t.Errorf("2025-04 için 9 beklenirdi, %v geldi", got)
	}
}

func TestPeriodHelpers(t *testing.T) {
	p := Period{2025, 1}
	if prev := p.Prev(); prev != (Period{2024, 12}) {
		t.Errorf("Prev() = %v", prev)
	}
	if prev := (Period{2025, 6}).Prev(); prev != (Period{2025, 5}) {
		t.Errorf("Prev() = %v", prev)
	}
	if ly := p.LastYear(); ly != (Period{2024, 1}) {
		t.Errorf("LastYear() = %v", ly)
	}
	if c := (Period{2024, 12}).Compare(Period{2025, 1}); c != -1 {
		t.Errorf("Compare yıl önceliği bozuk: %d", c)
	}
	if c := (Period{2025, 2}).Compare(Period{2025, 2}); c != 0 {
		t.Errorf("Compare eşitlik bozuk: %d", c)
	}
}
