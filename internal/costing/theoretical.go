package costing

// Teorik kullanım hesabı: satış adetlerini reçete üzerinden malzeme
// miktarlarına çevirir.
//
// Sözleşme (tüm çağıranlar için tek formül):
//
//	teorik = net_adet × standart_miktar × (1 + kayıp_oranı) / birim_çevrim
//
// kayıp_oranı reçete miktarının ÜZERİNE eklenen zayiat payıdır (eksikse 0),
// birim_çevrim satış birimi -> stok birimi çevrimidir (eksik veya 0 ise 1
// sayılır; 0 bir veri hatasıdır ama hesabı durdurmaz).

type recipeKey struct {
	DishID  uint
	StoreID uint
}

// ComputeTheoreticalUsage: her pozitif net satış için eşleşen reçete
// satırlarından teorik kullanım üretir.
//   - Net satışı 0 veya negatif olan kayıtlar atlanır (negatif ağırlık olmaz).
//   - Reçetesi olmayan menü ürünleri sessizce atlanır, hata değildir.
//   - Standart miktarı 0 olan satırlar sıfır miktarlı satır üretir; malzeme
//     yine "teorik kaydı var" sayılır (kayıp analizi için önemli).
func ComputeTheoreticalUsage(sales []SalesRecord, recipes []RecipeLine) []TheoreticalUsage {
	byDish := make(map[recipeKey][]RecipeLine)
	for _, r := range recipes {
		k := recipeKey{DishID: r.DishID, StoreID: r.StoreID}
		byDish[k] = append(byDish[k], r)
	}

	var out []TheoreticalUsage
	for _, s := range sales {
		if s.NetQuantity <= 0 {
			continue
		}
		lines := byDish[recipeKey{DishID: s.DishID, StoreID: s.StoreID}]
		for _, line := range lines {
			out = append(out, TheoreticalUsage{
				DishID:     s.DishID,
				MaterialID: line.MaterialID,
				StoreID:    s.StoreID,
				Period:     s.Period,
				Quantity:   theoreticalQuantity(s.NetQuantity, line),
			})
		}
	}
	return out
}

func theoreticalQuantity(netQuantity float64, line RecipeLine) float64 {
	if line.StandardQuantity == 0 {
		return 0
	}
	conv := line.UnitConversionRate
	if conv == 0 {
		conv = 1 // veri hatası maskeleniyor; loglama çağıranın tercihi
	}
	return netQuantity * line.StandardQuantity * (1 + line.LossRate) / conv
}
