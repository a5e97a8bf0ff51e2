package costing

// Gerçek maliyet dağıtımı.
//
// Fiziksel sayım malzeme toplamını verir ama menü ürünü kırılımını vermez;
// teorik kullanım burada sadece ağırlık anahtarıdır. Her malzemenin gerçek
// maliyeti, o malzemeyi paylaşan ürünlere teorik kullanım oranında dağıtılır.
// Böylece reçete standardı sapsa bile toplam maliyet fiziksel gerçekle uyumlu
// kalır.

type materialKey struct {
	MaterialID uint
	StoreID    uint
}

// AllocateActualCost: verilen dönem için teorik kullanımı ağırlık alarak
// gerçek malzeme maliyetini menü ürünlerine dağıtır.
//
// Kenar durumlar:
//   - Sayımı olmayan malzeme: gerçek miktar 0, tüm paylar 0. Hata değil.
//   - Fiyatı olmayan malzeme: birim fiyat 0, maliyet payları 0. Hata değil.
//   - Teorik toplamı 0 ama gerçek kullanımı pozitif malzeme: hiçbir ürüne pay
//     verilmez, o maliyet kırılım dışında kalır. Bu modelin bilinen ve kabul
//     edilen kaybıdır; eşit dağıtım gibi bir telafi YAPILMAZ.
func AllocateActualCost(theoretical []TheoreticalUsage, actual []ActualUsage, prices *PriceBook, period Period) []DishMaterialCost {
	totalTheoretical := make(map[materialKey]float64)
	for _, t := range theoretical {
		if t.Period != period {
			continue
		}
		totalTheoretical[materialKey{MaterialID: t.MaterialID, StoreID: t.StoreID}] += t.Quantity
	}

	actualQty := make(map[materialKey]float64)
	for _, a := range actual {
		if a.Period != period {
			continue
		}
		actualQty[materialKey{MaterialID: a.MaterialID, StoreID: a.StoreID}] += a.QuantityUsed
	}

	var out []DishMaterialCost
	for _, t := range theoretical {
		if t.Period != period {
			continue
		}
		k := materialKey{MaterialID: t.MaterialID, StoreID: t.StoreID}

		var proportion float64
		if total := totalTheoretical[k]; total > 0 {
			proportion = t.Quantity / total
		}

		qty := actualQty[k]
		unitPrice, _ := prices.MaterialPrice(t.MaterialID, t.StoreID, period)

		out = append(out, DishMaterialCost{
			DishID:            t.DishID,
			MaterialID:        t.MaterialID,
			StoreID:           t.StoreID,
			Period:            period,
			AllocatedCost:     proportion * qty * unitPrice,
			AllocatedQuantity: proportion * qty,
		})
	}
	return out
}

// DishTotalCosts: dağıtım satırlarını menü ürünü bazında toplar.
func DishTotalCosts(costs []DishMaterialCost) map[uint]float64 {
	totals := make(map[uint]float64)
	for _, c := range costs {
		totals[c.DishID] += c.AllocatedCost
	}
	return totals
}
