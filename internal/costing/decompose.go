package costing

// Yıllık marj ayrıştırması ("restore edilmiş marj" tekniği).
//
// Her faktör için önce parasal etki tutarı bulunur, sonra "bu faktör
// değişmeseydi marj ne olurdu" sorusuna cevap veren restore marj hesaplanır.
// Faktörün marj etkisi = mevcut marj - restore marj (puan). İndirim faktörü
// istisnadır: iki dönemin restore marjlarının FARKI etki sayılır.
//
// Dört etkinin toplamı toplam marj değişimine eşit çıkmayabilir; etkileşim
// etkileri modellenmez ve düzeltilmez.

// ExcludedDishFullCode: menüde yer almayan dahili yer tutucu ürün; fiyat
// etkisi hesabının dışında tutulur.
const ExcludedDishFullCode = "14120001"

// Summarize: bir dönemin ciro, malzeme maliyeti ve brüt marjını türetir.
//
//	ciro    = Σ net_adet × ürün_fiyatı
//	maliyet = Σ gerçek_kullanım × malzeme_fiyatı
func Summarize(d PeriodData, prices *PriceBook) PeriodSummary {
	var revenue float64
	for _, s := range d.Sales {
		price, _ := prices.DishPrice(s.DishID, s.StoreID, s.Period)
		revenue += s.NetQuantity * price
	}

	var cost float64
	for _, u := range d.Usage {
		price, _ := prices.MaterialPrice(u.MaterialID, u.StoreID, u.Period)
		cost += u.QuantityUsed * price
	}

	var marginPct float64
	if revenue > 0 {
		marginPct = (revenue - cost) / revenue * 100
	}
	return PeriodSummary{
		Revenue:        revenue,
		MaterialCost:   cost,
		Discount:       d.Discount,
		GrossMarginPct: marginPct,
	}
}

// DishPriceImpact: bu dönem satılan ürünler üzerinden fiyat değişiminin ciro
// etkisi. Geçen yıl fiyatı bilinmeyen ürünler sıfır katkı yapar; dahili yer
// tutucu ürün hesaba katılmaz.
func DishPriceImpact(current PeriodData, prices *PriceBook, dishes map[uint]DishInfo) float64 {
	lastYear := current.Period.LastYear()

	var impact float64
	for _, s := range current.Sales {
		if s.NetQuantity <= 0 {
			continue
		}
		if d, ok := dishes[s.DishID]; ok && d.FullCode == ExcludedDishFullCode {
			continue
		}
		oldPrice, ok := prices.DishPrice(s.DishID, s.StoreID, lastYear)
		if !ok || oldPrice <= 0 {
			continue
		}
		newPrice, _ := prices.DishPrice(s.DishID, s.StoreID, s.Period)
		impact += (newPrice - oldPrice) * s.NetQuantity
	}
	return impact
}

// MaterialPriceImpact: bu dönem fiilen kullanılan malzemeler üzerinden
// malzeme fiyat değişiminin maliyet etkisi. Geçen yıl fiyatı bilinmeyen
// malzemeler sıfır katkı yapar.
func MaterialPriceImpact(current PeriodData, prices *PriceBook) float64 {
	lastYear := current.Period.LastYear()

	var impact float64
	for _, u := range current.Usage {
		if u.QuantityUsed <= 0 {
			continue
		}
		oldPrice, ok := prices.MaterialPrice(u.MaterialID, u.StoreID, lastYear)
		if !ok || oldPrice <= 0 {
			continue
		}
		newPrice, _ := prices.MaterialPrice(u.MaterialID, u.StoreID, u.Period)
		impact += (newPrice - oldPrice) * u.QuantityUsed
	}
	return impact
}

// LossAmount: dönemin zayiat tutarı = Σ (gerçek - teorik) × malzeme fiyatı.
// Sadece teorik VEYA gerçek kaydı olan malzemeler toplanır; ikisinde de
// bulunmayanlar atlanır.
func LossAmount(d PeriodData, prices *PriceBook) float64 {
	theoretical := make(map[materialKey]float64)
	for _, t := range d.Theoretical {
		theoretical[materialKey{MaterialID: t.MaterialID, StoreID: t.StoreID}] += t.Quantity
	}
	actual := make(map[materialKey]float64)
	for _, u := range d.Usage {
		actual[materialKey{MaterialID: u.MaterialID, StoreID: u.StoreID}] += u.QuantityUsed
	}

	seen := make(map[materialKey]bool)
	var amount float64
	for k, tq := range theoretical {
		seen[k] = true
		price, _ := prices.MaterialPrice(k.MaterialID, k.StoreID, d.Period)
		amount += (actual[k] - tq) * price
	}
	for k, aq := range actual {
		if seen[k] {
			continue
		}
		price, _ := prices.MaterialPrice(k.MaterialID, k.StoreID, d.Period)
		amount += aq * price
	}
	return amount
}

// DecomposeMarginChange: iki dönemin (bu ay / geçen yılın aynı ayı) marj
// farkını dört nedene ayrıştırır.
func DecomposeMarginChange(current, lastYear PeriodData, prices *PriceBook, dishes map[uint]DishInfo) MarginDecomposition {
	cur := Summarize(current, prices)
	prev := Summarize(lastYear, prices)

	out := MarginDecomposition{
		Current:      cur,
		LastYear:     prev,
		MarginChange: cur.GrossMarginPct - prev.GrossMarginPct,
	}

	out.DishLoss.CurrentAmount = LossAmount(current, prices)
	out.DishLoss.LastYearAmount = LossAmount(lastYear, prices)
	out.DishLoss.Amount = out.DishLoss.CurrentAmount - out.DishLoss.LastYearAmount
	out.DishPrice.Amount = DishPriceImpact(current, prices, dishes)
	out.MaterialPrice.Amount = MaterialPriceImpact(current, prices)
	out.Discount.CurrentAmount = current.Discount
	out.Discount.LastYearAmount = lastYear.Discount

	revenue := cur.Revenue
	if revenue <= 0 {
		// Cirosuz dönemde restore marjlar tanımsızdır; hepsi 0 bırakılır.
		return out
	}
	margin := cur.GrossMarginPct / 100 // 0-1 aralığına indirgenmiş marj

	// Ürün fiyat etkisi: restored = 1 - (1-m)·R / (R - etki)
	if revenue != out.DishPrice.Amount {
		out.DishPrice.RestoredMargin = (1 - (1-margin)*revenue/(revenue-out.DishPrice.Amount)) * 100
	}
	out.DishPrice.MarginImpact = cur.GrossMarginPct - out.DishPrice.RestoredMargin

	// Malzeme fiyat etkisi: restored = 1 - ((1-m)·R - etki) / R
	out.MaterialPrice.RestoredMargin = (1 - ((1-margin)*revenue-out.MaterialPrice.Amount)/revenue) * 100
	out.MaterialPrice.MarginImpact = cur.GrossMarginPct - out.MaterialPrice.RestoredMargin

	// İndirim etkisi: her iki dönem için bağımsız restore marj,
	// restored = (1 - (1-m)·(1-d)) × 100, d = indirim / ciro
	out.Discount.CurrentRestoredMargin = discountRestoredMargin(margin, current.Discount, revenue)
	out.Discount.LastYearRestoredMargin = discountRestoredMargin(prev.GrossMarginPct/100, lastYear.Discount, prev.Revenue)
	out.Discount.MarginImpact = out.Discount.CurrentRestoredMargin - out.Discount.LastYearRestoredMargin

	// Zayiat etkisi: restored = 1 - ((1-m)·R - Δzayiat) / R
	// Δzayiat kullanılır ki iki dönem özdeşken etki sıfır çıksın.
	out.DishLoss.RestoredMargin = (1 - ((1-margin)*revenue-out.DishLoss.Amount)/revenue) * 100
	out.DishLoss.MarginImpact = cur.GrossMarginPct - out.DishLoss.RestoredMargin

	return out
}

// discountRestoredMargin: indirim hiç olmasaydı oluşacak marj (%).
// Ciro 0 veya indirim oranı >= 1 ise 0 tanımlanır.
func discountRestoredMargin(margin, discount, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	pct := discount / revenue
	if pct >= 1 {
		return 0
	}
	return (1 - (1-margin)*(1-pct)) * 100
}
