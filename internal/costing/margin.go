package costing

import "sort"

// Marj toplulaştırma: menü ürünü seviyesindeki ciro ve dağıtılmış maliyeti
// kategori veya store eksenine toplar.

type marginGroupKey struct {
	StoreID uint
	Group   string
	Period  Period
}

// AggregateMargins: her grup + dönem için bir MarginRow üretir.
//
//	ciro          = Σ net_adet × ürün_fiyatı (dönem itibarıyla geçerli fiyat)
//	maliyet       = Σ dağıtılmış maliyet (gruptaki ürünler)
//	brüt marj (%) = (ciro - maliyet) / ciro × 100  (ciro > 0 ise, değilse 0)
//
// Marj sınırlanmaz: maliyet ciroyu aşarsa negatif, maliyet negatifse %100
// üzeri değerler olduğu gibi geçer. Dönem karşılaştırma farklarını (puan)
// çağıran basit çıkarma ile hesaplar.
func AggregateMargins(costs []DishMaterialCost, sales []SalesRecord, dishes map[uint]DishInfo, prices *PriceBook, groupBy GroupBy) []MarginRow {
	type dishPeriodKey struct {
		DishID uint
		Period Period
	}
	costByDish := make(map[dishPeriodKey]float64)
	for _, c := range costs {
		costByDish[dishPeriodKey{DishID: c.DishID, Period: c.Period}] += c.AllocatedCost
	}

	groupOf := func(s SalesRecord) string {
		if groupBy == GroupByStore {
			return ""
		}
		d, ok := dishes[s.DishID]
		if !ok || d.BroadType == "" {
			return UncategorizedGroup
		}
		return d.BroadType
	}

	revenue := make(map[marginGroupKey]float64)
	cost := make(map[marginGroupKey]float64)
	costCounted := make(map[dishPeriodKey]bool)

	for _, s := range sales {
		k := marginGroupKey{StoreID: s.StoreID, Group: groupOf(s), Period: s.Period}

		price, _ := prices.DishPrice(s.DishID, s.StoreID, s.Period)
		revenue[k] += s.NetQuantity * price

		// Aynı ürün birden çok satış kaydıyla gelirse maliyet bir kez sayılır
		dk := dishPeriodKey{DishID: s.DishID, Period: s.Period}
		if !costCounted[dk] {
			costCounted[dk] = true
			cost[k] += costByDish[dk]
		}
	}

	rows := make([]MarginRow, 0, len(revenue))
	for k, rev := range revenue {
		c := cost[k]
		var marginPct float64
		if rev > 0 {
			marginPct = (rev - c) / rev * 100
		}
		rows = append(rows, MarginRow{
			StoreID:        k.StoreID,
			Group:          k.Group,
			Period:         k.Period,
			Revenue:        rev,
			MaterialCost:   c,
			GrossMarginPct: marginPct,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.StoreID != b.StoreID {
			return a.StoreID < b.StoreID
		}
		if a.Group != b.Group {
			return a.Group < b.Group
		}
		return a.Period.Compare(b.Period) < 0
	})
	return rows
}
