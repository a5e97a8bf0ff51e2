package report

import (
	"maliyet-backend/internal/costing"
	"maliyet-backend/internal/models"
)

// Rapor hesap katmanı: veriyi yükler, motoru çalıştırır, render katmanına
// hazır satırlar döner. Eksik dönemler sıfır satır üretir, hata üretmez.

// StoreCategoryMargins: bir store'un kategori bazlı marjları
// (bu ay / geçen ay / geçen yılın aynı ayı).
type StoreCategoryMargins struct {
	Store models.Store
	Rows  []costing.MarginRow
}

// StoreRevenueBreakdown: bir store'un ciro/maliyet özeti ve ürün kırılımı.
type StoreRevenueBreakdown struct {
	Store   models.Store
	Summary costing.MarginRow
	Dishes  []DishRevenueRow
}

type DishRevenueRow struct {
	Dish         models.Dish
	NetQuantity  float64
	Price        float64
	Revenue      float64
	MaterialCost float64
	MarginPct    float64
}

// StoreDecomposition: bir store'un yıllık marj ayrıştırması.
type StoreDecomposition struct {
	Store  models.Store
	Result costing.MarginDecomposition
}

func buildCategoryComparison(storeID *uint, p costing.Period) ([]StoreCategoryMargins, error) {
	stores, err := loadStores(storeID)
	if err != nil {
		return nil, err
	}

	out := make([]StoreCategoryMargins, 0, len(stores))
	for _, store := range stores {
		dishes, _, err := loadDishes(store.ID)
		if err != nil {
			return nil, err
		}
		prices, err := loadPriceBook(store.ID)
		if err != nil {
			return nil, err
		}

		// Üç dönemin satış ve maliyetleri tek toplulaştırma çağrısında işlenir,
		// dönem ayrımını MarginRow.Period taşır.
		var allSales []costing.SalesRecord
		var allCosts []costing.DishMaterialCost
		for _, period := range []costing.Period{p, p.Prev(), p.LastYear()} {
			data, err := loadPeriodData(store.ID, period)
			if err != nil {
				return nil, err
			}
			allSales = append(allSales, data.Sales...)
			allCosts = append(allCosts, costing.AllocateActualCost(data.Theoretical, data.Usage, prices, period)...)
		}

		out = append(out, StoreCategoryMargins{
			Store: store,
			Rows:  costing.AggregateMargins(allCosts, allSales, dishes, prices, costing.GroupByCategory),
		})
	}
	return out, nil
}

func buildStoreRevenue(storeID *uint, p costing.Period) ([]StoreRevenueBreakdown, error) {
	stores, err := loadStores(storeID)
	if err != nil {
		return nil, err
	}

	out := make([]StoreRevenueBreakdown, 0, len(stores))
	for _, store := range stores {
		dishes, dishModels, err := loadDishes(store.ID)
		if err != nil {
			return nil, err
		}
		prices, err := loadPriceBook(store.ID)
		if err != nil {
			return nil, err
		}
		data, err := loadPeriodData(store.ID, p)
		if err != nil {
			return nil, err
		}

		costs := costing.AllocateActualCost(data.Theoretical, data.Usage, prices, p)
		dishCosts := costing.DishTotalCosts(costs)

		breakdown := StoreRevenueBreakdown{Store: store}
		storeRows := costing.AggregateMargins(costs, data.Sales, dishes, prices, costing.GroupByStore)
		if len(storeRows) > 0 {
			breakdown.Summary = storeRows[0]
		} else {
			breakdown.Summary = costing.MarginRow{StoreID: store.ID, Period: p}
		}

		for _, s := range data.Sales {
			price, _ := prices.DishPrice(s.DishID, s.StoreID, p)
			revenue := s.NetQuantity * price
			cost := dishCosts[s.DishID]
			var marginPct float64
			if revenue > 0 {
				marginPct = (revenue - cost) / revenue * 100
			}
			breakdown.Dishes = append(breakdown.Dishes, DishRevenueRow{
				Dish:         dishModels[s.DishID],
				NetQuantity:  s.NetQuantity,
				Price:        price,
				Revenue:      revenue,
				MaterialCost: cost,
				MarginPct:    marginPct,
			})
		}

		out = append(out, breakdown)
	}
	return out, nil
}

func buildYoYDecomposition(storeID *uint, p costing.Period) ([]StoreDecomposition, error) {
	stores, err := loadStores(storeID)
	if err != nil {
		return nil, err
	}

	out := make([]StoreDecomposition, 0, len(stores))
	for _, store := range stores {
		dishes, _, err := loadDishes(store.ID)
		if err != nil {
			return nil, err
		}
		prices, err := loadPriceBook(store.ID)
		if err != nil {
			return nil, err
		}
		current, err := loadPeriodData(store.ID, p)
		if err != nil {
			return nil, err
		}
		lastYear, err := loadPeriodData(store.ID, p.LastYear())
		if err != nil {
			return nil, err
		}

		out = append(out, StoreDecomposition{
			Store:  store,
			Result: costing.DecomposeMarginChange(current, lastYear, prices, dishes),
		})
	}
	return out, nil
}
