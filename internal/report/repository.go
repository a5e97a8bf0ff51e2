package report

import (
	"fmt"

	"maliyet-backend/internal/costing"
	"maliyet-backend/internal/database"
	"maliyet-backend/internal/models"
)

// Maliyet hesabına giren kullanım türleri. Eski dosyalarda Çince etiketler,
// yenilerde "cost" kullanılıyor.
var costUseTypes = []string{models.MaterialUseTypeCost, "成本", "成本类"}

// loadDishes: Store'un ürünleri, motorun DishInfo haritası + isim haritası.
func loadDishes(storeID uint) (map[uint]costing.DishInfo, map[uint]models.Dish, error) {
	var dishes []models.Dish
	if err := database.DB.Where("store_id = ?", storeID).Find(&dishes).Error; err != nil {
		return nil, nil, fmt.Errorf("ürünler yüklenemedi: %w", err)
	}

	infos := make(map[uint]costing.DishInfo, len(dishes))
	byID := make(map[uint]models.Dish, len(dishes))
	for _, d := range dishes {
		infos[d.ID] = costing.DishInfo{
			ID:        d.ID,
			StoreID:   d.StoreID,
			FullCode:  d.FullCode,
			BroadType: d.BroadType,
		}
		byID[d.ID] = d
	}
	return infos, byID, nil
}

// loadPriceBook: Store'un tüm fiyat geçmişini belleğe alır. Motor dönem bazlı
// aramayı kendi yapar (effective <= dönem olan en son kayıt).
func loadPriceBook(storeID uint) (*costing.PriceBook, error) {
	book := costing.NewPriceBook()

	var dishPrices []models.DishPriceHistory
	if err := database.DB.Where("store_id = ?", storeID).Find(&dishPrices).Error; err != nil {
		return nil, fmt.Errorf("ürün fiyatları yüklenemedi: %w", err)
	}
	for _, p := range dishPrices {
		book.AddDishPrice(p.DishID, p.StoreID, costing.Period{Year: p.EffectiveYear, Month: p.EffectiveMonth}, p.Price)
	}

	var materialPrices []models.MaterialPriceHistory
	if err := database.DB.Where("store_id = ?", storeID).Find(&materialPrices).Error; err != nil {
		return nil, fmt.Errorf("malzeme fiyatları yüklenemedi: %w", err)
	}
	for _, p := range materialPrices {
		book.AddMaterialPrice(p.MaterialID, p.StoreID, costing.Period{Year: p.EffectiveYear, Month: p.EffectiveMonth}, p.Price)
	}

	return book, nil
}

// loadPeriodData: Bir (store, dönem) için motorun tüm girdileri. Eksik dönem
// hata değildir, boş dilimlerle döner ve rapor sıfırlarla üretilir.
func loadPeriodData(storeID uint, p costing.Period) (costing.PeriodData, error) {
	data := costing.PeriodData{StoreID: storeID, Period: p}

	var sales []models.DishMonthlySale
	if err := database.DB.Where("store_id = ? AND year = ? AND month = ?",
		storeID, p.Year, p.Month).Find(&sales).Error; err != nil {
		return data, fmt.Errorf("satışlar yüklenemedi: %w", err)
	}
	for _, s := range sales {
		data.Sales = append(data.Sales, costing.SalesRecord{
			DishID:      s.DishID,
			StoreID:     s.StoreID,
			Period:      p,
			NetQuantity: s.NetQuantity(),
		})
	}

	// Sadece maliyet tipi malzemelerin sayımları motor girdisi olur
	var usages []models.MaterialMonthlyUsage
	if err := database.DB.
		Joins("JOIN materials ON materials.id = material_monthly_usages.material_id").
		Where("material_monthly_usages.store_id = ? AND material_monthly_usages.year = ? AND material_monthly_usages.month = ?",
			storeID, p.Year, p.Month).
		Where("materials.use_type IN ?", costUseTypes).
		Find(&usages).Error; err != nil {
		return data, fmt.Errorf("sayımlar yüklenemedi: %w", err)
	}
	for _, u := range usages {
		data.Usage = append(data.Usage, costing.ActualUsage{
			MaterialID:   u.MaterialID,
			StoreID:      u.StoreID,
			Period:       p,
			QuantityUsed: u.QuantityUsed,
		})
	}

	var recipeRows []models.RecipeLine
	if err := database.DB.Where("store_id = ?", storeID).Find(&recipeRows).Error; err != nil {
		return data, fmt.Errorf("reçeteler yüklenemedi: %w", err)
	}
	recipes := make([]costing.RecipeLine, 0, len(recipeRows))
	for _, r := range recipeRows {
		recipes = append(recipes, costing.RecipeLine{
			DishID:             r.DishID,
			MaterialID:         r.MaterialID,
			StoreID:            r.StoreID,
			StandardQuantity:   r.StandardQuantity,
			LossRate:           r.LossRate,
			UnitConversionRate: r.UnitConversionRate,
		})
	}
	data.Theoretical = costing.ComputeTheoreticalUsage(data.Sales, recipes)

	var discount models.MonthlyDiscount
	if err := database.DB.Where("store_id = ? AND year = ? AND month = ?",
		storeID, p.Year, p.Month).First(&discount).Error; err == nil {
		data.Discount = discount.TotalDiscount
	}

	return data, nil
}

// loadStores: Rapor kapsamındaki store'lar. storeID verilmişse tek store.
func loadStores(storeID *uint) ([]models.Store, error) {
	var stores []models.Store
	dbq := database.DB.Order("id")
	if storeID != nil {
		dbq = dbq.Where("id = ?", *storeID)
	}
	if err := dbq.Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("store listesi yüklenemedi: %w", err)
	}
	return stores, nil
}
