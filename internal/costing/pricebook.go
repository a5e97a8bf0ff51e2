package costing

// PriceBook: menü ürünü ve malzeme fiyat geçmişlerinin bellek içi endeksi.
// Kural: sorgulanan döneme eşit veya ondan önceki en güncel fiyat geçerlidir
// (is_active bayrağı değil). Geçmiş/yıllık sorgular bu sayede doğru çalışır.
// Global durum tutulmaz; çağıran doldurur ve parametre olarak geçer.

type priceKey struct {
	EntityID uint
	StoreID  uint
}

type priceEntry struct {
	Effective Period
	Price     float64
}

type PriceBook struct {
	dish     map[priceKey][]priceEntry
	material map[priceKey][]priceEntry
}

func NewPriceBook() *PriceBook {
	return &PriceBook{
		dish:     make(map[priceKey][]priceEntry),
		material: make(map[priceKey][]priceEntry),
	}
}

func (b *PriceBook) AddDishPrice(dishID, storeID uint, effective Period, price float64) {
	k := priceKey{EntityID: dishID, StoreID: storeID}
	b.dish[k] = append(b.dish[k], priceEntry{Effective: effective, Price: price})
}

func (b *PriceBook) AddMaterialPrice(materialID, storeID uint, effective Period, price float64) {
	k := priceKey{EntityID: materialID, StoreID: storeID}
	b.material[k] = append(b.material[k], priceEntry{Effective: effective, Price: price})
}

// DishPrice: dönem itibarıyla geçerli menü ürünü fiyatı.
// Kayıt yoksa (0, false) döner; çağıran sıfır fiyatla devam eder.
func (b *PriceBook) DishPrice(dishID, storeID uint, p Period) (float64, bool) {
	return lookup(b.dish, priceKey{EntityID: dishID, StoreID: storeID}, p)
}

// MaterialPrice: dönem itibarıyla geçerli malzeme fiyatı.
func (b *PriceBook) MaterialPrice(materialID, storeID uint, p Period) (float64, bool) {
	return lookup(b.material, priceKey{EntityID: materialID, StoreID: storeID}, p)
}

// lookup: effective <= p olan en güncel kaydı seçer. Kayıt sayısı entity
// başına küçük olduğundan sıralama yerine tek geçiş yeterli.
func lookup(m map[priceKey][]priceEntry, k priceKey, p Period) (float64, bool) {
	entries, ok := m[k]
	if !ok {
		return 0, false
	}

	var best *priceEntry
	for i := range entries {
		e := &entries[i]
		if e.Effective.Compare(p) > 0 {
			continue
		}
		if best == nil || e.Effective.Compare(best.Effective) > 0 {
			best = e
		}
	}
	if best == nil {
		return 0, false
	}
	return best.Price, true
}
