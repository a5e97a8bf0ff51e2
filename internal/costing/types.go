package costing

// Paket costing: malzeme maliyet dağıtımı ve marj analizi motoru.
// Saf hesaplama yapar; veritabanı veya dosya erişimi yoktur. Tüm girdiler
// çağıran katman tarafından belleğe yüklenmiş kayıtlardır (store-ay bazında).
// Eksik veri hata değildir: ilgili toplam sıfır katkı alır.

// Period: (yıl, ay) çifti. Tüm motor operasyonları dönem bazlıdır.
type Period struct {
	Year  int
	Month int
}

// Prev: bir önceki ay
func (p Period) Prev() Period {
	if p.Month == 1 {
		return Period{Year: p.Year - 1, Month: 12}
	}
	return Period{Year: p.Year, Month: p.Month - 1}
}

// LastYear: geçen yılın aynı ayı
func (p Period) LastYear() Period {
	return Period{Year: p.Year - 1, Month: p.Month}
}

// Compare: p < o ise -1, eşitse 0, p > o ise 1
func (p Period) Compare(o Period) int {
	if p.Year != o.Year {
		if p.Year < o.Year {
			return -1
		}
		return 1
	}
	if p.Month != o.Month {
		if p.Month < o.Month {
			return -1
		}
		return 1
	}
	return 0
}

// DishInfo: motorun ihtiyaç duyduğu menü ürünü bilgisi (kategori ve kod).
type DishInfo struct {
	ID        uint
	StoreID   uint
	FullCode  string
	BroadType string
}

// SalesRecord: bir menü ürününün dönemlik net satışı.
// NetQuantity = satış adedi - iade adedi; negatif olabilir, teorik kullanım
// hesabında negatifler atlanır.
type SalesRecord struct {
	DishID      uint
	StoreID     uint
	Period      Period
	NetQuantity float64
}

// RecipeLine: reçete satırı (menü ürünü -> malzeme).
// Bir (store, dish, material) üçlüsü için en fazla bir satır bulunur.
type RecipeLine struct {
	DishID             uint
	MaterialID         uint
	StoreID            uint
	StandardQuantity   float64
	LossRate           float64
	UnitConversionRate float64
}

// TheoreticalUsage: reçeteden türetilen teorik malzeme kullanımı.
type TheoreticalUsage struct {
	DishID     uint
	MaterialID uint
	StoreID    uint
	Period     Period
	Quantity   float64
}

// ActualUsage: fiziksel sayımdan gelen gerçek malzeme kullanımı.
// Sadece maliyet tipi malzemeler motor girdisi olur; filtreleme çağıranın işidir.
type ActualUsage struct {
	MaterialID   uint
	StoreID      uint
	Period       Period
	QuantityUsed float64
}

// DishMaterialCost: dağıtım sonucu; bir menü ürününe bir malzemeden düşen
// maliyet ve miktar payı.
type DishMaterialCost struct {
	DishID            uint
	MaterialID        uint
	StoreID           uint
	Period            Period
	AllocatedCost     float64
	AllocatedQuantity float64
}

// GroupBy: marj toplulaştırma ekseni
type GroupBy int

const (
	GroupByCategory GroupBy = iota // menü ürünü büyük kategorisi (store bazında)
	GroupByStore                   // store toplamı
)

// UncategorizedGroup: kategorisi olmayan ürünler için sabit grup adı
const UncategorizedGroup = "Diğer"

// MarginRow: bir grup + dönem için ciro, malzeme maliyeti ve brüt marj.
// Marj yüzdesi sınırlanmaz; maliyet ciroyu aşıyorsa negatif çıkar.
type MarginRow struct {
	StoreID        uint
	Group          string // GroupByStore için boş
	Period         Period
	Revenue        float64
	MaterialCost   float64
	GrossMarginPct float64
}

// PeriodData: marj ayrıştırması için bir dönemin tüm girdileri.
type PeriodData struct {
	StoreID     uint
	Period      Period
	Sales       []SalesRecord
	Usage       []ActualUsage
	Theoretical []TheoreticalUsage
	Discount    float64
}

// PeriodSummary: bir dönemin türetilmiş finansal özeti.
type PeriodSummary struct {
	Revenue        float64
	MaterialCost   float64
	Discount       float64
	GrossMarginPct float64
}

// FactorImpact: tek faktörlü ayrıştırma sonucu.
// Amount parasal etki tutarı, RestoredMargin faktör değişmeseydi oluşacak
// marj (%), MarginImpact = mevcut marj - restore edilmiş marj (puan).
type FactorImpact struct {
	Amount         float64
	RestoredMargin float64
	MarginImpact   float64
}

// DiscountImpact: indirim faktörü iki dönemin restore marjlarının farkıyla
// ölçülür, diğer faktörler gibi tek dönemlik delta değildir.
type DiscountImpact struct {
	CurrentAmount          float64
	LastYearAmount         float64
	CurrentRestoredMargin  float64
	LastYearRestoredMargin float64
	MarginImpact           float64
}

// LossImpact: menü ürünü kayıp (zayiat) faktörü. Amount iki dönemin kayıp
// tutarları arasındaki farktır; dönem bazlı ham tutarlar da taşınır.
type LossImpact struct {
	CurrentAmount  float64
	LastYearAmount float64
	Amount         float64
	RestoredMargin float64
	MarginImpact   float64
}

// MarginDecomposition: yıllık marj değişiminin dört nedene ayrıştırılması.
// Dört faktör etkisinin toplamı MarginChange ile birebir tutmak zorunda
// değildir; etkileşim etkileri modellenmez.
type MarginDecomposition struct {
	Current      PeriodSummary
	LastYear     PeriodSummary
	MarginChange float64 // puan (pp)

	DishPrice     FactorImpact
	MaterialPrice FactorImpact
	Discount      DiscountImpact
	DishLoss      LossImpact
}
