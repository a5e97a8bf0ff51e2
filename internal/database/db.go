package database

import (
	"log"

	"maliyet-backend/internal/config"
	"maliyet-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	// Material migration: use_type ekleniyor (AutoMigrate'ten ÖNCE)
	// Eski kayıtlar kullanım türü olmadan yüklendiyse hepsi maliyet tipi sayılır
	if DB.Migrator().HasTable(&models.Material{}) {
		if !DB.Migrator().HasColumn(&models.Material{}, "use_type") {
			log.Println("Material.use_type kolonu ekleniyor...")
			if err := DB.Exec("ALTER TABLE materials ADD COLUMN use_type VARCHAR(20)").Error; err != nil {
				log.Printf("use_type kolonu eklenirken hata (zaten var olabilir): %v", err)
			} else {
				DB.Exec("UPDATE materials SET use_type = ? WHERE use_type IS NULL", models.MaterialUseTypeCost)
				log.Println("Material migration tamamlandı, mevcut kayıtlar 'cost' olarak işaretlendi")
			}
		}
	}

	// DishPriceHistory migration: aynı (store, dish, dönem) için birden fazla
	// kayıt varsa en yenisi kazanır; eski mükerrerler temizlenir
	if DB.Migrator().HasTable(&models.DishPriceHistory{}) {
		var dupCount int64
		DB.Raw(`
			SELECT COUNT(*) FROM (
				SELECT store_id, dish_id, effective_year, effective_month
				FROM dish_price_histories
				GROUP BY store_id, dish_id, effective_year, effective_month
				HAVING COUNT(*) > 1
			) d
		`).Scan(&dupCount)
		if dupCount > 0 {
			log.Printf("DishPriceHistory tablosunda %d mükerrer dönem bulundu, temizleniyor...", dupCount)
			DB.Exec(`
				DELETE FROM dish_price_histories a
				USING dish_price_histories b
				WHERE a.store_id = b.store_id
				  AND a.dish_id = b.dish_id
				  AND a.effective_year = b.effective_year
				  AND a.effective_month = b.effective_month
				  AND a.id < b.id
			`)
		}
	}

	err = DB.AutoMigrate(
		&models.Store{},
		&models.User{},
		&models.AuditLog{},
		&models.ImportLog{},
		// Ana veri
		&models.Dish{},
		&models.Material{},
		&models.RecipeLine{},
		&models.DishMonthlySale{},
		&models.MaterialMonthlyUsage{},
		&models.DishPriceHistory{},
		&models.MaterialPriceHistory{},
		&models.MonthlyDiscount{},
		// Rapor kayıtları
		&models.MonthlyMarginReport{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	// Fiyat araması dönem sıralı yapılır, birleşik index şart
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_dish_price_lookup ON dish_price_histories(store_id, dish_id, effective_year, effective_month)")
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_material_price_lookup ON material_price_histories(store_id, material_id, effective_year, effective_month)")

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
