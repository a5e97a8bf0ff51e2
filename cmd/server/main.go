package main

import (
	"log"
	"strings"

	"maliyet-backend/internal/admin"
	"maliyet-backend/internal/audit"
	"maliyet-backend/internal/auth"
	"maliyet-backend/internal/config"
	"maliyet-backend/internal/database"
	"maliyet-backend/internal/ingest"
	"maliyet-backend/internal/models"
	"maliyet-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Super admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleSuperAdmin))

	// Store yönetimi
	adminRoutes.Post("/stores", admin.CreateStoreHandler())
	adminRoutes.Get("/stores", admin.ListStoresHandler())
	adminRoutes.Get("/stores/:id", admin.GetStoreHandler())
	adminRoutes.Put("/stores/:id", admin.UpdateStoreHandler())
	adminRoutes.Delete("/stores/:id", admin.DeleteStoreHandler())
	adminRoutes.Post("/stores/:id/admin", admin.CreateStoreAdminHandler())

	// Excel yüklemeleri (store admin kendi store'una, super admin store seçerek)
	protected.Post("/imports/dish-sales", ingest.ImportDishSalesHandler())
	protected.Post("/imports/material-usage", ingest.ImportMaterialUsageHandler())
	protected.Post("/imports/recipes", ingest.ImportRecipesHandler())
	protected.Post("/imports/dish-prices", ingest.ImportDishPricesHandler())
	protected.Post("/imports/material-prices", ingest.ImportMaterialPricesHandler())
	protected.Put("/imports/discounts", ingest.SetMonthlyDiscountHandler())
	protected.Get("/imports", ingest.ListImportLogsHandler())

	// Raporlar
	protected.Post("/reports/category-comparison", report.GenerateCategoryComparisonHandler(cfg))
	protected.Post("/reports/store-revenue", report.GenerateStoreRevenueHandler(cfg))
	protected.Post("/reports/yoy-decomposition", report.GenerateYoYDecompositionHandler(cfg))
	protected.Get("/reports", report.ListReportsHandler())
	protected.Get("/reports/:id/download", report.DownloadReportHandler(cfg))

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
