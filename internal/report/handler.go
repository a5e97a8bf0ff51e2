package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"maliyet-backend/internal/audit"
	"maliyet-backend/internal/auth"
	"maliyet-backend/internal/config"
	"maliyet-backend/internal/costing"
	"maliyet-backend/internal/database"
	"maliyet-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type GenerateReportRequest struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	StoreID *uint `json:"store_id"` // nil = tüm store'lar (sadece super_admin)
}

type MarginReportResponse struct {
	ID         uint                    `json:"id"`
	StoreID    *uint                   `json:"store_id"`
	Year       int                     `json:"year"`
	Month      int                     `json:"month"`
	Kind       models.MarginReportKind `json:"kind"`
	FileName   string                  `json:"file_name"`
	ReportDate string                  `json:"report_date"`
	CreatedAt  string                  `json:"created_at"`
}

func toResponse(r models.MonthlyMarginReport) MarginReportResponse {
	return MarginReportResponse{
		ID:         r.ID,
		StoreID:    r.StoreID,
		Year:       r.Year,
		Month:      r.Month,
		Kind:       r.Kind,
		FileName:   r.FileName,
		ReportDate: r.ReportDate.Format("2006-01-02 15:04:05"),
		CreatedAt:  r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// resolveReportScope: store_admin sadece kendi store'u için rapor alabilir.
func resolveReportScope(c *fiber.Ctx, bodyStoreID *uint) (*uint, error) {
	roleVal := c.Locals(auth.CtxUserRoleKey)
	role, ok := roleVal.(models.UserRole)
	if !ok {
		return nil, fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
	}

	if role == models.RoleStoreAdmin {
		sVal := c.Locals(auth.CtxStoreIDKey)
		sPtr, ok := sVal.(*uint)
		if !ok || sPtr == nil {
			return nil, fiber.NewError(fiber.StatusForbidden, "Store bilgisi bulunamadı")
		}
		return sPtr, nil
	}
	return bodyStoreID, nil
}

func parseReportRequest(c *fiber.Ctx) (GenerateReportRequest, *uint, error) {
	var body GenerateReportRequest
	if err := c.BodyParser(&body); err != nil {
		return body, nil, fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if body.Year < 2000 || body.Month < 1 || body.Month > 12 {
		return body, nil, fiber.NewError(fiber.StatusBadRequest, "Geçersiz yıl veya ay")
	}
	scope, err := resolveReportScope(c, body.StoreID)
	if err != nil {
		return body, nil, err
	}
	return body, scope, nil
}

func persistReport(c *fiber.Ctx, scope *uint, p costing.Period, kind models.MarginReportKind, fileName string, summary any) (models.MonthlyMarginReport, error) {
	summaryJSON, _ := json.Marshal(summary)
	rec := models.MonthlyMarginReport{
		StoreID:    scope,
		Year:       p.Year,
		Month:      p.Month,
		Kind:       kind,
		FileName:   fileName,
		ReportDate: time.Now(),
		ReportData: string(summaryJSON),
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		return rec, fiber.NewError(fiber.StatusInternalServerError, "Rapor kaydedilemedi")
	}

	userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
	var user models.User
	database.DB.First(&user, "id = ?", userID)
	_ = audit.WriteLog(audit.LogOptions{
		StoreID:     scope,
		UserID:      userID,
		UserName:    user.Name,
		EntityType:  "monthly_margin_report",
		EntityID:    rec.ID,
		Action:      models.AuditActionReport,
		Description: fmt.Sprintf("%s raporu üretildi: %d/%d", kind, p.Month, p.Year),
		After:       rec,
	})
	return rec, nil
}

// POST /api/reports/category-comparison
func GenerateCategoryComparisonHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, scope, err := parseReportRequest(c)
		if err != nil {
			return err
		}
		p := costing.Period{Year: body.Year, Month: body.Month}

		results, err := buildCategoryComparison(scope, p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor verisi hazırlanamadı")
		}
		fileName, err := renderCategoryWorkbook(results, p, cfg.ReportOutputPath)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor dosyası üretilemedi")
		}

		rec, err := persistReport(c, scope, p, models.ReportKindCategoryComparison, fileName, results)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(rec))
	}
}

// POST /api/reports/store-revenue
func GenerateStoreRevenueHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, scope, err := parseReportRequest(c)
		if err != nil {
			return err
		}
		p := costing.Period{Year: body.Year, Month: body.Month}

		results, err := buildStoreRevenue(scope, p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor verisi hazırlanamadı")
		}
		fileName, err := renderStoreRevenueWorkbook(results, p, cfg.ReportOutputPath)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor dosyası üretilemedi")
		}

		rec, err := persistReport(c, scope, p, models.ReportKindStoreRevenue, fileName, results)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(rec))
	}
}

// POST /api/reports/yoy-decomposition
func GenerateYoYDecompositionHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, scope, err := parseReportRequest(c)
		if err != nil {
			return err
		}
		p := costing.Period{Year: body.Year, Month: body.Month}

		results, err := buildYoYDecomposition(scope, p)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor verisi hazırlanamadı")
		}
		fileName, err := renderYoYWorkbook(results, p, cfg.ReportOutputPath)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor dosyası üretilemedi")
		}

		rec, err := persistReport(c, scope, p, models.ReportKindYoYDecomposition, fileName, results)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(rec))
	}
}

// GET /api/reports?year=2025&month=6&kind=yoy_decomposition
func ListReportsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.MonthlyMarginReport{})

		roleVal := c.Locals(auth.CtxUserRoleKey)
		if role, ok := roleVal.(models.UserRole); ok && role == models.RoleStoreAdmin {
			sVal := c.Locals(auth.CtxStoreIDKey)
			if sPtr, ok := sVal.(*uint); ok && sPtr != nil {
				// Kendi store'unun raporları + tüm store kapsamındaki raporlar
				dbq = dbq.Where("store_id = ? OR store_id IS NULL", *sPtr)
			}
		}

		if yearStr := c.Query("year"); yearStr != "" {
			var year int
			if _, err := fmt.Sscan(yearStr, &year); err == nil {
				dbq = dbq.Where("year = ?", year)
			}
		}
		if monthStr := c.Query("month"); monthStr != "" {
			var month int
			if _, err := fmt.Sscan(monthStr, &month); err == nil {
				dbq = dbq.Where("month = ?", month)
			}
		}
		if kind := c.Query("kind"); kind != "" {
			dbq = dbq.Where("kind = ?", kind)
		}

		var reports []models.MonthlyMarginReport
		if err := dbq.Order("created_at DESC").Limit(200).Find(&reports).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Raporlar listelenemedi")
		}

		resp := make([]MarginReportResponse, 0, len(reports))
		for _, r := range reports {
			resp = append(resp, toResponse(r))
		}
		return c.JSON(resp)
	}
}

// GET /api/reports/:id/download
func DownloadReportHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var report models.MonthlyMarginReport
		if err := database.DB.First(&report, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rapor bulunamadı")
		}

		// Store admin sadece kendi kapsamındaki raporları indirebilir
		roleVal := c.Locals(auth.CtxUserRoleKey)
		if role, ok := roleVal.(models.UserRole); ok && role == models.RoleStoreAdmin {
			sVal := c.Locals(auth.CtxStoreIDKey)
			sPtr, ok := sVal.(*uint)
			if !ok || sPtr == nil {
				return fiber.NewError(fiber.StatusForbidden, "Store bilgisi bulunamadı")
			}
			if report.StoreID != nil && *report.StoreID != *sPtr {
				return fiber.NewError(fiber.StatusForbidden, "Bu rapora erişim yetkiniz yok")
			}
		}

		return c.Download(filepath.Join(cfg.ReportOutputPath, report.FileName), report.FileName)
	}
}
