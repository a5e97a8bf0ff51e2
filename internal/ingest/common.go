package ingest

import (
	"encoding/json"
	"fmt"
	"mime/multipart"

	"maliyet-backend/internal/audit"
	"maliyet-backend/internal/auth"
	"maliyet-backend/internal/database"
	"maliyet-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ImportResult: Bir yüklemenin satır sayaçları.
type ImportResult struct {
	Inserted    int      `json:"inserted"`
	Updated     int      `json:"updated"`
	Skipped     int      `json:"skipped"`
	SkipReasons []string `json:"skip_reasons,omitempty"`
}

func (r *ImportResult) skip(format string, args ...any) {
	r.Skipped++
	// İlk 50 neden yeter, dosya bozuksa binlerce satır aynı nedenle düşer
	if len(r.SkipReasons) < 50 {
		r.SkipReasons = append(r.SkipReasons, fmt.Sprintf(format, args...))
	}
}

// resolveStoreID: store_admin kendi store'una yükler, super_admin form
// alanından seçer.
func resolveStoreID(c *fiber.Ctx) (uint, error) {
	roleVal := c.Locals(auth.CtxUserRoleKey)
	role, ok := roleVal.(models.UserRole)
	if !ok {
		return 0, fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
	}

	if role == models.RoleStoreAdmin {
		sVal := c.Locals(auth.CtxStoreIDKey)
		sPtr, ok := sVal.(*uint)
		if !ok || sPtr == nil {
			return 0, fiber.NewError(fiber.StatusForbidden, "Store bilgisi bulunamadı")
		}
		return *sPtr, nil
	}

	// super_admin
	sidStr := c.FormValue("store_id")
	if sidStr == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, "store_id zorunlu")
	}
	var sid uint
	if _, err := fmt.Sscan(sidStr, &sid); err != nil || sid == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "store_id geçersiz")
	}
	return sid, nil
}

// resolvePeriod: year/month form alanlarını doğrular.
func resolvePeriod(c *fiber.Ctx) (int, int, error) {
	var year, month int
	if _, err := fmt.Sscan(c.FormValue("year"), &year); err != nil || year < 2000 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Geçersiz yıl")
	}
	if _, err := fmt.Sscan(c.FormValue("month"), &month); err != nil || month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Geçersiz ay")
	}
	return year, month, nil
}

// openUploadedRows: multipart "file" alanındaki xlsx'i açıp ilk sayfanın
// satırlarını döner.
func openUploadedRows(c *fiber.Ctx) (string, [][]string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusBadRequest, "Dosya eksik (form alanı: file)")
	}

	rows, err := readSheetRows(fileHeader)
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, rows, nil
}

func readSheetRows(fileHeader *multipart.FileHeader) ([][]string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Dosya açılamadı")
	}
	defer f.Close()

	wb, err := excelize.OpenReader(f)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Geçerli bir xlsx dosyası değil")
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Dosyada sayfa yok")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Sayfa okunamadı")
	}
	if len(rows) < 2 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Dosyada veri satırı yok")
	}
	return rows, nil
}

// finishImport: ImportLog kaydı + audit log + JSON cevap.
func finishImport(c *fiber.Ctx, storeID uint, importType, fileName string, result *ImportResult) error {
	userID, userName := currentUser(c)

	reasonsJSON, _ := json.Marshal(result.SkipReasons)
	logEntry := models.ImportLog{
		StoreID:     &storeID,
		UserID:      userID,
		UserName:    userName,
		ImportType:  importType,
		FileName:    fileName,
		Inserted:    result.Inserted,
		Updated:     result.Updated,
		Skipped:     result.Skipped,
		SkipReasons: string(reasonsJSON),
	}
	if err := database.DB.Create(&logEntry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Import log kaydedilemedi")
	}

	_ = audit.WriteLog(audit.LogOptions{
		StoreID:     &storeID,
		UserID:      userID,
		UserName:    userName,
		EntityType:  "import_log",
		EntityID:    logEntry.ID,
		Action:      models.AuditActionImport,
		Description: fmt.Sprintf("%s yüklendi: %d eklendi, %d güncellendi, %d atlandı", importType, result.Inserted, result.Updated, result.Skipped),
		After:       logEntry,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"import_log_id": logEntry.ID,
		"inserted":      result.Inserted,
		"updated":       result.Updated,
		"skipped":       result.Skipped,
		"skip_reasons":  result.SkipReasons,
	})
}

func currentUser(c *fiber.Ctx) (uint, string) {
	userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return userID, ""
	}
	return userID, user.Name
}

// GET /api/imports
func ListImportLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.ImportLog{})

		roleVal := c.Locals(auth.CtxUserRoleKey)
		if role, ok := roleVal.(models.UserRole); ok && role == models.RoleStoreAdmin {
			sVal := c.Locals(auth.CtxStoreIDKey)
			if sPtr, ok := sVal.(*uint); ok && sPtr != nil {
				dbq = dbq.Where("store_id = ?", *sPtr)
			}
		} else if sidStr := c.Query("store_id"); sidStr != "" {
			var sid uint
			if _, err := fmt.Sscan(sidStr, &sid); err == nil && sid > 0 {
				dbq = dbq.Where("store_id = ?", sid)
			}
		}

		if importType := c.Query("import_type"); importType != "" {
			dbq = dbq.Where("import_type = ?", importType)
		}

		var logs []models.ImportLog
		if err := dbq.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Yükleme geçmişi listelenemedi")
		}
		return c.JSON(logs)
	}
}
