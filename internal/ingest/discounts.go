package ingest

import (
	"fmt"

	"maliyet-backend/internal/auth"
	"maliyet-backend/internal/database"
	"maliyet-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SetMonthlyDiscountRequest struct {
	StoreID       *uint   `json:"store_id"` // super_admin için
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	TotalDiscount float64 `json:"total_discount"`
}

// PUT /api/imports/discounts
// Aylık toplam indirim tek bir tutar, dosya yüklemeye gerek yok.
func SetMonthlyDiscountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetMonthlyDiscountRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Year < 2000 || body.Month < 1 || body.Month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz yıl veya ay")
		}
		if body.TotalDiscount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "İndirim negatif olamaz")
		}

		storeID, err := resolveDiscountStoreID(c, body.StoreID)
		if err != nil {
			return err
		}

		var existing models.MonthlyDiscount
		err = database.DB.Where("store_id = ? AND year = ? AND month = ?",
			storeID, body.Year, body.Month).First(&existing).Error
		switch {
		case err == nil:
			existing.TotalDiscount = body.TotalDiscount
			if err := database.DB.Save(&existing).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "İndirim güncellenemedi")
			}
			return c.JSON(existing)
		case err == gorm.ErrRecordNotFound:
			rec := models.MonthlyDiscount{
				StoreID: storeID,
				Year:    body.Year, Month: body.Month,
				TotalDiscount: body.TotalDiscount,
			}
			if err := database.DB.Create(&rec).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "İndirim kaydedilemedi")
			}
			return c.Status(fiber.StatusCreated).JSON(rec)
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Veritabanı hatası")
		}
	}
}

func resolveDiscountStoreID(c *fiber.Ctx, bodyStoreID *uint) (uint, error) {
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
	if bodyStoreID == nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "store_id zorunlu")
	}
	if *bodyStoreID == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("store_id geçersiz: %d", *bodyStoreID))
	}
	return *bodyStoreID, nil
}
