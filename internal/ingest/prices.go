package ingest

import (
	"maliyet-backend/internal/database"
	"maliyet-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var dishPriceFields = []FieldSpec{
	{Canonical: "dish_code", Candidates: []string{"菜品编码", "菜品代码", "编码", "Code"}, Required: true},
	{Canonical: "dish_name", Candidates: []string{"菜品名称", "菜品", "Name"}},
	{Canonical: "size", Candidates: []string{"规格", "尺寸", "Size"}},
	{Canonical: "price", Candidates: []string{"价格", "单价", "售价", "菜品价格", "Price"}, Required: true},
}

var materialPriceFields = []FieldSpec{
	{Canonical: "material_number", Candidates: []string{"物料号", "物料编号", "物料", "Material"}, Required: true},
	{Canonical: "material_name", Candidates: []string{"物料名称", "物料描述"}},
	{Canonical: "price", Candidates: []string{"单价", "价格", "平均单价", "移动平均价", "Price"}, Required: true},
}

// POST /api/imports/dish-prices (multipart: file, year, month, store_id)
// Ürün fiyat listesini yükler; year/month fiyatın geçerlilik dönemidir.
// Aynı dönemin kaydı varsa üzerine yazılır.
func ImportDishPricesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID, err := resolveStoreID(c)
		if err != nil {
			return err
		}
		year, month, err := resolvePeriod(c)
		if err != nil {
			return err
		}
		fileName, rows, err := openUploadedRows(c)
		if err != nil {
			return err
		}

		idx, err := ResolveHeaders(rows[0], dishPriceFields)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result := &ImportResult{}
		for rowNum, row := range rows[1:] {
			code := NormalizeCode(idx.Cell(row, "dish_code"))
			if code == "" {
				continue
			}

			price, ok := ParseNumber(idx.Cell(row, "price"))
			if !ok {
				result.skip("satır %d: fiyat sayı değil (%s)", rowNum+2, code)
				continue
			}

			name, sizeFromName := SplitSizeSuffix(idx.Cell(row, "dish_name"))
			size := NormalizeName(idx.Cell(row, "size"))
			if size == "" {
				size = sizeFromName
			}

			dish, err := findOrCreateDish(storeID, code, size, name, "")
			if err != nil {
				result.skip("satır %d: ürün kaydedilemedi (%s)", rowNum+2, code)
				continue
			}

			var existing models.DishPriceHistory
			err = database.DB.Where("store_id = ? AND dish_id = ? AND effective_year = ? AND effective_month = ?",
				storeID, dish.ID, year, month).First(&existing).Error
			switch {
			case err == nil:
				existing.Price = price
				if err := database.DB.Save(&existing).Error; err != nil {
					result.skip("satır %d: güncellenemedi (%s)", rowNum+2, code)
					continue
				}
				result.Updated++
			case err == gorm.ErrRecordNotFound:
				rec := models.DishPriceHistory{
					StoreID: storeID, DishID: dish.ID,
					EffectiveYear: year, EffectiveMonth: month,
					Price: price, IsActive: true,
				}
				if err := database.DB.Create(&rec).Error; err != nil {
					result.skip("satır %d: eklenemedi (%s)", rowNum+2, code)
					continue
				}
				result.Inserted++
			default:
				result.skip("satır %d: veritabanı hatası (%s)", rowNum+2, code)
			}
		}

		return finishImport(c, storeID, "dish_prices", fileName, result)
	}
}

// POST /api/imports/material-prices (multipart: file, year, month, store_id)
func ImportMaterialPricesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID, err := resolveStoreID(c)
		if err != nil {
			return err
		}
		year, month, err := resolvePeriod(c)
		if err != nil {
			return err
		}
		fileName, rows, err := openUploadedRows(c)
		if err != nil {
			return err
		}

		idx, err := ResolveHeaders(rows[0], materialPriceFields)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result := &ImportResult{}
		for rowNum, row := range rows[1:] {
			number := NormalizeCode(idx.Cell(row, "material_number"))
			if number == "" {
				continue
			}

			price, ok := ParseNumber(idx.Cell(row, "price"))
			if !ok {
				result.skip("satır %d: fiyat sayı değil (%s)", rowNum+2, number)
				continue
			}

			material, err := findOrCreateMaterial(storeID, number,
				NormalizeName(idx.Cell(row, "material_name")), "", "")
			if err != nil {
				result.skip("satır %d: malzeme kaydedilemedi (%s)", rowNum+2, number)
				continue
			}

			var existing models.MaterialPriceHistory
			err = database.DB.Where("store_id = ? AND material_id = ? AND effective_year = ? AND effective_month = ?",
				storeID, material.ID, year, month).First(&existing).Error
			switch {
			case err == nil:
				existing.Price = price
				if err := database.DB.Save(&existing).Error; err != nil {
					result.skip("satır %d: güncellenemedi (%s)", rowNum+2, number)
					continue
				}
				result.Updated++
			case err == gorm.ErrRecordNotFound:
				rec := models.MaterialPriceHistory{
					StoreID: storeID, MaterialID: material.ID,
					EffectiveYear: year, EffectiveMonth: month,
					Price: price, IsActive: true,
				}
				if err := database.DB.Create(&rec).Error; err != nil {
					result.skip("satır %d: eklenemedi (%s)", rowNum+2, number)
					continue
				}
				result.Inserted++
			default:
				result.skip("satır %d: veritabanı hatası (%s)", rowNum+2, number)
			}
		}

		return finishImport(c, storeID, "material_prices", fileName, result)
	}
}
