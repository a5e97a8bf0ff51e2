package ingest

import (
	"maliyet-backend/internal/database"
	"maliyet-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var recipeFields = []FieldSpec{
	{Canonical: "dish_code", Candidates: []string{"菜品编码", "菜品代码", "编码", "Code"}, Required: true},
	{Canonical: "dish_name", Candidates: []string{"菜品名称", "菜品", "Name"}},
	{Canonical: "size", Candidates: []string{"规格", "尺寸", "Size"}},
	{Canonical: "material_number", Candidates: []string{"物料号", "物料编号", "物料", "Material"}, Required: true},
	{Canonical: "material_name", Candidates: []string{"物料名称", "物料描述"}},
	{Canonical: "standard_quantity", Candidates: []string{"标准数量", "标准用量", "用量", "StandardQuantity"}, Required: true},
	{Canonical: "loss_rate", Candidates: []string{"损耗率", "损耗", "LossRate"}},
	{Canonical: "conversion_rate", Candidates: []string{"单位转换率", "转换率", "换算率", "ConversionRate"}},
}

// POST /api/imports/recipes (multipart: file, store_id)
// Reçete (BOM) satırlarını yükler. Ürün ve malzeme yoksa oluşturulur;
// aynı (ürün, malzeme) çifti için son yükleme kazanır.
func ImportRecipesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID, err := resolveStoreID(c)
		if err != nil {
			return err
		}
		fileName, rows, err := openUploadedRows(c)
		if err != nil {
			return err
		}

		idx, err := ResolveHeaders(rows[0], recipeFields)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result := &ImportResult{}
		for rowNum, row := range rows[1:] {
			dishCode := NormalizeCode(idx.Cell(row, "dish_code"))
			materialNumber := NormalizeCode(idx.Cell(row, "material_number"))
			if dishCode == "" && materialNumber == "" {
				continue
			}
			if dishCode == "" || materialNumber == "" {
				result.skip("satır %d: ürün veya malzeme kodu boş", rowNum+2)
				continue
			}

			std, ok := ParseNumber(idx.Cell(row, "standard_quantity"))
			if !ok {
				result.skip("satır %d: standart miktar sayı değil (%s)", rowNum+2, dishCode)
				continue
			}
			loss, ok := ParseNumber(idx.Cell(row, "loss_rate"))
			if !ok {
				loss = 0
			}
			conv, ok := ParseNumber(idx.Cell(row, "conversion_rate"))
			if !ok || conv == 0 {
				conv = 1
			}

			name, sizeFromName := SplitSizeSuffix(idx.Cell(row, "dish_name"))
			size := NormalizeName(idx.Cell(row, "size"))
			if size == "" {
				size = sizeFromName
			}

			dish, err := findOrCreateDish(storeID, dishCode, size, name, "")
			if err != nil {
				result.skip("satır %d: ürün kaydedilemedi (%s)", rowNum+2, dishCode)
				continue
			}
			material, err := findOrCreateMaterial(storeID, materialNumber,
				NormalizeName(idx.Cell(row, "material_name")), "", "")
			if err != nil {
				result.skip("satır %d: malzeme kaydedilemedi (%s)", rowNum+2, materialNumber)
				continue
			}

			var existing models.RecipeLine
			err = database.DB.Where("store_id = ? AND dish_id = ? AND material_id = ?",
				storeID, dish.ID, material.ID).First(&existing).Error
			switch {
			case err == nil:
				existing.StandardQuantity = std
				existing.LossRate = loss
				existing.UnitConversionRate = conv
				if err := database.DB.Save(&existing).Error; err != nil {
					result.skip("satır %d: güncellenemedi", rowNum+2)
					continue
				}
				result.Updated++
			case err == gorm.ErrRecordNotFound:
				rec := models.RecipeLine{
					StoreID: storeID, DishID: dish.ID, MaterialID: material.ID,
					StandardQuantity: std, LossRate: loss, UnitConversionRate: conv,
				}
				if err := database.DB.Create(&rec).Error; err != nil {
					result.skip("satır %d: eklenemedi", rowNum+2)
					continue
				}
				result.Inserted++
			default:
				result.skip("satır %d: veritabanı hatası", rowNum+2)
			}
		}

		return finishImport(c, storeID, "recipes", fileName, result)
	}
}
