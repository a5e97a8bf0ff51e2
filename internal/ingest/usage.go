package ingest

import (
	"maliyet-backend/internal/database"
	"maliyet-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var usageFields = []FieldSpec{
	{Canonical: "material_number", Candidates: []string{"物料号", "物料编号", "物料", "编号", "Material"}, Required: true},
	{Canonical: "material_name", Candidates: []string{"物料名称", "物料描述", "名称", "Name"}},
	{Canonical: "unit", Candidates: []string{"单位", "基本计量单位", "Unit"}},
	{Canonical: "use_type", Candidates: []string{"使用类型", "物料类型", "类型", "UseType"}},
	{Canonical: "quantity_used", Candidates: []string{"总发货数量", "发货数量", "出库数量", "使用数量", "消耗数量", "Quantity"}, Required: true},
}

// isCostUseType: Maliyet hesabına giren kullanım türleri. Kolon yoksa
// malzeme maliyet tipi varsayılır.
func isCostUseType(s string) bool {
	switch NormalizeName(s) {
	case "", "成本", "成本类", "cost", "Cost":
		return true
	}
	return false
}

// POST /api/imports/material-usage (multipart: file, year, month, store_id)
// Ay sonu fiili sayım sonuçlarını yükler. Maliyet tipi olmayan malzemelerin
// satırları atlanır ama malzeme kaydı kullanım türüyle birlikte tutulur.
func ImportMaterialUsageHandler() fiber.Handler {
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

		idx, err := ResolveHeaders(rows[0], usageFields)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result := &ImportResult{}
		for rowNum, row := range rows[1:] {
			number := NormalizeCode(idx.Cell(row, "material_number"))
			if number == "" {
				continue
			}

			useType := NormalizeName(idx.Cell(row, "use_type"))
			material, err := findOrCreateMaterial(storeID, number,
				NormalizeName(idx.Cell(row, "material_name")),
				NormalizeName(idx.Cell(row, "unit")), useType)
			if err != nil {
				result.skip("satır %d: malzeme kaydedilemedi (%s)", rowNum+2, number)
				continue
			}

			if !isCostUseType(useType) {
				result.skip("satır %d: maliyet tipi değil (%s, %s)", rowNum+2, number, useType)
				continue
			}

			qty, ok := ParseNumber(idx.Cell(row, "quantity_used"))
			if !ok {
				result.skip("satır %d: miktar sayı değil (%s)", rowNum+2, number)
				continue
			}

			var existing models.MaterialMonthlyUsage
			err = database.DB.Where("store_id = ? AND material_id = ? AND year = ? AND month = ?",
				storeID, material.ID, year, month).First(&existing).Error
			switch {
			case err == nil:
				existing.QuantityUsed = qty
				if err := database.DB.Save(&existing).Error; err != nil {
					result.skip("satır %d: güncellenemedi (%s)", rowNum+2, number)
					continue
				}
				result.Updated++
			case err == gorm.ErrRecordNotFound:
				rec := models.MaterialMonthlyUsage{
					StoreID: storeID, MaterialID: material.ID,
					Year: year, Month: month,
					QuantityUsed: qty,
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

		return finishImport(c, storeID, "material_usage", fileName, result)
	}
}

func findOrCreateMaterial(storeID uint, number, name, unit, useType string) (*models.Material, error) {
	var material models.Material
	err := database.DB.Where("store_id = ? AND material_number = ?", storeID, number).
		First(&material).Error
	if err == nil {
		changed := false
		if name != "" && material.Name == "" {
			material.Name = name
			changed = true
		}
		if useType != "" && material.UseType != useType {
			material.UseType = useType
			changed = true
		}
		if changed {
			database.DB.Save(&material)
		}
		return &material, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if useType == "" {
		useType = models.MaterialUseTypeCost
	}
	material = models.Material{
		StoreID:        storeID,
		MaterialNumber: number,
		Name:           name,
		Unit:           unit,
		UseType:        useType,
	}
	if err := database.DB.Create(&material).Error; err != nil {
		return nil, err
	}
	return &material, nil
}
