package ingest

import (
	"maliyet-backend/internal/database"
	"maliyet-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var salesFields = []FieldSpec{
	{Canonical: "dish_code", Candidates: []string{"菜品编码", "菜品代码", "编码", "Code"}, Required: true},
	{Canonical: "dish_name", Candidates: []string{"菜品名称", "菜品名称(门店pad显示名称)", "菜品名称(系统统一名称)", "菜品", "名称", "Name"}, Required: true},
	{Canonical: "size", Candidates: []string{"规格", "尺寸", "Size", "Spec"}},
	{Canonical: "broad_type", Candidates: []string{"大类", "菜品大类", "分类", "Category"}},
	{Canonical: "sale_amount", Candidates: []string{"出品数量", "销售数量", "销售量", "实收数量", "Sales"}, Required: true},
	{Canonical: "return_amount", Candidates: []string{"退菜数量", "退菜", "退货", "Return"}},
	{Canonical: "free_amount", Candidates: []string{"免单数量", "免费餐数量", "免费", "Free"}},
	{Canonical: "gift_amount", Candidates: []string{"赠菜数量", "赠送数量", "赠送", "Gift"}},
}

// POST /api/imports/dish-sales (multipart: file, year, month, store_id)
// Aylık satış raporunu yükler. Ürün yoksa oluşturulur, aynı dönemin kaydı
// varsa üzerine yazılır (son yükleme kazanır).
func ImportDishSalesHandler() fiber.Handler {
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

		idx, err := ResolveHeaders(rows[0], salesFields)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result := &ImportResult{}
		for rowNum, row := range rows[1:] {
			code := NormalizeCode(idx.Cell(row, "dish_code"))
			rawName := idx.Cell(row, "dish_name")
			if code == "" && rawName == "" {
				continue // tamamen boş satır
			}
			if code == "" {
				result.skip("satır %d: ürün kodu boş", rowNum+2)
				continue
			}

			name, sizeFromName := SplitSizeSuffix(rawName)
			size := NormalizeName(idx.Cell(row, "size"))
			if size == "" {
				size = sizeFromName
			}

			sale, ok := ParseNumber(idx.Cell(row, "sale_amount"))
			if !ok {
				result.skip("satır %d: satış miktarı sayı değil", rowNum+2)
				continue
			}
			ret, ok := ParseNumber(idx.Cell(row, "return_amount"))
			if !ok {
				result.skip("satır %d: iade miktarı sayı değil", rowNum+2)
				continue
			}
			// İkram ve hediye satıştan düşülür, maliyete girer ama ciroya girmez
			free, _ := ParseNumber(idx.Cell(row, "free_amount"))
			gift, _ := ParseNumber(idx.Cell(row, "gift_amount"))
			sale -= free + gift

			dish, err := findOrCreateDish(storeID, code, size, name, NormalizeName(idx.Cell(row, "broad_type")))
			if err != nil {
				result.skip("satır %d: ürün kaydedilemedi (%s)", rowNum+2, code)
				continue
			}

			var existing models.DishMonthlySale
			err = database.DB.Where("store_id = ? AND dish_id = ? AND year = ? AND month = ?",
				storeID, dish.ID, year, month).First(&existing).Error
			switch {
			case err == nil:
				existing.SaleAmount = sale
				existing.ReturnAmount = ret
				if err := database.DB.Save(&existing).Error; err != nil {
					result.skip("satır %d: güncellenemedi (%s)", rowNum+2, code)
					continue
				}
				result.Updated++
			case err == gorm.ErrRecordNotFound:
				rec := models.DishMonthlySale{
					StoreID: storeID, DishID: dish.ID,
					Year: year, Month: month,
					SaleAmount: sale, ReturnAmount: ret,
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

		return finishImport(c, storeID, "dish_sales", fileName, result)
	}
}

func findOrCreateDish(storeID uint, fullCode, size, name, broadType string) (*models.Dish, error) {
	var dish models.Dish
	err := database.DB.Where("store_id = ? AND full_code = ? AND size = ?", storeID, fullCode, size).
		First(&dish).Error
	if err == nil {
		// Kategori sonradan gelmişse tamamla
		if broadType != "" && dish.BroadType == "" {
			dish.BroadType = broadType
			database.DB.Save(&dish)
		}
		return &dish, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	dish = models.Dish{
		StoreID:   storeID,
		FullCode:  fullCode,
		Size:      size,
		Name:      name,
		BroadType: broadType,
		IsActive:  true,
	}
	if err := database.DB.Create(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}
