package admin

import (
	"strings"

	"maliyet-backend/internal/database"
	"maliyet-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type StoreResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Region    string `json:"region"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

type CreateStoreRequest struct {
	Name   string  `json:"name"`
	Region string  `json:"region"`
	Phone  *string `json:"phone"` // Opsiyonel
}

type UpdateStoreRequest struct {
	Name   *string `json:"name"`
	Region *string `json:"region"`
	Phone  *string `json:"phone"` // Opsiyonel
}

type CreateStoreAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ----------------------------------------
// STORE CRUD
// ----------------------------------------

func CreateStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStoreRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Store adı boş olamaz")
		}

		store := models.Store{
			Name:   body.Name,
			Region: body.Region,
		}
		if body.Phone != nil {
			store.Phone = strings.TrimSpace(*body.Phone)
		}

		if err := database.DB.Create(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Store oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(StoreResponse{
			ID:        store.ID,
			Name:      store.Name,
			Region:    store.Region,
			Phone:     store.Phone,
			CreatedAt: store.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func ListStoresHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {

		var stores []models.Store
		if err := database.DB.Order("id").Find(&stores).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Store'lar listelenemedi")
		}

		res := make([]StoreResponse, 0, len(stores))
		for _, s := range stores {
			res = append(res, StoreResponse{
				ID:        s.ID,
				Name:      s.Name,
				Region:    s.Region,
				Phone:     s.Phone,
				CreatedAt: s.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(res)
	}
}

func GetStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var store models.Store
		if err := database.DB.First(&store, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Store bulunamadı")
		}

		return c.JSON(StoreResponse{
			ID:        store.ID,
			Name:      store.Name,
			Region:    store.Region,
			Phone:     store.Phone,
			CreatedAt: store.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func UpdateStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var store models.Store
		if err := database.DB.First(&store, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Store bulunamadı")
		}

		var body UpdateStoreRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Store adı boş olamaz")
			}
			store.Name = name
		}

		if body.Region != nil {
			store.Region = *body.Region
		}

		if body.Phone != nil {
			store.Phone = strings.TrimSpace(*body.Phone)
		}

		if err := database.DB.Save(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Store güncellenemedi")
		}

		return c.JSON(StoreResponse{
			ID:        store.ID,
			Name:      store.Name,
			Region:    store.Region,
			Phone:     store.Phone,
			CreatedAt: store.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

func DeleteStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {

		id := c.Params("id")

		if err := database.DB.Delete(&models.Store{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Store silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ----------------------------------------
// STORE ADMİNİ OLUŞTURMA
// ----------------------------------------

func CreateStoreAdminHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {

		storeID := c.Params("id")

		// Store kontrolü
		var store models.Store
		if err := database.DB.First(&store, "id = ?", storeID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Store bulunamadı")
		}

		var body CreateStoreAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Email = strings.ToLower(strings.TrimSpace(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}

		// Email kontrolü
		var exist models.User
		if err := database.DB.Where("email = ?", body.Email).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu email zaten kayıtlı")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleStoreAdmin,
			StoreID:      &store.ID,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Store admini oluşturulamadı")
		}

		// NOT: Şifre sadece oluşturma sırasında bir kez döndürülür (güvenlik)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"store_id": user.StoreID,
			"password": body.Password, // Sadece oluşturma sırasında (bir kez)
		})
	}
}
