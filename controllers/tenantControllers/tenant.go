package tenantControllers

import (
	"errors"
	"log"

	"github.com/anshurajlive/Assetivo/database"
	"github.com/anshurajlive/Assetivo/middleware"
	"github.com/anshurajlive/Assetivo/models"
	tenantValidator "github.com/anshurajlive/Assetivo/validators/tenantValidator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListTenants(c *fiber.Ctx) error {
	var tenants []models.Tenant
	if err := database.Database.Db.Find(&tenants).Error; err != nil {
		log.Printf("Error fetching tenants: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tenants!", nil)
	}

	dtos := make([]models.TenantDTO, 0, len(tenants))
	for i := range tenants {
		dtos = append(dtos, tenants[i].DTO())
	}
	return c.Status(fiber.StatusOK).JSON(dtos)
}

// GetTenant returns the tenant with documents and payment history resolved
func GetTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tenant id!", nil)
	}

	var tenant models.Tenant
	if err := database.Database.Db.Preload("Documents").Preload("RentPayments").First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tenant not found!", nil)
		}
		log.Printf("Error fetching tenant %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tenant!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(tenant.Detail())
}

func CreateTenant(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTenant").(*tenantValidator.CreateTenantRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// The referenced property must exist
	if err := db.First(&models.Property{}, "id = ?", reqData.PropertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Property does not exist!", nil)
		}
		log.Printf("Error checking property %s: %v", reqData.PropertyID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create tenant!", nil)
	}

	tenant := models.Tenant{
		PropertyID:     reqData.PropertyID,
		Name:           reqData.Name,
		Phone:          reqData.Phone,
		Email:          reqData.Email,
		LeaseStartDate: reqData.LeaseStartDate,
		LeaseEndDate:   reqData.LeaseEndDate,
		MonthlyRent:    reqData.MonthlyRent,
	}
	if err := db.Create(&tenant).Error; err != nil {
		log.Printf("Error creating tenant: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create tenant!", nil)
	}

	c.Set("Location", "/api/tenants/"+tenant.ID.String())
	return c.Status(fiber.StatusCreated).JSON(tenant.DTO())
}

func UpdateTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tenant id!", nil)
	}

	reqData, ok := c.Locals("validatedTenantUpdate").(*tenantValidator.UpdateTenantRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var tenant models.Tenant
	if err := db.First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tenant not found!", nil)
		}
		log.Printf("Error fetching tenant %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update tenant!", nil)
	}

	// Moving to another property is allowed, but the target must exist
	if reqData.PropertyID != nil && *reqData.PropertyID != tenant.PropertyID {
		if err := db.First(&models.Property{}, "id = ?", *reqData.PropertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Property does not exist!", nil)
			}
			log.Printf("Error checking property %s: %v", *reqData.PropertyID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update tenant!", nil)
		}
		tenant.PropertyID = *reqData.PropertyID
	}

	tenant.Name = reqData.Name
	tenant.Phone = reqData.Phone
	tenant.Email = reqData.Email
	tenant.LeaseStartDate = reqData.LeaseStartDate
	tenant.LeaseEndDate = reqData.LeaseEndDate
	tenant.MonthlyRent = reqData.MonthlyRent

	result := db.Model(&models.Tenant{}).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(&tenant)
	if result.Error != nil {
		log.Printf("Error updating tenant %s: %v", id, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update tenant!", nil)
	}
	if result.RowsAffected == 0 {
		// The row was deleted between the read and the write
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tenant not found!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteTenant removes the tenant; the database cascades to their
// documents and rent payments.
func DeleteTenant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tenant id!", nil)
	}

	db := database.Database.Db

	var tenant models.Tenant
	if err := db.First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tenant not found!", nil)
		}
		log.Printf("Error fetching tenant %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete tenant!", nil)
	}

	if err := db.Delete(&tenant).Error; err != nil {
		log.Printf("Error deleting tenant %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete tenant!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
