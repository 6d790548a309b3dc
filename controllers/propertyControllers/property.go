package propertyControllers

import (
	"errors"
	"log"

	"github.com/anshurajlive/Assetivo/database"
	"github.com/anshurajlive/Assetivo/middleware"
	"github.com/anshurajlive/Assetivo/models"
	propertyValidator "github.com/anshurajlive/Assetivo/validators/propertyValidator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProperties returns the summary projection of every property
func ListProperties(c *fiber.Ctx) error {
	var properties []models.Property
	if err := database.Database.Db.Find(&properties).Error; err != nil {
		log.Printf("Error fetching properties: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch properties!", nil)
	}

	summaries := make([]models.PropertySummary, 0, len(properties))
	for i := range properties {
		summaries = append(summaries, properties[i].Summary())
	}
	return c.Status(fiber.StatusOK).JSON(summaries)
}

// GetProperty returns the detail projection with its tenants and documents
func GetProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid property id!", nil)
	}

	var property models.Property
	if err := database.Database.Db.Preload("Tenants").Preload("Documents").First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Property not found!", nil)
		}
		log.Printf("Error fetching property %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch property!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(property.Detail())
}

func CreateProperty(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProperty").(*propertyValidator.CreatePropertyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// The referenced owner must exist
	if err := db.First(&models.User{}, "id = ?", reqData.OwnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Owner does not exist!", nil)
		}
		log.Printf("Error checking owner %s: %v", reqData.OwnerID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create property!", nil)
	}

	property := models.Property{
		OwnerID:            reqData.OwnerID,
		Name:               reqData.Name,
		Type:               reqData.Type,
		Address:            reqData.Address,
		Size:               reqData.Size,
		Latitude:           reqData.Latitude,
		Longitude:          reqData.Longitude,
		CurrentMarketValue: reqData.CurrentMarketValue,
		Status:             reqData.Status,
	}
	if err := db.Create(&property).Error; err != nil {
		log.Printf("Error creating property: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create property!", nil)
	}

	c.Set("Location", "/api/properties/"+property.ID.String())
	return c.Status(fiber.StatusCreated).JSON(property.Detail())
}

func UpdateProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid property id!", nil)
	}

	reqData, ok := c.Locals("validatedPropertyUpdate").(*propertyValidator.UpdatePropertyRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var property models.Property
	if err := db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Property not found!", nil)
		}
		log.Printf("Error fetching property %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update property!", nil)
	}

	// ID and OwnerID stay as they are
	property.Name = reqData.Name
	property.Type = reqData.Type
	property.Address = reqData.Address
	property.Size = reqData.Size
	property.Latitude = reqData.Latitude
	property.Longitude = reqData.Longitude
	property.CurrentMarketValue = reqData.CurrentMarketValue
	property.Status = reqData.Status

	result := db.Model(&models.Property{}).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(&property)
	if result.Error != nil {
		log.Printf("Error updating property %s: %v", id, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update property!", nil)
	}
	if result.RowsAffected == 0 {
		// The row was deleted between the read and the write
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Property not found!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteProperty removes the property; the database cascades to its
// tenants and documents.
func DeleteProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid property id!", nil)
	}

	db := database.Database.Db

	var property models.Property
	if err := db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Property not found!", nil)
		}
		log.Printf("Error fetching property %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete property!", nil)
	}

	if err := db.Delete(&property).Error; err != nil {
		log.Printf("Error deleting property %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete property!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
