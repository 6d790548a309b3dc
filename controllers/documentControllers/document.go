package documentControllers

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"github.com/anshurajlive/Assetivo/config"
	"github.com/anshurajlive/Assetivo/database"
	"github.com/anshurajlive/Assetivo/middleware"
	"github.com/anshurajlive/Assetivo/models"
	"github.com/anshurajlive/Assetivo/utils"
	documentValidator "github.com/anshurajlive/Assetivo/validators/documentValidator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListDocuments(c *fiber.Ctx) error {
	var documents []models.Document
	if err := database.Database.Db.Find(&documents).Error; err != nil {
		log.Printf("Error fetching documents: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch documents!", nil)
	}

	dtos := make([]models.DocumentDTO, 0, len(documents))
	for i := range documents {
		dtos = append(dtos, documents[i].DTO())
	}
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document id!", nil)
	}

	var document models.Document
	if err := database.Database.Db.First(&document, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
		}
		log.Printf("Error fetching document %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch document!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(document.DTO())
}

// checkParents verifies the referenced property/tenant rows exist.
// Returns a non-nil fiber error response when one is missing.
func checkParents(c *fiber.Ctx, db *gorm.DB, propertyID, tenantID *uuid.UUID) error {
	if propertyID != nil {
		if err := db.First(&models.Property{}, "id = ?", *propertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Property does not exist!", nil)
			}
			log.Printf("Error checking property %s: %v", *propertyID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
		}
	}
	if tenantID != nil {
		if err := db.First(&models.Tenant{}, "id = ?", *tenantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Tenant does not exist!", nil)
			}
			log.Printf("Error checking tenant %s: %v", *tenantID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
		}
	}
	return nil
}

func CreateDocument(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDocument").(*documentValidator.CreateDocumentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if resp := checkParents(c, db, reqData.PropertyID, reqData.TenantID); resp != nil {
		return resp
	}

	document := models.Document{
		PropertyID: reqData.PropertyID,
		TenantID:   reqData.TenantID,
		FileName:   reqData.FileName,
		FileUrl:    reqData.FileUrl,
		FileType:   reqData.FileType,
	}
	if err := db.Create(&document).Error; err != nil {
		log.Printf("Error creating document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create document!", nil)
	}

	c.Set("Location", "/api/documents/"+document.ID.String())
	return c.Status(fiber.StatusCreated).JSON(document.DTO())
}

// UploadDocument accepts a multipart file, stores it under the upload dir
// and records a document row pointing at the served URL.
func UploadDocument(c *fiber.Ctx) error {
	db := database.Database.Db

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{"file": "A file is required!"})
	}

	propertyID, tenantID, errs := parseParentForm(c)
	if len(errs) > 0 {
		return middleware.ValidationErrorResponse(c, errs)
	}

	if resp := checkParents(c, db, propertyID, tenantID); resp != nil {
		return resp
	}

	storedName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	fileType := c.FormValue("fileType")
	if fileType == "" {
		fileType = strings.TrimPrefix(filepath.Ext(file.Filename), ".")
	}

	document := models.Document{
		PropertyID: propertyID,
		TenantID:   tenantID,
		FileName:   file.Filename,
		FileUrl:    utils.GetFileURL(storedName),
		FileType:   fileType,
	}
	if err := db.Create(&document).Error; err != nil {
		log.Printf("Error creating document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create document!", nil)
	}

	c.Set("Location", "/api/documents/"+document.ID.String())
	return c.Status(fiber.StatusCreated).JSON(document.DTO())
}

func parseParentForm(c *fiber.Ctx) (propertyID, tenantID *uuid.UUID, errs map[string]string) {
	errs = make(map[string]string)
	if v := c.FormValue("propertyId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs["propertyId"] = "Property id must be a valid UUID!"
		} else {
			propertyID = &id
		}
	}
	if v := c.FormValue("tenantId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			errs["tenantId"] = "Tenant id must be a valid UUID!"
		} else {
			tenantID = &id
		}
	}
	return propertyID, tenantID, errs
}

func UpdateDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document id!", nil)
	}

	reqData, ok := c.Locals("validatedDocumentUpdate").(*documentValidator.UpdateDocumentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var document models.Document
	if err := db.First(&document, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
		}
		log.Printf("Error fetching document %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update document!", nil)
	}

	// Parent references are set at creation
	document.FileName = reqData.FileName
	document.FileUrl = reqData.FileUrl
	document.FileType = reqData.FileType

	result := db.Model(&models.Document{}).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(&document)
	if result.Error != nil {
		log.Printf("Error updating document %s: %v", id, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update document!", nil)
	}
	if result.RowsAffected == 0 {
		// The row was deleted between the read and the write
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func DeleteDocument(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document id!", nil)
	}

	db := database.Database.Db

	var document models.Document
	if err := db.First(&document, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
		}
		log.Printf("Error fetching document %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete document!", nil)
	}

	if err := db.Delete(&document).Error; err != nil {
		log.Printf("Error deleting document %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete document!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
