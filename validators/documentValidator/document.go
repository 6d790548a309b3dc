package documentValidator

import (
	"strings"

	"github.com/anshurajlive/Assetivo/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type CreateDocumentRequest struct {
	PropertyID *uuid.UUID `json:"propertyId"`
	TenantID   *uuid.UUID `json:"tenantId"`
	FileName   string     `json:"fileName"`
	FileUrl    string     `json:"fileUrl"`
	FileType   string     `json:"fileType"`
}

type UpdateDocumentRequest struct {
	FileName string `json:"fileName"`
	FileUrl  string `json:"fileUrl"`
	FileType string `json:"fileType"`
}

func validateFields(fileName, fileUrl, fileType string, errors map[string]string) {
	if fileName == "" {
		errors["fileName"] = "File name is required!"
	}
	// Uploaded files are served from a server-relative path
	if fileUrl == "" || (!strings.HasPrefix(fileUrl, "/") && validate.Var(fileUrl, "url") != nil) {
		errors["fileUrl"] = "A valid file URL is required!"
	}
	if fileType == "" {
		errors["fileType"] = "File type is required!"
	}
}

// CreateDocument validator middleware
func CreateDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateDocumentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PropertyID != nil && *reqData.PropertyID == uuid.Nil {
			errors["propertyId"] = "Property id must be a valid UUID!"
		}
		if reqData.TenantID != nil && *reqData.TenantID == uuid.Nil {
			errors["tenantId"] = "Tenant id must be a valid UUID!"
		}

		reqData.FileName = strings.TrimSpace(reqData.FileName)
		reqData.FileUrl = strings.TrimSpace(reqData.FileUrl)
		reqData.FileType = strings.TrimSpace(reqData.FileType)
		validateFields(reqData.FileName, reqData.FileUrl, reqData.FileType, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDocument", reqData)
		return c.Next()
	}
}

// UpdateDocument validator middleware
func UpdateDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateDocumentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.FileName = strings.TrimSpace(reqData.FileName)
		reqData.FileUrl = strings.TrimSpace(reqData.FileUrl)
		reqData.FileType = strings.TrimSpace(reqData.FileType)
		validateFields(reqData.FileName, reqData.FileUrl, reqData.FileType, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDocumentUpdate", reqData)
		return c.Next()
	}
}
