package userValidator

import (
	"strings"

	"github.com/anshurajlive/Assetivo/middleware"
	"github.com/anshurajlive/Assetivo/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var validRoles = map[models.UserRole]bool{
	models.RoleOwner:  true,
	models.RoleTenant: true,
	models.RoleAdmin:  true,
}

type CreateUserRequest struct {
	AuthUID string           `json:"authUid"`
	Email   string           `json:"email"`
	Name    string           `json:"name"`
	Role    *models.UserRole `json:"role"`
}

type UpdateUserRequest struct {
	Email string           `json:"email"`
	Name  string           `json:"name"`
	Role  *models.UserRole `json:"role"`
}

// CreateUser validator middleware
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.AuthUID = strings.TrimSpace(reqData.AuthUID)
		if reqData.AuthUID == "" {
			errors["authUid"] = "Auth UID is required!"
		}

		if reqData.Email == "" || validate.Var(reqData.Email, "email") != nil {
			errors["email"] = "Invalid email!"
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}

		if reqData.Role != nil && !validRoles[*reqData.Role] {
			errors["role"] = "Invalid role! Allowed: Owner, Tenant, Admin"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// UpdateUser validator middleware
func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUserRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email == "" || validate.Var(reqData.Email, "email") != nil {
			errors["email"] = "Invalid email!"
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}

		if reqData.Role != nil && !validRoles[*reqData.Role] {
			errors["role"] = "Invalid role! Allowed: Owner, Tenant, Admin"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserUpdate", reqData)
		return c.Next()
	}
}
