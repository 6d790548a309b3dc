package tenantValidator

import (
	"strings"
	"time"

	"github.com/anshurajlive/Assetivo/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

type CreateTenantRequest struct {
	PropertyID     uuid.UUID `json:"propertyId"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          *string   `json:"email"`
	LeaseStartDate time.Time `json:"leaseStartDate"`
	LeaseEndDate   time.Time `json:"leaseEndDate"`
	MonthlyRent    float64   `json:"monthlyRent"`
}

type UpdateTenantRequest struct {
	PropertyID     *uuid.UUID `json:"propertyId"` // optional move to another property
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          *string    `json:"email"`
	LeaseStartDate time.Time  `json:"leaseStartDate"`
	LeaseEndDate   time.Time  `json:"leaseEndDate"`
	MonthlyRent    float64    `json:"monthlyRent"`
}

func validateFields(name, phone string, email *string, leaseStart, leaseEnd time.Time,
	monthlyRent float64, errors map[string]string) {

	if name == "" {
		errors["name"] = "Name is required!"
	}
	if phone == "" || validate.Var(phone, "e164") != nil {
		errors["phone"] = "Invalid phone number! Use international format, e.g. +1234567890."
	}
	if email != nil && validate.Var(*email, "email") != nil {
		errors["email"] = "Invalid email!"
	}
	if !leaseStart.IsZero() && !leaseEnd.IsZero() && leaseEnd.Before(leaseStart) {
		errors["leaseEndDate"] = "Lease end date must not be before lease start date!"
	}
	if monthlyRent < 0 {
		errors["monthlyRent"] = "Monthly rent must not be negative!"
	}
}

// CreateTenant validator middleware
func CreateTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTenantRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PropertyID == uuid.Nil {
			errors["propertyId"] = "Property id is required!"
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Phone = strings.TrimSpace(reqData.Phone)
		validateFields(reqData.Name, reqData.Phone, reqData.Email,
			reqData.LeaseStartDate, reqData.LeaseEndDate, reqData.MonthlyRent, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTenant", reqData)
		return c.Next()
	}
}

// UpdateTenant validator middleware
func UpdateTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateTenantRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PropertyID != nil && *reqData.PropertyID == uuid.Nil {
			errors["propertyId"] = "Property id must be a valid UUID!"
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Phone = strings.TrimSpace(reqData.Phone)
		validateFields(reqData.Name, reqData.Phone, reqData.Email,
			reqData.LeaseStartDate, reqData.LeaseEndDate, reqData.MonthlyRent, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTenantUpdate", reqData)
		return c.Next()
	}
}
