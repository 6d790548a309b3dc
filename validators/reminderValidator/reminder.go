package reminderValidator

import (
	"strings"
	"time"

	"github.com/anshurajlive/Assetivo/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CreateReminderRequest struct {
	OwnerID      uuid.UUID `json:"ownerId"`
	Message      string    `json:"message"`
	ReminderDate time.Time `json:"reminderDate"`
	Completed    bool      `json:"completed"`
}

type UpdateReminderRequest struct {
	Message      string    `json:"message"`
	ReminderDate time.Time `json:"reminderDate"`
	Completed    bool      `json:"completed"`
}

// CreateReminder validator middleware
func CreateReminder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReminderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OwnerID == uuid.Nil {
			errors["ownerId"] = "Owner id is required!"
		}
		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}
		if reqData.ReminderDate.IsZero() {
			errors["reminderDate"] = "Reminder date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReminder", reqData)
		return c.Next()
	}
}

// UpdateReminder validator middleware
func UpdateReminder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateReminderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Message = strings.TrimSpace(reqData.Message)
		if reqData.Message == "" {
			errors["message"] = "Message is required!"
		}
		if reqData.ReminderDate.IsZero() {
			errors["reminderDate"] = "Reminder date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReminderUpdate", reqData)
		return c.Next()
	}
}
