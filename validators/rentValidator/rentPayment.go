package rentValidator

import (
	"time"

	"github.com/anshurajlive/Assetivo/middleware"
	"github.com/anshurajlive/Assetivo/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

var validPaymentStatuses = map[models.PaymentStatus]bool{
	models.PaymentPending:   true,
	models.PaymentSuccess:   true,
	models.PaymentFailed:    true,
	models.PaymentCancelled: true,
}

type CreateRentPaymentRequest struct {
	TenantID      uuid.UUID             `json:"tenantId"`
	Amount        *float64              `json:"amount"`
	DueDate       time.Time             `json:"dueDate"`
	Paid          bool                  `json:"paid"`
	PaidOn        *time.Time            `json:"paidOn"`
	PaymentLink   *string               `json:"paymentLink"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus"`
}

type UpdateRentPaymentRequest struct {
	Amount        *float64              `json:"amount"`
	DueDate       time.Time             `json:"dueDate"`
	Paid          bool                  `json:"paid"`
	PaidOn        *time.Time            `json:"paidOn"`
	PaymentLink   *string               `json:"paymentLink"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus"`
}

func validateFields(amount *float64, dueDate time.Time, paymentLink *string,
	paymentStatus *models.PaymentStatus, errors map[string]string) {

	if amount == nil {
		errors["amount"] = "Amount is required!"
	} else if *amount < 0 {
		errors["amount"] = "Amount must not be negative!"
	}
	if dueDate.IsZero() {
		errors["dueDate"] = "Due date is required!"
	}
	if paymentLink != nil && *paymentLink != "" && validate.Var(*paymentLink, "url") != nil {
		errors["paymentLink"] = "Payment link must be a valid URL!"
	}
	if paymentStatus != nil && !validPaymentStatuses[*paymentStatus] {
		errors["paymentStatus"] = "Invalid payment status! Allowed: Pending, Success, Failed, Cancelled"
	}
}

// CreateRentPayment validator middleware
func CreateRentPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRentPaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TenantID == uuid.Nil {
			errors["tenantId"] = "Tenant id is required!"
		}
		validateFields(reqData.Amount, reqData.DueDate, reqData.PaymentLink, reqData.PaymentStatus, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRentPayment", reqData)
		return c.Next()
	}
}

// UpdateRentPayment validator middleware
func UpdateRentPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRentPaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateFields(reqData.Amount, reqData.DueDate, reqData.PaymentLink, reqData.PaymentStatus, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRentPaymentUpdate", reqData)
		return c.Next()
	}
}
