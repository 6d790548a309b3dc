package rentControllers

import (
	"errors"
	"log"

	"github.com/anshurajlive/Assetivo/database"
	"github.com/anshurajlive/Assetivo/middleware"
	"github.com/anshurajlive/Assetivo/models"
	"github.com/anshurajlive/Assetivo/utils"
	rentValidator "github.com/anshurajlive/Assetivo/validators/rentValidator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListRentPayments(c *fiber.Ctx) error {
	var payments []models.RentPayment
	if err := database.Database.Db.Find(&payments).Error; err != nil {
		log.Printf("Error fetching rent payments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rent payments!", nil)
	}

	dtos := make([]models.RentPaymentDTO, 0, len(payments))
	for i := range payments {
		dtos = append(dtos, payments[i].DTO())
	}
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetRentPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid rent payment id!", nil)
	}

	var payment models.RentPayment
	if err := database.Database.Db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Rent payment not found!", nil)
		}
		log.Printf("Error fetching rent payment %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rent payment!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(payment.DTO())
}

func CreateRentPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRentPayment").(*rentValidator.CreateRentPaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// The referenced tenant must exist
	var tenant models.Tenant
	if err := db.First(&tenant, "id = ?", reqData.TenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Tenant does not exist!", nil)
		}
		log.Printf("Error checking tenant %s: %v", reqData.TenantID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create rent payment!", nil)
	}

	payment := models.RentPayment{
		TenantID:      reqData.TenantID,
		Amount:        *reqData.Amount,
		DueDate:       reqData.DueDate,
		Paid:          reqData.Paid,
		PaidOn:        reqData.PaidOn,
		PaymentLink:   reqData.PaymentLink,
		PaymentStatus: models.PaymentPending,
	}
	if reqData.PaymentStatus != nil {
		payment.PaymentStatus = *reqData.PaymentStatus
	}

	// Mint a payment link through the gateway when none was supplied
	if payment.PaymentLink == nil && !payment.Paid {
		if link, err := utils.CreatePaymentLink(payment.Amount, payment.DueDate, tenant.Name, tenant.Phone); err != nil {
			log.Printf("Payment link creation failed for tenant %s: %v", tenant.ID, err)
		} else if link != "" {
			payment.PaymentLink = &link
		}
	}

	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error creating rent payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create rent payment!", nil)
	}

	c.Set("Location", "/api/rentpayments/"+payment.ID.String())
	return c.Status(fiber.StatusCreated).JSON(payment.DTO())
}

func UpdateRentPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid rent payment id!", nil)
	}

	reqData, ok := c.Locals("validatedRentPaymentUpdate").(*rentValidator.UpdateRentPaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var payment models.RentPayment
	if err := db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Rent payment not found!", nil)
		}
		log.Printf("Error fetching rent payment %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update rent payment!", nil)
	}

	// TenantID stays as it is
	payment.Amount = *reqData.Amount
	payment.DueDate = reqData.DueDate
	payment.Paid = reqData.Paid
	payment.PaidOn = reqData.PaidOn
	payment.PaymentLink = reqData.PaymentLink
	if reqData.PaymentStatus != nil {
		payment.PaymentStatus = *reqData.PaymentStatus
	}

	result := db.Model(&models.RentPayment{}).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(&payment)
	if result.Error != nil {
		log.Printf("Error updating rent payment %s: %v", id, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update rent payment!", nil)
	}
	if result.RowsAffected == 0 {
		// The row was deleted between the read and the write
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Rent payment not found!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func DeleteRentPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid rent payment id!", nil)
	}

	db := database.Database.Db

	var payment models.RentPayment
	if err := db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Rent payment not found!", nil)
		}
		log.Printf("Error fetching rent payment %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete rent payment!", nil)
	}

	if err := db.Delete(&payment).Error; err != nil {
		log.Printf("Error deleting rent payment %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete rent payment!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
