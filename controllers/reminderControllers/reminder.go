package reminderControllers

import (
	"errors"
	"log"

	"github.com/anshurajlive/Assetivo/database"
	"github.com/anshurajlive/Assetivo/middleware"
	"github.com/anshurajlive/Assetivo/models"
	reminderValidator "github.com/anshurajlive/Assetivo/validators/reminderValidator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListReminders(c *fiber.Ctx) error {
	var reminders []models.Reminder
	if err := database.Database.Db.Find(&reminders).Error; err != nil {
		log.Printf("Error fetching reminders: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reminders!", nil)
	}

	dtos := make([]models.ReminderDTO, 0, len(reminders))
	for i := range reminders {
		dtos = append(dtos, reminders[i].DTO())
	}
	return c.Status(fiber.StatusOK).JSON(dtos)
}

func GetReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid reminder id!", nil)
	}

	var reminder models.Reminder
	if err := database.Database.Db.First(&reminder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reminder not found!", nil)
		}
		log.Printf("Error fetching reminder %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reminder!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(reminder.DTO())
}

func CreateReminder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReminder").(*reminderValidator.CreateReminderRequest)
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
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create reminder!", nil)
	}

	reminder := models.Reminder{
		OwnerID:      reqData.OwnerID,
		Message:      reqData.Message,
		ReminderDate: reqData.ReminderDate,
		Completed:    reqData.Completed,
	}
	if err := db.Create(&reminder).Error; err != nil {
		log.Printf("Error creating reminder: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create reminder!", nil)
	}

	c.Set("Location", "/api/reminders/"+reminder.ID.String())
	return c.Status(fiber.StatusCreated).JSON(reminder.DTO())
}

func UpdateReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid reminder id!", nil)
	}

	reqData, ok := c.Locals("validatedReminderUpdate").(*reminderValidator.UpdateReminderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var reminder models.Reminder
	if err := db.First(&reminder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reminder not found!", nil)
		}
		log.Printf("Error fetching reminder %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update reminder!", nil)
	}

	// OwnerID stays as it is
	reminder.Message = reqData.Message
	reminder.ReminderDate = reqData.ReminderDate
	reminder.Completed = reqData.Completed

	result := db.Model(&models.Reminder{}).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(&reminder)
	if result.Error != nil {
		log.Printf("Error updating reminder %s: %v", id, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update reminder!", nil)
	}
	if result.RowsAffected == 0 {
		// The row was deleted between the read and the write
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reminder not found!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func DeleteReminder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid reminder id!", nil)
	}

	db := database.Database.Db

	var reminder models.Reminder
	if err := db.First(&reminder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Reminder not found!", nil)
		}
		log.Printf("Error fetching reminder %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete reminder!", nil)
	}

	if err := db.Delete(&reminder).Error; err != nil {
		log.Printf("Error deleting reminder %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete reminder!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
