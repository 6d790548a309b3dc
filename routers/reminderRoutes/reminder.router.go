package reminderRoutes

import (
	reminderController "github.com/anshurajlive/Assetivo/controllers/reminderControllers"
	reminderValidator "github.com/anshurajlive/Assetivo/validators/reminderValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupReminderRoutes(app *fiber.App) {
	reminders := app.Group("/api/reminders")

	reminders.Get("/", reminderController.ListReminders)
	reminders.Get("/:id", reminderController.GetReminder)
	reminders.Post("/", reminderValidator.CreateReminder(), reminderController.CreateReminder)
	reminders.Put("/:id", reminderValidator.UpdateReminder(), reminderController.UpdateReminder)
	reminders.Delete("/:id", reminderController.DeleteReminder)
}
