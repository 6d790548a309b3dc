package rentRoutes

import (
	rentController "github.com/anshurajlive/Assetivo/controllers/rentControllers"
	rentValidator "github.com/anshurajlive/Assetivo/validators/rentValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupRentPaymentRoutes(app *fiber.App) {
	payments := app.Group("/api/rentpayments")

	payments.Get("/", rentController.ListRentPayments)
	payments.Get("/:id", rentController.GetRentPayment)
	payments.Post("/", rentValidator.CreateRentPayment(), rentController.CreateRentPayment)
	payments.Put("/:id", rentValidator.UpdateRentPayment(), rentController.UpdateRentPayment)
	payments.Delete("/:id", rentController.DeleteRentPayment)
}
