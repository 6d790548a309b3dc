package userRoutes

import (
	userController "github.com/anshurajlive/Assetivo/controllers/userControllers"
	userValidator "github.com/anshurajlive/Assetivo/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/api/users")

	users.Get("/", userController.ListUsers)
	users.Get("/:id", userController.GetUser)
	users.Post("/", userValidator.CreateUser(), userController.CreateUser)
	users.Put("/:id", userValidator.UpdateUser(), userController.UpdateUser)
	users.Delete("/:id", userController.DeleteUser)
}
