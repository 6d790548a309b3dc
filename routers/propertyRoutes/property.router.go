package propertyRoutes

import (
	propertyController "github.com/anshurajlive/Assetivo/controllers/propertyControllers"
	propertyValidator "github.com/anshurajlive/Assetivo/validators/propertyValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupPropertyRoutes(app *fiber.App) {
	properties := app.Group("/api/properties")

	properties.Get("/", propertyController.ListProperties)
	properties.Get("/:id", propertyController.GetProperty)
	properties.Post("/", propertyValidator.CreateProperty(), propertyController.CreateProperty)
	properties.Put("/:id", propertyValidator.UpdateProperty(), propertyController.UpdateProperty)
	properties.Delete("/:id", propertyController.DeleteProperty)
}
