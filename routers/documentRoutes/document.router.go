package documentRoutes

import (
	documentController "github.com/anshurajlive/Assetivo/controllers/documentControllers"
	documentValidator "github.com/anshurajlive/Assetivo/validators/documentValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupDocumentRoutes(app *fiber.App) {
	documents := app.Group("/api/documents")

	documents.Get("/", documentController.ListDocuments)
	documents.Get("/:id", documentController.GetDocument)
	documents.Post("/", documentValidator.CreateDocument(), documentController.CreateDocument)
	documents.Post("/upload", documentController.UploadDocument)
	documents.Put("/:id", documentValidator.UpdateDocument(), documentController.UpdateDocument)
	documents.Delete("/:id", documentController.DeleteDocument)
}
