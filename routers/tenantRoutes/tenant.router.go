package tenantRoutes

import (
	tenantController "github.com/anshurajlive/Assetivo/controllers/tenantControllers"
	tenantValidator "github.com/anshurajlive/Assetivo/validators/tenantValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupTenantRoutes(app *fiber.App) {
	tenants := app.Group("/api/tenants")

	tenants.Get("/", tenantController.ListTenants)
	tenants.Get("/:id", tenantController.GetTenant)
	tenants.Post("/", tenantValidator.CreateTenant(), tenantController.CreateTenant)
	tenants.Put("/:id", tenantValidator.UpdateTenant(), tenantController.UpdateTenant)
	tenants.Delete("/:id", tenantController.DeleteTenant)
}
