package propertyValidator

import (
	"strings"

	"github.com/anshurajlive/Assetivo/middleware"
	"github.com/anshurajlive/Assetivo/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validPropertyTypes = map[models.PropertyType]bool{
	models.IndependentHouse: true,
	models.Apartment:        true,
	models.AgriculturalLand: true,
	models.CommercialShop:   true,
	models.ResidentialPlot:  true,
}

var validStatuses = map[models.OccupancyStatus]bool{
	models.SelfOccupied:      true,
	models.Rented:            true,
	models.AvailableForRent:  true,
	models.AvailableForLease: true,
}

type CreatePropertyRequest struct {
	OwnerID            uuid.UUID              `json:"ownerId"`
	Name               string                 `json:"name"`
	Type               models.PropertyType    `json:"type"`
	Address            string                 `json:"address"`
	Size               float64                `json:"size"`
	Latitude           *float64               `json:"latitude"`
	Longitude          *float64               `json:"longitude"`
	CurrentMarketValue float64                `json:"currentMarketValue"`
	Status             models.OccupancyStatus `json:"status"`
}

// UpdatePropertyRequest carries the mutable fields only. OwnerID is fixed
// at creation, supplying it here has no effect.
type UpdatePropertyRequest struct {
	Name               string                 `json:"name"`
	Type               models.PropertyType    `json:"type"`
	Address            string                 `json:"address"`
	Size               float64                `json:"size"`
	Latitude           *float64               `json:"latitude"`
	Longitude          *float64               `json:"longitude"`
	CurrentMarketValue float64                `json:"currentMarketValue"`
	Status             models.OccupancyStatus `json:"status"`
}

func validateFields(name string, propType models.PropertyType, address string, size float64,
	lat, lng *float64, marketValue float64, status models.OccupancyStatus, errors map[string]string) {

	if name == "" {
		errors["name"] = "Name is required!"
	}
	if propType == "" {
		errors["type"] = "Property type is required!"
	} else if !validPropertyTypes[propType] {
		errors["type"] = "Invalid property type! Allowed: IndependentHouse, Apartment, AgriculturalLand, CommercialShop, ResidentialPlot"
	}
	if address == "" {
		errors["address"] = "Address is required!"
	}
	if size < 0 {
		errors["size"] = "Size must not be negative!"
	}
	if lat != nil && (*lat < -90 || *lat > 90) {
		errors["latitude"] = "Latitude must be between -90 and 90!"
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		errors["longitude"] = "Longitude must be between -180 and 180!"
	}
	if marketValue < 0 {
		errors["currentMarketValue"] = "Market value must not be negative!"
	}
	if status == "" {
		errors["status"] = "Occupancy status is required!"
	} else if !validStatuses[status] {
		errors["status"] = "Invalid status! Allowed: SelfOccupied, Rented, AvailableForRent, AvailableForLease"
	}
}

// CreateProperty validator middleware
func CreateProperty() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePropertyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OwnerID == uuid.Nil {
			errors["ownerId"] = "Owner id is required!"
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Address = strings.TrimSpace(reqData.Address)
		validateFields(reqData.Name, reqData.Type, reqData.Address, reqData.Size,
			reqData.Latitude, reqData.Longitude, reqData.CurrentMarketValue, reqData.Status, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProperty", reqData)
		return c.Next()
	}
}

// UpdateProperty validator middleware
func UpdateProperty() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdatePropertyRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Address = strings.TrimSpace(reqData.Address)
		validateFields(reqData.Name, reqData.Type, reqData.Address, reqData.Size,
			reqData.Latitude, reqData.Longitude, reqData.CurrentMarketValue, reqData.Status, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPropertyUpdate", reqData)
		return c.Next()
	}
}
