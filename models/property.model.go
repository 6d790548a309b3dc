package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyType string

const (
	IndependentHouse PropertyType = "IndependentHouse"
	Apartment        PropertyType = "Apartment"
	AgriculturalLand PropertyType = "AgriculturalLand"
	CommercialShop   PropertyType = "CommercialShop"
	ResidentialPlot  PropertyType = "ResidentialPlot"
)

type OccupancyStatus string

const (
	SelfOccupied      OccupancyStatus = "SelfOccupied"
	Rented            OccupancyStatus = "Rented"
	AvailableForRent  OccupancyStatus = "AvailableForRent"
	AvailableForLease OccupancyStatus = "AvailableForLease"
)

type Property struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;index"` // immutable after create

	Name               string          `json:"name" gorm:"not null"`
	Type               PropertyType    `json:"type" gorm:"type:varchar(32);not null"`
	Address            string          `json:"address" gorm:"not null"`
	Size               float64         `json:"size"` // sqft or acres depending on type
	Latitude           *float64        `json:"latitude"`
	Longitude          *float64        `json:"longitude"`
	CurrentMarketValue float64         `json:"currentMarketValue"`
	Status             OccupancyStatus `json:"status" gorm:"type:varchar(32);not null"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`

	Tenants   []Tenant   `json:"tenants,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Documents []Document `json:"documents,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PropertySummary is the list projection
type PropertySummary struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Type    PropertyType    `json:"type"`
	Address string          `json:"address"`
	Status  OccupancyStatus `json:"status"`
}

// PropertyDetail is the single-record projection with resolved children
type PropertyDetail struct {
	ID                 uuid.UUID       `json:"id"`
	OwnerID            uuid.UUID       `json:"ownerId"`
	Name               string          `json:"name"`
	Type               PropertyType    `json:"type"`
	Address            string          `json:"address"`
	Size               float64         `json:"size"`
	Latitude           *float64        `json:"latitude"`
	Longitude          *float64        `json:"longitude"`
	CurrentMarketValue float64         `json:"currentMarketValue"`
	Status             OccupancyStatus `json:"status"`

	Tenants   []TenantDTO   `json:"tenants"`
	Documents []DocumentDTO `json:"documents"`
}

func (p *Property) Summary() PropertySummary {
	return PropertySummary{
		ID:      p.ID,
		Name:    p.Name,
		Type:    p.Type,
		Address: p.Address,
		Status:  p.Status,
	}
}

func (p *Property) Detail() PropertyDetail {
	detail := PropertyDetail{
		ID:                 p.ID,
		OwnerID:            p.OwnerID,
		Name:               p.Name,
		Type:               p.Type,
		Address:            p.Address,
		Size:               p.Size,
		Latitude:           p.Latitude,
		Longitude:          p.Longitude,
		CurrentMarketValue: p.CurrentMarketValue,
		Status:             p.Status,
		Tenants:            make([]TenantDTO, 0, len(p.Tenants)),
		Documents:          make([]DocumentDTO, 0, len(p.Documents)),
	}
	for i := range p.Tenants {
		detail.Tenants = append(detail.Tenants, p.Tenants[i].DTO())
	}
	for i := range p.Documents {
		detail.Documents = append(detail.Documents, p.Documents[i].DTO())
	}
	return detail
}
