package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tenant struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `json:"propertyId" gorm:"type:uuid;not null;index"`

	Name           string    `json:"name" gorm:"not null"`
	Phone          string    `json:"phone" gorm:"not null"`
	Email          *string   `json:"email"`
	LeaseStartDate time.Time `json:"leaseStartDate"`
	LeaseEndDate   time.Time `json:"leaseEndDate"`
	MonthlyRent    float64   `json:"monthlyRent"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Documents    []Document    `json:"documents,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	RentPayments []RentPayment `json:"rentPayments,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TenantDTO struct {
	ID             uuid.UUID `json:"id"`
	PropertyID     uuid.UUID `json:"propertyId"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          *string   `json:"email"`
	LeaseStartDate time.Time `json:"leaseStartDate"`
	LeaseEndDate   time.Time `json:"leaseEndDate"`
	MonthlyRent    float64   `json:"monthlyRent"`
}

// TenantDetail adds the tenant's documents and payment history
type TenantDetail struct {
	TenantDTO
	Documents    []DocumentDTO    `json:"documents"`
	RentPayments []RentPaymentDTO `json:"rentPayments"`
}

func (t *Tenant) DTO() TenantDTO {
	return TenantDTO{
		ID:             t.ID,
		PropertyID:     t.PropertyID,
		Name:           t.Name,
		Phone:          t.Phone,
		Email:          t.Email,
		LeaseStartDate: t.LeaseStartDate,
		LeaseEndDate:   t.LeaseEndDate,
		MonthlyRent:    t.MonthlyRent,
	}
}

func (t *Tenant) Detail() TenantDetail {
	detail := TenantDetail{
		TenantDTO:    t.DTO(),
		Documents:    make([]DocumentDTO, 0, len(t.Documents)),
		RentPayments: make([]RentPaymentDTO, 0, len(t.RentPayments)),
	}
	for i := range t.Documents {
		detail.Documents = append(detail.Documents, t.Documents[i].DTO())
	}
	for i := range t.RentPayments {
		detail.RentPayments = append(detail.RentPayments, t.RentPayments[i].DTO())
	}
	return detail
}
