package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentSuccess   PaymentStatus = "Success"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentCancelled PaymentStatus = "Cancelled"
)

type RentPayment struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;index"`

	Amount        float64       `json:"amount" gorm:"not null;check:amount >= 0"`
	DueDate       time.Time     `json:"dueDate" gorm:"not null"`
	Paid          bool          `json:"paid" gorm:"not null;default:false"`
	PaidOn        *time.Time    `json:"paidOn"`
	PaymentLink   *string       `json:"paymentLink"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"type:varchar(16);not null;default:'Pending'"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (rp *RentPayment) BeforeCreate(tx *gorm.DB) error {
	if rp.ID == uuid.Nil {
		rp.ID = uuid.New()
	}
	return nil
}

type RentPaymentDTO struct {
	ID            uuid.UUID     `json:"id"`
	TenantID      uuid.UUID     `json:"tenantId"`
	Amount        float64       `json:"amount"`
	DueDate       time.Time     `json:"dueDate"`
	Paid          bool          `json:"paid"`
	PaidOn        *time.Time    `json:"paidOn"`
	PaymentLink   *string       `json:"paymentLink"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

func (rp *RentPayment) DTO() RentPaymentDTO {
	return RentPaymentDTO{
		ID:            rp.ID,
		TenantID:      rp.TenantID,
		Amount:        rp.Amount,
		DueDate:       rp.DueDate,
		Paid:          rp.Paid,
		PaidOn:        rp.PaidOn,
		PaymentLink:   rp.PaymentLink,
		PaymentStatus: rp.PaymentStatus,
	}
}
