package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reminder struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `json:"ownerId" gorm:"type:uuid;not null;index"`

	Message      string    `json:"message" gorm:"not null"`
	ReminderDate time.Time `json:"reminderDate" gorm:"not null"`
	Completed    bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (r *Reminder) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type ReminderDTO struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Message      string    `json:"message"`
	ReminderDate time.Time `json:"reminderDate"`
	Completed    bool      `json:"completed"`
}

func (r *Reminder) DTO() ReminderDTO {
	return ReminderDTO{
		ID:           r.ID,
		OwnerID:      r.OwnerID,
		Message:      r.Message,
		ReminderDate: r.ReminderDate,
		Completed:    r.Completed,
	}
}
