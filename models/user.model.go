package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole is stored and serialized as its name, never as a number
type UserRole string

const (
	RoleOwner  UserRole = "Owner"
	RoleTenant UserRole = "Tenant"
	RoleAdmin  UserRole = "Admin"
)

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AuthUID   string    `json:"authUid" gorm:"uniqueIndex;not null"` // subject id issued by the external identity provider
	Email     string    `json:"email" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Role      UserRole  `json:"role" gorm:"type:varchar(16);not null;default:'Owner'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Reminders  []Reminder `json:"reminders,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the server-side identifier
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  UserRole  `json:"role"`
}

type UserDetail struct {
	ID         uuid.UUID         `json:"id"`
	AuthUID    string            `json:"authUid"`
	Email      string            `json:"email"`
	Name       string            `json:"name"`
	Role       UserRole          `json:"role"`
	Properties []PropertySummary `json:"properties"`
	Reminders  []ReminderDTO     `json:"reminders"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

func (u *User) Detail() UserDetail {
	detail := UserDetail{
		ID:         u.ID,
		AuthUID:    u.AuthUID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Properties: make([]PropertySummary, 0, len(u.Properties)),
		Reminders:  make([]ReminderDTO, 0, len(u.Reminders)),
	}
	for i := range u.Properties {
		detail.Properties = append(detail.Properties, u.Properties[i].Summary())
	}
	for i := range u.Reminders {
		detail.Reminders = append(detail.Reminders, u.Reminders[i].DTO())
	}
	return detail
}
