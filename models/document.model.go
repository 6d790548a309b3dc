package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document can hang off a property, a tenant, or both. Both keys are
// nullable so either parent's deletion takes the document with it.
type Document struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	PropertyID *uuid.UUID `json:"propertyId" gorm:"type:uuid;index"`
	TenantID   *uuid.UUID `json:"tenantId" gorm:"type:uuid;index"`

	FileName   string    `json:"fileName" gorm:"not null"`
	FileUrl    string    `json:"fileUrl" gorm:"not null"` // external storage reference or /uploads path
	FileType   string    `json:"fileType" gorm:"not null"`
	UploadedOn time.Time `json:"uploadedOn"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.UploadedOn.IsZero() {
		d.UploadedOn = time.Now().UTC()
	}
	return nil
}

type DocumentDTO struct {
	ID         uuid.UUID  `json:"id"`
	PropertyID *uuid.UUID `json:"propertyId"`
	TenantID   *uuid.UUID `json:"tenantId"`
	FileName   string     `json:"fileName"`
	FileUrl    string     `json:"fileUrl"`
	FileType   string     `json:"fileType"`
	UploadedOn time.Time  `json:"uploadedOn"`
}

func (d *Document) DTO() DocumentDTO {
	return DocumentDTO{
		ID:         d.ID,
		PropertyID: d.PropertyID,
		TenantID:   d.TenantID,
		FileName:   d.FileName,
		FileUrl:    d.FileUrl,
		FileType:   d.FileType,
		UploadedOn: d.UploadedOn,
	}
}
