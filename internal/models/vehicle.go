package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Plate is stored upper-cased; the unique index makes it a
	// case-insensitive key together with the normalization on write.
	Plate string `gorm:"size:20;uniqueIndex;not null" json:"plate"`
	Make  string `gorm:"size:50;not null" json:"make"`
	Model string `gorm:"size:50;not null" json:"model"`
	Year  *int   `json:"year"`
	Color string `gorm:"size:30" json:"color"`

	ClientID string  `gorm:"size:36;not null;index" json:"clientId"`
	Client   *Client `json:"client,omitempty"`

	Appointments []Appointment `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
