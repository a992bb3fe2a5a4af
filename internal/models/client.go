package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:30;not null" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`

	Vehicles     []Vehicle     `gorm:"constraint:OnDelete:CASCADE" json:"vehicles"`
	Appointments []Appointment `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	// Derived on list reads, never stored.
	AppointmentCount int64 `gorm:"-" json:"appointmentCount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
