package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Date is a UTC midnight instant standing for a calendar day.
	// The clock-time fields travel separately as HH:MM strings.
	Date        time.Time `gorm:"not null;index" json:"date"`
	StartTime   string    `gorm:"size:5;not null" json:"startTime"`
	EndTime     string    `gorm:"size:5" json:"endTime"`
	Description string    `gorm:"size:255;not null" json:"description"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	ClientID string  `gorm:"size:36;not null;index" json:"clientId"`
	Client   *Client `json:"client,omitempty"`

	VehicleID string   `gorm:"size:36;not null;index" json:"vehicleId"`
	Vehicle   *Vehicle `json:"vehicle,omitempty"`

	Jobs []Job `gorm:"constraint:OnDelete:CASCADE" json:"jobs"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
