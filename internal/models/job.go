package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job is one billable line-item performed during an appointment.
type Job struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`

	AppointmentID string `gorm:"size:36;not null;index" json:"appointmentId"`

	CreatedAt time.Time `json:"created_at"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
