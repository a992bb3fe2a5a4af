package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SparePart struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	Quantity      int      `gorm:"not null;default:0" json:"quantity"`
	PurchasePrice *float64 `json:"purchasePrice"`
	SalePrice     *float64 `json:"salePrice"`
	MinimumStock  int      `gorm:"not null;default:1" json:"minimumStock"`

	// Derived at read time, never stored.
	LowStock bool `gorm:"-" json:"lowStock"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsLowStock reports whether on-hand quantity is at or below the
// configured minimum (boundary inclusive).
func (p *SparePart) IsLowStock() bool {
	return p.Quantity <= p.MinimumStock
}

func (p *SparePart) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *SparePart) AfterFind(tx *gorm.DB) error {
	p.LowStock = p.IsLowStock()
	return nil
}

func (p *SparePart) AfterSave(tx *gorm.DB) error {
	p.LowStock = p.IsLowStock()
	return nil
}
