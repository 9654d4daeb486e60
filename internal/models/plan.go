package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Plan is a user's named container of budgeting items. The unique index on
// UserID is the authoritative one-plan-per-user enforcement; the service
// pre-check only produces a friendlier error on the common path.
type Plan struct {
	Base
	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Name   string `gorm:"size:100;not null" json:"name"`

	// Relationships
	Items []PlanItem `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// PlanItem is one categorized, dated, valued financial entry within a plan.
// Value and Meta are exact decimals; they are never rounded through floats
// before display formatting. Meta is a target amount compared against Value
// but never combined with it arithmetically.
type PlanItem struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID    string          `gorm:"type:uuid;not null;index" json:"plan_id"`
	Category  Category        `gorm:"size:20;not null" json:"category"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Value     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"value"`
	Meta      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"meta"`
	Date      DateOnly        `gorm:"not null" json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new items.
func (i *PlanItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			id = uuid.New()
		}
		i.ID = id.String()
	}
	return nil
}
