package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"` // kg
}

type HeightEntry struct {
	Date   string  `json:"date"`
	Height float64 `json:"height"` // cm
}

type NoteEntry struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

// ChildRecord holds a resident child's profile plus append-only
// observation histories recorded by staff.
type ChildRecord struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	Name          string        `gorm:"not null" json:"name"`
	Age           int           `json:"age"`
	Gender        string        `json:"gender"` // male | female
	AdmissionDate string        `gorm:"not null" json:"admissionDate"`
	PhotoURL      string        `json:"photoUrl,omitempty"`
	Caregiver     string        `json:"caregiver,omitempty"`
	WeightHistory []WeightEntry `gorm:"serializer:json" json:"weightHistory"`
	HeightHistory []HeightEntry `gorm:"serializer:json" json:"heightHistory"`
	MealNotes     []NoteEntry   `gorm:"serializer:json" json:"mealNotes"`
	HealthRemarks []NoteEntry   `gorm:"serializer:json" json:"healthRemarks"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (ChildRecord) TableName() string { return "children" }

func (c *ChildRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
