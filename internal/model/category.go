package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryColor is assigned when no color is supplied,
// e.g. for categories created on the fly during import.
const DefaultCategoryColor = "#3B82F6"

// Category groups tasks by area (work, health, study, etc.).
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// TaskCount is filled in by queries, not stored.
	TaskCount int64 `json:"taskCount" gorm:"-"`
}

func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
