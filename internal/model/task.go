package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority ranks a task. Values match the wire representation.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Priorities lists all values in ascending order of urgency.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Label returns the display name used in charts and exports.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return "Medium"
	}
}

// NormalizePriority maps free text from imports onto a Priority.
// Accepts English and Chinese labels; unrecognized values fall back to MEDIUM.
func NormalizePriority(raw string) Priority {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low", "低":
		return PriorityLow
	case "high", "高":
		return PriorityHigh
	case "urgent", "紧急":
		return PriorityUrgent
	default:
		return PriorityMedium
	}
}

// Task represents a single to-do item.
type Task struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	Priority    Priority   `json:"priority" gorm:"default:MEDIUM"`
	DueDate     *time.Time `json:"dueDate"`
	CategoryID  *string    `json:"categoryId" gorm:"index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Category *Category `json:"category" gorm:"foreignKey:CategoryID"`
}

func (t *Task) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
