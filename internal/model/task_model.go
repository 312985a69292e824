package model

import (
	"time"

	"github.com/google/uuid"
)

// Task optionally references a JobApplication. The reference is weak:
// deleting a job does not cascade here, tasks keep the dangling id.
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	JobID       *uuid.UUID `gorm:"type:uuid;index" json:"job_id,omitempty"`
	Title       string     `gorm:"type:varchar(255)" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	DueDate     time.Time  `json:"due_date"`
	Completed   bool       `json:"completed"`
	Priority    string     `gorm:"type:varchar(20)" json:"priority"` // stored capitalized: Low/Medium/High
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) TableName() string {
	return "tasks"
}
