package model

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	StatusApplied    JobStatus = "Applied"
	StatusInterview  JobStatus = "Interview"
	StatusOffer      JobStatus = "Offer"
	StatusRejected   JobStatus = "Rejected"
	StatusWithdrawn  JobStatus = "Withdrawn"
	StatusNoResponse JobStatus = "No Response"
)

// JobStatuses returns the six valid statuses in display order.
func JobStatuses() []JobStatus {
	return []JobStatus{
		StatusApplied,
		StatusInterview,
		StatusOffer,
		StatusRejected,
		StatusWithdrawn,
		StatusNoResponse,
	}
}

func IsValidJobStatus(s string) bool {
	for _, status := range JobStatuses() {
		if s == string(status) {
			return true
		}
	}
	return false
}

type JobApplication struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Company     string    `gorm:"type:varchar(255)" json:"company"`
	Role        string    `gorm:"type:varchar(255)" json:"role"`
	DateApplied time.Time `json:"date_applied"`
	Location    string    `gorm:"type:varchar(255)" json:"location"`
	Link        string    `gorm:"type:text" json:"link,omitempty"`
	Status      JobStatus `gorm:"type:varchar(50)" json:"status"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (j *JobApplication) TableName() string {
	return "job_applications"
}
