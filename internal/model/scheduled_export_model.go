package model

import (
	"time"

	"github.com/google/uuid"
)

type ExportFrequency string

const (
	FrequencyDaily   ExportFrequency = "daily"
	FrequencyWeekly  ExportFrequency = "weekly"
	FrequencyMonthly ExportFrequency = "monthly"
)

func IsValidFrequency(s string) bool {
	switch ExportFrequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type ExportDestination string

const (
	DestinationEmail    ExportDestination = "email"
	DestinationDownload ExportDestination = "download"
)

func IsValidDestination(s string) bool {
	switch ExportDestination(s) {
	case DestinationEmail, DestinationDownload:
		return true
	}
	return false
}

// ScheduledExportConfig persists the intent to repeat an export. Execution
// (and bumping LastExported) belongs to an external scheduler, not this
// service.
type ScheduledExportConfig struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID         `gorm:"type:uuid;index" json:"userId"`
	Frequency    ExportFrequency   `gorm:"type:varchar(20)" json:"frequency"`
	LastExported *time.Time        `json:"lastExported,omitempty"`
	Options      ExportOptions     `gorm:"serializer:json;type:text" json:"options"`
	Destination  ExportDestination `gorm:"type:varchar(20)" json:"destination"`
	Email        string            `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func (s *ScheduledExportConfig) TableName() string {
	return "scheduled_exports"
}
