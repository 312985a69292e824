package usecase

import (
	"strings"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/export"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/google/uuid"
)

type ScheduledExportRepositoryInterface interface {
	CreateConfig(cfg *model.ScheduledExportConfig) error
	GetConfigsByUser(userID uuid.UUID) ([]model.ScheduledExportConfig, error)
	DeleteConfig(userID, id uuid.UUID) error
}

// ScheduledExportUsecase persists export intent only. Nothing here runs the
// exports; an external scheduler reads the configs and triggers them.
type ScheduledExportUsecase struct {
	repo ScheduledExportRepositoryInterface
}

func NewScheduledExportUsecase(repo ScheduledExportRepositoryInterface) *ScheduledExportUsecase {
	return &ScheduledExportUsecase{repo: repo}
}

// Create validates the config and persists it. All validation happens before
// the store is touched.
func (uc *ScheduledExportUsecase) Create(userID uuid.UUID, req dto.ScheduledExportRequest) (*model.ScheduledExportConfig, error) {
	if !model.IsValidFrequency(req.Frequency) {
		return nil, util.NewValidationError("frequency must be daily, weekly or monthly")
	}
	if !model.IsValidDestination(req.Destination) {
		return nil, util.NewValidationError("destination must be email or download")
	}
	if model.ExportDestination(req.Destination) == model.DestinationEmail && strings.TrimSpace(req.Email) == "" {
		return nil, util.NewValidationError("email is required for email destination")
	}

	opts, err := BuildExportOptions(req.Options)
	if err != nil {
		return nil, err
	}
	if !export.Supported(opts.Format) {
		return nil, util.NewUnsupportedFormatError(string(opts.Format))
	}

	cfg := &model.ScheduledExportConfig{
		UserID:      userID,
		Frequency:   model.ExportFrequency(req.Frequency),
		Options:     opts,
		Destination: model.ExportDestination(req.Destination),
		Email:       req.Email,
	}
	if err := uc.repo.CreateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (uc *ScheduledExportUsecase) List(userID uuid.UUID) ([]model.ScheduledExportConfig, error) {
	return uc.repo.GetConfigsByUser(userID)
}

func (uc *ScheduledExportUsecase) Delete(userID, id uuid.UUID) error {
	return uc.repo.DeleteConfig(userID, id)
}
