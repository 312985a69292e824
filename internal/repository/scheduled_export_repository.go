package repository

import (
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduledExportRepository struct {
	db *gorm.DB
}

func NewScheduledExportRepository(db *gorm.DB) *ScheduledExportRepository {
	return &ScheduledExportRepository{db}
}

func (r *ScheduledExportRepository) CreateConfig(cfg *model.ScheduledExportConfig) error {
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	return util.WrapDataAccess("create scheduled export", r.db.Create(cfg).Error)
}

func (r *ScheduledExportRepository) GetConfigsByUser(userID uuid.UUID) ([]model.ScheduledExportConfig, error) {
	var configs []model.ScheduledExportConfig
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&configs).Error
	if err != nil {
		return nil, util.WrapDataAccess("list scheduled exports", err)
	}
	return configs, nil
}

func (r *ScheduledExportRepository) DeleteConfig(userID, id uuid.UUID) error {
	res := r.db.Where("user_id = ?", userID).Delete(&model.ScheduledExportConfig{}, "id = ?", id)
	if res.Error != nil {
		return util.WrapDataAccess("delete scheduled export", res.Error)
	}
	if res.RowsAffected == 0 {
		return util.WrapDataAccess("delete scheduled export", gorm.ErrRecordNotFound)
	}
	return nil
}
