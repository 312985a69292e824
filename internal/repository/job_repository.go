package repository

import (
	"strings"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) CreateJob(job *model.JobApplication) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	return util.WrapDataAccess("create job application", r.db.Create(job).Error)
}

func (r *JobRepository) UpdateJob(job *model.JobApplication) error {
	return util.WrapDataAccess("update job application", r.db.Save(job).Error)
}

func (r *JobRepository) DeleteJob(userID, id uuid.UUID) error {
	res := r.db.Where("user_id = ?", userID).Delete(&model.JobApplication{}, "id = ?", id)
	if res.Error != nil {
		return util.WrapDataAccess("delete job application", res.Error)
	}
	if res.RowsAffected == 0 {
		return util.WrapDataAccess("delete job application", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *JobRepository) FindJobByID(userID uuid.UUID, id string) (*model.JobApplication, error) {
	var j model.JobApplication
	err := r.db.Where("user_id = ?", userID).First(&j, "id = ?", id).Error
	if err != nil {
		return nil, util.WrapDataAccess("find job application", err)
	}
	return &j, nil
}

// GetJobs returns one page of a user's applications, newest first, plus the
// total row count for pagination.
func (r *JobRepository) GetJobs(userID uuid.UUID, page, pageSize int) ([]model.JobApplication, int64, error) {
	var jobs []model.JobApplication
	var total int64

	err := r.db.Model(&model.JobApplication{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, util.WrapDataAccess("count job applications", err)
	}
	err = r.db.Where("user_id = ?", userID).
		Order("date_applied DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, util.WrapDataAccess("list job applications", err)
	}
	return jobs, total, nil
}

// GetAllJobs returns the full unfiltered collection, used by analytics.
func (r *JobRepository) GetAllJobs(userID uuid.UUID) ([]model.JobApplication, error) {
	var jobs []model.JobApplication
	err := r.db.Where("user_id = ?", userID).Find(&jobs).Error
	if err != nil {
		return nil, util.WrapDataAccess("list job applications", err)
	}
	return jobs, nil
}

// FindFiltered applies the export filter as a conjunction of the conditions
// that are present. Date bounds are inclusive; company matching is a
// case-insensitive substring test. Result is ordered date_applied DESC and an
// empty match is not an error.
func (r *JobRepository) FindFiltered(userID uuid.UUID, filter model.ExportFilter) ([]model.JobApplication, error) {
	q := r.db.Where("user_id = ?", userID)
	if filter.StartDate != nil {
		q = q.Where("date_applied >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		// bound is a calendar date; compare against the next midnight so a
		// same-day record carrying a time-of-day stays included
		e := *filter.EndDate
		end := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, e.Location()).AddDate(0, 0, 1)
		q = q.Where("date_applied < ?", end)
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}
	if filter.Company != "" {
		// LOWER + LIKE instead of ILIKE so the same query runs on every backend
		q = q.Where("LOWER(company) LIKE ?", "%"+strings.ToLower(filter.Company)+"%")
	}

	var jobs []model.JobApplication
	err := q.Order("date_applied DESC").Find(&jobs).Error
	if err != nil {
		return nil, util.WrapDataAccess("list filtered job applications", err)
	}
	return jobs, nil
}
