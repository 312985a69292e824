package usecase

import (
	"math"
	"time"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/response"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/google/uuid"
)

type JobUsecase struct {
	jobRepo *repository.JobRepository
}

func NewJobUsecase(jobRepo *repository.JobRepository) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo}
}

func (uc *JobUsecase) CreateJob(userID uuid.UUID, req dto.JobRequest) (*model.JobApplication, error) {
	job, err := jobFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.CreateJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (uc *JobUsecase) GetJob(userID uuid.UUID, id string) (*model.JobApplication, error) {
	return uc.jobRepo.FindJobByID(userID, id)
}

func (uc *JobUsecase) ListJobs(userID uuid.UUID, page, pageSize int) ([]model.JobApplication, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	jobs, total, err := uc.jobRepo.GetJobs(userID, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int64(math.Ceil(float64(total) / float64(pageSize)))
	from, to := 0, 0
	if len(jobs) > 0 {
		from = (page-1)*pageSize + 1
		to = from + len(jobs) - 1
	}
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
	return jobs, pagination, nil
}

func (uc *JobUsecase) UpdateJob(userID uuid.UUID, id string, req dto.JobRequest) (*model.JobApplication, error) {
	existing, err := uc.jobRepo.FindJobByID(userID, id)
	if err != nil {
		return nil, err
	}
	updated, err := jobFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	if err := uc.jobRepo.UpdateJob(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *JobUsecase) DeleteJob(userID uuid.UUID, id string) error {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return util.NewValidationError("invalid job id %q", id)
	}
	return uc.jobRepo.DeleteJob(userID, jobID)
}

func jobFromRequest(userID uuid.UUID, req dto.JobRequest) (*model.JobApplication, error) {
	if req.Company == "" {
		return nil, util.NewValidationError("company is required")
	}
	if req.Role == "" {
		return nil, util.NewValidationError("role is required")
	}
	if !model.IsValidJobStatus(req.Status) {
		return nil, util.NewValidationError("invalid status %q", req.Status)
	}
	dateApplied, err := time.Parse(dateLayout, req.DateApplied)
	if err != nil {
		return nil, util.NewValidationError("invalid date_applied %q, expected YYYY-MM-DD", req.DateApplied)
	}

	return &model.JobApplication{
		UserID:      userID,
		Company:     req.Company,
		Role:        req.Role,
		DateApplied: dateApplied,
		Location:    req.Location,
		Link:        req.Link,
		Status:      model.JobStatus(req.Status),
		Notes:       req.Notes,
	}, nil
}
