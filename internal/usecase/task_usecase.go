package usecase

import (
	"time"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/repository"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/google/uuid"
)

type TaskUsecase struct {
	taskRepo *repository.TaskRepository
}

func NewTaskUsecase(taskRepo *repository.TaskRepository) *TaskUsecase {
	return &TaskUsecase{taskRepo: taskRepo}
}

func (uc *TaskUsecase) CreateTask(userID uuid.UUID, req dto.TaskRequest) (*model.Task, error) {
	task, err := taskFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.CreateTask(task); err != nil {
		return nil, err
	}
	// expose the normalized form, not the capitalized storage form
	task.Priority = string(model.NormalizePriority(task.Priority))
	return task, nil
}

func (uc *TaskUsecase) GetTask(userID uuid.UUID, id string) (*model.Task, error) {
	return uc.taskRepo.FindTaskByID(userID, id)
}

// ListTasks returns all of a user's tasks, or only those of one job when
// jobID is non-empty.
func (uc *TaskUsecase) ListTasks(userID uuid.UUID, jobID string) ([]model.Task, error) {
	if jobID == "" {
		return uc.taskRepo.GetTasks(userID)
	}
	parsed, err := uuid.Parse(jobID)
	if err != nil {
		return nil, util.NewValidationError("invalid job id %q", jobID)
	}
	return uc.taskRepo.GetTasksByJob(userID, parsed)
}

func (uc *TaskUsecase) UpdateTask(userID uuid.UUID, id string, req dto.TaskRequest) (*model.Task, error) {
	existing, err := uc.taskRepo.FindTaskByID(userID, id)
	if err != nil {
		return nil, err
	}
	updated, err := taskFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	if err := uc.taskRepo.UpdateTask(updated); err != nil {
		return nil, err
	}
	updated.Priority = string(model.NormalizePriority(updated.Priority))
	return updated, nil
}

// ToggleComplete flips the completed flag.
func (uc *TaskUsecase) ToggleComplete(userID uuid.UUID, id string) (*model.Task, error) {
	task, err := uc.taskRepo.FindTaskByID(userID, id)
	if err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.UpdateTask(task); err != nil {
		return nil, err
	}
	task.Priority = string(model.NormalizePriority(task.Priority))
	return task, nil
}

func (uc *TaskUsecase) DeleteTask(userID uuid.UUID, id string) error {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return util.NewValidationError("invalid task id %q", id)
	}
	return uc.taskRepo.DeleteTask(userID, taskID)
}

func taskFromRequest(userID uuid.UUID, req dto.TaskRequest) (*model.Task, error) {
	if req.Title == "" {
		return nil, util.NewValidationError("title is required")
	}
	dueDate, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return nil, util.NewValidationError("invalid due_date %q, expected YYYY-MM-DD", req.DueDate)
	}

	task := &model.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Completed:   req.Completed,
		Priority:    req.Priority,
	}
	if req.JobID != "" {
		jobID, err := uuid.Parse(req.JobID)
		if err != nil {
			return nil, util.NewValidationError("invalid job id %q", req.JobID)
		}
		task.JobID = &jobID
	}
	return task, nil
}
