package repository

import (
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository owns the priority casing adapter: the store only accepts
// capitalized priorities (Low/Medium/High), consumers only see the lowercase
// canonical values. Writes capitalize, reads normalize.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db}
}

func (r *TaskRepository) CreateTask(task *model.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	task.Priority = model.NormalizePriority(task.Priority).Storage()
	return util.WrapDataAccess("create task", r.db.Create(task).Error)
}

func (r *TaskRepository) UpdateTask(task *model.Task) error {
	task.Priority = model.NormalizePriority(task.Priority).Storage()
	return util.WrapDataAccess("update task", r.db.Save(task).Error)
}

func (r *TaskRepository) DeleteTask(userID, id uuid.UUID) error {
	res := r.db.Where("user_id = ?", userID).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return util.WrapDataAccess("delete task", res.Error)
	}
	if res.RowsAffected == 0 {
		return util.WrapDataAccess("delete task", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *TaskRepository) FindTaskByID(userID uuid.UUID, id string) (*model.Task, error) {
	var t model.Task
	err := r.db.Where("user_id = ?", userID).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, util.WrapDataAccess("find task", err)
	}
	normalizeTask(&t)
	return &t, nil
}

func (r *TaskRepository) GetTasks(userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Where("user_id = ?", userID).Order("due_date ASC").Find(&tasks).Error
	if err != nil {
		return nil, util.WrapDataAccess("list tasks", err)
	}
	normalizeTasks(tasks)
	return tasks, nil
}

func (r *TaskRepository) GetTasksByJob(userID, jobID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).
		Order("due_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, util.WrapDataAccess("list tasks for job", err)
	}
	normalizeTasks(tasks)
	return tasks, nil
}

// FindByJobIDs fetches the tasks attached to any of the given jobs, priorities
// normalized, for the export join.
func (r *TaskRepository) FindByJobIDs(jobIDs []uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Where("job_id IN ?", jobIDs).Order("due_date ASC").Find(&tasks).Error
	if err != nil {
		return nil, util.WrapDataAccess("list tasks for export", err)
	}
	normalizeTasks(tasks)
	return tasks, nil
}

// GetAllTasksRaw skips priority normalization: analytics buckets priorities
// from the raw stored value and must be able to ignore unrecognized ones
// rather than defaulting them to medium.
func (r *TaskRepository) GetAllTasksRaw(userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Where("user_id = ?", userID).Find(&tasks).Error
	if err != nil {
		return nil, util.WrapDataAccess("list tasks", err)
	}
	return tasks, nil
}

func normalizeTask(t *model.Task) {
	t.Priority = string(model.NormalizePriority(t.Priority))
}

func normalizeTasks(tasks []model.Task) {
	for i := range tasks {
		normalizeTask(&tasks[i])
	}
}
