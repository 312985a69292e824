package repository

import (
	"testing"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.JobApplication{}, &model.Task{}, &model.ScheduledExportConfig{}))
	return db
}

func seedJob(t *testing.T, repo *JobRepository, userID uuid.UUID, company string, status model.JobStatus, applied time.Time) *model.JobApplication {
	t.Helper()
	job := &model.JobApplication{
		UserID:      userID,
		Company:     company,
		Role:        "Engineer",
		Status:      status,
		DateApplied: applied,
	}
	require.NoError(t, repo.CreateJob(job))
	return job
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestFindFilteredDateRangeConjunction(t *testing.T) {
	repo := NewJobRepository(setupDB(t))
	userID := uuid.New()
	seedJob(t, repo, userID, "Acme", model.StatusApplied, day(2024, time.January, 1))
	seedJob(t, repo, userID, "Globex", model.StatusApplied, day(2024, time.February, 1))
	seedJob(t, repo, userID, "Initech", model.StatusApplied, day(2024, time.March, 1))

	start := day(2024, time.January, 15)
	end := day(2024, time.February, 15)
	jobs, err := repo.FindFiltered(userID, model.ExportFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Globex", jobs[0].Company)
}

func TestFindFilteredBoundsAreInclusive(t *testing.T) {
	repo := NewJobRepository(setupDB(t))
	userID := uuid.New()
	seedJob(t, repo, userID, "Acme", model.StatusApplied, day(2024, time.February, 1))

	exact := day(2024, time.February, 1)
	jobs, err := repo.FindFiltered(userID, model.ExportFilter{StartDate: &exact, EndDate: &exact})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestFindFilteredEndBoundIncludesTimeOfDay(t *testing.T) {
	repo := NewJobRepository(setupDB(t))
	userID := uuid.New()
	// applied late on the boundary day, not at midnight
	seedJob(t, repo, userID, "Acme", model.StatusApplied,
		time.Date(2024, time.February, 1, 18, 30, 0, 0, time.UTC))
	seedJob(t, repo, userID, "Globex", model.StatusApplied, day(2024, time.February, 2))

	end := day(2024, time.February, 1)
	jobs, err := repo.FindFiltered(userID, model.ExportFilter{EndDate: &end})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].Company)
}

func TestFindFilteredStatusSet(t *testing.T) {
	repo := NewJobRepository(setupDB(t))
	userID := uuid.New()
	seedJob(t, repo, userID, "Acme", model.StatusApplied, day(2024, time.January, 1))
	seedJob(t, repo, userID, "Globex", model.StatusOffer, day(2024, time.January, 2))
	seedJob(t, repo, userID, "Initech", model.StatusRejected, day(2024, time.January, 3))

	jobs, err := repo.FindFiltered(userID, model.ExportFilter{
		Statuses: []model.JobStatus{model.StatusOffer, model.StatusRejected},
	})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.NotEqual(t, model.StatusApplied, j.Status)
	}
}

func TestFindFilteredCompanySubstringCaseInsensitive(t *testing.T) {
	repo := NewJobRepository(setupDB(t))
	userID := uuid.New()
	seedJob(t, repo, userID, "ACME Corp", model.StatusApplied, day(2024, time.January, 1))
	seedJob(t, repo, userID, "Globex", model.StatusApplied, day(2024, time.January, 2))

	jobs, err := repo.FindFiltered(userID, model.ExportFilter{Company: "acme"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "ACME Corp", jobs[0].Company)
}

func TestFindFilteredOrderAndScope(t *testing.T) {
	repo := NewJobRepository(setupDB(t))
	userID := uuid.New()
	seedJob(t, repo, userID, "Oldest", model.StatusApplied, day(2024, time.January, 1))
	seedJob(t, repo, userID, "Newest", model.StatusApplied, day(2024, time.March, 1))
	seedJob(t, repo, userID, "Middle", model.StatusApplied, day(2024, time.February, 1))
	// someone else's data never leaks in
	seedJob(t, repo, uuid.New(), "Other", model.StatusApplied, day(2024, time.February, 15))

	jobs, err := repo.FindFiltered(userID, model.ExportFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	assert.Equal(t, "Newest", jobs[0].Company)
	assert.Equal(t, "Middle", jobs[1].Company)
	assert.Equal(t, "Oldest", jobs[2].Company)
}

func TestFindFilteredNoMatchIsEmptyNotError(t *testing.T) {
	repo := NewJobRepository(setupDB(t))

	jobs, err := repo.FindFiltered(uuid.New(), model.ExportFilter{Company: "nope"})
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestTaskPriorityCasingAdapter(t *testing.T) {
	db := setupDB(t)
	repo := NewTaskRepository(db)
	userID := uuid.New()

	task := &model.Task{
		UserID:   userID,
		Title:    "Follow up",
		DueDate:  day(2024, time.May, 1),
		Priority: "HIGH",
	}
	require.NoError(t, repo.CreateTask(task))

	// stored capitalized
	var stored model.Task
	require.NoError(t, db.First(&stored, "id = ?", task.ID).Error)
	assert.Equal(t, "High", stored.Priority)

	// read back normalized
	got, err := repo.FindTaskByID(userID, task.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "high", got.Priority)

	// raw read keeps the stored casing for analytics
	raw, err := repo.GetAllTasksRaw(userID)
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, "High", raw[0].Priority)
}

func TestFindByJobIDs(t *testing.T) {
	db := setupDB(t)
	jobRepo := NewJobRepository(db)
	taskRepo := NewTaskRepository(db)
	userID := uuid.New()

	job1 := seedJob(t, jobRepo, userID, "Acme", model.StatusApplied, day(2024, time.January, 1))
	job2 := seedJob(t, jobRepo, userID, "Globex", model.StatusApplied, day(2024, time.January, 2))

	for _, task := range []*model.Task{
		{UserID: userID, JobID: &job1.ID, Title: "for job1", DueDate: day(2024, time.May, 1), Priority: "Low"},
		{UserID: userID, JobID: &job2.ID, Title: "for job2", DueDate: day(2024, time.May, 2), Priority: "Medium"},
		{UserID: userID, Title: "unattached", DueDate: day(2024, time.May, 3), Priority: "High"},
	} {
		require.NoError(t, taskRepo.CreateTask(task))
	}

	tasks, err := taskRepo.FindByJobIDs([]uuid.UUID{job1.ID, job2.ID})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		require.NotNil(t, task.JobID)
		assert.Contains(t, []string{"low", "medium"}, task.Priority)
	}
}

func TestScheduledExportConfigRoundTrip(t *testing.T) {
	db := setupDB(t)
	repo := NewScheduledExportRepository(db)
	userID := uuid.New()

	start := day(2024, time.January, 1)
	cfg := &model.ScheduledExportConfig{
		UserID:    userID,
		Frequency: model.FrequencyWeekly,
		Options: model.ExportOptions{
			Format:     model.FormatCSV,
			ExportName: "weekly-dump",
			Filter: model.ExportFilter{
				StartDate:    &start,
				Statuses:     []model.JobStatus{model.StatusApplied},
				IncludeNotes: true,
			},
		},
		Destination: model.DestinationEmail,
		Email:       "me@example.com",
	}
	require.NoError(t, repo.CreateConfig(cfg))

	configs, err := repo.GetConfigsByUser(userID)
	require.NoError(t, err)
	require.Len(t, configs, 1)

	got := configs[0]
	assert.Equal(t, model.FormatCSV, got.Options.Format)
	assert.Equal(t, "weekly-dump", got.Options.ExportName)
	assert.True(t, got.Options.Filter.IncludeNotes)
	require.NotNil(t, got.Options.Filter.StartDate)
	assert.True(t, start.Equal(*got.Options.Filter.StartDate))
	assert.Nil(t, got.LastExported)

	require.NoError(t, repo.DeleteConfig(userID, cfg.ID))
	configs, err = repo.GetConfigsByUser(userID)
	require.NoError(t, err)
	assert.Empty(t, configs)
}

func TestDeleteScopedToOwner(t *testing.T) {
	db := setupDB(t)
	jobRepo := NewJobRepository(db)
	owner := uuid.New()
	job := seedJob(t, jobRepo, owner, "Acme", model.StatusApplied, day(2024, time.January, 1))

	// another user cannot delete it
	err := jobRepo.DeleteJob(uuid.New(), job.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, jobRepo.DeleteJob(owner, job.ID))
}
