package usecase

import (
	"time"

	"github.com/fadilmartias/job-tracker/internal/export"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
	"github.com/google/uuid"
)

type ExportJobRepositoryInterface interface {
	FindFiltered(userID uuid.UUID, filter model.ExportFilter) ([]model.JobApplication, error)
}

type ExportTaskRepositoryInterface interface {
	FindByJobIDs(jobIDs []uuid.UUID) ([]model.Task, error)
}

type ExportUsecase struct {
	jobRepo  ExportJobRepositoryInterface
	taskRepo ExportTaskRepositoryInterface
	now      func() time.Time
}

func NewExportUsecase(jobRepo ExportJobRepositoryInterface, taskRepo ExportTaskRepositoryInterface) *ExportUsecase {
	return &ExportUsecase{jobRepo: jobRepo, taskRepo: taskRepo, now: time.Now}
}

// ExportResult carries everything the delivery side effect needs: the
// rendered document, the file name and the MIME type. This layer does no I/O
// itself.
type ExportResult struct {
	Content  string
	FileName string
	MIMEType string
}

// Export renders the user's filtered applications in the requested format.
// The format is checked against the registry before anything is fetched;
// unlike analytics, a failed task fetch aborts the whole export rather than
// degrading to a jobs-only document.
func (uc *ExportUsecase) Export(userID uuid.UUID, opts model.ExportOptions) (*ExportResult, error) {
	encode, ok := export.Encoder(opts.Format)
	if !ok {
		return nil, util.NewUnsupportedFormatError(string(opts.Format))
	}

	jobs, err := uc.jobRepo.FindFiltered(userID, opts.Filter)
	if err != nil {
		return nil, err
	}

	in := export.Input{
		Jobs:        jobs,
		Filter:      opts.Filter,
		GeneratedAt: uc.now(),
	}

	if opts.Filter.IncludeTasks && len(jobs) > 0 {
		jobIDs := make([]uuid.UUID, 0, len(jobs))
		for _, j := range jobs {
			jobIDs = append(jobIDs, j.ID)
		}
		tasks, err := uc.taskRepo.FindByJobIDs(jobIDs)
		if err != nil {
			return nil, err
		}
		in.TasksByJob = groupTasksByJob(jobs, tasks)
	}

	content, err := encode(in)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		Content:  content,
		FileName: export.FileName(opts, uc.now()),
		MIMEType: export.MIMEType(opts.Format),
	}, nil
}

// groupTasksByJob buckets tasks under their job id. Tasks without a job
// reference, or referencing a job outside the filtered set (deleted between
// the two fetches), are dropped silently.
func groupTasksByJob(jobs []model.JobApplication, tasks []model.Task) map[uuid.UUID][]model.Task {
	known := make(map[uuid.UUID]bool, len(jobs))
	for _, j := range jobs {
		known[j.ID] = true
	}

	grouped := make(map[uuid.UUID][]model.Task)
	for _, t := range tasks {
		if t.JobID == nil || !known[*t.JobID] {
			continue
		}
		grouped[*t.JobID] = append(grouped[*t.JobID], t)
	}
	return grouped
}
