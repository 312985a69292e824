package usecase

import (
	"log"
	"math"
	"strings"
	"time"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
)

type AnalyticsJobRepositoryInterface interface {
	GetAllJobs(userID uuid.UUID) ([]model.JobApplication, error)
}

type AnalyticsTaskRepositoryInterface interface {
	GetAllTasksRaw(userID uuid.UUID) ([]model.Task, error)
}

type AnalyticsUsecase struct {
	jobRepo  AnalyticsJobRepositoryInterface
	taskRepo AnalyticsTaskRepositoryInterface
	now      func() time.Time
}

func NewAnalyticsUsecase(jobRepo AnalyticsJobRepositoryInterface, taskRepo AnalyticsTaskRepositoryInterface) *AnalyticsUsecase {
	return &AnalyticsUsecase{jobRepo: jobRepo, taskRepo: taskRepo, now: time.Now}
}

// GetSummary recomputes the dashboard summary from the full job and task
// collections. A failed job fetch aborts; a failed task fetch only degrades
// to a job-only summary, the dashboard can live without task metrics.
//
// Month buckets are keyed in UTC ("Jan 2006") so the same data aggregates
// identically on every deployment.
func (uc *AnalyticsUsecase) GetSummary(userID uuid.UUID) (*dto.AnalyticsSummary, error) {
	jobs, err := uc.jobRepo.GetAllJobs(userID)
	if err != nil {
		return nil, err
	}

	summary := &dto.AnalyticsSummary{
		Total:               len(jobs),
		ByStatus:            make(map[string]int, 6),
		ByCompany:           make(map[string]int),
		ByMonth:             make(map[string]int),
		ApplicationsByMonth: make(map[string]int),
	}
	for _, status := range model.JobStatuses() {
		summary.ByStatus[string(status)] = 0
	}

	for _, j := range jobs {
		summary.ByStatus[string(j.Status)]++
		if j.Company != "" {
			summary.ByCompany[j.Company]++
		}
		if !j.DateApplied.IsZero() {
			key := j.DateApplied.UTC().Format("Jan 2006")
			summary.ByMonth[key]++
			summary.ApplicationsByMonth[key]++
		}
	}

	if summary.Total > 0 {
		total := float64(summary.Total)
		interview := summary.ByStatus[string(model.StatusInterview)]
		offer := summary.ByStatus[string(model.StatusOffer)]
		rejected := summary.ByStatus[string(model.StatusRejected)]
		summary.ResponseRate = float64(interview+offer+rejected) / total * 100
		summary.InterviewRate = float64(interview) / total * 100
		summary.OfferRate = float64(offer) / total * 100
	}

	summary.AvgResponseTime = averageResponseTime(jobs)

	tasks, err := uc.taskRepo.GetAllTasksRaw(userID)
	if err != nil {
		log.Printf("analytics: task fetch failed, returning job-only summary: %v", err)
		return summary, nil
	}
	summary.TaskMetrics = uc.taskMetrics(tasks)

	return summary, nil
}

// averageResponseTime returns the mean of ceil(|updated_at - date_applied|)
// in days over jobs that got a response (Interview/Offer/Rejected), zero-day
// gaps excluded. nil means "no data", which is not the same as zero days.
func averageResponseTime(jobs []model.JobApplication) *float64 {
	var sum float64
	var n int
	for _, j := range jobs {
		switch j.Status {
		case model.StatusInterview, model.StatusOffer, model.StatusRejected:
		default:
			continue
		}
		if j.DateApplied.IsZero() {
			continue
		}
		days := math.Ceil(math.Abs(j.UpdatedAt.Sub(j.DateApplied).Hours()) / 24)
		if days == 0 {
			continue
		}
		sum += days
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

func (uc *AnalyticsUsecase) taskMetrics(tasks []model.Task) *dto.TaskMetrics {
	m := &dto.TaskMetrics{
		Total:      len(tasks),
		ByStatus:   map[string]int{"Completed": 0, "Pending": 0},
		ByPriority: map[string]int{"low": 0, "medium": 0, "high": 0},
	}

	today := truncateToDay(uc.now())
	horizon := today.AddDate(0, 0, 7)

	for _, t := range tasks {
		if t.Completed {
			m.ByStatus["Completed"]++
		} else {
			m.ByStatus["Pending"]++
		}

		// raw priority, lowercased; unrecognized values are skipped here,
		// not defaulted to medium
		switch p := strings.ToLower(t.Priority); p {
		case "low", "medium", "high":
			m.ByPriority[p]++
		}

		if !t.Completed && !t.DueDate.IsZero() {
			due := truncateToDay(t.DueDate)
			if !due.Before(today) && !due.After(horizon) {
				m.UpcomingTasksDue++
			}
		}
	}
	return m
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
