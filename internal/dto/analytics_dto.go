package dto

// TaskMetrics holds the task slice of the dashboard summary. ByStatus keys
// are "Completed"/"Pending"; ByPriority only counts raw values that lowercase
// to one of the three known priorities, anything else is ignored.
type TaskMetrics struct {
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"byStatus"`
	ByPriority       map[string]int `json:"byPriority"`
	UpcomingTasksDue int            `json:"upcomingTasksDue"`
}

// AnalyticsSummary is derived on demand and never persisted. ByMonth and
// ApplicationsByMonth carry identical data under two keyings that the
// dashboard consumes separately. AvgResponseTime is nil when no job has
// received a response yet; that is distinct from an average of zero days.
type AnalyticsSummary struct {
	Total               int            `json:"total"`
	ByStatus            map[string]int `json:"byStatus"`
	ByCompany           map[string]int `json:"byCompany"`
	ByMonth             map[string]int `json:"byMonth"`
	ApplicationsByMonth map[string]int `json:"applicationsByMonth"`
	ResponseRate        float64        `json:"responseRate"`
	InterviewRate       float64        `json:"interviewRate"`
	OfferRate           float64        `json:"offerRate"`
	AvgResponseTime     *float64       `json:"avgResponseTime,omitempty"`
	TaskMetrics         *TaskMetrics   `json:"taskMetrics,omitempty"`
}
