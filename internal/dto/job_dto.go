package dto

type JobRequest struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	DateApplied string `json:"date_applied"` // YYYY-MM-DD
	Location    string `json:"location"`
	Link        string `json:"link"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

type TaskRequest struct {
	JobID       string `json:"job_id"` // optional
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"` // YYYY-MM-DD
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
}
