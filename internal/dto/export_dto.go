package dto

type ExportRequest struct {
	Format       string   `json:"format"`
	StartDate    string   `json:"startDate"` // YYYY-MM-DD, optional
	EndDate      string   `json:"endDate"`   // YYYY-MM-DD, optional
	Statuses     []string `json:"statuses"`
	Company      string   `json:"company"`
	IncludeNotes bool     `json:"includeNotes"`
	IncludeTasks bool     `json:"includeTasks"`
	ExportName   string   `json:"exportName"`
}

type ScheduledExportRequest struct {
	Frequency   string        `json:"frequency"`
	Destination string        `json:"destination"`
	Email       string        `json:"email"`
	Options     ExportRequest `json:"options"`
}
