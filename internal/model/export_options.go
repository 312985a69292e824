package model

import "time"

type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatPDF  ExportFormat = "pdf"
	FormatXML  ExportFormat = "xml"
)

// ExportFilter narrows the exported job set. All present conditions are
// combined with AND; zero values mean "no restriction".
type ExportFilter struct {
	StartDate    *time.Time  `json:"startDate,omitempty"`
	EndDate      *time.Time  `json:"endDate,omitempty"`
	Statuses     []JobStatus `json:"statuses,omitempty"`
	Company      string      `json:"company,omitempty"`
	IncludeNotes bool        `json:"includeNotes"`
	IncludeTasks bool        `json:"includeTasks"`
}

type ExportOptions struct {
	Format     ExportFormat `json:"format"`
	Filter     ExportFilter `json:"filters"`
	ExportName string       `json:"exportName,omitempty"`
}
