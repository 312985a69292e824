package usecase

import (
	"time"

	"github.com/fadilmartias/job-tracker/internal/dto"
	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/fadilmartias/job-tracker/internal/util"
)

const dateLayout = "2006-01-02"

// BuildExportOptions converts the wire-level export request into the typed
// options value, parsing dates and validating status names.
func BuildExportOptions(req dto.ExportRequest) (model.ExportOptions, error) {
	opts := model.ExportOptions{
		Format:     model.ExportFormat(req.Format),
		ExportName: req.ExportName,
		Filter: model.ExportFilter{
			Company:      req.Company,
			IncludeNotes: req.IncludeNotes,
			IncludeTasks: req.IncludeTasks,
		},
	}

	if req.StartDate != "" {
		t, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return opts, util.NewValidationError("invalid startDate %q, expected YYYY-MM-DD", req.StartDate)
		}
		opts.Filter.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return opts, util.NewValidationError("invalid endDate %q, expected YYYY-MM-DD", req.EndDate)
		}
		opts.Filter.EndDate = &t
	}
	for _, s := range req.Statuses {
		if !model.IsValidJobStatus(s) {
			return opts, util.NewValidationError("invalid status %q", s)
		}
		opts.Filter.Statuses = append(opts.Filter.Statuses, model.JobStatus(s))
	}

	return opts, nil
}
