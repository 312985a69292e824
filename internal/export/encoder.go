// Package export renders a filtered job collection (optionally joined with
// tasks) into one of four portable formats. Encoders are looked up through a
// registry so adding a format is a registration, not a branch edit.
package export

import (
	"fmt"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
)

// Input is the common payload every encoder receives: the filtered jobs in
// final order, the tasks grouped by job id when the filter requested them,
// and the flags controlling optional fields.
type Input struct {
	Jobs        []model.JobApplication
	TasksByJob  map[uuid.UUID][]model.Task
	Filter      model.ExportFilter
	GeneratedAt time.Time
}

type EncodeFunc func(in Input) (string, error)

var encoders = map[model.ExportFormat]EncodeFunc{
	model.FormatJSON: EncodeJSON,
	model.FormatCSV:  EncodeCSV,
	model.FormatXML:  EncodeXML,
	model.FormatPDF:  EncodePDF,
}

var mimeTypes = map[model.ExportFormat]string{
	model.FormatJSON: "application/json",
	model.FormatCSV:  "text/csv",
	model.FormatXML:  "application/xml",
	model.FormatPDF:  "application/pdf",
}

// Encoder returns the registered encoder for a format, or false when the
// format is unknown.
func Encoder(f model.ExportFormat) (EncodeFunc, bool) {
	enc, ok := encoders[f]
	return enc, ok
}

func Supported(f model.ExportFormat) bool {
	_, ok := encoders[f]
	return ok
}

func MIMEType(f model.ExportFormat) string {
	return mimeTypes[f]
}

const defaultExportName = "job-applications"

// FileName builds "{name}-{YYYY-MM-DD}.{format}".
func FileName(opts model.ExportOptions, now time.Time) string {
	name := opts.ExportName
	if name == "" {
		name = defaultExportName
	}
	return fmt.Sprintf("%s-%s.%s", name, now.Format("2006-01-02"), opts.Format)
}

// FormatDate is the shared human-readable date renderer used by the CSV, XML
// and PDF encoders, e.g. "Jan 5, 2024".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
