package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/fadilmartias/job-tracker/internal/model"
)

// EncodePDF renders the export as a self-contained styled HTML document, the
// input a downstream converter turns into the actual PDF binary. Notes get
// their own row under the job, tasks a nested table.
func EncodePDF(in Input) (string, error) {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Job Applications</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #1a1a1a; margin: 24px; }
  h1 { font-size: 20px; margin-bottom: 4px; }
  .generated { color: #666; margin-bottom: 16px; }
  table { border-collapse: collapse; width: 100%; }
  th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; vertical-align: top; }
  th { background: #f0f0f0; }
  .notes-row td { background: #fafae8; font-style: italic; }
  .tasks-row td { background: #f6f9ff; }
  .tasks-row table { margin: 4px 0; }
  .tasks-row th { background: #e4ecf7; }
</style>
</head>
<body>
<h1>Job Applications</h1>
`)
	fmt.Fprintf(&b, "<p class=\"generated\">Generated %s</p>\n",
		in.GeneratedAt.Format("Jan 2, 2006 15:04"))

	b.WriteString(`<table>
<thead>
<tr><th>ID</th><th>Company</th><th>Role</th><th>Location</th><th>Status</th><th>Date Applied</th><th>URL</th></tr>
</thead>
<tbody>
`)
	for _, j := range in.Jobs {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(j.ID.String()),
			html.EscapeString(j.Company),
			html.EscapeString(j.Role),
			html.EscapeString(j.Location),
			html.EscapeString(string(j.Status)),
			html.EscapeString(FormatDate(j.DateApplied)),
			html.EscapeString(j.Link),
		)
		if in.Filter.IncludeNotes && j.Notes != "" {
			notes := strings.ReplaceAll(html.EscapeString(j.Notes), "\n", "<br>")
			fmt.Fprintf(&b, "<tr class=\"notes-row\"><td colspan=\"7\">%s</td></tr>\n", notes)
		}
		if in.Filter.IncludeTasks {
			if tasks := in.TasksByJob[j.ID]; len(tasks) > 0 {
				b.WriteString("<tr class=\"tasks-row\"><td colspan=\"7\">\n")
				writeHTMLTaskTable(&b, tasks)
				b.WriteString("</td></tr>\n")
			}
		}
	}
	b.WriteString(`</tbody>
</table>
</body>
</html>
`)
	return b.String(), nil
}

func writeHTMLTaskTable(b *strings.Builder, tasks []model.Task) {
	b.WriteString(`<table>
<thead>
<tr><th>Title</th><th>Description</th><th>Due Date</th><th>Status</th><th>Priority</th></tr>
</thead>
<tbody>
`)
	for _, t := range tasks {
		status := "Pending"
		if t.Completed {
			status = "Completed"
		}
		fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(t.Title),
			html.EscapeString(t.Description),
			html.EscapeString(FormatDate(t.DueDate)),
			status,
			html.EscapeString(t.Priority),
		)
	}
	b.WriteString("</tbody>\n</table>\n")
}
