package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/job-tracker/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func exportFixture(includeNotes, includeTasks bool) Input {
	job1 := model.JobApplication{
		ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Company:     "Acme",
		Role:        "Backend Engineer",
		Location:    "Berlin",
		Status:      model.StatusInterview,
		DateApplied: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		Link:        "https://acme.example/jobs/42",
		Notes:       "Call back\nnext week",
	}
	job2 := model.JobApplication{
		ID:          uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Company:     "Globex",
		Role:        "Data Analyst",
		Location:    "Remote",
		Status:      model.StatusApplied,
		DateApplied: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
	tasks := map[uuid.UUID][]model.Task{
		job1.ID: {
			{Title: "Prepare interview", Description: "System design round", DueDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), Priority: "high"},
			{Title: "Send thank-you note", DueDate: time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC), Completed: true, Priority: "low"},
		},
	}
	return Input{
		Jobs:        []model.JobApplication{job1, job2},
		TasksByJob:  tasks,
		Filter:      model.ExportFilter{IncludeNotes: includeNotes, IncludeTasks: includeTasks},
		GeneratedAt: time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestFormatParity(t *testing.T) {
	in := exportFixture(true, true)

	jsonOut, err := EncodeJSON(in)
	require.NoError(t, err)
	csvOut, err := EncodeCSV(in)
	require.NoError(t, err)
	xmlOut, err := EncodeXML(in)
	require.NoError(t, err)
	htmlOut, err := EncodePDF(in)
	require.NoError(t, err)

	// JSON: both jobs once, notes and tasks present
	assert.Equal(t, int64(2), gjson.Get(jsonOut, "jobs.#").Int())
	assert.Equal(t, "Acme", gjson.Get(jsonOut, "jobs.0.company").String())
	assert.Equal(t, "Jan 5, 2024", gjson.Get(jsonOut, "jobs.0.date_applied").String())
	assert.Equal(t, "Call back\nnext week", gjson.Get(jsonOut, "jobs.0.notes").String())
	assert.Equal(t, int64(2), gjson.Get(jsonOut, "tasks.11111111-1111-1111-1111-111111111111.#").Int())

	// CSV: header + 2 records, notes column filled, no task embedding.
	// Parsed with encoding/csv because the multiline note keeps its newline
	// inside the quoted field, spanning two physical lines.
	records, err := csv.NewReader(strings.NewReader(csvOut)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Notes", records[0][7])
	assert.Equal(t, "Acme", records[1][1])
	assert.Equal(t, "Jan 5, 2024", records[1][5])
	assert.Equal(t, "Call back\nnext week", records[1][7])
	assert.Equal(t, "Globex", records[2][1])
	assert.Empty(t, records[2][7])
	assert.NotContains(t, csvOut, "Prepare interview")

	// XML: both jobs once, notes and nested tasks only where they exist
	assert.Equal(t, 2, strings.Count(xmlOut, "<Job>"))
	assert.Equal(t, 1, strings.Count(xmlOut, "<Tasks>"))
	assert.Equal(t, 2, strings.Count(xmlOut, "<Task>"))
	assert.Contains(t, xmlOut, "<Company>Acme</Company>")
	assert.Contains(t, xmlOut, "<Company>Globex</Company>")
	assert.Contains(t, xmlOut, "<Notes>Call back\nnext week</Notes>")
	assert.Contains(t, xmlOut, "<DateApplied>Jan 5, 2024</DateApplied>")
	// job2 has no link, so only one URL element
	assert.Equal(t, 1, strings.Count(xmlOut, "<URL>"))

	// HTML: both jobs, notes row with converted newline, nested task table
	assert.Equal(t, 1, strings.Count(htmlOut, "<td>Acme</td>"))
	assert.Equal(t, 1, strings.Count(htmlOut, "<td>Globex</td>"))
	assert.Contains(t, htmlOut, "Call back<br>next week")
	assert.Contains(t, htmlOut, "<td>Prepare interview</td>")
	assert.Contains(t, htmlOut, "Generated Mar 1, 2024 09:30")
}

func TestEncodersOmitNotesWhenNotRequested(t *testing.T) {
	in := exportFixture(false, false)

	jsonOut, err := EncodeJSON(in)
	require.NoError(t, err)
	assert.False(t, gjson.Get(jsonOut, "jobs.0.notes").Exists())
	assert.False(t, gjson.Get(jsonOut, "tasks").Exists())

	csvOut, err := EncodeCSV(in)
	require.NoError(t, err)
	assert.NotContains(t, csvOut, `"Notes"`)
	assert.NotContains(t, csvOut, "Call back")

	xmlOut, err := EncodeXML(in)
	require.NoError(t, err)
	assert.NotContains(t, xmlOut, "<Notes>")
	assert.NotContains(t, xmlOut, "<Tasks>")

	htmlOut, err := EncodePDF(in)
	require.NoError(t, err)
	// the style block always mentions the classes, the body must not use them
	assert.NotContains(t, htmlOut, `class="notes-row"`)
	assert.NotContains(t, htmlOut, `class="tasks-row"`)
}

func TestJSONTasksKeyPresentWhenRequested(t *testing.T) {
	in := exportFixture(false, true)
	in.TasksByJob = nil // requested but nothing matched

	out, err := EncodeJSON(in)
	require.NoError(t, err)
	tasks := gjson.Get(out, "tasks")
	assert.True(t, tasks.Exists())
	assert.Empty(t, tasks.Map())
}

func TestXMLEscaping(t *testing.T) {
	in := Input{
		Jobs: []model.JobApplication{{
			ID:          uuid.New(),
			Company:     `R&D <"Systems"> 'Lab'`,
			Role:        "Engineer",
			Status:      model.StatusApplied,
			DateApplied: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		}},
	}
	out, err := EncodeXML(in)
	require.NoError(t, err)
	assert.Contains(t, out, "<Company>R&amp;D &lt;&quot;Systems&quot;&gt; &apos;Lab&apos;</Company>")
	assert.NotContains(t, out, `<Company>R&D`)

	// recoverable by unescaping
	unescaper := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")
	assert.Contains(t, unescaper.Replace(out), `<Company>R&D <"Systems"> 'Lab'</Company>`)
}

func TestCSVQuoting(t *testing.T) {
	in := Input{
		Jobs: []model.JobApplication{{
			ID:          uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Company:     `Say "Hello" Inc`,
			Role:        "Dev, Senior",
			Status:      model.StatusApplied,
			DateApplied: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		}},
	}
	out, err := EncodeCSV(in)
	require.NoError(t, err)

	// embedded quotes double, embedded commas stay inside the quoted field
	assert.Contains(t, out, `"Say ""Hello"" Inc"`)
	assert.Contains(t, out, `"Dev, Senior"`)

	// every field is quoted
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, `"`), "line %q", line)
		assert.True(t, strings.HasSuffix(line, `"`), "line %q", line)
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, time.June, 15, 13, 0, 0, 0, time.UTC)
	assert.Equal(t, "job-applications-2024-06-15.json",
		FileName(model.ExportOptions{Format: model.FormatJSON}, now))
	assert.Equal(t, "my-search-2024-06-15.xml",
		FileName(model.ExportOptions{Format: model.FormatXML, ExportName: "my-search"}, now))
}

func TestRegistry(t *testing.T) {
	for _, f := range []model.ExportFormat{model.FormatJSON, model.FormatCSV, model.FormatXML, model.FormatPDF} {
		enc, ok := Encoder(f)
		assert.True(t, ok, "format %s", f)
		assert.NotNil(t, enc)
		assert.NotEmpty(t, MIMEType(f))
	}
	_, ok := Encoder("yaml")
	assert.False(t, ok)
	assert.False(t, Supported("yaml"))
}
