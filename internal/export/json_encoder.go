package export

import (
	json "github.com/goccy/go-json"
)

type jsonJob struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	DateApplied string `json:"date_applied"`
	URL         string `json:"url,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type jsonTask struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
}

// EncodeJSON renders { "jobs": [...] } with a "tasks" object keyed by job id
// appended only when the filter asked for tasks.
func EncodeJSON(in Input) (string, error) {
	jobs := make([]jsonJob, 0, len(in.Jobs))
	for _, j := range in.Jobs {
		row := jsonJob{
			ID:          j.ID.String(),
			Company:     j.Company,
			Role:        j.Role,
			Location:    j.Location,
			Status:      string(j.Status),
			DateApplied: FormatDate(j.DateApplied),
			URL:         j.Link,
		}
		if in.Filter.IncludeNotes {
			row.Notes = j.Notes
		}
		jobs = append(jobs, row)
	}

	var doc any
	if in.Filter.IncludeTasks {
		tasks := make(map[string][]jsonTask, len(in.TasksByJob))
		for jobID, jobTasks := range in.TasksByJob {
			rows := make([]jsonTask, 0, len(jobTasks))
			for _, t := range jobTasks {
				rows = append(rows, jsonTask{
					Title:       t.Title,
					Description: t.Description,
					DueDate:     FormatDate(t.DueDate),
					Completed:   t.Completed,
					Priority:    t.Priority,
				})
			}
			tasks[jobID.String()] = rows
		}
		doc = struct {
			Jobs  []jsonJob             `json:"jobs"`
			Tasks map[string][]jsonTask `json:"tasks"`
		}{Jobs: jobs, Tasks: tasks}
	} else {
		doc = struct {
			Jobs []jsonJob `json:"jobs"`
		}{Jobs: jobs}
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
