package export

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/job-tracker/internal/model"
)

// xmlEscaper covers the five entities the format requires. strings.Replacer
// never rescans its own output, so escaping cannot double up.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EncodeXML renders <JobApplications> with one <Job> per record. URL, Notes
// and the nested <Tasks> block are emitted only when present and requested.
func EncodeXML(in Input) (string, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<JobApplications>\n")

	for _, j := range in.Jobs {
		b.WriteString("  <Job>\n")
		writeXMLElement(&b, "    ", "ID", j.ID.String())
		writeXMLElement(&b, "    ", "Company", j.Company)
		writeXMLElement(&b, "    ", "Role", j.Role)
		writeXMLElement(&b, "    ", "Location", j.Location)
		writeXMLElement(&b, "    ", "Status", string(j.Status))
		writeXMLElement(&b, "    ", "DateApplied", FormatDate(j.DateApplied))
		if j.Link != "" {
			writeXMLElement(&b, "    ", "URL", j.Link)
		}
		if in.Filter.IncludeNotes && j.Notes != "" {
			writeXMLElement(&b, "    ", "Notes", j.Notes)
		}
		if in.Filter.IncludeTasks {
			if tasks := in.TasksByJob[j.ID]; len(tasks) > 0 {
				writeXMLTasks(&b, tasks)
			}
		}
		b.WriteString("  </Job>\n")
	}

	b.WriteString("</JobApplications>\n")
	return b.String(), nil
}

func writeXMLTasks(b *strings.Builder, tasks []model.Task) {
	b.WriteString("    <Tasks>\n")
	for _, t := range tasks {
		b.WriteString("      <Task>\n")
		writeXMLElement(b, "        ", "Title", t.Title)
		if t.Description != "" {
			writeXMLElement(b, "        ", "Description", t.Description)
		}
		writeXMLElement(b, "        ", "DueDate", FormatDate(t.DueDate))
		writeXMLElement(b, "        ", "Completed", fmt.Sprintf("%t", t.Completed))
		writeXMLElement(b, "        ", "Priority", t.Priority)
		b.WriteString("      </Task>\n")
	}
	b.WriteString("    </Tasks>\n")
}

func writeXMLElement(b *strings.Builder, indent, name, value string) {
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteByte('>')
	b.WriteString(xmlEscaper.Replace(value))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">\n")
}
