package export

import "strings"

// EncodeCSV renders one quoted row per job. Tasks are never embedded (flat
// rows only); the Notes column exists only when the filter asked for notes.
// Every field is quoted and embedded quotes are doubled.
func EncodeCSV(in Input) (string, error) {
	var b strings.Builder

	header := []string{"ID", "Company", "Role", "Location", "Status", "Date Applied", "URL"}
	if in.Filter.IncludeNotes {
		header = append(header, "Notes")
	}
	writeCSVRow(&b, header)

	for _, j := range in.Jobs {
		row := []string{
			j.ID.String(),
			j.Company,
			j.Role,
			j.Location,
			string(j.Status),
			FormatDate(j.DateApplied),
			j.Link,
		}
		if in.Filter.IncludeNotes {
			row = append(row, j.Notes)
		}
		writeCSVRow(&b, row)
	}
	return b.String(), nil
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
