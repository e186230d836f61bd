package impex

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// RawRow is one unvalidated row from an import payload or file.
// String fields carry whatever the source provided.
type RawRow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"dueDate"`
	Completed   *bool  `json:"completed"`
}

// headerAliases maps localized and English column labels onto row fields.
var headerAliases = map[string]string{
	"标题": "title", "title": "title",
	"描述": "description", "description": "description",
	"状态": "status", "status": "status",
	"优先级": "priority", "priority": "priority",
	"分类": "category", "category": "category",
	"截止日期": "dueDate", "duedate": "dueDate", "due date": "dueDate",
	"completed": "completed",
}

// ParseCSV reads a delimited file with a header row into raw rows.
// A malformed file is a terminal error, not a per-row one.
func ParseCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse csv: missing header row")
	}

	return mapRecords(records[0], records[1:]), nil
}

// mapRecords matches header labels against the synonym table and builds rows.
// Unrecognized columns are ignored.
func mapRecords(header []string, records [][]string) []RawRow {
	fields := make([]string, len(header))
	for i, label := range header {
		fields[i] = headerAliases[normalizeHeader(label)]
	}

	rows := make([]RawRow, 0, len(records))
	for _, record := range records {
		var row RawRow
		for i, value := range record {
			if i >= len(fields) {
				break
			}
			switch fields[i] {
			case "title":
				row.Title = value
			case "description":
				row.Description = value
			case "status":
				row.Status = value
			case "priority":
				row.Priority = value
			case "category":
				row.Category = value
			case "dueDate":
				row.DueDate = value
			case "completed":
				b := strings.EqualFold(strings.TrimSpace(value), "true")
				row.Completed = &b
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func normalizeHeader(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// IsCompleted derives the completion flag from the status label or the
// explicit boolean column.
func (r RawRow) IsCompleted() bool {
	status := strings.TrimSpace(r.Status)
	if status == "已完成" || strings.EqualFold(status, "completed") {
		return true
	}
	return r.Completed != nil && *r.Completed
}

// CategoryName returns the category label, with export placeholders for
// "no category" treated as empty.
func (r RawRow) CategoryName() string {
	name := strings.TrimSpace(r.Category)
	if strings.EqualFold(name, noCategory) || name == "无分类" {
		return ""
	}
	return name
}

var dueDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDueDate parses the due date text in loc. Unparseable values are
// treated as absent, never as an error.
func (r RawRow) ParseDueDate(loc *time.Location) *time.Time {
	raw := strings.TrimSpace(r.DueDate)
	if raw == "" {
		return nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return &t
		}
	}
	return nil
}
