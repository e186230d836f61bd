// Package impex converts tasks to and from tabular representations
// (CSV, XLSX and structured JSON) for import and export.
package impex

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"taskboard/internal/model"
)

const sheetName = "Tasks"

// noCategory is the placeholder written for tasks without a category.
// Imports treat it as "unassigned" so an export round-trips cleanly.
const noCategory = "none"

// exportHeaders is the fixed column order for CSV and XLSX exports.
var exportHeaders = []string{"Title", "Description", "Status", "Priority", "Category", "Due Date", "Created At", "Updated At"}

// ExportRow is one task flattened for export.
type ExportRow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	DueDate     string `json:"dueDate"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// JSONExport is the structured export document.
type JSONExport struct {
	Data       []ExportRow `json:"data"`
	Total      int         `json:"total"`
	ExportTime time.Time   `json:"exportTime"`
}

// Rows flattens tasks into export rows, formatting dates in loc.
func Rows(tasks []model.Task, loc *time.Location) []ExportRow {
	rows := make([]ExportRow, 0, len(tasks))
	for _, task := range tasks {
		row := ExportRow{
			Title:       task.Title,
			Description: task.Description,
			Status:      "incomplete",
			Priority:    task.Priority.Label(),
			Category:    noCategory,
			CreatedAt:   task.CreatedAt.In(loc).Format("2006-01-02 15:04:05"),
			UpdatedAt:   task.UpdatedAt.In(loc).Format("2006-01-02 15:04:05"),
		}
		if task.Completed {
			row.Status = "completed"
		}
		if task.Category != nil {
			row.Category = task.Category.Name
		}
		if task.DueDate != nil {
			row.DueDate = task.DueDate.In(loc).Format("2006-01-02")
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildJSON assembles the structured export document.
func BuildJSON(tasks []model.Task, loc *time.Location, now time.Time) JSONExport {
	return JSONExport{
		Data:       Rows(tasks, loc),
		Total:      len(tasks),
		ExportTime: now.UTC(),
	}
}

// WriteCSV writes a header row followed by one quoted row per task.
// Every value is quoted, matching the export contract.
func WriteCSV(w io.Writer, tasks []model.Task, loc *time.Location) error {
	if err := writeCSVLine(w, exportHeaders); err != nil {
		return err
	}
	for _, row := range Rows(tasks, loc) {
		if err := writeCSVLine(w, row.values()); err != nil {
			return err
		}
	}
	return nil
}

// WriteXLSX writes a single-sheet spreadsheet with the same tabular shape.
func WriteXLSX(w io.Writer, tasks []model.Task, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range Rows(tasks, loc) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row.values()
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func (r ExportRow) values() []string {
	return []string{r.Title, r.Description, r.Status, r.Priority, r.Category, r.DueDate, r.CreatedAt, r.UpdatedAt}
}

func writeCSVLine(w io.Writer, values []string) error {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
