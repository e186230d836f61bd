package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/impex"
	"taskboard/internal/model"
)

// ImportResult reports the outcome of a batch import. Errors reference rows
// by their 1-indexed position in the source.
type ImportResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// ImportService turns raw rows into stored tasks. Imports are not
// transactional: rows that succeeded stay persisted when later rows fail.
type ImportService struct {
	tasks      *TaskService
	categories *CategoryService
	loc        *time.Location
}

func NewImportService(tasks *TaskService, categories *CategoryService, loc *time.Location) *ImportService {
	if loc == nil {
		loc = time.Local
	}
	return &ImportService{tasks: tasks, categories: categories, loc: loc}
}

// Import creates one task per valid row. Unknown category names are created
// on the fly with the default color and reused within the batch.
func (s *ImportService) Import(ctx context.Context, rows []impex.RawRow) ImportResult {
	result := ImportResult{Errors: []string{}}

	// Per-batch cache of category name -> id.
	categoryIDs := make(map[string]string)

	for i, row := range rows {
		if strings.TrimSpace(row.Title) == "" {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: title is required", i+1))
			continue
		}

		var categoryID *string
		if name := row.CategoryName(); name != "" {
			id, ok := categoryIDs[name]
			if !ok {
				category, err := s.categories.GetOrCreateByName(ctx, name)
				if err != nil {
					result.Failed++
					result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
					continue
				}
				id = category.ID
				categoryIDs[name] = id
			}
			categoryID = &id
		}

		input := TaskInput{
			Title:       strings.TrimSpace(row.Title),
			Description: strings.TrimSpace(row.Description),
			CategoryID:  categoryID,
			Priority:    model.NormalizePriority(row.Priority),
			DueDate:     row.ParseDueDate(s.loc),
			Completed:   row.IsCompleted(),
		}

		if _, err := s.tasks.CreateTask(ctx, input); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Success++
	}

	return result
}
