package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"taskboard/internal/impex"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

func TestImport_RowValidationAndCategoryReuse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(env.tasks, env.categories, time.UTC)

	rows := []impex.RawRow{
		{Title: "Book flights", Category: "Travel", Priority: "高", DueDate: "2026-09-10"},
		{Title: "   "}, // empty title fails
		{Title: "Book hotel", Category: "Travel", Status: "已完成"},
		{Title: "Pay taxes", Priority: "whatever"},
	}

	result := svc.Import(ctx, rows)
	if result.Success != 3 || result.Failed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "row 2") {
		t.Fatalf("expected a row 2 error, got %v", result.Errors)
	}

	// Both Travel rows share one newly created category.
	categories, err := env.categories.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Travel" {
		t.Fatalf("expected exactly one Travel category, got %+v", categories)
	}
	if categories[0].TaskCount != 2 {
		t.Fatalf("expected 2 travel tasks, got %d", categories[0].TaskCount)
	}
	if categories[0].Color != model.DefaultCategoryColor {
		t.Fatalf("expected default color, got %q", categories[0].Color)
	}

	tasks, err := env.tasks.ListTasks(ctx, repository.TaskFilter{Search: "flights"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	flight := tasks[0]
	if flight.Priority != model.PriorityHigh {
		t.Fatalf("expected HIGH from 高, got %s", flight.Priority)
	}
	if flight.DueDate == nil || flight.DueDate.Format("2006-01-02") != "2026-09-10" {
		t.Fatalf("unexpected due date: %v", flight.DueDate)
	}

	tasks, err = env.tasks.ListTasks(ctx, repository.TaskFilter{Search: "hotel"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Completed {
		t.Fatal("expected the 已完成 row to be completed")
	}

	tasks, err = env.tasks.ListTasks(ctx, repository.TaskFilter{Search: "taxes"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Priority != model.PriorityMedium {
		t.Fatal("unknown priority text should default to MEDIUM")
	}
}

func TestImport_BadDueDateIsIgnored(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(env.tasks, env.categories, time.UTC)

	result := svc.Import(ctx, []impex.RawRow{{Title: "Vague plan", DueDate: "someday"}})
	if result.Success != 1 || result.Failed != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	tasks, err := env.tasks.ListTasks(ctx, repository.TaskFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tasks[0].DueDate != nil {
		t.Fatalf("expected no due date, got %v", tasks[0].DueDate)
	}
}

func TestImport_CSVRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewImportService(env.tasks, env.categories, time.UTC)

	travel, err := env.categories.CreateCategory(ctx, "Travel", "#06B6D4")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	due := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	seed := []TaskInput{
		{Title: "Book flights", Description: "to Lisbon", Priority: model.PriorityUrgent, CategoryID: &travel.ID, DueDate: &due},
		{Title: "Water plants", Completed: true},
	}
	for i, input := range seed {
		if _, err := env.tasks.CreateTask(ctx, input); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	exported, err := env.tasks.ListTasks(ctx, repository.TaskFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var buf bytes.Buffer
	if err := impex.WriteCSV(&buf, exported, time.UTC); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	rows, err := impex.ParseCSV(&buf)
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	result := svc.Import(ctx, rows)
	if result.Failed != 0 || result.Success != 2 {
		t.Fatalf("unexpected import result: %+v", result)
	}

	// Still exactly one Travel category, and field values survived.
	categories, err := env.categories.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}

	tasks, err := env.tasks.ListTasks(ctx, repository.TaskFilter{Search: "flights"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected original + reimported task, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Priority != model.PriorityUrgent {
			t.Fatalf("priority lost in round trip: %s", task.Priority)
		}
		if task.CategoryID == nil || *task.CategoryID != travel.ID {
			t.Fatal("category lost in round trip")
		}
		if task.DueDate == nil || task.DueDate.Format("2006-01-02") != "2026-09-10" {
			t.Fatalf("due date lost in round trip: %v", task.DueDate)
		}
	}

	tasks, err = env.tasks.ListTasks(ctx, repository.TaskFilter{Search: "plants"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, task := range tasks {
		if !task.Completed {
			t.Fatal("completion lost in round trip")
		}
		if task.CategoryID != nil {
			t.Fatal("the none placeholder must not create a category")
		}
	}
}
