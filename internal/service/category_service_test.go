package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"taskboard/internal/model"
)

func TestCategoryService_DuplicateName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.categories.CreateCategory(ctx, "Work", "#3B82F6"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := env.categories.CreateCategory(ctx, "Work", "#000000"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}

	other, err := env.categories.CreateCategory(ctx, "Home", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if other.Color != model.DefaultCategoryColor {
		t.Fatalf("expected default color, got %q", other.Color)
	}

	// Renaming onto an existing name is also a conflict.
	if _, err := env.categories.UpdateCategory(ctx, other.ID, "Work", ""); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName on update, got %v", err)
	}
}

func TestCategoryService_DeleteGuard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	category, err := env.categories.CreateCategory(ctx, "Errands", "")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	task, err := env.tasks.CreateTask(ctx, TaskInput{Title: "Post office", CategoryID: &category.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := env.categories.DeleteCategory(ctx, category.ID); !errors.Is(err, ErrCategoryHasTasks) {
		t.Fatalf("expected ErrCategoryHasTasks, got %v", err)
	}

	// Clearing the last referencing task unblocks deletion.
	var update TaskUpdate
	if err := json.Unmarshal([]byte(`{"categoryId":null}`), &update); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := env.tasks.UpdateTask(ctx, task.ID, update); err != nil {
		t.Fatalf("clear category: %v", err)
	}

	if err := env.categories.DeleteCategory(ctx, category.ID); err != nil {
		t.Fatalf("delete after clearing: %v", err)
	}

	if err := env.categories.DeleteCategory(ctx, category.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCategoryService_ListWithCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.categories.CreateCategory(ctx, "First", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := env.categories.CreateCategory(ctx, "Second", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := env.tasks.CreateTask(ctx, TaskInput{Title: "t", CategoryID: &second.ID}); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	categories, err := env.categories.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].ID != first.ID {
		t.Fatal("expected creation order")
	}
	if categories[0].TaskCount != 0 || categories[1].TaskCount != 2 {
		t.Fatalf("unexpected counts: %d / %d", categories[0].TaskCount, categories[1].TaskCount)
	}
}

func TestCategoryService_GetOrCreateByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a, err := env.categories.GetOrCreateByName(ctx, "Travel")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	b, err := env.categories.GetOrCreateByName(ctx, "Travel")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if a.ID != b.ID {
		t.Fatal("expected the same category to be reused")
	}
}
