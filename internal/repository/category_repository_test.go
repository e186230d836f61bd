package repository

import (
	"context"
	"testing"

	"taskboard/internal/model"
)

func TestCategoryRepository_FindByName(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Category{Name: "Travel", Color: "#06B6D4"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByName(ctx, "Travel")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.Color != "#06B6D4" {
		t.Fatalf("unexpected category: %+v", got)
	}

	missing, err := repo.FindByName(ctx, "Nope")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing name, got %+v", missing)
	}
}

func TestCategoryRepository_UniqueName(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Category{Name: "Work"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, &model.Category{Name: "Work"}); err == nil {
		t.Fatal("expected unique constraint violation")
	}
}

func TestCategoryRepository_TaskCounts(t *testing.T) {
	db := openTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	taskRepo := NewTaskRepository(db)
	ctx := context.Background()

	work := model.Category{Name: "Work"}
	home := model.Category{Name: "Home"}
	for _, c := range []*model.Category{&work, &home} {
		if err := categoryRepo.Create(ctx, c); err != nil {
			t.Fatalf("create category: %v", err)
		}
	}

	for i, categoryID := range []*string{&work.ID, &work.ID, nil} {
		task := model.Task{Title: "t", CategoryID: categoryID}
		if err := taskRepo.Create(ctx, &task); err != nil {
			t.Fatalf("create task %d: %v", i, err)
		}
	}

	counts, err := categoryRepo.TaskCounts(ctx)
	if err != nil {
		t.Fatalf("task counts: %v", err)
	}
	if counts[work.ID] != 2 {
		t.Fatalf("expected 2 work tasks, got %d", counts[work.ID])
	}
	if counts[home.ID] != 0 {
		t.Fatalf("expected 0 home tasks, got %d", counts[home.ID])
	}

	n, err := categoryRepo.CountTasks(ctx, work.ID)
	if err != nil {
		t.Fatalf("count tasks: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
}
