package service

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"taskboard/internal/repository"
)

type testEnv struct {
	db         *gorm.DB
	taskRepo   *repository.TaskRepository
	catRepo    *repository.CategoryRepository
	tasks      *TaskService
	categories *CategoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repository.NewDB(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	taskRepo := repository.NewTaskRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	return &testEnv{
		db:         db,
		taskRepo:   taskRepo,
		catRepo:    catRepo,
		tasks:      NewTaskService(taskRepo, catRepo),
		categories: NewCategoryService(catRepo),
	}
}
