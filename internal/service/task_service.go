package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	CategoryID  *string
	Priority    model.Priority
	DueDate     *time.Time
	Completed   bool
}

// TaskUpdate is a partial update payload. Fields left out of the JSON body
// stay untouched; explicit nulls clear the clearable fields.
type TaskUpdate struct {
	Title       model.Optional[string]         `json:"title"`
	Description model.Optional[string]         `json:"description"`
	Completed   model.Optional[bool]           `json:"completed"`
	Priority    model.Optional[model.Priority] `json:"priority"`
	DueDate     model.Optional[time.Time]      `json:"dueDate"`
	CategoryID  model.Optional[string]         `json:"categoryId"`
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

// CreateTask validates input and stores a new task. The returned task carries
// its category, if one was assigned.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	var categoryID *string
	if input.CategoryID != nil && *input.CategoryID != "" {
		category, err := s.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		categoryID = &category.ID
	}

	task := model.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Completed:   input.Completed,
		Priority:    priority,
		DueDate:     input.DueDate,
		CategoryID:  categoryID,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	return s.taskRepo.FindByID(ctx, task.ID)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	return s.taskRepo.List(ctx, filter)
}

// UpdateTask applies only the provided fields. A null description, due date or
// category id clears that field; the title is changed only when a non-empty
// value is given.
func (s *TaskService) UpdateTask(ctx context.Context, id string, update TaskUpdate) (*model.Task, error) {
	if _, err := s.GetTask(ctx, id); err != nil {
		return nil, err
	}

	fields := make(map[string]any)

	if update.Title.Set && update.Title.Valid {
		title := strings.TrimSpace(update.Title.Value)
		if title == "" {
			return nil, ErrTitleRequired
		}
		fields["title"] = title
	}

	if update.Description.Set {
		if update.Description.Valid {
			fields["description"] = update.Description.Value
		} else {
			fields["description"] = ""
		}
	}

	if update.Completed.Set && update.Completed.Valid {
		fields["completed"] = update.Completed.Value
	}

	if update.Priority.Set && update.Priority.Valid && update.Priority.Value != "" {
		if !update.Priority.Value.Valid() {
			return nil, ErrInvalidPriority
		}
		fields["priority"] = update.Priority.Value
	}

	if update.DueDate.Set {
		if update.DueDate.Valid {
			fields["due_date"] = update.DueDate.Value
		} else {
			fields["due_date"] = nil
		}
	}

	if update.CategoryID.Set {
		if update.CategoryID.Valid && update.CategoryID.Value != "" {
			category, err := s.categoryRepo.FindByID(ctx, update.CategoryID.Value)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrCategoryNotFound
				}
				return nil, err
			}
			fields["category_id"] = category.ID
		} else {
			fields["category_id"] = nil
		}
	}

	if err := s.taskRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
