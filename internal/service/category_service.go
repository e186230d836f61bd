package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// CategoryService provides category CRUD with uniqueness and delete guards.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, name, color string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	if color == "" {
		color = model.DefaultCategoryColor
	}

	category := model.Category{Name: name, Color: color}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories returns categories in creation order, each annotated with the
// number of tasks currently assigned to it.
func (s *CategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.TaskCounts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		categories[i].TaskCount = counts[categories[i].ID]
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id, name, color string) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" && name != category.Name {
		existing, err := s.repo.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDuplicateName
		}
		category.Name = name
	}
	if color != "" {
		category.Color = color
	}

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}

	count, err := s.repo.CountTasks(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	category.TaskCount = count
	return category, nil
}

// DeleteCategory refuses to delete a category that still has tasks; the caller
// must reassign or clear those tasks first.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.repo.CountTasks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryHasTasks
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// GetOrCreateByName finds a category by exact name or creates it with the
// default color. Used by imports, which reference categories by name.
func (s *CategoryService) GetOrCreateByName(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	category := model.Category{Name: name, Color: model.DefaultCategoryColor}
	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
