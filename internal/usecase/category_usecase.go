package usecase

import (
	"context"

	"recipehub/internal/domain/entity"
)

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateCategoryInput carries a partial update. Nil fields are left untouched.
type UpdateCategoryInput struct {
	Name *string `json:"name"`
}

// CategoryUsecase defines the interface for category catalog operations.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id int64) (*entity.Category, error)
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id int64, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
