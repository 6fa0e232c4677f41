package repository

import (
	"context"
	"errors"

	"recipehub/internal/domain/entity"
)

// ErrIngredientNotFound is returned when an ingredient is not found.
var ErrIngredientNotFound = errors.New("ingredient not found")

// IngredientRepository defines the standard operations for ingredient persistence.
type IngredientRepository interface {
	FindAll(ctx context.Context) ([]*entity.Ingredient, error)
	FindByID(ctx context.Context, id int64) (*entity.Ingredient, error)
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id int64) error
}
