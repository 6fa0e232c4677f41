package usecase

import (
	"context"

	"recipehub/internal/domain/entity"
)

// CreateIngredientInput defines the data required to create an ingredient.
type CreateIngredientInput struct {
	Name     string  `json:"name" validate:"required"`
	Quantity *string `json:"quantity"`
}

// UpdateIngredientInput carries a partial update. Nil fields are left untouched.
type UpdateIngredientInput struct {
	Name     *string `json:"name"`
	Quantity *string `json:"quantity"`
}

// IngredientUsecase defines the interface for ingredient catalog operations.
type IngredientUsecase interface {
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*entity.Ingredient, error)
	CreateIngredient(ctx context.Context, input *CreateIngredientInput) (*entity.Ingredient, error)
	UpdateIngredient(ctx context.Context, id int64, input *UpdateIngredientInput) (*entity.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int64) error
}
