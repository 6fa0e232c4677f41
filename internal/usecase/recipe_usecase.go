package usecase

import (
	"context"

	"recipehub/internal/domain/entity"
)

// CreateRecipeInput defines the data required to publish a recipe.
type CreateRecipeInput struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	UserID     int64  `json:"user_id" validate:"required"`
	CategoryID *int64 `json:"category_id"`
}

// UpdateRecipeInput carries a partial update. Nil fields are left untouched.
type UpdateRecipeInput struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	CategoryID *int64  `json:"category_id"`
}

// AddIngredientInput links an ingredient to a recipe with a free-form quantity.
type AddIngredientInput struct {
	IngredientID int64  `json:"ingredient_id" validate:"required"`
	Quantity     string `json:"quantity"`
}

// AddCategoryInput links a category to a recipe.
type AddCategoryInput struct {
	CategoryID int64 `json:"category_id" validate:"required"`
}

// RecipeUsecase defines the interface for recipe management operations,
// including the ingredient and category associations hanging off a recipe.
//
// Mutating operations take the acting user's ID so ownership can be
// enforced. A nil actor means no caller identity was presented; the
// operations that accept one treat it as an anonymous write.
type RecipeUsecase interface {
	ListRecipes(ctx context.Context) ([]*entity.Recipe, error)
	GetRecipe(ctx context.Context, id int64) (*entity.Recipe, error)
	CreateRecipe(ctx context.Context, input *CreateRecipeInput) (*entity.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, actorID *int64, input *UpdateRecipeInput) (*entity.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64, actorID *int64) error

	AddIngredient(ctx context.Context, recipeID int64, actorID int64, input *AddIngredientInput) error
	RemoveIngredient(ctx context.Context, recipeID int64, actorID int64, ingredientID int64) error

	AddCategory(ctx context.Context, recipeID int64, actorID int64, input *AddCategoryInput) error
	RemoveCategory(ctx context.Context, recipeID int64, actorID int64, categoryID int64) error

	// ShareQR renders a QR code PNG pointing at the recipe's public page.
	ShareQR(ctx context.Context, recipeID int64) ([]byte, error)
}
