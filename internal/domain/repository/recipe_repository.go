package repository

import (
	"context"
	"errors"

	"recipehub/internal/domain/entity"
)

// Domain-specific errors for recipe persistence.
var (
	// ErrRecipeNotFound is returned when a recipe is not found.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrNotAssociated is returned when detaching an association that does not exist.
	ErrNotAssociated = errors.New("association not found")
)

// RecipeRepository defines the standard operations for recipe persistence,
// including the recipe-ingredient and recipe-category join rows.
type RecipeRepository interface {
	// FindAll retrieves every recipe, ordered by id.
	FindAll(ctx context.Context) ([]*entity.Recipe, error)

	// FindByID retrieves a single recipe by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// FindByUser retrieves all recipes owned by the given user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Recipe, error)

	// Create persists a new recipe.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update modifies an existing recipe.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// Delete removes a recipe by ID, along with its join rows.
	Delete(ctx context.Context, id int64) error

	// AttachIngredient creates a recipe-ingredient join row.
	AttachIngredient(ctx context.Context, link *entity.RecipeIngredient) error

	// DetachIngredient removes the join row for (recipeID, ingredientID).
	// Returns ErrNotAssociated when no such row exists.
	DetachIngredient(ctx context.Context, recipeID, ingredientID int64) error

	// AttachCategory creates a recipe-category join row.
	AttachCategory(ctx context.Context, link *entity.RecipeCategory) error

	// DetachCategory removes the join row for (recipeID, categoryID).
	// Returns ErrNotAssociated when no such row exists.
	DetachCategory(ctx context.Context, recipeID, categoryID int64) error
}
