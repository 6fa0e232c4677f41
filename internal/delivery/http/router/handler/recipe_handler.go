package handler

import (
	"log/slog"
	"net/http"

	"recipehub/internal/delivery/http/middleware"
	"recipehub/internal/delivery/http/response"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{uc: uc, logger: logger}
}

// List returns every recipe.
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.uc.ListRecipes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "")
}

// Get returns a single recipe by id.
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "")
}

// Create publishes a new recipe.
func (h *RecipeHandler) Create(c echo.Context) error {
	var input usecase.CreateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// Update applies a partial update. When the caller presented a token, only
// the owner may update.
func (h *RecipeHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}

	recipe, err := h.uc.UpdateRecipe(c.Request().Context(), id, actorID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}

// Delete removes a recipe and its association rows.
func (h *RecipeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), id, actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// AddIngredient attaches an ingredient to the recipe.
func (h *RecipeHandler) AddIngredient(c echo.Context) error {
	recipeID, err := pathID(c, "recipe_id")
	if err != nil {
		return err
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	var input usecase.AddIngredientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient association input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.AddIngredient(c.Request().Context(), recipeID, userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ingredient added to recipe")
}

// RemoveIngredient detaches an ingredient from the recipe.
func (h *RecipeHandler) RemoveIngredient(c echo.Context) error {
	recipeID, err := pathID(c, "recipe_id")
	if err != nil {
		return err
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	var input struct {
		IngredientID int64 `json:"ingredient_id" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient association input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.RemoveIngredient(c.Request().Context(), recipeID, userID, input.IngredientID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Ingredient removed from recipe")
}

// AddCategory attaches a category to the recipe.
func (h *RecipeHandler) AddCategory(c echo.Context) error {
	recipeID, err := pathID(c, "recipe_id")
	if err != nil {
		return err
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	var input usecase.AddCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category association input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.AddCategory(c.Request().Context(), recipeID, userID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category added to recipe")
}

// RemoveCategory detaches a category from the recipe.
func (h *RecipeHandler) RemoveCategory(c echo.Context) error {
	recipeID, err := pathID(c, "recipe_id")
	if err != nil {
		return err
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	var input struct {
		CategoryID int64 `json:"category_id" validate:"required"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category association input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.RemoveCategory(c.Request().Context(), recipeID, userID, input.CategoryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category removed from recipe")
}

// Share renders the recipe's share link as a QR code PNG.
func (h *RecipeHandler) Share(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// actorID returns the caller identity when one was resolved, or nil for
// anonymous requests.
func actorID(c echo.Context) *int64 {
	if id, ok := middleware.UserID(c); ok {
		return &id
	}

	return nil
}
