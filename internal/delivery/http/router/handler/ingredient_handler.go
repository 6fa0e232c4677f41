package handler

import (
	"net/http"

	"recipehub/internal/delivery/http/response"
	"recipehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IngredientHandler holds dependencies for ingredient catalog handlers.
type IngredientHandler struct {
	uc usecase.IngredientUsecase
}

// NewIngredientHandler is the constructor for IngredientHandler, injected by Fx.
func NewIngredientHandler(uc usecase.IngredientUsecase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// List returns every ingredient.
func (h *IngredientHandler) List(c echo.Context) error {
	ingredients, err := h.uc.ListIngredients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ingredients, "")
}

// Get returns a single ingredient by id.
func (h *IngredientHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ingredient, err := h.uc.GetIngredient(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ingredient, "")
}

// Create adds an ingredient to the catalog.
func (h *IngredientHandler) Create(c echo.Context) error {
	var input usecase.CreateIngredientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	ingredient, err := h.uc.CreateIngredient(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ingredient, "Ingredient created successfully")
}

// Update applies a partial update to an ingredient.
func (h *IngredientHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateIngredientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}

	ingredient, err := h.uc.UpdateIngredient(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ingredient, "Ingredient updated successfully")
}

// Delete removes an ingredient from the catalog.
func (h *IngredientHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteIngredient(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}
