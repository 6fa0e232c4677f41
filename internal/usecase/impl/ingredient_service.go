package impl

import (
	"context"

	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	"recipehub/internal/usecase"

	"github.com/pkg/errors"
)

// ingredientService implements the IngredientUsecase interface.
type ingredientService struct {
	ingredientRepo repository.IngredientRepository
}

// NewIngredientService is the constructor for ingredientService.
func NewIngredientService(ingredientRepo repository.IngredientRepository) usecase.IngredientUsecase {
	return &ingredientService{ingredientRepo: ingredientRepo}
}

func (srv *ingredientService) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	ingredients, err := srv.ingredientRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	return ingredients, nil
}

func (srv *ingredientService) GetIngredient(ctx context.Context, id int64) (*entity.Ingredient, error) {
	ingredient, err := srv.ingredientRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrIngredientNotFound) {
		return nil, domainerrors.ErrIngredientNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ingredient")
	}

	return ingredient, nil
}

func (srv *ingredientService) CreateIngredient(ctx context.Context, input *usecase.CreateIngredientInput) (*entity.Ingredient, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("ingredient name must not be empty")
	}

	ingredient := &entity.Ingredient{
		Name:     input.Name,
		Quantity: input.Quantity,
	}
	if err := srv.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, errors.Wrap(err, "failed to create ingredient")
	}

	return ingredient, nil
}

func (srv *ingredientService) UpdateIngredient(ctx context.Context, id int64, input *usecase.UpdateIngredientInput) (*entity.Ingredient, error) {
	ingredient, err := srv.GetIngredient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("ingredient name must not be empty")
		}
		ingredient.Name = *input.Name
	}
	if input.Quantity != nil {
		ingredient.Quantity = input.Quantity
	}

	if err := srv.ingredientRepo.Update(ctx, ingredient); err != nil {
		return nil, errors.Wrap(err, "failed to update ingredient")
	}

	return ingredient, nil
}

// DeleteIngredient removes an ingredient from the catalog. Any
// recipe-ingredient rows pointing at it are left for the recipe side
// to clean up.
func (srv *ingredientService) DeleteIngredient(ctx context.Context, id int64) error {
	err := srv.ingredientRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrIngredientNotFound) {
		return domainerrors.ErrIngredientNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete ingredient")
	}

	return nil
}
