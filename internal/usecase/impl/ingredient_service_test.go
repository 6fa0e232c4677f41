package impl

import (
	"context"
	"testing"

	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	mockRepo "recipehub/internal/mocks/repository"
	"recipehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIngredientService_CreateIngredient_Success(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	service := NewIngredientService(repo)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Ingredient")).
		Run(func(ctx context.Context, ingredient *entity.Ingredient) {
			ingredient.ID = 1
		}).
		Return(nil)

	ingredient, err := service.CreateIngredient(ctx, &usecase.CreateIngredientInput{Name: "Flour"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), ingredient.ID)
	assert.Equal(t, "Flour", ingredient.Name)
}

func TestIngredientService_CreateIngredient_EmptyName(t *testing.T) {
	service := NewIngredientService(mockRepo.NewMockIngredientRepository(t))

	_, err := service.CreateIngredient(context.Background(), &usecase.CreateIngredientInput{})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestIngredientService_UpdateIngredient_PartialUpdate(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	service := NewIngredientService(repo)
	ctx := context.Background()

	existing := &entity.Ingredient{ID: 1, Name: "Flour", Quantity: ptr("1 cup")}
	repo.EXPECT().FindByID(ctx, int64(1)).Return(existing, nil)
	repo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Ingredient")).Return(nil)

	updated, err := service.UpdateIngredient(ctx, 1, &usecase.UpdateIngredientInput{
		Quantity: ptr("2 cups"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Flour", updated.Name)
	assert.Equal(t, "2 cups", *updated.Quantity)
}

func TestIngredientService_GetIngredient_NotFound(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	service := NewIngredientService(repo)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrIngredientNotFound)

	_, err := service.GetIngredient(ctx, 9)

	require.ErrorIs(t, err, domainerrors.ErrIngredientNotFound)
}

func TestIngredientService_DeleteIngredient_NotFound(t *testing.T) {
	repo := mockRepo.NewMockIngredientRepository(t)
	service := NewIngredientService(repo)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, int64(9)).Return(repository.ErrIngredientNotFound)

	err := service.DeleteIngredient(ctx, 9)

	require.ErrorIs(t, err, domainerrors.ErrIngredientNotFound)
}
