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

func TestCategoryService_CreateCategory_Success(t *testing.T) {
	repo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(repo)
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(ctx context.Context, category *entity.Category) {
			category.ID = 1
		}).
		Return(nil)

	category, err := service.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Dessert"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), category.ID)
	assert.Equal(t, "Dessert", category.Name)
}

func TestCategoryService_CreateCategory_EmptyName(t *testing.T) {
	service := NewCategoryService(mockRepo.NewMockCategoryRepository(t))

	_, err := service.CreateCategory(context.Background(), &usecase.CreateCategoryInput{})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_UpdateCategory_Rename(t *testing.T) {
	repo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(repo)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Category{ID: 1, Name: "Dessert"}, nil)
	repo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	updated, err := service.UpdateCategory(ctx, 1, &usecase.UpdateCategoryInput{Name: ptr("Pastry")})

	require.NoError(t, err)
	assert.Equal(t, "Pastry", updated.Name)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	repo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(repo)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrCategoryNotFound)

	_, err := service.GetCategory(ctx, 9)

	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
