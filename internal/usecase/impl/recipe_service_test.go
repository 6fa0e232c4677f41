package impl

import (
	"context"
	"testing"

	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	mockRepo "recipehub/internal/mocks/repository"
	mockSvc "recipehub/internal/mocks/service"
	"recipehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recipeServiceFixtures holds all test dependencies for recipe service tests.
type recipeServiceFixtures struct {
	service        usecase.RecipeUsecase
	txManager      *mockRepo.MockTransactionManager
	recipeRepo     *mockRepo.MockRecipeRepository
	ingredientRepo *mockRepo.MockIngredientRepository
	categoryRepo   *mockRepo.MockCategoryRepository
	userRepo       *mockRepo.MockUserRepository
	qrService      *mockSvc.MockQRCodeService
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	ingredientRepo := mockRepo.NewMockIngredientRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	service := NewRecipeService(RecipeServiceParams{
		TxManager:      txManager,
		RecipeRepo:     recipeRepo,
		IngredientRepo: ingredientRepo,
		CategoryRepo:   categoryRepo,
		UserRepo:       userRepo,
		QRService:      qrService,
		Logger:         newDiscardLogger(),
	})

	return recipeServiceFixtures{
		service:        service,
		txManager:      txManager,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
		qrService:      qrService,
	}
}

func TestRecipeService_CreateRecipe_Success(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	input := &usecase.CreateRecipeInput{
		Title:   "Pancakes",
		Content: "Mix and fry.",
		UserID:  5,
	}

	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.User{ID: 5}, nil)
	fx.recipeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(ctx context.Context, recipe *entity.Recipe) {
			recipe.ID = 1
		}).
		Return(nil)

	recipe, err := fx.service.CreateRecipe(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), recipe.ID)
	assert.Equal(t, "Pancakes", recipe.Title)
	assert.Nil(t, recipe.CategoryID)
}

func TestRecipeService_CreateRecipe_UnknownOwner(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	recipe, err := fx.service.CreateRecipe(ctx, &usecase.CreateRecipeInput{Title: "x", UserID: 99})

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, recipe)
	fx.recipeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecipeService_UpdateRecipe_PartialUpdate(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	existing := &entity.Recipe{ID: 1, Title: "Pancakes", Content: "Mix and fry.", UserID: 5}

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(existing, nil)
	fx.recipeRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Recipe")).Return(nil)

	updated, err := fx.service.UpdateRecipe(ctx, 1, ptr(int64(5)), &usecase.UpdateRecipeInput{
		Title: ptr("Crepes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Crepes", updated.Title)
	// Untouched fields keep their values.
	assert.Equal(t, "Mix and fry.", updated.Content)
	assert.Equal(t, int64(5), updated.UserID)
}

func TestRecipeService_UpdateRecipe_NonOwnerRejected(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	existing := &entity.Recipe{ID: 1, Title: "Pancakes", UserID: 5}

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(existing, nil)

	_, err := fx.service.UpdateRecipe(ctx, 1, ptr(int64(6)), &usecase.UpdateRecipeInput{
		Title: ptr("Crepes"),
	})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	fx.recipeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// A write without a caller identity is not subject to the ownership check.
func TestRecipeService_UpdateRecipe_AnonymousAllowed(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	existing := &entity.Recipe{ID: 1, Title: "Pancakes", UserID: 5}

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(existing, nil)
	fx.recipeRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Recipe")).Return(nil)

	updated, err := fx.service.UpdateRecipe(ctx, 1, nil, &usecase.UpdateRecipeInput{
		Title: ptr("Crepes"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Crepes", updated.Title)
}

func TestRecipeService_DeleteRecipe_Success(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Recipe{ID: 1, UserID: 5}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txRecipeRepo := mockRepo.NewMockRecipeRepository(t)
			factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)
			txRecipeRepo.EXPECT().Delete(ctx, int64(1)).Return(nil)
			return fn(factory)
		})

	require.NoError(t, fx.service.DeleteRecipe(ctx, 1, ptr(int64(5))))
}

func TestRecipeService_AddIngredient_Success(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.ingredientRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Ingredient{ID: 2}, nil)
	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Recipe{ID: 1, UserID: 5}, nil)
	fx.recipeRepo.EXPECT().
		AttachIngredient(ctx, mock.AnythingOfType("*entity.RecipeIngredient")).
		Run(func(ctx context.Context, link *entity.RecipeIngredient) {
			assert.Equal(t, int64(1), link.RecipeID)
			assert.Equal(t, int64(2), link.IngredientID)
			assert.Equal(t, "2 cups", link.Quantity)
		}).
		Return(nil)

	err := fx.service.AddIngredient(ctx, 1, 5, &usecase.AddIngredientInput{
		IngredientID: 2,
		Quantity:     "2 cups",
	})

	require.NoError(t, err)
}

// A missing ingredient reports not-found before ownership is considered.
func TestRecipeService_AddIngredient_UnknownIngredient(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.ingredientRepo.EXPECT().FindByID(ctx, int64(2)).Return(nil, repository.ErrIngredientNotFound)

	err := fx.service.AddIngredient(ctx, 1, 6, &usecase.AddIngredientInput{IngredientID: 2})

	require.ErrorIs(t, err, domainerrors.ErrIngredientNotFound)
}

// A rejected attach leaves the associations untouched.
func TestRecipeService_AddIngredient_NonOwnerRejected(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.ingredientRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Ingredient{ID: 2}, nil)
	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Recipe{ID: 1, UserID: 5}, nil)

	err := fx.service.AddIngredient(ctx, 1, 6, &usecase.AddIngredientInput{IngredientID: 2})

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	fx.recipeRepo.AssertNotCalled(t, "AttachIngredient", mock.Anything, mock.Anything)
}

func TestRecipeService_RemoveIngredient_NotAssociated(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.ingredientRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Ingredient{ID: 2}, nil)
	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Recipe{ID: 1, UserID: 5}, nil)
	fx.recipeRepo.EXPECT().
		DetachIngredient(ctx, int64(1), int64(2)).
		Return(repository.ErrNotAssociated)

	err := fx.service.RemoveIngredient(ctx, 1, 5, 2)

	require.ErrorIs(t, err, domainerrors.ErrNotAssociated)
}

func TestRecipeService_AddCategory_Success(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Category{ID: 3}, nil)
	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Recipe{ID: 1, UserID: 5}, nil)
	fx.recipeRepo.EXPECT().
		AttachCategory(ctx, mock.AnythingOfType("*entity.RecipeCategory")).
		Return(nil)

	require.NoError(t, fx.service.AddCategory(ctx, 1, 5, &usecase.AddCategoryInput{CategoryID: 3}))
}

func TestRecipeService_RemoveCategory_NotAssociated(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.Category{ID: 3}, nil)
	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Recipe{ID: 1, UserID: 5}, nil)
	fx.recipeRepo.EXPECT().
		DetachCategory(ctx, int64(1), int64(3)).
		Return(repository.ErrNotAssociated)

	err := fx.service.RemoveCategory(ctx, 1, 5, 3)

	require.ErrorIs(t, err, domainerrors.ErrNotAssociated)
}

func TestRecipeService_ShareQR_Success(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Recipe{ID: 1}, nil)
	fx.qrService.EXPECT().GenerateShareQR(int64(1)).Return(png, nil)

	got, err := fx.service.ShareQR(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestRecipeService_ShareQR_UnknownRecipe(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(1)).Return(nil, repository.ErrRecipeNotFound)

	_, err := fx.service.ShareQR(ctx, 1)

	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	fx.qrService.AssertNotCalled(t, "GenerateShareQR", mock.Anything)
}
