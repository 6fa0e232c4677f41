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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service    usecase.UserUsecase
	userRepo   *mockRepo.MockUserRepository
	recipeRepo *mockRepo.MockRecipeRepository
	hasher     *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo:   userRepo,
		RecipeRepo: recipeRepo,
		Hasher:     hasher,
		Logger:     newDiscardLogger(),
	})

	return userServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		hasher:     hasher,
	}
}

func validCreateUserInput() *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		FirstName: "Alice",
		LastName:  "Baker",
		Email:     "alice@example.com",
		Password:  "longenough!",
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validCreateUserInput()

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, input.Email, user.Email)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.False(t, user.Admin)
}

func TestUserService_CreateUser_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CreateUserInput)
	}{
		{"empty first name", func(in *usecase.CreateUserInput) { in.FirstName = "  " }},
		{"empty email", func(in *usecase.CreateUserInput) { in.Email = "" }},
		{"email without at sign", func(in *usecase.CreateUserInput) { in.Email = "alice.example.com" }},
		{"password too short", func(in *usecase.CreateUserInput) { in.Password = "ab!" }},
		{"password without special char", func(in *usecase.CreateUserInput) { in.Password = "longenough" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			input := validCreateUserInput()
			tt.mutate(input)

			user, err := fx.service.CreateUser(context.Background(), input)

			require.Error(t, err)
			assert.Nil(t, user)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestUserService_CreateUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := validCreateUserInput()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: 7, Email: input.Email}, nil)

	user, err := fx.service.CreateUser(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	assert.Nil(t, user)
	// No hash and no insert may happen once the conflict is detected.
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, 42)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_UpdateUser_PartialUpdate(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{
		ID:           5,
		FirstName:    "Alice",
		LastName:     "Baker",
		Email:        "alice@example.com",
		PasswordHash: "old_hash",
	}
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.UpdateUser(ctx, 5, &usecase.UpdateUserInput{
		LastName: ptr("Cook"),
	})

	require.NoError(t, err)
	// Only the supplied field changes.
	assert.Equal(t, "Cook", updated.LastName)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "old_hash", updated.PasswordHash)
}

func TestUserService_UpdateUser_PasswordRehashed(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 5, FirstName: "Alice", Email: "alice@example.com", PasswordHash: "old_hash"}
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)
	fx.hasher.EXPECT().Hash("newsecret!").Return("new_hash", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.UpdateUser(ctx, 5, &usecase.UpdateUserInput{
		Password: ptr("newsecret!"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new_hash", updated.PasswordHash)
}

func TestUserService_UpdateUser_RejectsWeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	existing := &entity.User{ID: 5, FirstName: "Alice", Email: "alice@example.com"}
	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)

	_, err := fx.service.UpdateUser(ctx, 5, &usecase.UpdateUserInput{
		Password: ptr("weak"),
	})

	require.Error(t, err)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().Delete(ctx, int64(42)).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, 42)

	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUserRecipes_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.User{ID: 5}, nil)
	fx.recipeRepo.EXPECT().
		FindByUser(ctx, int64(5)).
		Return([]*entity.Recipe{{ID: 1, UserID: 5}, {ID: 2, UserID: 5}}, nil)

	recipes, err := fx.service.ListUserRecipes(ctx, 5, 5)

	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestUserService_ListUserRecipes_OtherUserRejected(t *testing.T) {
	fx := createTestUserService(t)

	recipes, err := fx.service.ListUserRecipes(context.Background(), 5, 6)

	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Nil(t, recipes)
	fx.recipeRepo.AssertNotCalled(t, "FindByUser", mock.Anything, mock.Anything)
}
