package impl

import (
	"context"
	"testing"
	"time"

	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	"recipehub/internal/domain/service"
	mockRepo "recipehub/internal/mocks/repository"
	mockSvc "recipehub/internal/mocks/service"
	"recipehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newTestToken(t *testing.T) *service.SessionToken {
	t.Helper()
	return &service.SessionToken{
		Token:     "signed.jwt.token",
		ID:        uuid.New(),
		Hash:      "token_hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{
		FirstName: "Alice",
		LastName:  "Baker",
		Email:     "alice@example.com",
		Password:  "longenough!",
	}
	token := newTestToken(t)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.tokenService.EXPECT().Issue(int64(1)).Return(token, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txSessionRepo := mockRepo.NewMockSessionRepository(t)

			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			factory.EXPECT().NewSessionRepository().Return(txSessionRepo)

			txUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)
			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 1
				}).
				Return(nil)
			txSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(ctx context.Context, session *entity.Session) {
					assert.Equal(t, int64(1), session.UserID)
					assert.Equal(t, token.ID, session.ID)
					assert.Equal(t, token.Hash, session.TokenHash)
				}).
				Return(nil)

			return fn(factory)
		})

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, token.Token, output.Token)
	assert.Equal(t, input.Email, output.User.Email)
	assert.False(t, output.User.Admin)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := &usecase.SignupInput{
		FirstName: "Alice",
		Email:     "alice@example.com",
		Password:  "longenough!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().NewUserRepository().Return(txUserRepo)
			txUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: 7, Email: input.Email}, nil)

			return fn(factory)
		})

	output, err := fx.service.Signup(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	assert.Nil(t, output)
}

func TestAuthService_Signup_RejectsInvalidInput(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		FirstName: "Alice",
		Email:     "not-an-email",
		Password:  "longenough!",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.User{ID: 3, Email: "alice@example.com", PasswordHash: "hashed_password"}
	token := newTestToken(t)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("longenough!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Issue(user.ID).Return(token, nil)
	fx.sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "longenough!"})

	require.NoError(t, err)
	assert.Equal(t, token.Token, output.Token)
	assert.Equal(t, user, output.User)
}

// An unknown email and a wrong password are indistinguishable to the caller.
func TestAuthService_Login_UndifferentiatedFailure(t *testing.T) {
	ctx := context.Background()

	fx := createTestAuthService(t)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "missing@example.com").
		Return(nil, repository.ErrUserNotFound)
	_, errUnknown := fx.service.Login(ctx, &usecase.LoginInput{Email: "missing@example.com", Password: "whatever!"})

	fx2 := createTestAuthService(t)
	fx2.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: 3, Email: "alice@example.com", PasswordHash: "hashed_password"}, nil)
	fx2.hasher.EXPECT().Check("wrong!", "hashed_password").Return(false)
	_, errWrongPassword := fx2.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong!"})

	require.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPassword, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPassword.Error())
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    3,
		TokenHash: "token_hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.sessionRepo.EXPECT().FindByTokenHash(ctx, "token_hash").Return(session, nil)
	fx.userRepo.EXPECT().FindByID(ctx, int64(3)).Return(&entity.User{ID: 3}, nil)

	user, err := fx.service.CurrentUser(ctx, "token_hash")

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

func TestAuthService_CurrentUser_ExpiredSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    3,
		TokenHash: "token_hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.sessionRepo.EXPECT().FindByTokenHash(ctx, "token_hash").Return(session, nil)

	user, err := fx.service.CurrentUser(ctx, "token_hash")

	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	assert.Nil(t, user)
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthService_CurrentUser_UnknownSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "token_hash").
		Return(nil, repository.ErrSessionNotFound)

	_, err := fx.service.CurrentUser(ctx, "token_hash")

	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token_hash").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, "token_hash"))
}

// Logging out a session that is already gone still succeeds.
func TestAuthService_Logout_MissingSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, "token_hash").
		Return(repository.ErrSessionNotFound)

	require.NoError(t, fx.service.Logout(ctx, "token_hash"))
}
