package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "recipehub/internal/delivery/context"
	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	"recipehub/internal/domain/service"
	"recipehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a new non-admin account and logs it in atomically:
// either the user row and its session row both exist afterwards, or neither does.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if err := validateFirstName(input.FirstName); err != nil {
		return nil, err
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
	}

	var token *service.SessionToken
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		token, err = srv.tokenService.Issue(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to issue session token")
		}

		return repoFactory.NewSessionRepository().Create(ctx, srv.buildSession(user.ID, token))
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.Int64("user_id", user.ID))

	return &usecase.AuthOutput{User: user, Token: token.Token, ExpiresAt: token.ExpiresAt}, nil
}

// Login verifies credentials and opens a session. An unknown email and a
// wrong password produce the same error on purpose.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	if err := srv.sessionRepo.Create(ctx, srv.buildSession(user.ID, token)); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.log(ctx).Info("User logged in", slog.Int64("user_id", user.ID))

	return &usecase.AuthOutput{User: user, Token: token.Token, ExpiresAt: token.ExpiresAt}, nil
}

// CurrentUser resolves a presented token hash to its user. A missing or
// expired session yields ErrSessionInvalid, never a user-not-found error.
func (srv *authService) CurrentUser(ctx context.Context, tokenHash string) (*entity.User, error) {
	session, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrSessionInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up session")
	}

	if session.Expired(time.Now()) {
		return nil, domainerrors.ErrSessionInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrSessionInvalid
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up session user")
	}

	return user, nil
}

// Logout removes the session for the given token hash. A session that is
// already gone counts as a successful logout.
func (srv *authService) Logout(ctx context.Context, tokenHash string) error {
	err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash)
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

func (srv *authService) buildSession(userID int64, token *service.SessionToken) *entity.Session {
	return &entity.Session{
		ID:        token.ID,
		UserID:    userID,
		TokenHash: token.Hash,
		ExpiresAt: token.ExpiresAt,
	}
}
