package usecase

import (
	"context"

	"recipehub/internal/domain/entity"
)

// CreateUserInput defines the data required to create a user directly.
type CreateUserInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Admin     bool   `json:"admin"`
}

// UpdateUserInput carries a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// UserUsecase defines the interface for user management operations.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id int64, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) error

	// ListUserRecipes returns the recipes owned by the given user. The
	// requester may only list their own recipes.
	ListUserRecipes(ctx context.Context, id int64, requesterID int64) ([]*entity.Recipe, error)
}
