package impl

import (
	"context"
	"log/slog"

	deliverycontext "recipehub/internal/delivery/context"
	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	"recipehub/internal/domain/service"
	"recipehub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager      repository.TransactionManager
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	categoryRepo   repository.CategoryRepository
	userRepo       repository.UserRepository
	qrService      service.QRCodeService
	logger         *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RecipeRepo     repository.RecipeRepository
	IngredientRepo repository.IngredientRepository
	CategoryRepo   repository.CategoryRepository
	UserRepo       repository.UserRepository
	QRService      service.QRCodeService
	Logger         *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:      params.TxManager,
		recipeRepo:     params.RecipeRepo,
		ingredientRepo: params.IngredientRepo,
		categoryRepo:   params.CategoryRepo,
		userRepo:       params.UserRepo,
		qrService:      params.QRService,
		logger:         params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// canModify is the single ownership predicate for recipe mutations.
// Every write path that enforces ownership goes through here.
func canModify(userID int64, recipe *entity.Recipe) bool {
	return recipe.UserID == userID
}

func (srv *recipeService) ListRecipes(ctx context.Context) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

func (srv *recipeService) GetRecipe(ctx context.Context, id int64) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return nil, domainerrors.ErrRecipeNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}

func (srv *recipeService) CreateRecipe(ctx context.Context, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "failed to find recipe owner")
	}

	if input.CategoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}
			return nil, errors.Wrap(err, "failed to find recipe category")
		}
	}

	recipe := &entity.Recipe{
		Title:      input.Title,
		Content:    input.Content,
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
	}
	if err := srv.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Info("Recipe created",
		slog.Int64("recipe_id", recipe.ID),
		slog.Int64("user_id", recipe.UserID))

	return recipe, nil
}

func (srv *recipeService) UpdateRecipe(ctx context.Context, id int64, actorID *int64, input *usecase.UpdateRecipeInput) (*entity.Recipe, error) {
	recipe, err := srv.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if actorID != nil && !canModify(*actorID, recipe) {
		return nil, domainerrors.ErrUnauthorized.WithDetails("only the recipe owner may modify it")
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Content != nil {
		recipe.Content = *input.Content
	}
	if input.CategoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound
			}
			return nil, errors.Wrap(err, "failed to find recipe category")
		}
		recipe.CategoryID = input.CategoryID
	}

	if err := srv.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, errors.Wrap(err, "failed to update recipe")
	}

	return recipe, nil
}

// DeleteRecipe removes a recipe and its association rows in one transaction.
func (srv *recipeService) DeleteRecipe(ctx context.Context, id int64, actorID *int64) error {
	recipe, err := srv.GetRecipe(ctx, id)
	if err != nil {
		return err
	}

	if actorID != nil && !canModify(*actorID, recipe) {
		return domainerrors.ErrUnauthorized.WithDetails("only the recipe owner may delete it")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewRecipeRepository().Delete(ctx, id)
	})
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return domainerrors.ErrRecipeNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete recipe")
	}

	srv.log(ctx).Info("Recipe deleted", slog.Int64("recipe_id", id))

	return nil
}

// AddIngredient links an ingredient to a recipe. Existence of both sides is
// checked before ownership, so a missing resource reports 404 rather than 401.
func (srv *recipeService) AddIngredient(ctx context.Context, recipeID int64, actorID int64, input *usecase.AddIngredientInput) error {
	recipe, err := srv.checkIngredientLink(ctx, recipeID, input.IngredientID)
	if err != nil {
		return err
	}
	if !canModify(actorID, recipe) {
		return domainerrors.ErrUnauthorized.WithDetails("only the recipe owner may modify its ingredients")
	}

	link := &entity.RecipeIngredient{
		RecipeID:     recipeID,
		IngredientID: input.IngredientID,
		Quantity:     input.Quantity,
	}
	if err := srv.recipeRepo.AttachIngredient(ctx, link); err != nil {
		return errors.Wrap(err, "failed to attach ingredient")
	}

	return nil
}

func (srv *recipeService) RemoveIngredient(ctx context.Context, recipeID int64, actorID int64, ingredientID int64) error {
	recipe, err := srv.checkIngredientLink(ctx, recipeID, ingredientID)
	if err != nil {
		return err
	}
	if !canModify(actorID, recipe) {
		return domainerrors.ErrUnauthorized.WithDetails("only the recipe owner may modify its ingredients")
	}

	err = srv.recipeRepo.DetachIngredient(ctx, recipeID, ingredientID)
	if errors.Is(err, repository.ErrNotAssociated) {
		return domainerrors.ErrNotAssociated.WithDetails("ingredient is not attached to this recipe")
	}
	if err != nil {
		return errors.Wrap(err, "failed to detach ingredient")
	}

	return nil
}

func (srv *recipeService) AddCategory(ctx context.Context, recipeID int64, actorID int64, input *usecase.AddCategoryInput) error {
	recipe, err := srv.checkCategoryLink(ctx, recipeID, input.CategoryID)
	if err != nil {
		return err
	}
	if !canModify(actorID, recipe) {
		return domainerrors.ErrUnauthorized.WithDetails("only the recipe owner may modify its categories")
	}

	link := &entity.RecipeCategory{
		RecipeID:   recipeID,
		CategoryID: input.CategoryID,
	}
	if err := srv.recipeRepo.AttachCategory(ctx, link); err != nil {
		return errors.Wrap(err, "failed to attach category")
	}

	return nil
}

func (srv *recipeService) RemoveCategory(ctx context.Context, recipeID int64, actorID int64, categoryID int64) error {
	recipe, err := srv.checkCategoryLink(ctx, recipeID, categoryID)
	if err != nil {
		return err
	}
	if !canModify(actorID, recipe) {
		return domainerrors.ErrUnauthorized.WithDetails("only the recipe owner may modify its categories")
	}

	err = srv.recipeRepo.DetachCategory(ctx, recipeID, categoryID)
	if errors.Is(err, repository.ErrNotAssociated) {
		return domainerrors.ErrNotAssociated.WithDetails("category is not attached to this recipe")
	}
	if err != nil {
		return errors.Wrap(err, "failed to detach category")
	}

	return nil
}

// ShareQR renders the recipe's share link as a PNG QR code.
func (srv *recipeService) ShareQR(ctx context.Context, recipeID int64) ([]byte, error) {
	if _, err := srv.GetRecipe(ctx, recipeID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateShareQR(recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share QR code")
	}

	return png, nil
}

// checkIngredientLink verifies both endpoints of a recipe-ingredient link
// exist, returning the recipe for the ownership check.
func (srv *recipeService) checkIngredientLink(ctx context.Context, recipeID, ingredientID int64) (*entity.Recipe, error) {
	if _, err := srv.ingredientRepo.FindByID(ctx, ingredientID); err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return nil, domainerrors.ErrIngredientNotFound
		}
		return nil, errors.Wrap(err, "failed to find ingredient")
	}

	return srv.GetRecipe(ctx, recipeID)
}

// checkCategoryLink verifies both endpoints of a recipe-category link exist.
func (srv *recipeService) checkCategoryLink(ctx context.Context, recipeID, categoryID int64) (*entity.Recipe, error) {
	if _, err := srv.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}
		return nil, errors.Wrap(err, "failed to find category")
	}

	return srv.GetRecipe(ctx, recipeID)
}
