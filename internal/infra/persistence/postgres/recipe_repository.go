package postgres

import (
	"context"

	"recipehub/internal/domain/entity"
	domainerrors "recipehub/internal/domain/errors"
	"recipehub/internal/domain/repository"
	"recipehub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements the repository.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// FindAll retrieves every recipe ordered by id.
func (repo *recipeRepository) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// FindByID retrieves a single recipe by its unique ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id int64) (*entity.Recipe, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindByUser retrieves all recipes owned by the given user, newest first.
func (repo *recipeRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by user")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// Create persists a new recipe.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// Update modifies an existing recipe.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Save(recipeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update recipe")
	}

	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// Delete removes a recipe and its join rows.
// Callers run this through the transaction manager so the three deletes are atomic.
func (repo *recipeRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Delete(&model.RecipeIngredientModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete recipe ingredient links")
	}

	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Delete(&model.RecipeCategoryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete recipe category links")
	}

	result := repo.db.WithContext(ctx).Delete(&model.RecipeModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// AttachIngredient creates a recipe-ingredient join row.
func (repo *recipeRepository) AttachIngredient(ctx context.Context, link *entity.RecipeIngredient) error {
	linkM := &model.RecipeIngredientModel{
		RecipeID:     link.RecipeID,
		IngredientID: link.IngredientID,
		Quantity:     link.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach ingredient")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// DetachIngredient removes the join row for (recipeID, ingredientID).
func (repo *recipeRepository) DetachIngredient(ctx context.Context, recipeID, ingredientID int64) error {
	result := repo.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&model.RecipeIngredientModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to detach ingredient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotAssociated
	}

	return nil
}

// AttachCategory creates a recipe-category join row.
func (repo *recipeRepository) AttachCategory(ctx context.Context, link *entity.RecipeCategory) error {
	linkM := &model.RecipeCategoryModel{
		RecipeID:   link.RecipeID,
		CategoryID: link.CategoryID,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach category")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// DetachCategory removes the join row for (recipeID, categoryID).
func (repo *recipeRepository) DetachCategory(ctx context.Context, recipeID, categoryID int64) error {
	result := repo.db.WithContext(ctx).
		Where("recipe_id = ? AND category_id = ?", recipeID, categoryID).
		Delete(&model.RecipeCategoryModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to detach category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotAssociated
	}

	return nil
}

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel for persistence.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
