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

// ingredientRepository implements the repository.IngredientRepository interface using GORM.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (repo *ingredientRepository) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&ingredientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients, nil
}

func (repo *ingredientRepository) FindByID(ctx context.Context, id int64) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ingredientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by id")
	}

	return toIngredientDomain(&ingredientM), nil
}

func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)

	if err := repo.db.WithContext(ctx).Create(ingredientM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create ingredient")
	}

	ingredient.ID = ingredientM.ID
	ingredient.CreatedAt = ingredientM.CreatedAt
	ingredient.UpdatedAt = ingredientM.UpdatedAt

	return nil
}

func (repo *ingredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)

	if err := repo.db.WithContext(ctx).Save(ingredientM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update ingredient")
	}

	ingredient.UpdatedAt = ingredientM.UpdatedAt

	return nil
}

// Delete removes an ingredient by ID. Join rows referencing it are left in
// place, matching the documented orphaning behavior.
func (repo *ingredientRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.IngredientModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ingredient")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIngredientNotFound
	}

	return nil
}

func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	if data == nil {
		return nil
	}

	return &entity.Ingredient{
		ID:        data.ID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromIngredientDomain(data *entity.Ingredient) *model.IngredientModel {
	if data == nil {
		return nil
	}

	return &model.IngredientModel{
		ID:        data.ID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
