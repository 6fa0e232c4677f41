// Command seed resets the database schema and fills it with demo data so a
// fresh environment has something to browse.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"recipehub/config"
	"recipehub/internal/infra/persistence/model"

	"github.com/brianvoe/gofakeit/v7"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	userCount             = 50
	recipeCount           = 100
	recipeIngredientCount = 200
	recipeCategoryCount   = 150

	// Every seeded account gets the same password for easy manual testing.
	seedPassword = "longenough!"
)

var ingredientNames = []string{
	"Eggs", "Milk", "Flour", "Sugar", "Butter",
	"Baking Powder", "Salt", "Vanilla Extract", "Chocolate", "Yeast",
}

var categoryNames = []string{
	"Dessert", "Main Course", "Appetizer", "Beverage", "Snack",
	"Breakfast", "Lunch", "Dinner", "Brunch", "Salad",
}

var quantityUnits = []string{"cups", "tablespoons", "teaspoons", "pieces"}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seed(db, logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding complete",
		slog.Int("users", userCount),
		slog.Int("recipes", recipeCount),
		slog.Int("ingredients", len(ingredientNames)),
		slog.Int("categories", len(categoryNames)))
}

func seed(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.SessionModel{},
		&model.IngredientModel{},
		&model.CategoryModel{},
		&model.RecipeModel{},
		&model.RecipeIngredientModel{},
		&model.RecipeCategoryModel{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	if err := wipe(db); err != nil {
		return err
	}

	users, err := seedUsers(db)
	if err != nil {
		return err
	}
	logger.Info("Seeded users", slog.Int("count", len(users)))

	ingredients, err := seedIngredients(db)
	if err != nil {
		return err
	}

	categories, err := seedCategories(db)
	if err != nil {
		return err
	}

	recipes, err := seedRecipes(db, users, categories)
	if err != nil {
		return err
	}
	logger.Info("Seeded recipes", slog.Int("count", len(recipes)))

	if err := seedRecipeIngredients(db, recipes, ingredients); err != nil {
		return err
	}

	return seedRecipeCategories(db, recipes, categories)
}

// wipe clears existing rows, children before parents.
func wipe(db *gorm.DB) error {
	tables := []string{
		"sessions",
		"recipe_ingredients",
		"recipe_categories",
		"recipes",
		"ingredients",
		"categories",
		"users",
	}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}

	return nil
}

func seedUsers(db *gorm.DB) ([]model.UserModel, error) {
	// One hash shared across all seed users keeps seeding fast.
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]model.UserModel, 0, userCount)
	for i := 0; i < userCount; i++ {
		users = append(users, model.UserModel{
			FirstName:    gofakeit.FirstName(),
			LastName:     gofakeit.LastName(),
			Email:        fmt.Sprintf("%s%d@example.com", gofakeit.Username(), i),
			PasswordHash: string(hash),
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	return users, nil
}

func seedIngredients(db *gorm.DB) ([]model.IngredientModel, error) {
	ingredients := make([]model.IngredientModel, 0, len(ingredientNames))
	for _, name := range ingredientNames {
		ingredients = append(ingredients, model.IngredientModel{Name: name})
	}
	if err := db.Create(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("seed ingredients: %w", err)
	}

	return ingredients, nil
}

func seedCategories(db *gorm.DB) ([]model.CategoryModel, error) {
	categories := make([]model.CategoryModel, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, model.CategoryModel{Name: name})
	}
	if err := db.Create(&categories).Error; err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	return categories, nil
}

func seedRecipes(db *gorm.DB, users []model.UserModel, categories []model.CategoryModel) ([]model.RecipeModel, error) {
	recipes := make([]model.RecipeModel, 0, recipeCount)
	for i := 0; i < recipeCount; i++ {
		recipe := model.RecipeModel{
			Title:   gofakeit.Dinner(),
			Content: gofakeit.Paragraph(1, 3, 12, " "),
			UserID:  users[rand.Intn(len(users))].ID,
		}
		// Roughly half of the recipes carry a primary category.
		if rand.Intn(2) == 0 {
			categoryID := categories[rand.Intn(len(categories))].ID
			recipe.CategoryID = &categoryID
		}
		recipes = append(recipes, recipe)
	}
	if err := db.Create(&recipes).Error; err != nil {
		return nil, fmt.Errorf("seed recipes: %w", err)
	}

	return recipes, nil
}

func seedRecipeIngredients(db *gorm.DB, recipes []model.RecipeModel, ingredients []model.IngredientModel) error {
	type pair struct{ recipe, ingredient int64 }
	seen := make(map[pair]bool, recipeIngredientCount)

	links := make([]model.RecipeIngredientModel, 0, recipeIngredientCount)
	for len(links) < recipeIngredientCount {
		p := pair{
			recipe:     recipes[rand.Intn(len(recipes))].ID,
			ingredient: ingredients[rand.Intn(len(ingredients))].ID,
		}
		if seen[p] {
			continue
		}
		seen[p] = true

		links = append(links, model.RecipeIngredientModel{
			RecipeID:     p.recipe,
			IngredientID: p.ingredient,
			Quantity:     fmt.Sprintf("%d %s", 1+rand.Intn(5), quantityUnits[rand.Intn(len(quantityUnits))]),
		})
	}
	if err := db.Create(&links).Error; err != nil {
		return fmt.Errorf("seed recipe ingredients: %w", err)
	}

	return nil
}

func seedRecipeCategories(db *gorm.DB, recipes []model.RecipeModel, categories []model.CategoryModel) error {
	type pair struct{ recipe, category int64 }
	seen := make(map[pair]bool, recipeCategoryCount)

	links := make([]model.RecipeCategoryModel, 0, recipeCategoryCount)
	for len(links) < recipeCategoryCount {
		p := pair{
			recipe:   recipes[rand.Intn(len(recipes))].ID,
			category: categories[rand.Intn(len(categories))].ID,
		}
		if seen[p] {
			continue
		}
		seen[p] = true

		links = append(links, model.RecipeCategoryModel{
			RecipeID:   p.recipe,
			CategoryID: p.category,
		})
	}
	if err := db.Create(&links).Error; err != nil {
		return fmt.Errorf("seed recipe categories: %w", err)
	}

	return nil
}
