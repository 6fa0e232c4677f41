package model

import "time"

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Title      string `gorm:"type:varchar(255);not null"`
	Content    string `gorm:"type:text"`
	UserID     int64  `gorm:"not null;index"`
	CategoryID *int64 `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID"`
	Categories  []RecipeCategoryModel   `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeIngredientModel mirrors the 'recipe_ingredients' join table.
// The composite index keeps attach/detach lookups cheap.
type RecipeIngredientModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	RecipeID     int64  `gorm:"not null;index:idx_recipe_ingredient,priority:1"`
	IngredientID int64  `gorm:"not null;index:idx_recipe_ingredient,priority:2"`
	Quantity     string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// RecipeCategoryModel mirrors the 'recipe_categories' join table.
type RecipeCategoryModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	RecipeID   int64 `gorm:"not null;index:idx_recipe_category,priority:1"`
	CategoryID int64 `gorm:"not null;index:idx_recipe_category,priority:2"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeCategoryModel) TableName() string {
	return "recipe_categories"
}
