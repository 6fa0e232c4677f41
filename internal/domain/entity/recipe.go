package entity

import "time"

// Recipe belongs to exactly one User (the owner). Ingredients and categories
// are linked through the join entities below; the recipe itself only carries
// foreign keys, so serializing it can never expand into nested cycles.
type Recipe struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"` // Free-form description / instructions.
	UserID     int64     `json:"user_id"`
	CategoryID *int64    `json:"category_id"` // Optional primary category.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RecipeIngredient records "this recipe uses this ingredient in this amount".
type RecipeIngredient struct {
	ID           int64     `json:"id"`
	RecipeID     int64     `json:"recipe_id"`
	IngredientID int64     `json:"ingredient_id"`
	Quantity     string    `json:"quantity"` // Amount label, e.g. "2 cups".
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecipeCategory records "this recipe belongs to this category".
type RecipeCategory struct {
	ID         int64     `json:"id"`
	RecipeID   int64     `json:"recipe_id"`
	CategoryID int64     `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
