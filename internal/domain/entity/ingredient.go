package entity

import "time"

// Ingredient is a reusable pantry item referenced by any number of recipes.
type Ingredient struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Quantity  *string   `json:"quantity"` // Optional default quantity label.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category groups recipes, e.g. "Dessert" or "Main Course".
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
