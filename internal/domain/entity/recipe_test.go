package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	return m
}

func TestRecipeSerialization_OmitsBackReferences(t *testing.T) {
	categoryID := int64(3)
	recipe := &Recipe{
		ID:         1,
		Title:      "Pancakes",
		Content:    "Mix and fry.",
		UserID:     7,
		CategoryID: &categoryID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	m := marshalToMap(t, recipe)

	assert.Contains(t, m, "title")
	assert.Contains(t, m, "user_id")
	assert.NotContains(t, m, "user")
	assert.NotContains(t, m, "recipe_ingredients")
	assert.NotContains(t, m, "recipe_category")
}

func TestRecipeSerialization_NullableCategory(t *testing.T) {
	m := marshalToMap(t, &Recipe{ID: 1, Title: "Toast", UserID: 2})

	require.Contains(t, m, "category_id")
	assert.Nil(t, m["category_id"])
}

func TestUserSerialization_NeverExposesPasswordHash(t *testing.T) {
	user := &User{
		ID:           5,
		FirstName:    "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$12$secret",
	}

	m := marshalToMap(t, user)

	assert.NotContains(t, m, "password_hash")
	assert.NotContains(t, m, "PasswordHash")
	assert.NotContains(t, m, "recipes")
	assert.Equal(t, "ada@example.com", m["email"])
}
