// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recipehub/internal/delivery/http/middleware"
	"recipehub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	RecipeHandler     *handler.RecipeHandler
	IngredientHandler *handler.IngredientHandler
	CategoryHandler   *handler.CategoryHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	recipeHandler     *handler.RecipeHandler
	ingredientHandler *handler.IngredientHandler
	categoryHandler   *handler.CategoryHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		recipeHandler:     params.RecipeHandler,
		ingredientHandler: params.IngredientHandler,
		categoryHandler:   params.CategoryHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session lifecycle
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)
	e.GET("/authorized", r.authHandler.Authorized, r.authMiddleware.Authenticate)
	e.DELETE("/logout", r.authHandler.Logout, r.authMiddleware.HashOnly)

	// Users
	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.POST("", r.userHandler.Create)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.PUT("/:id", r.userHandler.Update)
		userGroup.DELETE("/:id", r.userHandler.Delete)
		userGroup.GET("/:id/recipes", r.userHandler.ListRecipes, r.authMiddleware.Authenticate)
	}

	// Recipes and their associations
	recipeGroup := e.Group("/recipes")
	{
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.POST("", r.recipeHandler.Create)
		recipeGroup.GET("/:id", r.recipeHandler.Get)
		recipeGroup.GET("/:id/share", r.recipeHandler.Share)
		recipeGroup.PUT("/:id", r.recipeHandler.Update, r.authMiddleware.OptionalAuthenticate)
		recipeGroup.DELETE("/:id", r.recipeHandler.Delete, r.authMiddleware.OptionalAuthenticate)

		recipeGroup.POST("/:recipe_id/ingredients", r.recipeHandler.AddIngredient, r.authMiddleware.Authenticate)
		recipeGroup.DELETE("/:recipe_id/ingredients", r.recipeHandler.RemoveIngredient, r.authMiddleware.Authenticate)
		recipeGroup.POST("/:recipe_id/categories", r.recipeHandler.AddCategory, r.authMiddleware.Authenticate)
		recipeGroup.DELETE("/:recipe_id/categories", r.recipeHandler.RemoveCategory, r.authMiddleware.Authenticate)
	}

	// Ingredient catalog
	ingredientGroup := e.Group("/ingredients")
	{
		ingredientGroup.GET("", r.ingredientHandler.List)
		ingredientGroup.POST("", r.ingredientHandler.Create)
		ingredientGroup.GET("/:id", r.ingredientHandler.Get)
		ingredientGroup.PUT("/:id", r.ingredientHandler.Update)
		ingredientGroup.DELETE("/:id", r.ingredientHandler.Delete)
	}

	// Category catalog
	categoryGroup := e.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.POST("", r.categoryHandler.Create)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.PUT("/:id", r.categoryHandler.Update)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete)
	}
}
