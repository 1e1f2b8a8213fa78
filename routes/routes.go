package routes

import (
	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup wires stores, the access-control guard and all handlers onto the
// engine under /api.
func Setup(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	users := store.NewUsers(db)
	recipes := store.NewRecipes(db)
	orders := store.NewOrders(db)

	tokens := auth.NewTokenIssuer(config.JWTSecret(), config.TokenTTL())
	guard := auth.NewGuard(tokens, users)

	authHandler := &handlers.Auth{Users: users, Tokens: tokens, Log: log}
	userHandler := &handlers.Users{Users: users, Log: log}
	restaurantHandler := &handlers.Restaurants{Users: users, Log: log}
	recipeHandler := &handlers.Recipes{Recipes: recipes, Log: log}
	orderHandler := &handlers.Orders{Orders: orders, Recipes: recipes, Log: log}

	authed := middleware.AuthRequired(guard)
	admin := middleware.RoleRequired(guard, models.RoleAdmin)
	restaurant := middleware.RoleRequired(guard, models.RoleRestaurant)
	customer := middleware.RoleRequired(guard, models.RoleCustomer)

	api := r.Group("/api")

	// Authentication
	api.POST("/login", authHandler.Login)
	api.POST("/register", authHandler.Register)

	// State machine info
	api.GET("/state-machine", handlers.GetStateMachineInfo)

	// Users
	api.GET("/users", authed, admin, userHandler.List)
	api.GET("/users/@me", authed, userHandler.Me)

	// Restaurants
	api.GET("/restaurants", authed, admin, restaurantHandler.List)
	api.POST("/restaurants", authed, admin, restaurantHandler.Create)
	api.PATCH("/restaurants/:id", authed, restaurant, restaurantHandler.Update)
	api.DELETE("/restaurants/:id", authed, admin, restaurantHandler.Delete)

	// Recipes
	api.GET("/recipes", authed, restaurant, recipeHandler.List)
	api.GET("/recipes/:id", authed, restaurant, recipeHandler.Get)
	api.POST("/recipes", authed, restaurant, recipeHandler.Create)
	api.PATCH("/recipes/:id", authed, restaurant, recipeHandler.Update)

	// Orders
	api.GET("/orders", authed, restaurant, orderHandler.List)
	api.POST("/orders", authed, customer, orderHandler.Create)
	api.PATCH("/orders/:id", authed, restaurant, orderHandler.Cancel)
}
