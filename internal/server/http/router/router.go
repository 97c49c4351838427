package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/chlagouGhassen/pizza-petes/internal/server/http/handlers"
	"github.com/chlagouGhassen/pizza-petes/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PizzeriaFacade, accounts middleware.AccountSource, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	pizzas := api.Group("/pizzas")
	pizzas.GET("", catalogHandler.List)
	pizzas.GET("/:id", catalogHandler.Get)

	pizzasAdmin := pizzas.Group("")
	pizzasAdmin.Use(middleware.AuthRequired(facade), middleware.AdminRequired(accounts))
	pizzasAdmin.POST("", catalogHandler.Create)
	pizzasAdmin.PUT("/:id", catalogHandler.Update)
	pizzasAdmin.DELETE("/:id", catalogHandler.Delete)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/favorite", orderHandler.Favorite)
	orders.POST("/reorder-favorite", orderHandler.ReorderFavorite)
	orders.GET("/surprise", orderHandler.Surprise)
	orders.PUT("/:id/favorite", orderHandler.ToggleFavorite)

	return engine
}
