package routes

import (
	"net/http"

	"share-meal-api-server/internal/api/handlers"
	"share-meal-api-server/internal/api/middleware"
	"share-meal-api-server/internal/auth"
	"share-meal-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the handlers to the route table. Exactly two routes sit
// behind the token gate; everything else is public.
func SetupRouter(st *store.Store, verifier *auth.Verifier) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(cors.Default())

	foodHandler := &handlers.FoodHandler{Store: st}
	requestHandler := &handlers.RequestHandler{Store: st}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Share Meal Server is Running...!")
	})

	// Food listings
	router.GET("/foods", foodHandler.GetFeaturedFoods)
	router.GET("/available-foods", foodHandler.GetAvailableFoods)
	router.POST("/foods", foodHandler.CreateFood)
	router.GET("/foods/:id", foodHandler.GetFoodByID)
	router.PUT("/foods/:id", foodHandler.UpdateFood)
	router.DELETE("/foods/:id", foodHandler.DeleteFood)
	router.GET("/search", foodHandler.SearchFoods)
	router.GET("/manage-foods", middleware.VerifyToken(verifier), foodHandler.ManageFoods)

	// Food requests. The route spelling is part of the public surface.
	router.POST("/requiests/:id", requestHandler.CreateRequest)
	router.GET("/my-requests", middleware.VerifyToken(verifier), requestHandler.MyRequests)

	return router
}
