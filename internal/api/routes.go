package api

import (
	"net/http"

	"recomptracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the handlers onto the router. Everything under the
// protected group requires a valid bearer token; the middleware puts
// the authenticated user id into the request context.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	trackerService service.TrackerService,
	progressService service.ProgressService,
) {
	authHandler := NewAuthHandler(authService)
	trackerHandler := NewTrackerHandler(trackerService)
	progressHandler := NewProgressHandler(progressService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

		workouts := protected.Group("/workouts")
		{
			workouts.POST("", trackerHandler.LogWorkout)
			workouts.GET("", progressHandler.ListWorkouts)
		}

		meals := protected.Group("/meals")
		{
			meals.POST("", trackerHandler.LogMeal)
			meals.GET("/daily-totals", progressHandler.DailyMacroTotals)
		}

		measurements := protected.Group("/measurements")
		{
			measurements.POST("", trackerHandler.LogMeasurement)
			measurements.GET("", progressHandler.ListMeasurements)
		}

		photos := protected.Group("/photos")
		{
			photos.POST("", trackerHandler.LogPhoto)
			photos.GET("", progressHandler.ListPhotos)
			photos.GET("/:id/image", progressHandler.PhotoImage)
		}
	}
}
