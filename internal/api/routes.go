package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mcgregor/if-planner/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	catalogService service.CatalogService,
	profileService service.ProfileService,
	plannerService service.PlannerService,
) {

	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler(catalogService)
	profileHandler := NewProfileHandler(profileService)
	planHandler := NewPlanHandler(plannerService)

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
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		// --- Catalog Routes ---
		catalogGroup := protected.Group("/catalog")
		{
			// GET /api/v1/catalog/foods - built-ins plus the user's custom entries
			catalogGroup.GET("/foods", catalogHandler.GetFoods)
			catalogGroup.POST("/foods", catalogHandler.CreateFood)
			catalogGroup.GET("/supplements", catalogHandler.GetSupplements)
			catalogGroup.POST("/supplements", catalogHandler.CreateSupplement)

			// Custom catalog config export/import (JSON file round trip).
			catalogGroup.GET("/config/export", catalogHandler.ExportConfig)
			catalogGroup.POST("/config/import", catalogHandler.ImportConfig)
		}

		// --- Profile Routes ---
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("/preferences", profileHandler.GetPreferences)
			profileGroup.PUT("/preferences", profileHandler.SavePreferences)
			// POST /api/v1/profile/calories - Mifflin-St Jeor estimate,
			// result is stored back into the preference profile.
			profileGroup.POST("/calories", profileHandler.CalculateCalories)
		}

		// --- Plan Routes ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/daily", planHandler.CreateDailyPlan)
			planGroup.POST("/weekly", planHandler.CreateWeeklyPlan)
			planGroup.POST("/personalized", planHandler.CreatePersonalizedPlan)

			planGroup.GET("", planHandler.GetPlans)
			planGroup.GET("/:id", planHandler.GetPlan)
			planGroup.GET("/:id/shopping-list", planHandler.ShoppingList)
			planGroup.POST("/:id/archive", planHandler.ArchivePlan)
		}
	}
}
