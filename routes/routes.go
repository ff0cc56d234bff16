package routes

import (
    "github.com/leonardo-a/daily-diet-api/controllers"
    "github.com/leonardo-a/daily-diet-api/middlewares"
    "github.com/leonardo-a/daily-diet-api/services"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
    r := gin.Default()

    authSvc := services.NewAuthService(db)
    mealSvc := services.NewMealService(db)
    metricsSvc := services.NewMetricsService(db)

    authCtl := controllers.NewAuthController(authSvc)
    mealCtl := controllers.NewMealController(mealSvc)
    metricsCtl := controllers.NewMetricsController(metricsSvc)

    // Public routes
    r.POST("/users", authCtl.Register)

    // Protected meal routes
    meals := r.Group("/meals")
    meals.Use(middlewares.SessionAuth(authSvc))
    {
        meals.POST("", mealCtl.CreateMeal)
        meals.GET("", mealCtl.ListMeals)
        meals.GET("/metrics", metricsCtl.GetMetrics)
        meals.GET("/:id", mealCtl.GetMeal)
        meals.PUT("/:id", mealCtl.UpdateMeal)
        meals.DELETE("/:id", mealCtl.DeleteMeal)
    }

    return r
}
