package routes

import (
	"github.com/jomariabejo/orpha/controllers"
	"github.com/jomariabejo/orpha/middlewares"
	"github.com/jomariabejo/orpha/models"
	"github.com/jomariabejo/orpha/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authCtl := controllers.NewAuthController(services.NewAuthService(db))
	userCtl := controllers.NewUserController(services.NewUserService(db))
	planCtl := controllers.NewMealPlanController(services.NewMealPlanService(db))
	weeklyCtl := controllers.NewWeeklyPlanController(services.NewWeeklyPlanService(db))
	monitorCtl := controllers.NewMonitoringController(services.NewChildService(db))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/reset-password", authCtl.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
	}

	// Monitoring is open to any authenticated staff member
	monitoring := r.Group("/api/monitoring")
	monitoring.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleStaff, models.RoleAdmin))
	{
		monitoring.GET("", monitorCtl.List)
		monitoring.POST("", monitorCtl.Create)
		monitoring.GET("/:childId", monitorCtl.Get)
		monitoring.PATCH("/:childId", monitorCtl.AddObservation)
	}

	// Plan management is admin only
	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		plans := admin.Group("/meal-plans")
		{
			plans.GET("", planCtl.List)
			plans.POST("", planCtl.Create)
			plans.GET("/:id", planCtl.Get)
			plans.PUT("/:id", planCtl.Update)
			plans.DELETE("/:id", planCtl.Delete)
			plans.POST("/:id/clone", planCtl.Clone)
			plans.GET("/:id/nutrition", planCtl.Nutrition)
		}

		weekly := admin.Group("/weekly-plans")
		{
			weekly.GET("", weeklyCtl.List)
			weekly.POST("", weeklyCtl.Create)
			weekly.GET("/:id", weeklyCtl.Get)
			weekly.PUT("/:id", weeklyCtl.Update)
			weekly.DELETE("/:id", weeklyCtl.Delete)
			weekly.POST("/:id/clone", weeklyCtl.Clone)
			weekly.GET("/:id/nutrition", weeklyCtl.Nutrition)
		}
	}

	return r
}
