package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/handlers"
	"dayplanner/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	categoryHandler *handlers.CategoryHandler,
	taskHandler *handlers.TaskHandler,
	scheduleHandler *handlers.ScheduleHandler,
	habitHandler *handlers.HabitHandler,
	noteHandler *handlers.NoteHandler,
	dashboardHandler *handlers.DashboardHandler,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().Format(time.RFC3339)})
	})
	r.POST("/register", userHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	r.GET("/me", userHandler.Me)

	// DASHBOARD
	r.GET("/dashboard", dashboardHandler.Get)
	r.GET("/dashboard/export", dashboardHandler.Export)

	// CATEGORIES
	categories := r.Group("/categories")
	{
		categories.POST("/", categoryHandler.Create)
		categories.GET("/", categoryHandler.GetAll)
		categories.GET("/:id", categoryHandler.GetByID)
		categories.PUT("/:id", categoryHandler.Update)
		categories.DELETE("/:id", categoryHandler.Delete)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/", taskHandler.GetAll)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
		tasks.POST("/:id/toggle", taskHandler.ToggleComplete)
	}

	// SCHEDULES
	schedules := r.Group("/schedules")
	{
		schedules.POST("/", scheduleHandler.Create)
		schedules.GET("/", scheduleHandler.GetAll)
		schedules.GET("/:id", scheduleHandler.GetByID)
		schedules.PUT("/:id", scheduleHandler.Update)
		schedules.DELETE("/:id", scheduleHandler.Delete)
	}

	// HABITS
	habits := r.Group("/habits")
	{
		habits.POST("/", habitHandler.Create)
		habits.GET("/", habitHandler.GetAll)
		habits.GET("/:id", habitHandler.GetByID)
		habits.PUT("/:id", habitHandler.Update)
		habits.DELETE("/:id", habitHandler.Delete)
		habits.POST("/:id/completion", habitHandler.ToggleCompletion)
	}

	// NOTES
	notes := r.Group("/notes")
	{
		notes.POST("/", noteHandler.Create)
		notes.GET("/", noteHandler.GetAll)
		notes.GET("/today", noteHandler.GetToday)
		notes.GET("/:id", noteHandler.GetByID)
		notes.PUT("/:id", noteHandler.Update)
		notes.DELETE("/:id", noteHandler.Delete)
	}

	return r
}
