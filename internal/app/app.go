package app

import (
	"database/sql"
	"fmt"
	"log"

	"dayplanner/internal/config"
	"dayplanner/internal/handlers"
	"dayplanner/internal/middleware"
	"dayplanner/internal/pdf"
	"dayplanner/internal/repositories"
	"dayplanner/internal/routes"
	"dayplanner/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.JWTKey = []byte(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()
	if err := db.Ping(); err != nil {
		log.Fatal("database is unreachable: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	habitRepo := repositories.NewHabitRepository(db)
	noteRepo := repositories.NewNoteRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	userService := services.NewUserService(userRepo, emailService, authService)
	categoryService := services.NewCategoryService(categoryRepo)
	taskService := services.NewTaskService(taskRepo)
	scheduleService := services.NewScheduleService(scheduleRepo)
	habitService := services.NewHabitService(habitRepo)
	noteService := services.NewNoteService(noteRepo)
	dashboardService := services.NewDashboardService(taskRepo, scheduleRepo, habitRepo, noteRepo, categoryRepo)

	summaryGen := pdf.NewSummaryGenerator(cfg.Files.RootDir)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	taskHandler := handlers.NewTaskHandler(taskService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	habitHandler := handlers.NewHabitHandler(habitService)
	noteHandler := handlers.NewNoteHandler(noteService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, summaryGen)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		categoryHandler,
		taskHandler,
		scheduleHandler,
		habitHandler,
		noteHandler,
		dashboardHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
