package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	for _, envVar := range utils.RequiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()

	// Redis is optional; without it logout cannot revoke tokens early and
	// session lookups always hit MongoDB.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Fatalf("Failed to initialize token blacklist: %v", err)
		}
		services.TokenBlacklist = blacklist

		cache, err := services.NewSessionCache(redisURL)
		if err != nil {
			log.Fatalf("Failed to initialize session cache: %v", err)
		}
		services.GlobalSessionCache = cache
	} else {
		log.Println("REDIS_URL not set; token blacklist and session cache disabled")
	}
}

func setupRouter(
	userService *usecase.UserService,
	notesService *usecase.NotesService,
	retentionService *usecase.RetentionService,
	sessionRepo *repository.SessionRepo,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20)) // 1 MiB request bodies
	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetUserProfileHandler(c, userService)
			})
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.POST("/2fa/setup", func(c *gin.Context) {
				handler.Setup2FAHandler(c, userService)
			})
			user.POST("/2fa/enable", func(c *gin.Context) {
				handler.Enable2FAHandler(c, userService)
			})
			user.POST("/2fa/disable", func(c *gin.Context) {
				handler.Disable2FAHandler(c, userService)
			})
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessionsHandler(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessionsHandler(c, sessionRepo)
			})
		}

		notes := protected.Group("/notes")
		{
			// List and filter operations
			notes.GET("/", func(c *gin.Context) {
				handler.GetUserNotesHandler(c, notesService)
			})
			notes.GET("/search", func(c *gin.Context) {
				handler.SearchNotesHandler(c, notesService)
			})
			notes.GET("/archived", func(c *gin.Context) {
				handler.GetArchivedNotesHandler(c, notesService)
			})
			notes.GET("/trash", func(c *gin.Context) {
				handler.GetTrashedNotesHandler(c, notesService)
			})
			notes.GET("/tags", func(c *gin.Context) {
				handler.GetAllTagsHandler(c, notesService)
			})
			notes.GET("/tags/:tag", func(c *gin.Context) {
				handler.GetNotesByTagHandler(c, notesService)
			})
			notes.GET("/due-dates", func(c *gin.Context) {
				handler.GetDueDateNotesHandler(c, notesService)
			})

			// CRUD
			notes.POST("/", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})

			// Trash lifecycle
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.TrashNoteHandler(c, notesService)
			})
			notes.PUT("/:id/restore", func(c *gin.Context) {
				handler.RestoreNoteHandler(c, notesService)
			})
			notes.DELETE("/:id/permanent", func(c *gin.Context) {
				handler.PermanentDeleteHandler(c, notesService)
			})

			// Checklist items
			notes.DELETE("/:id/items/:index", func(c *gin.Context) {
				handler.RemoveChecklistItemHandler(c, notesService)
			})
		}

		admin := protected.Group("/admin")
		{
			admin.GET("/trash/stats", func(c *gin.Context) {
				handler.TrashStatsHandler(c, retentionService)
			})
			admin.POST("/trash/cleanup", func(c *gin.Context) {
				handler.TrashCleanupHandler(c, retentionService)
			})
		}
	}

	return router
}

func main() {
	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to setup indexes: %v", err)
	}

	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)

	userService := &usecase.UserService{UsersRepo: usersRepo}
	notesService := &usecase.NotesService{NotesRepo: notesRepo}
	retentionService := &usecase.RetentionService{NotesRepo: notesRepo}

	scheduler := usecase.NewCleanupScheduler(retentionService)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start cleanup scheduler: %v", err)
	}

	stopMetrics := make(chan struct{})
	utils.StartSystemMetrics(30*time.Second, stopMetrics)

	router := setupRouter(userService, notesService, retentionService, sessionRepo)

	port := utils.GetEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Printf("Caught signal %s, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	scheduler.Stop()
	close(stopMetrics)
	utils.CloseMongoClient()
	log.Println("Server shutdown complete")
}
