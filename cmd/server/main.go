package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/lockwoodcarter/agency-api/configs"
	"github.com/lockwoodcarter/agency-api/internal/ai"
	"github.com/lockwoodcarter/agency-api/internal/api/handlers"
	"github.com/lockwoodcarter/agency-api/internal/api/middleware"
	job "github.com/lockwoodcarter/agency-api/internal/jobs"
	"github.com/lockwoodcarter/agency-api/internal/queue"
	"github.com/lockwoodcarter/agency-api/internal/repository"
	"github.com/lockwoodcarter/agency-api/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	historyRepo := repository.NewPublishHistoryRepository(db)
	settingsRepository := repository.NewSettingsRepository(db)
	apiKeyRepository := repository.NewApiKeyRepository(db)

	generator := ai.NewGemini(ai.GeminiConfig{
		APIKey:     cfg.GeminiAPIKey,
		TextModel:  cfg.GeminiTextModel,
		ImageModel: cfg.GeminiImageModel,
		VideoModel: cfg.GeminiVideoModel,
	})

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo)
	r2Service := service.NewR2Service(*cfg)
	assetService := service.NewAssetService(projectRepo, r2Service)
	projectService := service.NewProjectService(projectRepo)
	driveService := service.NewDriveService(*cfg, projectRepo)
	postService := service.NewPostService(postRepo)
	wizardService := service.NewWizardService(postRepo, projectRepo)
	plannerService := service.NewPlannerService(postRepo, cfg.OverdueLookahead)
	settingsService := service.NewSettingsService(settingsRepository)
	generationService := service.NewGenerationService(generator, projectRepo, settingsService, assetService)
	apiKeyService := service.NewApiKeyService(apiKeyRepository)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, apiKeyService, userService)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)
	api.Post("/user/role", user.SetRole)

	settings := handlers.NewSettingsHandler(settingsService)
	api.Get("/settings/info", settings.GetSettings)
	api.Post("/settings/update", settings.UpdateSettings)

	apiKeys := handlers.NewApiKeyHandler(apiKeyService)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	plannerH := handlers.NewPlannerHandler(plannerService)
	api.Get("/planner", plannerH.Window)

	post := handlers.NewPostHandler(postService, wizardService)
	api.Post("/posts/create", post.CreatePost)
	api.Post("/posts/update", post.UpdatePost)
	api.Post("/posts/approve", post.ApprovePost)
	api.Get("/posts", post.ListPosts)

	generate := handlers.NewGenerateHandler(generationService, postService, client)
	api.Post("/generate/copy", generate.GenerateCopy)
	api.Post("/generate/image", generate.EnhanceImage)
	api.Post("/generate/video", generate.GenerateVideo)

	project := handlers.NewProjectHandler(projectService, assetService, driveService)
	api.Get("/projects", project.ListProjects)
	api.Post("/projects/create", project.CreateProject)
	api.Get("/projects/:id/assets", project.ListAssets)
	api.Post("/projects/:id/assets/upload", project.UploadAsset)
	api.Post("/projects/:id/assets/import", project.ImportDriveAssets)

	// cron jobs
	autoPublishJob := job.NewAutoPublishJob(postRepo, historyRepo)

	//queue
	queueW := queue.NewQueue(postRepo, settingsService, generator)

	c := cron.New()
	c.AddFunc(fmt.Sprintf("@every %s", cfg.SweepInterval), autoPublishJob.Run)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeGenerateVideo, queueW.HandleGenerateVideoTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
