package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron"
	"google.golang.org/api/option"

	config "github.com/maheshrc27/marketing-planner/configs"
	"github.com/maheshrc27/marketing-planner/internal/ai"
	"github.com/maheshrc27/marketing-planner/internal/api/handlers"
	"github.com/maheshrc27/marketing-planner/internal/cache"
	job "github.com/maheshrc27/marketing-planner/internal/jobs"
	"github.com/maheshrc27/marketing-planner/internal/queue"
	"github.com/maheshrc27/marketing-planner/internal/repository"
	"github.com/maheshrc27/marketing-planner/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	ctx := context.Background()

	var fsOpts []option.ClientOption
	if cfg.FirestoreCredentials != "" {
		fsOpts = append(fsOpts, option.WithCredentialsFile(cfg.FirestoreCredentials))
	}
	fsClient, err := firestore.NewClient(ctx, cfg.FirestoreProjectID, fsOpts...)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer fsClient.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Redis is unreachable: %v", err)
	}
	defer redisClient.Close()

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	asynqClient := asynq.NewClient(redisConn)
	defer asynqClient.Close()

	planner := ai.NewPlanner(cfg.OpenAIKey)
	writer := ai.NewWriter(cfg.OpenAIKey)
	imageGen, err := ai.NewImageGenerator(ctx, cfg.GeminiKey)
	if err != nil {
		log.Fatalf("Failed to create image client: %v", err)
	}
	storage, err := service.NewR2Service(ctx, cfg.R2)
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			if errors.Is(err, service.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
			}
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

	companyRepo := repository.NewCompanyRepository(fsClient)
	postRepo := repository.NewPostRepository(fsClient)
	newsletterRepo := repository.NewNewsletterRepository(fsClient)
	blogRepo := repository.NewBlogRepository(fsClient)
	channelConfigRepo := repository.NewChannelConfigRepository(fsClient)
	themeRepo := repository.NewThemeRepository(fsClient)

	listCache := cache.New(redisClient)

	companyService := service.NewCompanyService(companyRepo, channelConfigRepo)
	themeService := service.NewThemeService(companyRepo, themeRepo, writer)
	contentService := service.NewContentService(companyRepo, postRepo, newsletterRepo, blogRepo, planner, imageGen, writer, storage, listCache)
	spreader := service.NewSpreader(postRepo, newsletterRepo, blogRepo, queue.NewEnqueuer(asynqClient))
	schedulerService := service.NewSchedulerService(companyRepo, channelConfigRepo, contentService, spreader)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	company := handlers.NewCompanyHandler(companyService)
	api.Post("/companies", company.CreateCompany)
	api.Get("/companies", company.ListCompanies)
	api.Get("/companies/:company_id", company.GetCompany)
	api.Put("/companies/:company_id", company.UpdateCompany)
	api.Delete("/companies/:company_id", company.RemoveCompany)

	channel := handlers.NewChannelHandler(companyService)
	api.Get("/companies/:company_id/channel_config", channel.GetChannelConfig)
	api.Put("/companies/:company_id/channel_config", channel.SetChannelConfig)

	theme := handlers.NewThemeHandler(themeService)
	api.Post("/themes/:company_id/generate", theme.GenerateThemes)
	api.Get("/themes/:company_id", theme.ListThemes)

	content := handlers.NewContentHandler(schedulerService, contentService)
	api.Post("/content/:company_id/schedule/create", content.CreateSchedule)
	api.Get("/content/:company_id/:channel/posts", content.ListPosts)
	api.Get("/content/:company_id/:channel/posts/:post_id", content.GetPost)
	api.Put("/content/:company_id/:channel/posts/:post_id", content.UpdatePost)
	api.Delete("/content/:company_id/:channel/posts/:post_id", content.RemovePost)

	newsletter := handlers.NewNewsletterHandler(contentService)
	api.Post("/newsletters/:company_id/generate", newsletter.GenerateNewsletter)
	api.Get("/newsletters/:company_id", newsletter.ListNewsletters)
	api.Get("/newsletters/:company_id/:newsletter_id", newsletter.GetNewsletter)

	blog := handlers.NewBlogHandler(contentService)
	api.Post("/blogs/:company_id/generate", blog.GenerateBlog)
	api.Get("/blogs/:company_id", blog.ListBlogs)
	api.Get("/blogs/:company_id/:blog_id", blog.GetBlog)

	// cron jobs
	publishSweep := job.NewPublishSweepJob(postRepo, newsletterRepo, blogRepo)

	// queue
	queueW := queue.NewQueue(postRepo, newsletterRepo, blogRepo)

	c := cron.New()
	c.AddFunc("@every 00h05m00s", publishSweep.Run)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:" + cfg.Port)

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
