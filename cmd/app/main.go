package main

import (
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"fornsaga-backend/internal/config"
	"fornsaga-backend/internal/controller"
	"fornsaga-backend/internal/db"
	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/repository"
	"fornsaga-backend/internal/service"
	logger "fornsaga-backend/pkg/logging"
	"fornsaga-backend/pkg/middleware"
)

func main() {
	printStartUpBanner()

	// JWT secrets and optional DB credentials come from the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on the environment")
	}

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init("logs", cfg.RequestDump); err != nil {
		log.Fatalf("failed to initialise logging: %v", err)
	}
	defer logger.Close()

	// Initialize DB using the loaded config.
	db.InitDBFromConfig(cfg)
	// Run migrations.
	if err := db.GetDB().AutoMigrate(
		&model.User{},
		&model.HistoricalPeriod{},
		&model.Civilization{},
		&model.Person{},
		&model.Deity{},
		&model.Battle{},
		&model.CulturalTopic{},
		&model.TimelineEvent{},
		&model.Quiz{},
		&model.Question{},
		&model.QuizAttempt{},
		&model.QuestionResponse{},
		&model.Achievement{},
		&model.UserAchievement{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Optional Redis cache for the leaderboard.
	var cache *redis.Client
	if cfg.Redis.Enabled {
		cache = redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			DB:   cfg.Redis.DB,
		})
	}

	// Create repositories.
	userRepo := repository.NewUserRepository()
	contentRepo := repository.NewContentRepository()
	quizRepo := repository.NewQuizRepository()
	achievementRepo := repository.NewAchievementRepository()

	// Create services.
	authService := service.NewAuthService(userRepo)
	contentService := service.NewContentService(contentRepo, quizRepo, cfg.Pagination.PageSize)
	achievementService := service.NewAchievementService(achievementRepo, quizRepo)
	quizService := service.NewQuizService(quizRepo, achievementService, cfg.Quiz.MapToleranceDegrees, cfg.Quiz.RandomQuizSize)
	progressService := service.NewProgressService(quizRepo, contentRepo, achievementRepo)
	leaderboardService := service.NewLeaderboardService(quizRepo, userRepo, achievementRepo, cache)
	leaderboardService.InitEventListeners()

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RateLimitMiddleware(10, 20))
	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}

	controller.RegisterRoutes(r, authService, contentService, quizService, progressService, achievementService, leaderboardService, cfg.Quiz.LeaderboardSize)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("FORNSAGA", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("FORNSAGA API (v%s)\n\n", "1.0.0")
}
