package controller

import (
	"github.com/gin-gonic/gin"

	"fornsaga-backend/internal/service"
	"fornsaga-backend/utilities"
)

func RegisterRoutes(
	r *gin.Engine,
	authService service.AuthService,
	contentService service.ContentService,
	quizService service.QuizService,
	progressService service.ProgressService,
	achievementService service.AchievementService,
	leaderboardService service.LeaderboardService,
	leaderboardLimit int,
) {
	// Auth routes.
	authCtrl := NewAuthController(authService)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authCtrl.Register)
		authRoutes.POST("/login", authCtrl.Login)
		authRoutes.POST("/refresh", authCtrl.Refresh)
		authRoutes.GET("/me", utilities.AuthMiddleware(), authCtrl.Me)
	}

	// Content routes. Browsing is open to anonymous visitors.
	contentCtrl := NewContentController(contentService)
	contentRoutes := r.Group("/content")
	{
		contentRoutes.GET("/periods", contentCtrl.ListPeriods)
		contentRoutes.GET("/periods/:id", contentCtrl.PeriodHome)
		contentRoutes.GET("/civilizations", contentCtrl.ListCivilizations)
		contentRoutes.GET("/people", contentCtrl.ListPeople)
		contentRoutes.GET("/people/:id", contentCtrl.GetPerson)
		contentRoutes.GET("/deities", contentCtrl.ListDeities)
		contentRoutes.GET("/deities/:id", contentCtrl.GetDeity)
		contentRoutes.GET("/battles", contentCtrl.ListBattles)
		contentRoutes.GET("/battles/:id", contentCtrl.GetBattle)
		contentRoutes.GET("/cultural-topics", contentCtrl.ListCulturalTopics)
		contentRoutes.GET("/cultural-topics/:id", contentCtrl.GetCulturalTopic)
		contentRoutes.GET("/timeline", contentCtrl.ListTimelineEvents)
		contentRoutes.GET("/search", contentCtrl.Search)
	}

	// Quiz routes. Taking quizzes requires an account; the daily random
	// quiz accepts anonymous players and simply skips persistence.
	quizCtrl := NewQuizController(quizService)
	quizRoutes := r.Group("/quizzes")
	{
		quizRoutes.GET("/", quizCtrl.ListQuizzes)
		quizRoutes.GET("/topics", quizCtrl.ListTopics)
		quizRoutes.GET("/random", quizCtrl.RandomQuiz)
		quizRoutes.POST("/random/submit", utilities.OptionalAuthMiddleware(), quizCtrl.SubmitRandomQuiz)
		quizRoutes.GET("/:id", quizCtrl.GetQuiz)
		quizRoutes.POST("/:id/submit", utilities.AuthMiddleware(), quizCtrl.SubmitQuiz)
		quizRoutes.GET("/attempts/:session_id", utilities.AuthMiddleware(), quizCtrl.GetAttempt)
		quizRoutes.POST("/custom", utilities.AuthMiddleware(), quizCtrl.CreateCustomQuiz)
	}

	// Progress routes.
	progressCtrl := NewProgressController(progressService, achievementService)
	progressRoutes := r.Group("/progress", utilities.AuthMiddleware())
	{
		progressRoutes.GET("/", progressCtrl.GetProgress)
		progressRoutes.GET("/download_report", progressCtrl.DownloadReport)
		progressRoutes.GET("/achievements", progressCtrl.GetAchievements)
	}

	// Leaderboard.
	leaderboardCtrl := NewLeaderboardController(leaderboardService, leaderboardLimit)
	r.GET("/leaderboard", leaderboardCtrl.GetLeaderboard)
}
