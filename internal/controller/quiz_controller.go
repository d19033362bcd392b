package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fornsaga-backend/internal/repository"
	"fornsaga-backend/internal/service"
)

type QuizController struct {
	QuizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

func (qc *QuizController) ListQuizzes(c *gin.Context) {
	filter := repository.QuizFilter{
		QuizType: c.Query("quiz_type"),
		PeriodID: queryUint(c, "period_id"),
		Topic:    c.Query("topic"),
	}
	quizzes, err := qc.QuizService.GetQuizzes(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}

func (qc *QuizController) GetQuiz(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz id"})
		return
	}
	quiz, questions, err := qc.QuizService.GetQuizWithQuestions(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": quiz, "questions": questions})
}

func (qc *QuizController) ListTopics(c *gin.Context) {
	topics, err := qc.QuizService.GetTopics()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// SubmitQuiz grades a full answer sheet in one request and returns the
// per-question breakdown along with the stored session id.
func (qc *QuizController) SubmitQuiz(c *gin.Context) {
	id, err := paramUint(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz id"})
		return
	}
	var req struct {
		Answers map[uint]string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	result, err := qc.QuizService.SubmitQuiz(userID, id, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (qc *QuizController) GetAttempt(c *gin.Context) {
	sessionID := c.Param("session_id")
	attempt, err := qc.QuizService.GetAttempt(sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	userID, _ := currentUserID(c)
	if attempt.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "attempt belongs to another user"})
		return
	}
	c.JSON(http.StatusOK, attempt)
}

func (qc *QuizController) RandomQuiz(c *gin.Context) {
	questions, err := qc.QuizService.RandomQuiz()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// SubmitRandomQuiz grades a random quiz round. Anonymous submissions are
// graded but never persisted.
func (qc *QuizController) SubmitRandomQuiz(c *gin.Context) {
	var req struct {
		Answers map[uint]string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	userID, _ := currentUserID(c)
	result, err := qc.QuizService.SubmitRandomQuiz(userID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (qc *QuizController) CreateCustomQuiz(c *gin.Context) {
	var input service.CustomQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	quiz, err := qc.QuizService.CreateCustomQuiz(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quiz)
}
