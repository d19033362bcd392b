package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fornsaga-backend/internal/apperrors"
	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/repository"
	logger "fornsaga-backend/pkg/logging"
	"fornsaga-backend/utilities"
)

// QuestionResult is the per-question outcome of a submission.
type QuestionResult struct {
	QuestionID    uint   `json:"question_id"`
	IsCorrect     bool   `json:"is_correct"`
	PointsEarned  int    `json:"points_earned"`
	Points        int    `json:"points"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
	ExplanationIS string `json:"explanation_is,omitempty"`
}

// SubmissionResult is what the caller gets back after an evaluation.
// SessionID is empty when the attempt was not persisted (anonymous flow).
type SubmissionResult struct {
	SessionID string           `json:"session_id,omitempty"`
	Score     int              `json:"score"`
	MaxScore  int              `json:"max_score"`
	Results   []QuestionResult `json:"results"`
}

// CustomQuizInput describes a user-built quiz.
type CustomQuizInput struct {
	Title         string `json:"title" binding:"required"`
	TitleIS       string `json:"title_is" binding:"required"`
	Description   string `json:"description"`
	DescriptionIS string `json:"description_is"`
	PeriodID      *uint  `json:"period_id"`
	Topic         string `json:"topic"`
	Difficulty    int    `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
}

type QuizService interface {
	GetQuizzes(filter repository.QuizFilter) ([]model.Quiz, error)
	GetQuizWithQuestions(quizID uint) (*model.Quiz, []model.Question, error)
	GetTopics() ([]string, error)
	SubmitQuiz(userID, quizID uint, answers map[uint]string) (*SubmissionResult, error)
	GetAttempt(sessionID string) (*model.QuizAttempt, error)
	RandomQuiz() ([]model.Question, error)
	SubmitRandomQuiz(userID uint, answers map[uint]string) (*SubmissionResult, error)
	CreateCustomQuiz(input CustomQuizInput) (*model.Quiz, error)
}

type quizService struct {
	quizRepo           repository.QuizRepository
	achievementService AchievementService
	mapTolerance       float64
	randomQuizSize     int
}

func NewQuizService(quizRepo repository.QuizRepository, achievementService AchievementService, mapTolerance float64, randomQuizSize int) QuizService {
	return &quizService{
		quizRepo:           quizRepo,
		achievementService: achievementService,
		mapTolerance:       mapTolerance,
		randomQuizSize:     randomQuizSize,
	}
}

func (s *quizService) GetQuizzes(filter repository.QuizFilter) ([]model.Quiz, error) {
	return s.quizRepo.GetPublishedQuizzes(filter)
}

func (s *quizService) GetQuizWithQuestions(quizID uint) (*model.Quiz, []model.Question, error) {
	quiz, err := s.quizRepo.GetPublishedQuizByID(quizID)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.quizRepo.GetQuestionsByQuiz(quizID)
	if err != nil {
		return nil, nil, err
	}
	return quiz, questions, nil
}

func (s *quizService) GetTopics() ([]string, error) {
	return s.quizRepo.GetTopics()
}

// SubmitQuiz evaluates a batch of answers against the quiz's questions and
// persists the attempt, its responses and any newly earned achievements.
// Every question in the quiz gets exactly one response row; unanswered
// questions count as incorrect with zero points. Nothing is persisted when
// evaluation fails.
func (s *quizService) SubmitQuiz(userID, quizID uint, answers map[uint]string) (*SubmissionResult, error) {
	quiz, err := s.quizRepo.GetPublishedQuizByID(quizID)
	if err != nil {
		return nil, err
	}
	questions, err := s.quizRepo.GetQuestionsByQuiz(quiz.ID)
	if err != nil {
		return nil, err
	}

	if err := s.validateAnswerOwnership(questions, answers); err != nil {
		return nil, err
	}

	responses, results, score, maxScore, err := s.evaluate(questions, answers, questionPoints)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	attempt := &model.QuizAttempt{
		SessionID: uuid.New().String(),
		UserID:    userID,
		QuizID:    quiz.ID,
		Score:     score,
		MaxScore:  maxScore,
		EndTime:   &now,
		Completed: true,
	}
	if err := s.quizRepo.CreateAttemptWithResponses(attempt, responses); err != nil {
		return nil, fmt.Errorf("persist attempt: %w", err)
	}

	s.afterCompletedAttempt(userID, attempt)

	return &SubmissionResult{
		SessionID: attempt.SessionID,
		Score:     score,
		MaxScore:  maxScore,
		Results:   results,
	}, nil
}

func (s *quizService) GetAttempt(sessionID string) (*model.QuizAttempt, error) {
	return s.quizRepo.GetAttemptBySessionID(sessionID)
}

// RandomQuiz draws a handful of random questions across the published
// period quizzes.
func (s *quizService) RandomQuiz() ([]model.Question, error) {
	return s.quizRepo.GetRandomPublishedQuestions(s.randomQuizSize)
}

// SubmitRandomQuiz evaluates answers against the exact questions that were
// served (keyed by id, one point each). userID zero means anonymous: the
// result is returned without persisting anything.
func (s *quizService) SubmitRandomQuiz(userID uint, answers map[uint]string) (*SubmissionResult, error) {
	ids := make([]uint, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, apperrors.Validationf("no answers submitted")
	}
	questions, err := s.quizRepo.GetQuestionsByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(questions) != len(ids) {
		return nil, apperrors.NotFoundf("one or more submitted questions")
	}

	responses, results, score, maxScore, err := s.evaluate(questions, answers, onePointEach)
	if err != nil {
		return nil, err
	}

	result := &SubmissionResult{Score: score, MaxScore: maxScore, Results: results}
	if userID == 0 {
		return result, nil
	}

	now := time.Now()
	attempt := &model.QuizAttempt{
		SessionID: uuid.New().String(),
		UserID:    userID,
		QuizID:    questions[0].QuizID,
		Score:     score,
		MaxScore:  maxScore,
		EndTime:   &now,
		Completed: true,
	}
	if err := s.quizRepo.CreateAttemptWithResponses(attempt, responses); err != nil {
		return nil, fmt.Errorf("persist attempt: %w", err)
	}
	s.afterCompletedAttempt(userID, attempt)
	result.SessionID = attempt.SessionID
	return result, nil
}

// CreateCustomQuiz builds a published custom quiz from randomly selected
// questions matching the filters. Questions are copied, not shared, so the
// source quizzes can change without affecting past custom quizzes.
func (s *quizService) CreateCustomQuiz(input CustomQuizInput) (*model.Quiz, error) {
	count := input.QuestionCount
	if count <= 0 {
		count = 10
	}
	var periodID uint
	if input.PeriodID != nil {
		periodID = *input.PeriodID
	}
	pool, err := s.quizRepo.GetQuestionPool(periodID, input.Topic, input.Difficulty)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, apperrors.Validationf("no questions match the requested filters")
	}
	if len(pool) > count {
		pool = pool[:count]
	}

	quiz := &model.Quiz{
		Title:         input.Title,
		TitleIS:       input.TitleIS,
		Description:   input.Description,
		DescriptionIS: input.DescriptionIS,
		QuizType:      model.QuizCustom,
		PeriodID:      input.PeriodID,
		Topic:         input.Topic,
		Difficulty:    input.Difficulty,
		IsPublished:   true,
	}
	if err := s.quizRepo.CreateQuizWithQuestions(quiz, pool); err != nil {
		return nil, fmt.Errorf("create custom quiz: %w", err)
	}
	return quiz, nil
}

// pointsFunc selects how many points a question is worth in a given flow.
type pointsFunc func(q *model.Question) int

func questionPoints(q *model.Question) int { return q.Points }
func onePointEach(*model.Question) int     { return 1 }

// evaluate scores every question exactly once, producing one response row
// per question. It is pure with respect to storage; callers persist.
func (s *quizService) evaluate(questions []model.Question, answers map[uint]string, points pointsFunc) ([]model.QuestionResponse, []QuestionResult, int, int, error) {
	var (
		responses = make([]model.QuestionResponse, 0, len(questions))
		results   = make([]QuestionResult, 0, len(questions))
		score     int
		maxScore  int
	)
	for i := range questions {
		q := &questions[i]
		worth := points(q)
		maxScore += worth

		key, err := model.AnswerKeyFor(q, s.mapTolerance)
		if err != nil {
			return nil, nil, 0, 0, err
		}

		raw, answered := answers[q.ID]
		correct := false
		if answered {
			correct, err = key.Matches(raw)
			if err != nil {
				return nil, nil, 0, 0, err
			}
		}

		earned := 0
		if correct {
			earned = worth
			score += earned
		}
		responses = append(responses, model.QuestionResponse{
			QuestionID:   q.ID,
			UserAnswer:   raw,
			IsCorrect:    correct,
			PointsEarned: earned,
		})
		results = append(results, QuestionResult{
			QuestionID:    q.ID,
			IsCorrect:     correct,
			PointsEarned:  earned,
			Points:        worth,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			ExplanationIS: q.ExplanationIS,
		})
	}
	return responses, results, score, maxScore, nil
}

// validateAnswerOwnership rejects answers keyed by questions outside the quiz.
func (s *quizService) validateAnswerOwnership(questions []model.Question, answers map[uint]string) error {
	owned := make(map[uint]struct{}, len(questions))
	for _, q := range questions {
		owned[q.ID] = struct{}{}
	}
	for id := range answers {
		if _, ok := owned[id]; !ok {
			return apperrors.Validationf("question %d does not belong to this quiz", id)
		}
	}
	return nil
}

// afterCompletedAttempt runs the achievement check synchronously and then
// notifies listeners (leaderboard cache). An achievement failure is logged
// but does not undo the committed attempt.
func (s *quizService) afterCompletedAttempt(userID uint, attempt *model.QuizAttempt) {
	if _, err := s.achievementService.CheckAndAward(userID); err != nil {
		logger.Warn("achievement check for user %d failed: %v", userID, err)
	}
	utilities.GlobalEventBus.Publish(utilities.EventAttemptCompleted, attempt)
}
