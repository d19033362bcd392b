package repository

import (
	"errors"

	"gorm.io/gorm"

	"fornsaga-backend/internal/apperrors"
	"fornsaga-backend/internal/db"
	"fornsaga-backend/internal/model"
)

// QuizFilter narrows quiz listings. Zero values mean "any". Only published
// quizzes are ever listed.
type QuizFilter struct {
	QuizType string
	PeriodID uint
	Topic    string
}

type QuizRepository interface {
	GetPublishedQuizzes(filter QuizFilter) ([]model.Quiz, error)
	GetPublishedQuizByID(id uint) (*model.Quiz, error)
	GetQuestionsByQuiz(quizID uint) ([]model.Question, error)
	GetQuestionsByIDs(ids []uint) ([]model.Question, error)
	GetRandomPublishedQuestions(limit int) ([]model.Question, error)
	GetQuestionPool(periodID uint, topic string, difficulty int) ([]model.Question, error)
	GetTopics() ([]string, error)
	CreateQuizWithQuestions(quiz *model.Quiz, questions []model.Question) error
	CreateAttemptWithResponses(attempt *model.QuizAttempt, responses []model.QuestionResponse) error
	GetAttemptBySessionID(sessionID string) (*model.QuizAttempt, error)
	GetAttemptsByUser(userID uint, completedOnly bool) ([]model.QuizAttempt, error)
	GetCompletedAttemptUserIDs() ([]uint, error)
}

type quizRepository struct{}

func NewQuizRepository() QuizRepository {
	return &quizRepository{}
}

func (r *quizRepository) GetPublishedQuizzes(filter QuizFilter) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	q := db.GetDB().Where("is_published = ?", true).Order("created_at DESC")
	if filter.QuizType != "" {
		q = q.Where("quiz_type = ?", filter.QuizType)
	}
	if filter.PeriodID != 0 {
		q = q.Where("period_id = ?", filter.PeriodID)
	}
	if filter.Topic != "" {
		q = q.Where("topic = ?", filter.Topic)
	}
	err := q.Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) GetPublishedQuizByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := db.GetDB().Where("id = ? AND is_published = ?", id, true).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFoundf("quiz %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) GetQuestionsByQuiz(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := db.GetDB().Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error
	return questions, err
}

func (r *quizRepository) GetQuestionsByIDs(ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	err := db.GetDB().Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}

func (r *quizRepository) GetRandomPublishedQuestions(limit int) ([]model.Question, error) {
	var questions []model.Question
	err := db.GetDB().Raw(`SELECT q.* FROM questions q
		JOIN quizzes z ON z.id = q.quiz_id
		WHERE z.is_published = true AND z.quiz_type = ?
		ORDER BY RANDOM() LIMIT ?`, model.QuizByPeriod, limit).Scan(&questions).Error
	return questions, err
}

func (r *quizRepository) GetQuestionPool(periodID uint, topic string, difficulty int) ([]model.Question, error) {
	var questions []model.Question
	q := db.GetDB().Joins("JOIN quizzes ON quizzes.id = questions.quiz_id").
		Where("quizzes.is_published = ?", true)
	if periodID != 0 {
		q = q.Where("quizzes.period_id = ?", periodID)
	}
	if topic != "" {
		q = q.Where("quizzes.topic = ?", topic)
	}
	if difficulty != 0 {
		q = q.Where("questions.difficulty = ?", difficulty)
	}
	err := q.Order("RANDOM()").Find(&questions).Error
	return questions, err
}

func (r *quizRepository) GetTopics() ([]string, error) {
	var topics []string
	err := db.GetDB().Model(&model.Quiz{}).
		Where("is_published = ? AND topic <> ''", true).
		Distinct().Pluck("topic", &topics).Error
	return topics, err
}

// CreateQuizWithQuestions persists a quiz and its question copies in one
// transaction, used by the custom quiz builder.
func (r *quizRepository) CreateQuizWithQuestions(quiz *model.Quiz, questions []model.Question) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			questions[i].QuizID = quiz.ID
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// CreateAttemptWithResponses persists an attempt and its responses
// atomically. A failure leaves no partial rows visible.
func (r *quizRepository) CreateAttemptWithResponses(attempt *model.QuizAttempt, responses []model.QuestionResponse) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		for i := range responses {
			responses[i].AttemptID = attempt.ID
		}
		if len(responses) > 0 {
			if err := tx.Create(&responses).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quizRepository) GetAttemptBySessionID(sessionID string) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := db.GetDB().Preload("Responses").Where("session_id = ?", sessionID).First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFoundf("attempt %s", sessionID)
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizRepository) GetAttemptsByUser(userID uint, completedOnly bool) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	q := db.GetDB().Where("user_id = ?", userID).Order("start_time DESC")
	if completedOnly {
		q = q.Where("completed = ?", true)
	}
	err := q.Find(&attempts).Error
	return attempts, err
}

func (r *quizRepository) GetCompletedAttemptUserIDs() ([]uint, error) {
	var ids []uint
	err := db.GetDB().Model(&model.QuizAttempt{}).
		Where("completed = ?", true).
		Distinct().Pluck("user_id", &ids).Error
	return ids, err
}
