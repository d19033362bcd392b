package seed

import (
	"strconv"

	"gorm.io/gorm"

	"fornsaga-backend/internal/apperrors"
	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/quiztext"
	logger "fornsaga-backend/pkg/logging"
)

type quizSpec struct {
	Title         string
	TitleIS       string
	Description   string
	DescriptionIS string
	QuizType      string
	PeriodID      *uint
	Topic         string
	Difficulty    int
	RawText       string
}

// seedQuizFromText parses the authoring format and inserts one quiz with its
// questions. Questions that fail to parse are logged and skipped; the rest of
// the quiz still loads. Re-running skips questions already present.
func seedQuizFromText(tx *gorm.DB, spec quizSpec) error {
	parsed, issues := quiztext.Parse(spec.RawText)
	for _, issue := range issues {
		logger.Warn("quiz %q: skipping question %q: %v", spec.TitleIS, issue.QuestionText, issue.Err)
	}
	if len(parsed) == 0 {
		return apperrors.Validationf("quiz %q: no valid questions in source text", spec.TitleIS)
	}

	quiz := model.Quiz{
		Title:         spec.Title,
		TitleIS:       spec.TitleIS,
		Description:   spec.Description,
		DescriptionIS: spec.DescriptionIS,
		QuizType:      spec.QuizType,
		PeriodID:      spec.PeriodID,
		Topic:         spec.Topic,
		Difficulty:    spec.Difficulty,
		IsPublished:   true,
	}
	if err := tx.Where(model.Quiz{TitleIS: spec.TitleIS, QuizType: spec.QuizType}).FirstOrCreate(&quiz).Error; err != nil {
		return err
	}

	for _, pq := range parsed {
		var count int64
		if err := tx.Model(&model.Question{}).
			Where("quiz_id = ? AND question_text_is = ?", quiz.ID, pq.Text).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		q := model.Question{
			QuizID:         quiz.ID,
			QuestionText:   pq.Text,
			QuestionTextIS: pq.Text,
			QuestionType:   model.QuestionMultipleChoice,
			CorrectAnswer:  strconv.Itoa(pq.CorrectIndex),
			Difficulty:     spec.Difficulty,
			Points:         1,
		}
		if err := q.SetOptionList(pq.Options[:]); err != nil {
			return err
		}
		if err := tx.Create(&q).Error; err != nil {
			return err
		}
	}
	return nil
}
