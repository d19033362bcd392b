package model

import "time"

// Quiz types.
const (
	QuizByPeriod      = "period"
	QuizByTopic       = "topic"
	QuizComprehensive = "comprehensive"
	QuizCustom        = "custom"
)

// Question types.
const (
	QuestionMultipleChoice    = "multiple_choice"
	QuestionTrueFalse         = "true_false"
	QuestionFillBlank         = "fill_blank"
	QuestionTimelineOrder     = "timeline_order"
	QuestionMapIdentification = "map_identification"
	QuestionImageRecognition  = "image_recognition"
)

type Quiz struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title" gorm:"size:200;not null"`
	TitleIS       string     `json:"title_is" gorm:"size:200;not null;index"`
	Description   string     `json:"description" gorm:"type:text"`
	DescriptionIS string     `json:"description_is" gorm:"type:text"`
	QuizType      string     `json:"quiz_type" gorm:"size:20;index"`
	PeriodID      *uint      `json:"period_id,omitempty" gorm:"index"`
	Topic         string     `json:"topic" gorm:"size:50;index"`
	Difficulty    int        `json:"difficulty" gorm:"default:1"` // 1-5
	TimeLimit     int        `json:"time_limit" gorm:"default:0"` // seconds, 0 = none; metadata only
	IsPublished   bool       `json:"is_published" gorm:"default:false;index"`
	Questions     []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type Question struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	QuizID         uint   `json:"quiz_id" gorm:"not null;index"`
	QuestionText   string `json:"question_text" gorm:"type:text;not null"`
	QuestionTextIS string `json:"question_text_is" gorm:"type:text;not null"`
	QuestionType   string `json:"question_type" gorm:"size:20;not null"`
	Options        string `json:"options" gorm:"type:text"` // JSON array of option strings
	// CorrectAnswer holds the index string for choice types, the literal
	// answer for fill_blank and a {"lat","lng"} object for
	// map_identification. Decoded through AnswerKeyFor, never sniffed.
	CorrectAnswer string `json:"-" gorm:"type:text;not null"`
	Explanation   string `json:"explanation" gorm:"type:text"`
	ExplanationIS string `json:"explanation_is" gorm:"type:text"`
	Difficulty    int    `json:"difficulty" gorm:"default:1"`
	Points        int    `json:"points" gorm:"default:1"`
}

type QuizAttempt struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	SessionID string     `json:"session_id" gorm:"size:36;not null;uniqueIndex"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	QuizID    uint       `json:"quiz_id" gorm:"not null;index"`
	Score     int        `json:"score" gorm:"default:0"`
	MaxScore  int        `json:"max_score" gorm:"default:0"`
	StartTime time.Time  `json:"start_time" gorm:"autoCreateTime"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Completed bool       `json:"completed" gorm:"default:false;index"`

	Responses []QuestionResponse `json:"responses,omitempty" gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
}

// PercentageScore returns the attempt score as a percentage of MaxScore.
func (a *QuizAttempt) PercentageScore() float64 {
	if a.MaxScore > 0 {
		return float64(a.Score) / float64(a.MaxScore) * 100
	}
	return 0
}

type QuestionResponse struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	AttemptID    uint   `json:"attempt_id" gorm:"not null;index"`
	QuestionID   uint   `json:"question_id" gorm:"not null;index"`
	UserAnswer   string `json:"user_answer" gorm:"type:text"`
	IsCorrect    bool   `json:"is_correct" gorm:"default:false"`
	PointsEarned int    `json:"points_earned" gorm:"default:0"`
}

type Achievement struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Title         string `json:"title" gorm:"size:100;not null;uniqueIndex"`
	TitleIS       string `json:"title_is" gorm:"size:100;not null"`
	Description   string `json:"description" gorm:"type:text"`
	DescriptionIS string `json:"description_is" gorm:"type:text"`
	Requirement   string `json:"requirement" gorm:"type:text"`
	RequirementIS string `json:"requirement_is" gorm:"type:text"`
	Icon          string `json:"icon" gorm:"size:200"`
}

// UserAchievement pairs a user with an earned achievement. The composite
// unique index enforces award-at-most-once.
type UserAchievement struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementID uint      `json:"achievement_id" gorm:"not null;uniqueIndex:idx_user_achievement"`
	DateEarned    time.Time `json:"date_earned" gorm:"autoCreateTime"`

	Achievement Achievement `json:"achievement" gorm:"foreignKey:AchievementID"`
}
