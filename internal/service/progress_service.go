package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/repository"
)

// PeriodStats is the per-period slice of a user's progress.
type PeriodStats struct {
	PeriodID   uint    `json:"period_id"`
	PeriodName string  `json:"period_name"`
	Attempts   int     `json:"attempts"`
	Percentage float64 `json:"percentage"`
}

// ProgressData holds the metrics for the progress report.
type ProgressData struct {
	TotalAttempts     int                     `json:"total_attempts"`
	CompletedAttempts int                     `json:"completed_attempts"`
	TotalScore        int                     `json:"total_score"`
	TotalMaxScore     int                     `json:"total_max_score"`
	AveragePercentage float64                 `json:"average_percentage"`
	PeriodStats       []PeriodStats           `json:"period_stats"`
	Achievements      []model.UserAchievement `json:"achievements"`
	RecentAttempts    []model.QuizAttempt     `json:"recent_attempts"`
}

type ProgressService interface {
	GetProgress(userID uint) (*ProgressData, error)
	// RenderReport builds the downloadable PDF progress report.
	RenderReport(userID uint, username string) ([]byte, error)
}

type progressService struct {
	quizRepo        repository.QuizRepository
	contentRepo     repository.ContentRepository
	achievementRepo repository.AchievementRepository
}

func NewProgressService(quizRepo repository.QuizRepository, contentRepo repository.ContentRepository, achievementRepo repository.AchievementRepository) ProgressService {
	return &progressService{
		quizRepo:        quizRepo,
		contentRepo:     contentRepo,
		achievementRepo: achievementRepo,
	}
}

// GetProgress computes the progress data for a given user.
func (s *progressService) GetProgress(userID uint) (*ProgressData, error) {
	attempts, err := s.quizRepo.GetAttemptsByUser(userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attempts: %w", err)
	}

	data := &ProgressData{TotalAttempts: len(attempts)}
	quizPeriod, err := s.quizPeriodIndex()
	if err != nil {
		return nil, err
	}

	type acc struct {
		attempts int
		score    int
		maxScore int
	}
	perPeriod := map[uint]*acc{}

	for _, a := range attempts {
		if !a.Completed {
			continue
		}
		data.CompletedAttempts++
		data.TotalScore += a.Score
		data.TotalMaxScore += a.MaxScore

		if periodID, ok := quizPeriod[a.QuizID]; ok && periodID != 0 {
			entry := perPeriod[periodID]
			if entry == nil {
				entry = &acc{}
				perPeriod[periodID] = entry
			}
			entry.attempts++
			entry.score += a.Score
			entry.maxScore += a.MaxScore
		}
	}
	if data.TotalMaxScore > 0 {
		data.AveragePercentage = float64(data.TotalScore) / float64(data.TotalMaxScore) * 100
	}

	periods, err := s.contentRepo.GetPeriods()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch periods: %w", err)
	}
	for _, period := range periods {
		entry, ok := perPeriod[period.ID]
		if !ok {
			continue
		}
		stats := PeriodStats{
			PeriodID:   period.ID,
			PeriodName: period.NameIS,
			Attempts:   entry.attempts,
		}
		if entry.maxScore > 0 {
			stats.Percentage = float64(entry.score) / float64(entry.maxScore) * 100
		}
		data.PeriodStats = append(data.PeriodStats, stats)
	}

	data.Achievements, err = s.achievementRepo.GetUserAchievements(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch achievements: %w", err)
	}

	if len(attempts) > 10 {
		attempts = attempts[:10]
	}
	data.RecentAttempts = attempts

	return data, nil
}

// RenderReport lays the progress data out as a one-page PDF.
func (s *progressService) RenderReport(userID uint, username string) ([]byte, error) {
	data, err := s.GetProgress(userID)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Fornsaga - Progress Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("User: %s", username))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Overview")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Completed attempts: %d of %d", data.CompletedAttempts, data.TotalAttempts))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Total score: %d / %d (%.1f%%)", data.TotalScore, data.TotalMaxScore, data.AveragePercentage))
	pdf.Ln(12)

	if len(data.PeriodStats) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "By period")
		pdf.Ln(10)
		pdf.SetFont("Arial", "", 11)
		for _, ps := range data.PeriodStats {
			pdf.Cell(0, 7, fmt.Sprintf("%s: %d attempts, %.1f%%", ps.PeriodName, ps.Attempts, ps.Percentage))
			pdf.Ln(7)
		}
		pdf.Ln(5)
	}

	if len(data.Achievements) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Achievements")
		pdf.Ln(10)
		pdf.SetFont("Arial", "", 11)
		for _, ua := range data.Achievements {
			pdf.Cell(0, 7, fmt.Sprintf("%s - %s", ua.Achievement.Title, ua.DateEarned.Format("2006-01-02")))
			pdf.Ln(7)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// quizPeriodIndex maps quiz id to period id for the published quizzes.
func (s *progressService) quizPeriodIndex() (map[uint]uint, error) {
	quizzes, err := s.quizRepo.GetPublishedQuizzes(repository.QuizFilter{})
	if err != nil {
		return nil, err
	}
	index := make(map[uint]uint, len(quizzes))
	for _, q := range quizzes {
		if q.PeriodID != nil {
			index[q.ID] = *q.PeriodID
		}
	}
	return index, nil
}
