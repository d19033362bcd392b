package service

import (
	"fmt"

	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/repository"
	"fornsaga-backend/utilities"
)

// AttemptStats summarizes a user's completed attempts for rule evaluation.
type AttemptStats struct {
	CompletedCount  int
	HasPerfectScore bool
}

// AchievementRule decides whether a user's attempt history qualifies for
// one achievement. Rules are independent predicates; evaluation order does
// not matter.
type AchievementRule func(stats AttemptStats) bool

// DefaultRules maps achievement titles to their rules. Adding an
// achievement means adding one entry here (and the catalog row).
// Catalog rows whose title has no entry are inert.
func DefaultRules() map[string]AchievementRule {
	return map[string]AchievementRule{
		"First Quiz":    func(s AttemptStats) bool { return s.CompletedCount >= 1 },
		"Perfect Score": func(s AttemptStats) bool { return s.HasPerfectScore },
		"History Buff":  func(s AttemptStats) bool { return s.CompletedCount >= 10 },
	}
}

type AchievementService interface {
	// CheckAndAward evaluates every registered rule against the user's
	// attempt history and awards newly-qualifying achievements. Running
	// it twice never double-awards.
	CheckAndAward(userID uint) ([]model.Achievement, error)
	GetUserAchievements(userID uint) ([]model.UserAchievement, error)
	GetCatalog() ([]model.Achievement, error)
}

type achievementService struct {
	achievementRepo repository.AchievementRepository
	quizRepo        repository.QuizRepository
	rules           map[string]AchievementRule
}

func NewAchievementService(achievementRepo repository.AchievementRepository, quizRepo repository.QuizRepository) AchievementService {
	return &achievementService{
		achievementRepo: achievementRepo,
		quizRepo:        quizRepo,
		rules:           DefaultRules(),
	}
}

func (s *achievementService) CheckAndAward(userID uint) ([]model.Achievement, error) {
	attempts, err := s.quizRepo.GetAttemptsByUser(userID, true)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}
	stats := buildStats(attempts)

	catalog, err := s.achievementRepo.GetAchievements()
	if err != nil {
		return nil, fmt.Errorf("load achievement catalog: %w", err)
	}

	var awarded []model.Achievement
	for _, achievement := range catalog {
		rule, registered := s.rules[achievement.Title]
		if !registered || !rule(stats) {
			continue
		}
		has, err := s.achievementRepo.HasUserAchievement(userID, achievement.ID)
		if err != nil {
			return awarded, err
		}
		if has {
			continue
		}
		ua := &model.UserAchievement{UserID: userID, AchievementID: achievement.ID}
		if err := s.achievementRepo.CreateUserAchievement(ua); err != nil {
			return awarded, err
		}
		awarded = append(awarded, achievement)
		utilities.GlobalEventBus.Publish(utilities.EventAchievementAwarded, ua)
	}
	return awarded, nil
}

func (s *achievementService) GetUserAchievements(userID uint) ([]model.UserAchievement, error) {
	return s.achievementRepo.GetUserAchievements(userID)
}

func (s *achievementService) GetCatalog() ([]model.Achievement, error) {
	return s.achievementRepo.GetAchievements()
}

func buildStats(attempts []model.QuizAttempt) AttemptStats {
	stats := AttemptStats{CompletedCount: len(attempts)}
	for _, a := range attempts {
		if a.Score == a.MaxScore {
			stats.HasPerfectScore = true
			break
		}
	}
	return stats
}
