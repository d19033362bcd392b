package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/repository"
	logger "fornsaga-backend/pkg/logging"
	"fornsaga-backend/utilities"
)

const leaderboardKey = "leaderboard:percentage"

// LeaderboardEntry is one row on the public leaderboard.
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	UserID       uint    `json:"user_id"`
	Username     string  `json:"username"`
	Attempts     int     `json:"attempts"`
	TotalScore   int     `json:"total_score"`
	Percentage   float64 `json:"percentage"`
	Achievements int64   `json:"achievements"`
}

type LeaderboardService interface {
	GetLeaderboard(limit int) ([]LeaderboardEntry, error)
	// InitEventListeners keeps the Redis cache in step with completed
	// attempts.
	InitEventListeners()
}

type leaderboardService struct {
	quizRepo        repository.QuizRepository
	userRepo        repository.UserRepository
	achievementRepo repository.AchievementRepository
	cache           *redis.Client // nil disables the cache
	ctx             context.Context
}

func NewLeaderboardService(quizRepo repository.QuizRepository, userRepo repository.UserRepository, achievementRepo repository.AchievementRepository, cache *redis.Client) LeaderboardService {
	return &leaderboardService{
		quizRepo:        quizRepo,
		userRepo:        userRepo,
		achievementRepo: achievementRepo,
		cache:           cache,
		ctx:             context.Background(),
	}
}

// InitEventListeners subscribes to completed attempts and refreshes the
// affected user's cached percentage.
func (s *leaderboardService) InitEventListeners() {
	if s.cache == nil {
		return
	}
	utilities.GlobalEventBus.Subscribe(utilities.EventAttemptCompleted, func(data interface{}) {
		attempt, ok := data.(*model.QuizAttempt)
		if !ok {
			return
		}
		if err := s.refreshUser(attempt.UserID); err != nil {
			logger.Warn("leaderboard cache update for user %d failed: %v", attempt.UserID, err)
		}
	})
}

// GetLeaderboard serves the top users by overall percentage, from the
// Redis ZSet when available, otherwise straight from the store.
func (s *leaderboardService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	if s.cache != nil {
		entries, err := s.fromCache(limit)
		if err == nil && len(entries) > 0 {
			return entries, nil
		}
		if err != nil {
			logger.Warn("leaderboard cache read failed, falling back to database: %v", err)
		}
	}
	return s.fromDatabase(limit)
}

func (s *leaderboardService) fromCache(limit int) ([]LeaderboardEntry, error) {
	results, err := s.cache.ZRevRangeWithScores(s.ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(results))
	for _, result := range results {
		id, err := strconv.ParseUint(result.Member.(string), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	names, err := s.userRepo.GetUsernames(ids)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for i, result := range results {
		id, err := strconv.ParseUint(result.Member.(string), 10, 64)
		if err != nil {
			continue
		}
		userID := uint(id)
		attempts, totalScore, _, achievements, err := s.userTotals(userID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			Rank:         i + 1,
			UserID:       userID,
			Username:     names[userID],
			Attempts:     attempts,
			TotalScore:   totalScore,
			Percentage:   result.Score,
			Achievements: achievements,
		})
	}
	return entries, nil
}

func (s *leaderboardService) fromDatabase(limit int) ([]LeaderboardEntry, error) {
	ids, err := s.quizRepo.GetCompletedAttemptUserIDs()
	if err != nil {
		return nil, err
	}
	names, err := s.userRepo.GetUsernames(ids)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(ids))
	for _, userID := range ids {
		attempts, totalScore, percentage, achievements, err := s.userTotals(userID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			UserID:       userID,
			Username:     names[userID],
			Attempts:     attempts,
			TotalScore:   totalScore,
			Percentage:   percentage,
			Achievements: achievements,
		})

		// Rebuild cache entries opportunistically.
		if s.cache != nil {
			s.cache.ZAdd(s.ctx, leaderboardKey, redis.Z{
				Score:  percentage,
				Member: strconv.FormatUint(uint64(userID), 10),
			})
		}
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Percentage > entries[b].Percentage
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// refreshUser recomputes one user's percentage and writes it to the ZSet.
func (s *leaderboardService) refreshUser(userID uint) error {
	_, _, percentage, _, err := s.userTotals(userID)
	if err != nil {
		return err
	}
	return s.cache.ZAdd(s.ctx, leaderboardKey, redis.Z{
		Score:  percentage,
		Member: strconv.FormatUint(uint64(userID), 10),
	}).Err()
}

func (s *leaderboardService) userTotals(userID uint) (attempts, totalScore int, percentage float64, achievements int64, err error) {
	completed, err := s.quizRepo.GetAttemptsByUser(userID, true)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	var maxScore int
	for _, a := range completed {
		totalScore += a.Score
		maxScore += a.MaxScore
	}
	if maxScore > 0 {
		percentage = float64(totalScore) / float64(maxScore) * 100
	}
	achievements, err = s.achievementRepo.CountUserAchievements(userID)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return len(completed), totalScore, percentage, achievements, nil
}
