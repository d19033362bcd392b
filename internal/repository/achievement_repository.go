package repository

import (
	"fornsaga-backend/internal/db"
	"fornsaga-backend/internal/model"
)

type AchievementRepository interface {
	GetAchievements() ([]model.Achievement, error)
	CreateAchievement(achievement *model.Achievement) error
	HasUserAchievement(userID, achievementID uint) (bool, error)
	CreateUserAchievement(ua *model.UserAchievement) error
	GetUserAchievements(userID uint) ([]model.UserAchievement, error)
	CountUserAchievements(userID uint) (int64, error)
}

type achievementRepository struct{}

func NewAchievementRepository() AchievementRepository {
	return &achievementRepository{}
}

func (r *achievementRepository) GetAchievements() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := db.GetDB().Order("id").Find(&achievements).Error
	return achievements, err
}

func (r *achievementRepository) CreateAchievement(achievement *model.Achievement) error {
	return db.GetDB().Create(achievement).Error
}

func (r *achievementRepository) HasUserAchievement(userID, achievementID uint) (bool, error) {
	var count int64
	err := db.GetDB().Model(&model.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Count(&count).Error
	return count > 0, err
}

func (r *achievementRepository) CreateUserAchievement(ua *model.UserAchievement) error {
	return db.GetDB().Create(ua).Error
}

func (r *achievementRepository) GetUserAchievements(userID uint) ([]model.UserAchievement, error) {
	var earned []model.UserAchievement
	err := db.GetDB().Preload("Achievement").
		Where("user_id = ?", userID).Order("date_earned DESC").
		Find(&earned).Error
	return earned, err
}

func (r *achievementRepository) CountUserAchievements(userID uint) (int64, error) {
	var count int64
	err := db.GetDB().Model(&model.UserAchievement{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
