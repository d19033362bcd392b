package repository

import (
	"errors"

	"gorm.io/gorm"

	"fornsaga-backend/internal/apperrors"
	"fornsaga-backend/internal/db"
	"fornsaga-backend/internal/model"
)

// EventFilter narrows timeline event queries. Zero values mean "any".
type EventFilter struct {
	PeriodID      uint
	Category      string
	MinImportance int
	YearFrom      *int
	YearTo        *int
}

type ContentRepository interface {
	GetPeriods() ([]model.HistoricalPeriod, error)
	GetPeriodByID(id uint) (*model.HistoricalPeriod, error)
	GetCivilizations(periodID uint) ([]model.Civilization, error)
	GetPeople(periodID uint, category string) ([]model.Person, error)
	GetPersonByID(id uint) (*model.Person, error)
	GetDeities(periodID uint) ([]model.Deity, error)
	GetDeityByID(id uint) (*model.Deity, error)
	GetBattles(periodID uint) ([]model.Battle, error)
	GetBattleByID(id uint) (*model.Battle, error)
	GetCulturalTopics(periodID uint, category string) ([]model.CulturalTopic, error)
	GetCulturalTopicByID(id uint) (*model.CulturalTopic, error)
	GetTimelineEvents(filter EventFilter) ([]model.TimelineEvent, error)
	Search(term string, limit int) (*model.SearchResults, error)
}

type contentRepository struct{}

func NewContentRepository() ContentRepository {
	return &contentRepository{}
}

func (r *contentRepository) GetPeriods() ([]model.HistoricalPeriod, error) {
	var periods []model.HistoricalPeriod
	err := db.GetDB().Order("start_year").Find(&periods).Error
	return periods, err
}

func (r *contentRepository) GetPeriodByID(id uint) (*model.HistoricalPeriod, error) {
	var period model.HistoricalPeriod
	err := db.GetDB().Preload("Subperiods").Where("id = ?", id).First(&period).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFoundf("period %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *contentRepository) GetCivilizations(periodID uint) ([]model.Civilization, error) {
	var civs []model.Civilization
	q := db.GetDB().Order("start_year")
	if periodID != 0 {
		q = q.Where("period_id = ?", periodID)
	}
	err := q.Find(&civs).Error
	return civs, err
}

func (r *contentRepository) GetPeople(periodID uint, category string) ([]model.Person, error) {
	var people []model.Person
	q := db.GetDB().Order("name_is")
	if periodID != 0 {
		q = q.Where("period_id = ?", periodID)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&people).Error
	return people, err
}

func (r *contentRepository) GetPersonByID(id uint) (*model.Person, error) {
	var person model.Person
	err := db.GetDB().Where("id = ?", id).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFoundf("person %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *contentRepository) GetDeities(periodID uint) ([]model.Deity, error) {
	var deities []model.Deity
	q := db.GetDB().Order("name_is")
	if periodID != 0 {
		// Deities hang off civilizations, not periods.
		q = q.Where("civilization_id IN (SELECT id FROM civilizations WHERE period_id = ?)", periodID)
	}
	err := q.Find(&deities).Error
	return deities, err
}

func (r *contentRepository) GetDeityByID(id uint) (*model.Deity, error) {
	var deity model.Deity
	err := db.GetDB().Where("id = ?", id).First(&deity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFoundf("deity %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &deity, nil
}

func (r *contentRepository) GetBattles(periodID uint) ([]model.Battle, error) {
	var battles []model.Battle
	q := db.GetDB().Order("year")
	if periodID != 0 {
		q = q.Where("period_id = ?", periodID)
	}
	err := q.Find(&battles).Error
	return battles, err
}

func (r *contentRepository) GetBattleByID(id uint) (*model.Battle, error) {
	var battle model.Battle
	err := db.GetDB().Where("id = ?", id).First(&battle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFoundf("battle %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &battle, nil
}

func (r *contentRepository) GetCulturalTopics(periodID uint, category string) ([]model.CulturalTopic, error) {
	var topics []model.CulturalTopic
	q := db.GetDB().Order("title_is")
	if periodID != 0 {
		q = q.Where("period_id = ?", periodID)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&topics).Error
	return topics, err
}

func (r *contentRepository) GetCulturalTopicByID(id uint) (*model.CulturalTopic, error) {
	var topic model.CulturalTopic
	err := db.GetDB().Where("id = ?", id).First(&topic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFoundf("cultural topic %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *contentRepository) GetTimelineEvents(filter EventFilter) ([]model.TimelineEvent, error) {
	var events []model.TimelineEvent
	q := db.GetDB().Order("date_start, importance")
	if filter.PeriodID != 0 {
		q = q.Where("period_id = ?", filter.PeriodID)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MinImportance > 0 {
		q = q.Where("importance >= ?", filter.MinImportance)
	}
	if filter.YearFrom != nil {
		q = q.Where("date_start >= ?", *filter.YearFrom)
	}
	if filter.YearTo != nil {
		q = q.Where("date_start <= ?", *filter.YearTo)
	}
	err := q.Find(&events).Error
	return events, err
}

func (r *contentRepository) Search(term string, limit int) (*model.SearchResults, error) {
	results := &model.SearchResults{}
	pattern := "%" + term + "%"
	conn := db.GetDB()

	if err := conn.Where("name ILIKE ? OR name_is ILIKE ?", pattern, pattern).
		Limit(limit).Find(&results.People).Error; err != nil {
		return nil, err
	}
	if err := conn.Where("name ILIKE ? OR name_is ILIKE ?", pattern, pattern).
		Limit(limit).Find(&results.Deities).Error; err != nil {
		return nil, err
	}
	if err := conn.Where("name ILIKE ? OR name_is ILIKE ?", pattern, pattern).
		Limit(limit).Find(&results.Battles).Error; err != nil {
		return nil, err
	}
	if err := conn.Where("title ILIKE ? OR title_is ILIKE ?", pattern, pattern).
		Limit(limit).Find(&results.CulturalTopics).Error; err != nil {
		return nil, err
	}
	if err := conn.Where("title ILIKE ? OR title_is ILIKE ?", pattern, pattern).
		Limit(limit).Find(&results.TimelineEvents).Error; err != nil {
		return nil, err
	}
	return results, nil
}
