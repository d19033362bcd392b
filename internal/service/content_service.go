package service

import (
	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/repository"
)

// PeriodHome bundles the sample content shown on a period's landing page.
type PeriodHome struct {
	Period         model.HistoricalPeriod `json:"period"`
	TimelineEvents []model.TimelineEvent  `json:"timeline_events"`
	People         []model.Person         `json:"people"`
	Deities        []model.Deity          `json:"deities"`
	CulturalTopics []model.CulturalTopic  `json:"cultural_topics"`
	Quizzes        []model.Quiz           `json:"quizzes"`
}

type ContentService interface {
	GetPeriods() ([]model.HistoricalPeriod, error)
	GetPeriodHome(periodID uint, sampleSize int) (*PeriodHome, error)
	GetCivilizations(periodID uint) ([]model.Civilization, error)
	GetPeople(periodID uint, category string) ([]model.Person, error)
	GetPersonByID(id uint) (*model.Person, error)
	GetDeities(periodID uint) ([]model.Deity, error)
	GetDeityByID(id uint) (*model.Deity, error)
	GetBattles(periodID uint) ([]model.Battle, error)
	GetBattleByID(id uint) (*model.Battle, error)
	GetCulturalTopics(periodID uint, category string) ([]model.CulturalTopic, error)
	GetCulturalTopicByID(id uint) (*model.CulturalTopic, error)
	GetTimelineEvents(filter repository.EventFilter) ([]model.TimelineEvent, error)
	Search(term string, limit int) (*model.SearchResults, error)
}

type contentService struct {
	contentRepo repository.ContentRepository
	quizRepo    repository.QuizRepository
	searchLimit int
}

func NewContentService(contentRepo repository.ContentRepository, quizRepo repository.QuizRepository, searchLimit int) ContentService {
	return &contentService{contentRepo: contentRepo, quizRepo: quizRepo, searchLimit: searchLimit}
}

func (s *contentService) GetPeriods() ([]model.HistoricalPeriod, error) {
	return s.contentRepo.GetPeriods()
}

// GetPeriodHome gathers a sample of every content type for one period.
func (s *contentService) GetPeriodHome(periodID uint, sampleSize int) (*PeriodHome, error) {
	period, err := s.contentRepo.GetPeriodByID(periodID)
	if err != nil {
		return nil, err
	}

	events, err := s.contentRepo.GetTimelineEvents(repository.EventFilter{PeriodID: periodID})
	if err != nil {
		return nil, err
	}
	people, err := s.contentRepo.GetPeople(periodID, "")
	if err != nil {
		return nil, err
	}
	deities, err := s.contentRepo.GetDeities(periodID)
	if err != nil {
		return nil, err
	}
	topics, err := s.contentRepo.GetCulturalTopics(periodID, "")
	if err != nil {
		return nil, err
	}
	quizzes, err := s.quizRepo.GetPublishedQuizzes(repository.QuizFilter{PeriodID: periodID})
	if err != nil {
		return nil, err
	}

	return &PeriodHome{
		Period:         *period,
		TimelineEvents: capSample(events, sampleSize),
		People:         capSample(people, sampleSize),
		Deities:        capSample(deities, sampleSize),
		CulturalTopics: capSample(topics, sampleSize),
		Quizzes:        capSample(quizzes, sampleSize),
	}, nil
}

func (s *contentService) GetCivilizations(periodID uint) ([]model.Civilization, error) {
	return s.contentRepo.GetCivilizations(periodID)
}

func (s *contentService) GetPeople(periodID uint, category string) ([]model.Person, error) {
	return s.contentRepo.GetPeople(periodID, category)
}

func (s *contentService) GetPersonByID(id uint) (*model.Person, error) {
	return s.contentRepo.GetPersonByID(id)
}

func (s *contentService) GetDeities(periodID uint) ([]model.Deity, error) {
	return s.contentRepo.GetDeities(periodID)
}

func (s *contentService) GetDeityByID(id uint) (*model.Deity, error) {
	return s.contentRepo.GetDeityByID(id)
}

func (s *contentService) GetBattles(periodID uint) ([]model.Battle, error) {
	return s.contentRepo.GetBattles(periodID)
}

func (s *contentService) GetBattleByID(id uint) (*model.Battle, error) {
	return s.contentRepo.GetBattleByID(id)
}

func (s *contentService) GetCulturalTopics(periodID uint, category string) ([]model.CulturalTopic, error) {
	return s.contentRepo.GetCulturalTopics(periodID, category)
}

func (s *contentService) GetCulturalTopicByID(id uint) (*model.CulturalTopic, error) {
	return s.contentRepo.GetCulturalTopicByID(id)
}

func (s *contentService) GetTimelineEvents(filter repository.EventFilter) ([]model.TimelineEvent, error) {
	return s.contentRepo.GetTimelineEvents(filter)
}

// Search caps per-category hits at the configured page size unless the
// caller asks for fewer.
func (s *contentService) Search(term string, limit int) (*model.SearchResults, error) {
	if limit <= 0 || limit > s.searchLimit {
		limit = s.searchLimit
	}
	return s.contentRepo.Search(term, limit)
}

func capSample[T any](in []T, n int) []T {
	if n > 0 && len(in) > n {
		return in[:n]
	}
	return in
}
