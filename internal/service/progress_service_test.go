package service

import (
	"bytes"
	"testing"

	"fornsaga-backend/internal/apperrors"
	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/repository"
)

type fakeContentRepo struct {
	periods []model.HistoricalPeriod
}

func (f *fakeContentRepo) GetPeriods() ([]model.HistoricalPeriod, error) {
	return f.periods, nil
}

func (f *fakeContentRepo) GetPeriodByID(id uint) (*model.HistoricalPeriod, error) {
	for i := range f.periods {
		if f.periods[i].ID == id {
			return &f.periods[i], nil
		}
	}
	return nil, apperrors.NotFoundf("period %d", id)
}

func (f *fakeContentRepo) GetCivilizations(periodID uint) ([]model.Civilization, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetPeople(periodID uint, category string) ([]model.Person, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetPersonByID(id uint) (*model.Person, error) {
	return nil, apperrors.NotFoundf("person %d", id)
}

func (f *fakeContentRepo) GetDeities(periodID uint) ([]model.Deity, error) { return nil, nil }

func (f *fakeContentRepo) GetDeityByID(id uint) (*model.Deity, error) {
	return nil, apperrors.NotFoundf("deity %d", id)
}

func (f *fakeContentRepo) GetBattles(periodID uint) ([]model.Battle, error) { return nil, nil }

func (f *fakeContentRepo) GetBattleByID(id uint) (*model.Battle, error) {
	return nil, apperrors.NotFoundf("battle %d", id)
}

func (f *fakeContentRepo) GetCulturalTopics(periodID uint, category string) ([]model.CulturalTopic, error) {
	return nil, nil
}

func (f *fakeContentRepo) GetCulturalTopicByID(id uint) (*model.CulturalTopic, error) {
	return nil, apperrors.NotFoundf("topic %d", id)
}

func (f *fakeContentRepo) GetTimelineEvents(filter repository.EventFilter) ([]model.TimelineEvent, error) {
	return nil, nil
}

func (f *fakeContentRepo) Search(term string, limit int) (*model.SearchResults, error) {
	return &model.SearchResults{}, nil
}

func progressFixture() (*fakeQuizRepo, *fakeContentRepo, *fakeAchievementRepo) {
	quizRepo := newFakeQuizRepo()
	greekID := uint(2)
	romanID := uint(3)
	quizRepo.quizzes[1] = &model.Quiz{ID: 1, TitleIS: "Forn-Grikkland", PeriodID: &greekID, IsPublished: true}
	quizRepo.quizzes[2] = &model.Quiz{ID: 2, TitleIS: "Rómaveldi", PeriodID: &romanID, IsPublished: true}

	quizRepo.attemptsByUser[1] = []model.QuizAttempt{
		{UserID: 1, QuizID: 1, Score: 4, MaxScore: 5, Completed: true},
		{UserID: 1, QuizID: 1, Score: 5, MaxScore: 5, Completed: true},
		{UserID: 1, QuizID: 2, Score: 3, MaxScore: 5, Completed: true},
		{UserID: 1, QuizID: 2, Score: 0, MaxScore: 0, Completed: false}, // abandoned
	}

	contentRepo := &fakeContentRepo{periods: []model.HistoricalPeriod{
		{ID: 2, Name: "Ancient Greece", NameIS: "Forn-Grikkland"},
		{ID: 3, Name: "Roman Empire", NameIS: "Rómaveldi"},
	}}
	return quizRepo, contentRepo, newFakeAchievementRepo(defaultCatalog()...)
}

func TestGetProgressAggregates(t *testing.T) {
	quizRepo, contentRepo, achRepo := progressFixture()
	svc := NewProgressService(quizRepo, contentRepo, achRepo)

	data, err := svc.GetProgress(1)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}

	if data.TotalAttempts != 4 || data.CompletedAttempts != 3 {
		t.Errorf("attempts = %d/%d, want 3 completed of 4", data.CompletedAttempts, data.TotalAttempts)
	}
	if data.TotalScore != 12 || data.TotalMaxScore != 15 {
		t.Errorf("totals = %d/%d, want 12/15", data.TotalScore, data.TotalMaxScore)
	}
	if data.AveragePercentage != 80.0 {
		t.Errorf("average = %.1f, want 80.0", data.AveragePercentage)
	}

	if len(data.PeriodStats) != 2 {
		t.Fatalf("got %d period stats, want 2", len(data.PeriodStats))
	}
	byName := make(map[string]PeriodStats, len(data.PeriodStats))
	for _, ps := range data.PeriodStats {
		byName[ps.PeriodName] = ps
	}
	if greek := byName["Forn-Grikkland"]; greek.Attempts != 2 || greek.Percentage != 90.0 {
		t.Errorf("greek stats = %+v, want 2 attempts at 90%%", greek)
	}
	if roman := byName["Rómaveldi"]; roman.Attempts != 1 || roman.Percentage != 60.0 {
		t.Errorf("roman stats = %+v, want 1 attempt at 60%%", roman)
	}
}

func TestGetProgressEmptyHistory(t *testing.T) {
	quizRepo, contentRepo, achRepo := progressFixture()
	svc := NewProgressService(quizRepo, contentRepo, achRepo)

	data, err := svc.GetProgress(99)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if data.TotalAttempts != 0 || data.AveragePercentage != 0 {
		t.Errorf("data = %+v, want zeroes for a user without attempts", data)
	}
}

func TestRenderReportProducesPDF(t *testing.T) {
	quizRepo, contentRepo, achRepo := progressFixture()
	svc := NewProgressService(quizRepo, contentRepo, achRepo)

	out, err := svc.RenderReport(1, "saga_fan")
	if err != nil {
		t.Fatalf("RenderReport: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF (first bytes: %q)", out[:min(len(out), 8)])
	}
}
