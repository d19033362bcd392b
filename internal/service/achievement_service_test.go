package service

import (
	"testing"

	"fornsaga-backend/internal/model"
)

type fakeAchievementRepo struct {
	catalog []model.Achievement
	awarded map[uint]map[uint]bool // user -> achievement ids
}

func newFakeAchievementRepo(catalog ...model.Achievement) *fakeAchievementRepo {
	return &fakeAchievementRepo{
		catalog: catalog,
		awarded: make(map[uint]map[uint]bool),
	}
}

func (f *fakeAchievementRepo) GetAchievements() ([]model.Achievement, error) {
	return f.catalog, nil
}

func (f *fakeAchievementRepo) CreateAchievement(achievement *model.Achievement) error {
	f.catalog = append(f.catalog, *achievement)
	return nil
}

func (f *fakeAchievementRepo) HasUserAchievement(userID, achievementID uint) (bool, error) {
	return f.awarded[userID][achievementID], nil
}

func (f *fakeAchievementRepo) CreateUserAchievement(ua *model.UserAchievement) error {
	if f.awarded[ua.UserID] == nil {
		f.awarded[ua.UserID] = make(map[uint]bool)
	}
	f.awarded[ua.UserID][ua.AchievementID] = true
	return nil
}

func (f *fakeAchievementRepo) GetUserAchievements(userID uint) ([]model.UserAchievement, error) {
	var out []model.UserAchievement
	for id := range f.awarded[userID] {
		out = append(out, model.UserAchievement{UserID: userID, AchievementID: id})
	}
	return out, nil
}

func (f *fakeAchievementRepo) CountUserAchievements(userID uint) (int64, error) {
	return int64(len(f.awarded[userID])), nil
}

func defaultCatalog() []model.Achievement {
	return []model.Achievement{
		{ID: 1, Title: "First Quiz", TitleIS: "Fyrsta prófið"},
		{ID: 2, Title: "Perfect Score", TitleIS: "Fullt hús"},
		{ID: 3, Title: "History Buff", TitleIS: "Söguáhugamaður"},
	}
}

func addCompletedAttempts(repo *fakeQuizRepo, userID uint, n int, score, maxScore int) {
	for i := 0; i < n; i++ {
		repo.attemptsByUser[userID] = append(repo.attemptsByUser[userID], model.QuizAttempt{
			UserID:    userID,
			Score:     score,
			MaxScore:  maxScore,
			Completed: true,
		})
	}
}

func TestCheckAndAwardFirstQuiz(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	achRepo := newFakeAchievementRepo(defaultCatalog()...)
	svc := NewAchievementService(achRepo, quizRepo)

	addCompletedAttempts(quizRepo, 1, 1, 3, 5)

	awarded, err := svc.CheckAndAward(1)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}
	if len(awarded) != 1 || awarded[0].Title != "First Quiz" {
		t.Fatalf("awarded = %v, want just First Quiz", titles(awarded))
	}

	// Running again must not re-award.
	awarded, err = svc.CheckAndAward(1)
	if err != nil {
		t.Fatalf("second CheckAndAward: %v", err)
	}
	if len(awarded) != 0 {
		t.Errorf("second run awarded %v, want nothing", titles(awarded))
	}
}

func TestCheckAndAwardPerfectScore(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	achRepo := newFakeAchievementRepo(defaultCatalog()...)
	svc := NewAchievementService(achRepo, quizRepo)

	addCompletedAttempts(quizRepo, 1, 1, 5, 5)

	awarded, err := svc.CheckAndAward(1)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}
	got := titles(awarded)
	if !contains(got, "First Quiz") || !contains(got, "Perfect Score") {
		t.Errorf("awarded = %v, want First Quiz and Perfect Score", got)
	}
	if contains(got, "History Buff") {
		t.Errorf("History Buff awarded after a single attempt")
	}
}

func TestCheckAndAwardHistoryBuff(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	achRepo := newFakeAchievementRepo(defaultCatalog()...)
	svc := NewAchievementService(achRepo, quizRepo)

	addCompletedAttempts(quizRepo, 1, 9, 3, 5)
	awarded, _ := svc.CheckAndAward(1)
	if contains(titles(awarded), "History Buff") {
		t.Fatal("History Buff awarded at 9 attempts")
	}

	addCompletedAttempts(quizRepo, 1, 1, 3, 5)
	awarded, err := svc.CheckAndAward(1)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}
	if !contains(titles(awarded), "History Buff") {
		t.Errorf("awarded = %v, want History Buff at 10 attempts", titles(awarded))
	}
}

func TestCheckAndAwardUnknownTitleIsInert(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	catalog := append(defaultCatalog(), model.Achievement{ID: 4, Title: "Night Owl"})
	achRepo := newFakeAchievementRepo(catalog...)
	svc := NewAchievementService(achRepo, quizRepo)

	addCompletedAttempts(quizRepo, 1, 1, 5, 5)

	awarded, err := svc.CheckAndAward(1)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}
	if contains(titles(awarded), "Night Owl") {
		t.Error("catalog row without a registered rule must never be awarded")
	}
}

func TestCheckAndAwardNoAttempts(t *testing.T) {
	quizRepo := newFakeQuizRepo()
	achRepo := newFakeAchievementRepo(defaultCatalog()...)
	svc := NewAchievementService(achRepo, quizRepo)

	awarded, err := svc.CheckAndAward(1)
	if err != nil {
		t.Fatalf("CheckAndAward: %v", err)
	}
	if len(awarded) != 0 {
		t.Errorf("awarded = %v, want nothing without completed attempts", titles(awarded))
	}
}

func titles(achievements []model.Achievement) []string {
	out := make([]string, len(achievements))
	for i, a := range achievements {
		out[i] = a.Title
	}
	return out
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
