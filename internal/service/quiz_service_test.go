package service

import (
	"strconv"
	"testing"

	"fornsaga-backend/internal/apperrors"
	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/repository"
)

// fakeQuizRepo serves canned quizzes and records what gets persisted.
type fakeQuizRepo struct {
	quizzes   map[uint]*model.Quiz
	questions map[uint][]model.Question // by quiz id

	createdAttempts  []*model.QuizAttempt
	createdResponses [][]model.QuestionResponse
	attemptsByUser   map[uint][]model.QuizAttempt
	pool             []model.Question
	createdQuizzes   []*model.Quiz
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:        make(map[uint]*model.Quiz),
		questions:      make(map[uint][]model.Question),
		attemptsByUser: make(map[uint][]model.QuizAttempt),
	}
}

func (f *fakeQuizRepo) GetPublishedQuizzes(filter repository.QuizFilter) ([]model.Quiz, error) {
	var out []model.Quiz
	for _, q := range f.quizzes {
		out = append(out, *q)
	}
	return out, nil
}

func (f *fakeQuizRepo) GetPublishedQuizByID(id uint) (*model.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok {
		return nil, apperrors.NotFoundf("quiz %d", id)
	}
	return q, nil
}

func (f *fakeQuizRepo) GetQuestionsByQuiz(quizID uint) ([]model.Question, error) {
	return f.questions[quizID], nil
}

func (f *fakeQuizRepo) GetQuestionsByIDs(ids []uint) ([]model.Question, error) {
	want := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []model.Question
	for _, qs := range f.questions {
		for _, q := range qs {
			if _, ok := want[q.ID]; ok {
				out = append(out, q)
			}
		}
	}
	return out, nil
}

func (f *fakeQuizRepo) GetRandomPublishedQuestions(limit int) ([]model.Question, error) {
	var out []model.Question
	for _, qs := range f.questions {
		out = append(out, qs...)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeQuizRepo) GetQuestionPool(periodID uint, topic string, difficulty int) ([]model.Question, error) {
	return f.pool, nil
}

func (f *fakeQuizRepo) GetTopics() ([]string, error) { return nil, nil }

func (f *fakeQuizRepo) CreateQuizWithQuestions(quiz *model.Quiz, questions []model.Question) error {
	quiz.ID = uint(len(f.createdQuizzes) + 100)
	quiz.Questions = questions
	f.createdQuizzes = append(f.createdQuizzes, quiz)
	return nil
}

func (f *fakeQuizRepo) CreateAttemptWithResponses(attempt *model.QuizAttempt, responses []model.QuestionResponse) error {
	f.createdAttempts = append(f.createdAttempts, attempt)
	f.createdResponses = append(f.createdResponses, responses)
	f.attemptsByUser[attempt.UserID] = append(f.attemptsByUser[attempt.UserID], *attempt)
	return nil
}

func (f *fakeQuizRepo) GetAttemptBySessionID(sessionID string) (*model.QuizAttempt, error) {
	for _, attempts := range f.attemptsByUser {
		for i := range attempts {
			if attempts[i].SessionID == sessionID {
				return &attempts[i], nil
			}
		}
	}
	return nil, apperrors.NotFoundf("attempt %s", sessionID)
}

func (f *fakeQuizRepo) GetAttemptsByUser(userID uint, completedOnly bool) ([]model.QuizAttempt, error) {
	return f.attemptsByUser[userID], nil
}

func (f *fakeQuizRepo) GetCompletedAttemptUserIDs() ([]uint, error) {
	var ids []uint
	for id := range f.attemptsByUser {
		ids = append(ids, id)
	}
	return ids, nil
}

// fakeAchievementService records award checks without touching storage.
type fakeAchievementService struct {
	checkedUsers []uint
}

func (f *fakeAchievementService) CheckAndAward(userID uint) ([]model.Achievement, error) {
	f.checkedUsers = append(f.checkedUsers, userID)
	return nil, nil
}

func (f *fakeAchievementService) GetUserAchievements(userID uint) ([]model.UserAchievement, error) {
	return nil, nil
}

func (f *fakeAchievementService) GetCatalog() ([]model.Achievement, error) { return nil, nil }

// fiveQuestionQuiz builds a published quiz with five multiple choice
// questions whose correct indices are 0, 2, 1, 1, 2.
func fiveQuestionQuiz(repo *fakeQuizRepo) {
	correct := []int{0, 2, 1, 1, 2}
	questions := make([]model.Question, len(correct))
	for i, c := range correct {
		questions[i] = model.Question{
			ID:             uint(i + 1),
			QuizID:         1,
			QuestionText:   "Question " + strconv.Itoa(i+1),
			QuestionTextIS: "Spurning " + strconv.Itoa(i+1),
			QuestionType:   model.QuestionMultipleChoice,
			CorrectAnswer:  strconv.Itoa(c),
			Points:         1,
		}
	}
	repo.quizzes[1] = &model.Quiz{ID: 1, TitleIS: "Prófspurningar", QuizType: model.QuizByPeriod, IsPublished: true}
	repo.questions[1] = questions
}

func TestSubmitQuizScoresAndPersists(t *testing.T) {
	repo := newFakeQuizRepo()
	fiveQuestionQuiz(repo)
	achievements := &fakeAchievementService{}
	svc := NewQuizService(repo, achievements, 5.0, 5)

	// Fourth answer is wrong.
	answers := map[uint]string{1: "0", 2: "2", 3: "1", 4: "0", 5: "2"}
	result, err := svc.SubmitQuiz(42, 1, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if result.Score != 4 || result.MaxScore != 5 {
		t.Errorf("score = %d/%d, want 4/5", result.Score, result.MaxScore)
	}
	if result.SessionID == "" {
		t.Error("expected a session id")
	}
	if len(result.Results) != 5 {
		t.Fatalf("got %d results, want 5", len(result.Results))
	}
	for i, r := range result.Results {
		wantCorrect := i != 3
		if r.IsCorrect != wantCorrect {
			t.Errorf("question %d: is_correct = %v, want %v", r.QuestionID, r.IsCorrect, wantCorrect)
		}
	}

	if len(repo.createdAttempts) != 1 {
		t.Fatalf("got %d persisted attempts, want 1", len(repo.createdAttempts))
	}
	attempt := repo.createdAttempts[0]
	if !attempt.Completed || attempt.EndTime == nil {
		t.Error("attempt should be completed with an end time")
	}
	if attempt.UserID != 42 {
		t.Errorf("attempt user = %d, want 42", attempt.UserID)
	}
	if got := len(repo.createdResponses[0]); got != 5 {
		t.Errorf("got %d response rows, want 5", got)
	}
	if len(achievements.checkedUsers) != 1 || achievements.checkedUsers[0] != 42 {
		t.Errorf("achievement check calls = %v, want [42]", achievements.checkedUsers)
	}
}

func TestSubmitQuizIsDeterministic(t *testing.T) {
	repo := newFakeQuizRepo()
	fiveQuestionQuiz(repo)
	svc := NewQuizService(repo, &fakeAchievementService{}, 5.0, 5)

	answers := map[uint]string{1: "0", 2: "1", 3: "1", 5: "2"}
	first, err := svc.SubmitQuiz(42, 1, answers)
	if err != nil {
		t.Fatalf("first SubmitQuiz: %v", err)
	}
	second, err := svc.SubmitQuiz(42, 1, answers)
	if err != nil {
		t.Fatalf("second SubmitQuiz: %v", err)
	}

	if first.Score != second.Score || first.MaxScore != second.MaxScore {
		t.Errorf("scores differ: %d/%d vs %d/%d", first.Score, first.MaxScore, second.Score, second.MaxScore)
	}
	for i := range first.Results {
		if first.Results[i].IsCorrect != second.Results[i].IsCorrect {
			t.Errorf("question %d: correctness differs between runs", first.Results[i].QuestionID)
		}
	}
	if first.Score < 0 || first.Score > first.MaxScore {
		t.Errorf("score %d out of bounds for max %d", first.Score, first.MaxScore)
	}
	if first.MaxScore != 5 {
		t.Errorf("max score = %d, want the sum of question points (5)", first.MaxScore)
	}
}

func TestSubmitQuizRejectsForeignQuestion(t *testing.T) {
	repo := newFakeQuizRepo()
	fiveQuestionQuiz(repo)
	svc := NewQuizService(repo, &fakeAchievementService{}, 5.0, 5)

	answers := map[uint]string{1: "0", 999: "1"}
	_, err := svc.SubmitQuiz(42, 1, answers)
	if !apperrors.IsValidation(err) {
		t.Fatalf("error = %v, want a validation error", err)
	}
	if len(repo.createdAttempts) != 0 {
		t.Error("nothing should be persisted on rejection")
	}
}

func TestSubmitQuizUnansweredCountsAsZero(t *testing.T) {
	repo := newFakeQuizRepo()
	fiveQuestionQuiz(repo)
	svc := NewQuizService(repo, &fakeAchievementService{}, 5.0, 5)

	// Only two questions answered, both correctly.
	answers := map[uint]string{1: "0", 2: "2"}
	result, err := svc.SubmitQuiz(42, 1, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if result.Score != 2 || result.MaxScore != 5 {
		t.Errorf("score = %d/%d, want 2/5", result.Score, result.MaxScore)
	}
	// Unanswered questions still get a response row.
	if got := len(repo.createdResponses[0]); got != 5 {
		t.Fatalf("got %d response rows, want 5", got)
	}
	for _, resp := range repo.createdResponses[0] {
		if resp.QuestionID > 2 {
			if resp.IsCorrect || resp.PointsEarned != 0 || resp.UserAnswer != "" {
				t.Errorf("question %d: unanswered row = %+v", resp.QuestionID, resp)
			}
		}
	}
}

func TestSubmitQuizAbortsOnBadStoredAnswer(t *testing.T) {
	repo := newFakeQuizRepo()
	repo.quizzes[1] = &model.Quiz{ID: 1, IsPublished: true}
	repo.questions[1] = []model.Question{
		{ID: 1, QuizID: 1, QuestionType: model.QuestionMapIdentification, CorrectAnswer: "garbage", Points: 1},
	}
	svc := NewQuizService(repo, &fakeAchievementService{}, 5.0, 5)

	_, err := svc.SubmitQuiz(42, 1, map[uint]string{1: `{"lat":1,"lng":1}`})
	if !apperrors.IsDataIntegrity(err) {
		t.Fatalf("error = %v, want a data integrity error", err)
	}
	if len(repo.createdAttempts) != 0 {
		t.Error("nothing should be persisted when evaluation fails")
	}
}

func TestSubmitRandomQuizAnonymous(t *testing.T) {
	repo := newFakeQuizRepo()
	fiveQuestionQuiz(repo)
	svc := NewQuizService(repo, &fakeAchievementService{}, 5.0, 5)

	result, err := svc.SubmitRandomQuiz(0, map[uint]string{1: "0", 2: "1"})
	if err != nil {
		t.Fatalf("SubmitRandomQuiz: %v", err)
	}
	if result.Score != 1 || result.MaxScore != 2 {
		t.Errorf("score = %d/%d, want 1/2", result.Score, result.MaxScore)
	}
	if result.SessionID != "" {
		t.Error("anonymous submission must not produce a session id")
	}
	if len(repo.createdAttempts) != 0 {
		t.Error("anonymous submission must not be persisted")
	}
}

func TestSubmitRandomQuizAuthenticatedPersists(t *testing.T) {
	repo := newFakeQuizRepo()
	fiveQuestionQuiz(repo)
	achievements := &fakeAchievementService{}
	svc := NewQuizService(repo, achievements, 5.0, 5)

	result, err := svc.SubmitRandomQuiz(7, map[uint]string{1: "0", 2: "2", 3: "0"})
	if err != nil {
		t.Fatalf("SubmitRandomQuiz: %v", err)
	}
	if result.Score != 2 || result.MaxScore != 3 {
		t.Errorf("score = %d/%d, want 2/3", result.Score, result.MaxScore)
	}
	if result.SessionID == "" {
		t.Error("expected a session id for an authenticated submission")
	}
	if len(repo.createdAttempts) != 1 {
		t.Fatalf("got %d persisted attempts, want 1", len(repo.createdAttempts))
	}
	if len(achievements.checkedUsers) != 1 {
		t.Errorf("achievement check calls = %v, want one", achievements.checkedUsers)
	}
}

func TestSubmitRandomQuizUnknownQuestion(t *testing.T) {
	repo := newFakeQuizRepo()
	fiveQuestionQuiz(repo)
	svc := NewQuizService(repo, &fakeAchievementService{}, 5.0, 5)

	_, err := svc.SubmitRandomQuiz(0, map[uint]string{999: "0"})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("error = %v, want a not found error", err)
	}
}

func TestCreateCustomQuiz(t *testing.T) {
	repo := newFakeQuizRepo()
	for i := 1; i <= 20; i++ {
		repo.pool = append(repo.pool, model.Question{
			ID:            uint(i),
			QuestionType:  model.QuestionMultipleChoice,
			CorrectAnswer: "0",
			Points:        1,
		})
	}
	svc := NewQuizService(repo, &fakeAchievementService{}, 5.0, 5)

	quiz, err := svc.CreateCustomQuiz(CustomQuizInput{
		Title:         "My quiz",
		TitleIS:       "Prófið mitt",
		QuestionCount: 8,
	})
	if err != nil {
		t.Fatalf("CreateCustomQuiz: %v", err)
	}
	if quiz.QuizType != model.QuizCustom || !quiz.IsPublished {
		t.Errorf("quiz = %+v, want a published custom quiz", quiz)
	}
	if len(quiz.Questions) != 8 {
		t.Errorf("got %d questions, want 8", len(quiz.Questions))
	}
}

func TestCreateCustomQuizEmptyPool(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := NewQuizService(repo, &fakeAchievementService{}, 5.0, 5)

	_, err := svc.CreateCustomQuiz(CustomQuizInput{Title: "Empty", TitleIS: "Tómt"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("error = %v, want a validation error", err)
	}
}
