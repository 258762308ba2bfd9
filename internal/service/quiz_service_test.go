package service

import (
	"testing"

	"space_academy_backend/internal/config"
	"space_academy_backend/internal/model"
	"space_academy_backend/internal/util"
)

// memoryKeyStore mimics the Redis attempt store: one key per user,
// overwritten on re-issue, gone once deleted.
type memoryKeyStore struct {
	keys map[uint]map[string]string
	puts int
}

func newMemoryKeyStore() *memoryKeyStore {
	return &memoryKeyStore{keys: make(map[uint]map[string]string)}
}

func (m *memoryKeyStore) PutKey(userID uint, answerKey map[string]string) error {
	m.puts++
	m.keys[userID] = answerKey
	return nil
}

func (m *memoryKeyStore) GetKey(userID uint) (map[string]string, error) {
	key, ok := m.keys[userID]
	if !ok {
		return nil, util.ErrNoActiveAttempt
	}
	return key, nil
}

func (m *memoryKeyStore) DeleteKey(userID uint) error {
	delete(m.keys, userID)
	return nil
}

type fixedBank struct {
	questions []model.QuizQuestion
}

func (b *fixedBank) RandomQuestions(n int) ([]model.QuizQuestion, error) {
	if n > len(b.questions) {
		n = len(b.questions)
	}
	return b.questions[:n], nil
}

type fixedFactSource struct {
	question GeneratedQuestion
}

func (f *fixedFactSource) DailyFactQuestion() (*GeneratedQuestion, error) {
	q := f.question
	return &q, nil
}

type resultRecorder struct {
	results []*model.QuizResult
}

func (r *resultRecorder) SaveResult(result *model.QuizResult) error {
	r.results = append(r.results, result)
	return nil
}

// recordingLedger wraps the real progression service so graded outcomes carry
// true XP and level while the test still sees every award.
type recordingLedger struct {
	inner  *ProgressionService
	awards []int
}

func (l *recordingLedger) AwardExperience(userID uint, amount int) (*model.User, error) {
	l.awards = append(l.awards, amount)
	return l.inner.AwardExperience(userID, amount)
}

func newQuizHarness(t *testing.T) (*QuizService, *memoryKeyStore, *resultRecorder, *recordingLedger, *memoryUserStore) {
	t.Helper()

	store := newMemoryUserStore(&model.User{BaseModel: model.BaseModel{ID: 1}, XP: 90, Level: 1})
	ledger := &recordingLedger{
		inner: NewProgressionService(store, &badgeRecorder{}, config.GameConfig{LevelThresholds: testThresholds}),
	}

	bank := &fixedBank{questions: []model.QuizQuestion{
		{Code: "q1", Type: model.QuestionMCQ, Prompt: "Which planet is the largest?", Options: `["Jupiter","Mars","Venus"]`, Answer: "Jupiter"},
		{Code: "q2", Type: model.QuestionText, Prompt: "What galaxy do we live in?", Answer: "Milky Way"},
	}}
	facts := &fixedFactSource{question: GeneratedQuestion{
		ID:     "fact-tides",
		Prompt: "What causes the ocean tides?",
		Type:   "mcq",
		Options: []string{
			"The Moon's gravity", "Wind", "Earthquakes",
		},
		Answer: "The Moon's gravity",
	}}

	attempts := newMemoryKeyStore()
	results := &resultRecorder{}

	svc := NewQuizService(bank, facts, attempts, results, ledger, store,
		config.GameConfig{QuizPoints: 10, QuizBankDraw: 2, LevelThresholds: testThresholds})
	return svc, attempts, results, ledger, store
}

func TestStartDailyQuiz_IssuesQuestionsWithoutAnswers(t *testing.T) {
	svc, attempts, _, _, _ := newQuizHarness(t)

	views, err := svc.StartDailyQuiz(1)
	if err != nil {
		t.Fatalf("StartDailyQuiz: %v", err)
	}

	if len(views) != 3 {
		t.Fatalf("expected 3 questions (fact + bank draw), got %d", len(views))
	}
	if views[0].ID != "fact-tides" {
		t.Errorf("fact question must come first, got %q", views[0].ID)
	}

	key, err := attempts.GetKey(1)
	if err != nil {
		t.Fatalf("answer key was not stored: %v", err)
	}
	want := map[string]string{
		"fact-tides": "The Moon's gravity",
		"q1":         "Jupiter",
		"q2":         "Milky Way",
	}
	if len(key) != len(want) {
		t.Fatalf("answer key has %d entries, want %d", len(key), len(want))
	}
	for id, answer := range want {
		if key[id] != answer {
			t.Errorf("key[%q] = %q, want %q", id, key[id], answer)
		}
	}
}

func TestStartDailyQuiz_ReissueReplacesKey(t *testing.T) {
	svc, attempts, _, _, _ := newQuizHarness(t)

	if _, err := svc.StartDailyQuiz(1); err != nil {
		t.Fatalf("first issue: %v", err)
	}
	if _, err := svc.StartDailyQuiz(1); err != nil {
		t.Fatalf("second issue: %v", err)
	}

	if attempts.puts != 2 {
		t.Errorf("expected 2 key writes, got %d", attempts.puts)
	}
	if _, err := attempts.GetKey(1); err != nil {
		t.Errorf("re-issue must leave one active key: %v", err)
	}
}

func TestSubmitDailyQuiz_GradesAndAdvancesLevel(t *testing.T) {
	svc, attempts, results, ledger, _ := newQuizHarness(t)

	if _, err := svc.StartDailyQuiz(1); err != nil {
		t.Fatalf("StartDailyQuiz: %v", err)
	}

	outcome, err := svc.SubmitDailyQuiz(1, map[string]string{
		"fact-tides": "the moon's gravity",
		"q1":         "Jupiter",
		"q2":         "Andromeda",
	})
	if err != nil {
		t.Fatalf("SubmitDailyQuiz: %v", err)
	}

	if outcome.CorrectCount != 2 || outcome.TotalQuestions != 3 {
		t.Errorf("score = %d/%d, want 2/3", outcome.CorrectCount, outcome.TotalQuestions)
	}
	if outcome.ExperienceAwarded != 20 {
		t.Errorf("ExperienceAwarded = %d, want 20", outcome.ExperienceAwarded)
	}
	// 90 + 20 = 110 crosses the 100 threshold
	if outcome.TotalXP != 110 || outcome.NewLevel != 2 {
		t.Errorf("got XP=%d Level=%d, want XP=110 Level=2", outcome.TotalXP, outcome.NewLevel)
	}

	if len(ledger.awards) != 1 || ledger.awards[0] != 20 {
		t.Errorf("ledger awards = %v, want [20]", ledger.awards)
	}

	if len(results.results) != 1 {
		t.Fatalf("expected 1 result row, got %d", len(results.results))
	}
	row := results.results[0]
	if row.Kind != model.ActivityDailyQuiz || row.Score != 2 || row.Total != 3 || row.XPAwarded != 20 {
		t.Errorf("unexpected result row %+v", row)
	}

	if _, err := attempts.GetKey(1); err != util.ErrNoActiveAttempt {
		t.Errorf("answer key must be deleted after grading, got %v", err)
	}
}

func TestSubmitDailyQuiz_ResubmissionCannotAwardTwice(t *testing.T) {
	svc, _, results, ledger, _ := newQuizHarness(t)

	if _, err := svc.StartDailyQuiz(1); err != nil {
		t.Fatalf("StartDailyQuiz: %v", err)
	}

	submission := map[string]string{
		"fact-tides": "The Moon's gravity",
		"q1":         "Jupiter",
		"q2":         "Milky Way",
	}

	first, err := svc.SubmitDailyQuiz(1, submission)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if first.ExperienceAwarded != 30 {
		t.Fatalf("first submit awarded %d, want 30", first.ExperienceAwarded)
	}

	second, err := svc.SubmitDailyQuiz(1, submission)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.TotalQuestions != 0 || second.ExperienceAwarded != 0 {
		t.Errorf("replay must grade as empty, got %+v", second)
	}
	if second.TotalXP != first.TotalXP || second.NewLevel != first.NewLevel {
		t.Errorf("replay must report unchanged state: first %+v, second %+v", first, second)
	}

	if len(ledger.awards) != 1 {
		t.Errorf("ledger must see exactly one award, got %v", ledger.awards)
	}
	if len(results.results) != 1 {
		t.Errorf("replay must not add a result row, got %d rows", len(results.results))
	}
}

func TestSubmitDailyQuiz_WithoutIssuedQuiz(t *testing.T) {
	svc, _, results, ledger, _ := newQuizHarness(t)

	outcome, err := svc.SubmitDailyQuiz(1, map[string]string{"q1": "Jupiter"})
	if err != nil {
		t.Fatalf("SubmitDailyQuiz: %v", err)
	}
	if outcome.TotalQuestions != 0 || outcome.ExperienceAwarded != 0 {
		t.Errorf("submission without an issued quiz must score zero, got %+v", outcome)
	}
	if outcome.TotalXP != 90 || outcome.NewLevel != 1 {
		t.Errorf("outcome must carry current state, got XP=%d Level=%d", outcome.TotalXP, outcome.NewLevel)
	}
	if len(ledger.awards) != 0 || len(results.results) != 0 {
		t.Errorf("no award or result row expected, got awards=%v rows=%d", ledger.awards, len(results.results))
	}
}

func TestSubmitDailyQuiz_AllWrongSkipsLedger(t *testing.T) {
	svc, _, results, ledger, _ := newQuizHarness(t)

	if _, err := svc.StartDailyQuiz(1); err != nil {
		t.Fatalf("StartDailyQuiz: %v", err)
	}

	outcome, err := svc.SubmitDailyQuiz(1, map[string]string{
		"fact-tides": "Wind",
		"q1":         "Mars",
		"q2":         "Andromeda",
	})
	if err != nil {
		t.Fatalf("SubmitDailyQuiz: %v", err)
	}

	if outcome.CorrectCount != 0 || outcome.ExperienceAwarded != 0 {
		t.Errorf("expected zero score, got %+v", outcome)
	}
	if outcome.TotalXP != 90 || outcome.NewLevel != 1 {
		t.Errorf("state must be unchanged, got XP=%d Level=%d", outcome.TotalXP, outcome.NewLevel)
	}
	if len(ledger.awards) != 0 {
		t.Errorf("zero score must not touch the ledger, got %v", ledger.awards)
	}
	// the attempt is still recorded
	if len(results.results) != 1 || results.results[0].Score != 0 {
		t.Errorf("zero-score attempt must still save a result row, got %+v", results.results)
	}
}
