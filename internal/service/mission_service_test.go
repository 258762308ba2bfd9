package service

import (
	"errors"
	"testing"

	"space_academy_backend/internal/config"
	"space_academy_backend/internal/model"
	"space_academy_backend/internal/util"
)

type fixedMissions struct {
	missions []model.Mission
}

func (f *fixedMissions) FindAll() ([]model.Mission, error) {
	return f.missions, nil
}

func (f *fixedMissions) FindByCode(code string) (*model.Mission, error) {
	for i := range f.missions {
		if f.missions[i].Code == code {
			return &f.missions[i], nil
		}
	}
	return nil, util.ErrMissionNotFound
}

type completionRecorder struct {
	completions []*model.MissionCompletion
}

func (r *completionRecorder) SaveCompletion(c *model.MissionCompletion) error {
	r.completions = append(r.completions, c)
	return nil
}

func newMissionHarness(t *testing.T) (*MissionService, *completionRecorder, *recordingLedger) {
	t.Helper()

	store := newMemoryUserStore(&model.User{BaseModel: model.BaseModel{ID: 1}, XP: 0, Level: 1})
	ledger := &recordingLedger{
		inner: NewProgressionService(store, &badgeRecorder{}, config.GameConfig{LevelThresholds: testThresholds}),
	}

	missions := &fixedMissions{missions: []model.Mission{
		{
			Code:         "voyager-1",
			Name:         "Voyager 1",
			Agency:       "NASA",
			LaunchDate:   "1977-09-05",
			Achievements: `["First spacecraft to enter interstellar space","Flyby of Jupiter and Saturn"]`,
		},
		{
			Code:         "rosetta",
			Name:         "Rosetta",
			Agency:       "ESA",
			LaunchDate:   "2004-03-02",
			Achievements: `["First landing on a comet"]`,
		},
		{
			Code:         "hayabusa2",
			Name:         "Hayabusa2",
			Agency:       "JAXA",
			LaunchDate:   "2014-12-03",
			Achievements: `["Returned samples from asteroid Ryugu"]`,
		},
	}}

	completions := &completionRecorder{}
	svc := NewMissionService(missions, completions, ledger, store,
		config.GameConfig{QuizPoints: 10, PhotoMissionPoints: 15, NeoMissionPoints: 20, LevelThresholds: testThresholds})
	return svc, completions, ledger
}

func TestMissionQuiz_BuildsThreeQuestions(t *testing.T) {
	svc, _, _ := newMissionHarness(t)

	views, err := svc.MissionQuiz("voyager-1")
	if err != nil {
		t.Fatalf("MissionQuiz: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(views))
	}
	if views[2].Type != "mcq" {
		t.Errorf("achievement question type = %q, want mcq", views[2].Type)
	}

	options := views[2].Options
	if len(options) < 2 {
		t.Fatalf("achievement question needs distractors, got %v", options)
	}
	if options[0] != "First spacecraft to enter interstellar space" {
		t.Errorf("correct achievement missing from options: %v", options)
	}
	for _, opt := range options[1:] {
		if opt == options[0] {
			t.Errorf("distractors must differ from the correct answer: %v", options)
		}
	}
}

func TestMissionQuiz_UnknownMission(t *testing.T) {
	svc, _, _ := newMissionHarness(t)

	if _, err := svc.MissionQuiz("apollo-99"); !errors.Is(err, util.ErrMissionNotFound) {
		t.Fatalf("expected ErrMissionNotFound, got %v", err)
	}
}

func TestSubmitMissionQuiz_GradesAgainstRegistry(t *testing.T) {
	svc, completions, ledger := newMissionHarness(t)

	outcome, err := svc.SubmitMissionQuiz(1, "voyager-1", map[string]string{
		"q1": "nasa",
		"q2": "1977",
		"q3": "First spacecraft to enter interstellar space",
	})
	if err != nil {
		t.Fatalf("SubmitMissionQuiz: %v", err)
	}

	if outcome.CorrectCount != 3 || outcome.ExperienceAwarded != 30 {
		t.Errorf("got %d correct / %d XP, want 3 / 30", outcome.CorrectCount, outcome.ExperienceAwarded)
	}
	if len(ledger.awards) != 1 || ledger.awards[0] != 30 {
		t.Errorf("ledger awards = %v, want [30]", ledger.awards)
	}

	if len(completions.completions) != 1 {
		t.Fatalf("expected 1 completion row, got %d", len(completions.completions))
	}
	row := completions.completions[0]
	if row.MissionCode != "voyager-1" || row.Kind != model.ActivityMissionQuiz || row.XPAwarded != 30 {
		t.Errorf("unexpected completion row %+v", row)
	}
}

func TestSubmitMissionQuiz_ClientCannotSupplyItsOwnKey(t *testing.T) {
	svc, _, ledger := newMissionHarness(t)

	// wrong answers with extra made-up entries: the key is re-derived from
	// the registry, so none of this scores
	outcome, err := svc.SubmitMissionQuiz(1, "rosetta", map[string]string{
		"q1":        "NASA",
		"q2":        "1999",
		"q3":        "whatever",
		"forged-q":  "forged-a",
		"forged-q2": "forged-a2",
	})
	if err != nil {
		t.Fatalf("SubmitMissionQuiz: %v", err)
	}
	if outcome.CorrectCount != 0 || outcome.ExperienceAwarded != 0 {
		t.Errorf("forged submission must score zero, got %+v", outcome)
	}
	if len(ledger.awards) != 0 {
		t.Errorf("zero score must not touch the ledger, got %v", ledger.awards)
	}
}

func TestSubmitPhotoQuestion(t *testing.T) {
	tests := []struct {
		name    string
		sub     PhotoSubmission
		wantXP  int
		wantHit int
	}{
		{
			name:    "correct answer earns photo points",
			sub:     PhotoSubmission{Answer: "Mast Camera", CorrectAnswer: "Mast Camera"},
			wantXP:  15,
			wantHit: 1,
		},
		{
			name:    "case-insensitive match",
			sub:     PhotoSubmission{Answer: " mast camera ", CorrectAnswer: "Mast Camera"},
			wantXP:  15,
			wantHit: 1,
		},
		{
			name:    "wrong answer earns nothing",
			sub:     PhotoSubmission{Answer: "Navcam", CorrectAnswer: "Mast Camera"},
			wantXP:  0,
			wantHit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, completions, ledger := newMissionHarness(t)

			outcome, err := svc.SubmitPhotoQuestion(1, tt.sub)
			if err != nil {
				t.Fatalf("SubmitPhotoQuestion: %v", err)
			}
			if outcome.CorrectCount != tt.wantHit || outcome.ExperienceAwarded != tt.wantXP {
				t.Errorf("got %d correct / %d XP, want %d / %d",
					outcome.CorrectCount, outcome.ExperienceAwarded, tt.wantHit, tt.wantXP)
			}
			if len(completions.completions) != 1 || completions.completions[0].Kind != model.ActivityPhotoMission {
				t.Errorf("expected one photo completion row, got %+v", completions.completions)
			}
			if tt.wantXP == 0 && len(ledger.awards) != 0 {
				t.Errorf("zero score must not touch the ledger, got %v", ledger.awards)
			}
		})
	}
}

func TestSubmitNeoQuestions(t *testing.T) {
	svc, completions, ledger := newMissionHarness(t)

	outcome, err := svc.SubmitNeoQuestions(1, []NeoQuestion{
		{ID: "neo-1", Answer: "yes", CorrectAnswer: "Yes"},
		{ID: "neo-2", Answer: "120", CorrectAnswer: "270"},
	})
	if err != nil {
		t.Fatalf("SubmitNeoQuestions: %v", err)
	}

	if outcome.CorrectCount != 1 || outcome.TotalQuestions != 2 {
		t.Errorf("score = %d/%d, want 1/2", outcome.CorrectCount, outcome.TotalQuestions)
	}
	if outcome.ExperienceAwarded != 20 {
		t.Errorf("ExperienceAwarded = %d, want 20", outcome.ExperienceAwarded)
	}
	if len(ledger.awards) != 1 || ledger.awards[0] != 20 {
		t.Errorf("ledger awards = %v, want [20]", ledger.awards)
	}
	if len(completions.completions) != 1 || completions.completions[0].Kind != model.ActivityNeoMission {
		t.Errorf("expected one NEO completion row, got %+v", completions.completions)
	}
}

func TestLaunchYear(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"1977-09-05", "1977"},
		{"2004", "2004"},
		{"77", "77"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := launchYear(tt.date); got != tt.want {
			t.Errorf("launchYear(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
