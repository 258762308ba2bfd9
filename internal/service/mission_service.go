package service

import (
	"space_academy_backend/internal/config"
	"space_academy_backend/internal/model"
	"space_academy_backend/pkg/monitoring"
)

// MissionSource supplies the curated mission registry.
type MissionSource interface {
	FindAll() ([]model.Mission, error)
	FindByCode(code string) (*model.Mission, error)
}

// CompletionStore persists graded mission activities.
type CompletionStore interface {
	SaveCompletion(completion *model.MissionCompletion) error
}

// MissionService grades the three mission activity types: the per-mission
// quiz (answer key derived server-side from the registry) and the two
// single-shot live-data questions, whose correct answer rides along in the
// submission payload. The round-trip is a deliberate integrity trade-off for
// questions built from live data the server does not retain.
type MissionService struct {
	Missions    MissionSource
	Completions CompletionStore
	Ledger      Ledger
	Users       UserReader
	game        config.GameConfig
}

func NewMissionService(missions MissionSource, completions CompletionStore, ledger Ledger,
	users UserReader, game config.GameConfig) *MissionService {
	return &MissionService{
		Missions:    missions,
		Completions: completions,
		Ledger:      ledger,
		Users:       users,
		game:        game,
	}
}

// MissionView is a mission as listed to the user.
type MissionView struct {
	Code         string   `json:"id"`
	Name         string   `json:"name"`
	Agency       string   `json:"agency"`
	LaunchDate   string   `json:"launchDate"`
	Summary      string   `json:"summary"`
	Achievements []string `json:"achievements"`
	FunFact      string   `json:"funFact"`
	Image        string   `json:"image"`
}

func (s *MissionService) ListMissions() ([]MissionView, error) {
	missions, err := s.Missions.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]MissionView, len(missions))
	for i, m := range missions {
		views[i] = missionView(m)
	}
	return views, nil
}

func missionView(m model.Mission) MissionView {
	return MissionView{
		Code:         m.Code,
		Name:         m.Name,
		Agency:       m.Agency,
		LaunchDate:   m.LaunchDate,
		Summary:      m.Summary,
		Achievements: decodeOptions(m.Achievements),
		FunFact:      m.FunFact,
		Image:        m.Image,
	}
}

// MissionQuiz builds the three-question quiz for a mission: agency, launch
// year, and one achievement. The achievement options mix the mission's own
// first achievement with achievements of other missions as distractors.
func (s *MissionService) MissionQuiz(code string) ([]QuizQuestionView, error) {
	mission, err := s.Missions.FindByCode(code)
	if err != nil {
		return nil, err
	}
	_, views, err := s.buildMissionQuiz(mission)
	if err != nil {
		return nil, err
	}
	return views, nil
}

// SubmitMissionQuiz grades a mission quiz against a key re-derived from the
// registry, so nothing about it is trusted from the client.
func (s *MissionService) SubmitMissionQuiz(userID uint, code string, submission map[string]string) (*QuizOutcome, error) {
	mission, err := s.Missions.FindByCode(code)
	if err != nil {
		return nil, err
	}
	key, _, err := s.buildMissionQuiz(mission)
	if err != nil {
		return nil, err
	}

	result := Grade(key, submission, s.game.QuizPoints)
	return s.finishMission(userID, mission.Code, model.ActivityMissionQuiz, result)
}

// PhotoSubmission carries a rover-photo question: the client answer and the
// round-tripped correct answer.
type PhotoSubmission struct {
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
}

func (s *MissionService) SubmitPhotoQuestion(userID uint, sub PhotoSubmission) (*QuizOutcome, error) {
	key := map[string]string{"photo": sub.CorrectAnswer}
	submission := map[string]string{"photo": sub.Answer}

	result := Grade(key, submission, s.game.PhotoMissionPoints)
	return s.finishMission(userID, "", model.ActivityPhotoMission, result)
}

// NeoQuestion is one half of the near-Earth-object pair.
type NeoQuestion struct {
	ID            string `json:"id" binding:"required"`
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
}

func (s *MissionService) SubmitNeoQuestions(userID uint, questions []NeoQuestion) (*QuizOutcome, error) {
	key := make(map[string]string, len(questions))
	submission := make(map[string]string, len(questions))
	for _, q := range questions {
		key[q.ID] = q.CorrectAnswer
		submission[q.ID] = q.Answer
	}

	result := Grade(key, submission, s.game.NeoMissionPoints)
	return s.finishMission(userID, "", model.ActivityNeoMission, result)
}

func (s *MissionService) buildMissionQuiz(mission *model.Mission) (map[string]string, []QuizQuestionView, error) {
	achievements := decodeOptions(mission.Achievements)

	views := []QuizQuestionView{
		{ID: "q1", Prompt: "What agency ran the " + mission.Name + " mission?", Type: "text"},
		{ID: "q2", Prompt: "When was " + mission.Name + " launched? (year)", Type: "text"},
	}
	key := map[string]string{
		"q1": mission.Agency,
		"q2": launchYear(mission.LaunchDate),
	}

	if len(achievements) > 0 {
		options, err := s.achievementOptions(mission.Code, achievements[0])
		if err != nil {
			return nil, nil, err
		}
		views = append(views, QuizQuestionView{
			ID:      "q3",
			Prompt:  "Which of these was an achievement of " + mission.Name + "?",
			Type:    "mcq",
			Options: options,
		})
		key["q3"] = achievements[0]
	}

	return key, views, nil
}

// achievementOptions pads the correct achievement with distractors drawn from
// the other missions in the registry.
func (s *MissionService) achievementOptions(missionCode, correct string) ([]string, error) {
	missions, err := s.Missions.FindAll()
	if err != nil {
		return nil, err
	}
	options := []string{correct}
	for _, m := range missions {
		if m.Code == missionCode || len(options) >= 4 {
			continue
		}
		if others := decodeOptions(m.Achievements); len(others) > 0 {
			options = append(options, others[0])
		}
	}
	return options, nil
}

func (s *MissionService) finishMission(userID uint, missionCode string, kind model.ActivityKind, result GradeResult) (*QuizOutcome, error) {
	var user *model.User
	var err error
	if result.CorrectCount > 0 {
		user, err = s.Ledger.AwardExperience(userID, result.ExperienceAwarded)
	} else {
		user, err = s.Users.FindByID(userID)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Completions.SaveCompletion(&model.MissionCompletion{
		UserID:      userID,
		MissionCode: missionCode,
		Kind:        kind,
		Score:       result.CorrectCount,
		Total:       result.TotalQuestions,
		XPAwarded:   result.ExperienceAwarded,
	}); err != nil {
		return nil, err
	}

	monitoring.GradedActivities.WithLabelValues(string(kind)).Inc()
	if result.ExperienceAwarded > 0 {
		monitoring.ExperienceAwarded.Add(float64(result.ExperienceAwarded))
	}

	return &QuizOutcome{
		CorrectCount:      result.CorrectCount,
		TotalQuestions:    result.TotalQuestions,
		ExperienceAwarded: result.ExperienceAwarded,
		NewLevel:          user.Level,
		TotalXP:           user.XP,
	}, nil
}

func launchYear(launchDate string) string {
	if len(launchDate) >= 4 {
		return launchDate[:4]
	}
	return launchDate
}
