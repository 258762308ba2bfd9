package service

import (
	"encoding/json"
	"errors"

	"space_academy_backend/internal/config"
	"space_academy_backend/internal/model"
	"space_academy_backend/internal/util"
	"space_academy_backend/pkg/monitoring"
)

// AnswerKeyStore holds the in-flight answer key between issue and grade, one
// attempt per user.
type AnswerKeyStore interface {
	PutKey(userID uint, answerKey map[string]string) error
	GetKey(userID uint) (map[string]string, error)
	DeleteKey(userID uint) error
}

// QuestionBank supplies random general questions.
type QuestionBank interface {
	RandomQuestions(n int) ([]model.QuizQuestion, error)
}

// FactQuestionSource supplies today's fact-derived question with its answer.
type FactQuestionSource interface {
	DailyFactQuestion() (*GeneratedQuestion, error)
}

// ResultStore persists one row per graded activity.
type ResultStore interface {
	SaveResult(result *model.QuizResult) error
}

// Ledger is the slice of the progression service the graders call into.
type Ledger interface {
	AwardExperience(userID uint, amount int) (*model.User, error)
}

// UserReader reads the current progression state without writing.
type UserReader interface {
	FindByID(id uint) (*model.User, error)
}

// QuizQuestionView is a question as served to the user: no answer attached.
type QuizQuestionView struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// QuizOutcome is the response of a graded submission.
type QuizOutcome struct {
	CorrectCount      int `json:"correctCount"`
	TotalQuestions    int `json:"totalQuestions"`
	ExperienceAwarded int `json:"experienceAwarded"`
	NewLevel          int `json:"newLevel"`
	TotalXP           int `json:"totalXp"`
}

// QuizService runs the daily quiz cycle: issue questions with the answer key
// held server-side, grade exactly once, then drop the key.
type QuizService struct {
	Bank     QuestionBank
	Facts    FactQuestionSource
	Attempts AnswerKeyStore
	Results  ResultStore
	Ledger   Ledger
	Users    UserReader
	game     config.GameConfig
}

func NewQuizService(bank QuestionBank, facts FactQuestionSource, attempts AnswerKeyStore,
	results ResultStore, ledger Ledger, users UserReader, game config.GameConfig) *QuizService {
	return &QuizService{
		Bank:     bank,
		Facts:    facts,
		Attempts: attempts,
		Results:  results,
		Ledger:   ledger,
		Users:    users,
		game:     game,
	}
}

// StartDailyQuiz issues a fresh quiz: the fact-derived question first, then a
// random draw from the general bank. The matched answer key is stored against
// the user, replacing any ungraded key from a previous issue.
func (s *QuizService) StartDailyQuiz(userID uint) ([]QuizQuestionView, error) {
	factQ, err := s.Facts.DailyFactQuestion()
	if err != nil {
		return nil, err
	}

	bankQs, err := s.Bank.RandomQuestions(s.game.QuizBankDraw)
	if err != nil {
		return nil, err
	}

	views := make([]QuizQuestionView, 0, len(bankQs)+1)
	answerKey := make(map[string]string, len(bankQs)+1)

	views = append(views, QuizQuestionView{
		ID:      factQ.ID,
		Prompt:  factQ.Prompt,
		Type:    factQ.Type,
		Options: factQ.Options,
	})
	answerKey[factQ.ID] = factQ.Answer

	for _, q := range bankQs {
		views = append(views, QuizQuestionView{
			ID:      q.Code,
			Prompt:  q.Prompt,
			Type:    string(q.Type),
			Options: decodeOptions(q.Options),
		})
		answerKey[q.Code] = q.Answer
	}

	if err := s.Attempts.PutKey(userID, answerKey); err != nil {
		return nil, err
	}

	return views, nil
}

// SubmitDailyQuiz grades the one in-flight attempt. Without an issued key the
// submission grades as zero questions rather than failing: resubmission after
// expiry is an expected user action, not a fault. A graded key is deleted so
// replaying the same submission can never award twice.
func (s *QuizService) SubmitDailyQuiz(userID uint, submission map[string]string) (*QuizOutcome, error) {
	answerKey, err := s.Attempts.GetKey(userID)
	if errors.Is(err, util.ErrNoActiveAttempt) {
		user, err := s.Users.FindByID(userID)
		if err != nil {
			return nil, err
		}
		return &QuizOutcome{NewLevel: user.Level, TotalXP: user.XP}, nil
	}
	if err != nil {
		return nil, err
	}

	result := Grade(answerKey, submission, s.game.QuizPoints)

	user, err := s.finishActivity(userID, model.ActivityDailyQuiz, result)
	if err != nil {
		return nil, err
	}

	if err := s.Attempts.DeleteKey(userID); err != nil {
		return nil, err
	}

	return &QuizOutcome{
		CorrectCount:      result.CorrectCount,
		TotalQuestions:    result.TotalQuestions,
		ExperienceAwarded: result.ExperienceAwarded,
		NewLevel:          user.Level,
		TotalXP:           user.XP,
	}, nil
}

// finishActivity awards the XP (only for a non-zero result, per the ledger's
// zero-award contract), records the result row, and bumps the metrics.
func (s *QuizService) finishActivity(userID uint, kind model.ActivityKind, result GradeResult) (*model.User, error) {
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

	if err := s.Results.SaveResult(&model.QuizResult{
		UserID:    userID,
		Kind:      kind,
		Score:     result.CorrectCount,
		Total:     result.TotalQuestions,
		XPAwarded: result.ExperienceAwarded,
	}); err != nil {
		return nil, err
	}

	monitoring.GradedActivities.WithLabelValues(string(kind)).Inc()
	if result.ExperienceAwarded > 0 {
		monitoring.ExperienceAwarded.Add(float64(result.ExperienceAwarded))
	}

	return user, nil
}

func decodeOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	var options []string
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return nil
	}
	return options
}
