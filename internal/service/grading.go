package service

import "strings"

// GradeResult is the outcome of scoring one activity.
type GradeResult struct {
	CorrectCount      int `json:"correctCount"`
	TotalQuestions    int `json:"totalQuestions"`
	ExperienceAwarded int `json:"experienceAwarded"`
}

// Grade scores a submission against an answer key. Matching is
// case-insensitive after trimming surrounding whitespace; a missing or empty
// submission entry counts as incorrect. Pure function: no side effects, and
// it never touches the progression ledger itself.
func Grade(answerKey, submission map[string]string, pointsPerCorrect int) GradeResult {
	correct := 0
	for id, expected := range answerKey {
		if answersMatch(expected, submission[id]) {
			correct++
		}
	}
	return GradeResult{
		CorrectCount:      correct,
		TotalQuestions:    len(answerKey),
		ExperienceAwarded: correct * pointsPerCorrect,
	}
}

func answersMatch(expected, submitted string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(expected), submitted)
}
