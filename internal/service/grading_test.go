package service

import "testing"

func TestGrade_ScoresAgainstAnswerKey(t *testing.T) {
	answerKey := map[string]string{
		"q1": "NASA",
		"q2": "1977",
		"q3": "First spacecraft to enter interstellar space",
	}

	tests := []struct {
		name        string
		submission  map[string]string
		points      int
		wantCorrect int
		wantXP      int
	}{
		{
			name: "all correct",
			submission: map[string]string{
				"q1": "NASA",
				"q2": "1977",
				"q3": "First spacecraft to enter interstellar space",
			},
			points:      10,
			wantCorrect: 3,
			wantXP:      30,
		},
		{
			name: "partially correct",
			submission: map[string]string{
				"q1": "NASA",
				"q2": "1986",
				"q3": "Landed on the Moon",
			},
			points:      10,
			wantCorrect: 1,
			wantXP:      10,
		},
		{
			name:        "empty submission scores zero",
			submission:  map[string]string{},
			points:      10,
			wantCorrect: 0,
			wantXP:      0,
		},
		{
			name: "case and whitespace are normalized",
			submission: map[string]string{
				"q1": "  nasa ",
				"q2": "1977\t",
				"q3": "FIRST SPACECRAFT TO ENTER INTERSTELLAR SPACE",
			},
			points:      10,
			wantCorrect: 3,
			wantXP:      30,
		},
		{
			name: "whitespace-only answer is incorrect",
			submission: map[string]string{
				"q1": "   ",
				"q2": "1977",
			},
			points:      10,
			wantCorrect: 1,
			wantXP:      10,
		},
		{
			name: "extra submission entries are ignored",
			submission: map[string]string{
				"q1":      "NASA",
				"q99":     "NASA",
				"unknown": "1977",
			},
			points:      10,
			wantCorrect: 1,
			wantXP:      10,
		},
		{
			name: "mission points multiply per correct",
			submission: map[string]string{
				"q1": "NASA",
				"q2": "1977",
			},
			points:      20,
			wantCorrect: 2,
			wantXP:      40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(answerKey, tt.submission, tt.points)
			if got.CorrectCount != tt.wantCorrect {
				t.Errorf("CorrectCount = %d, want %d", got.CorrectCount, tt.wantCorrect)
			}
			if got.TotalQuestions != len(answerKey) {
				t.Errorf("TotalQuestions = %d, want %d", got.TotalQuestions, len(answerKey))
			}
			if got.ExperienceAwarded != tt.wantXP {
				t.Errorf("ExperienceAwarded = %d, want %d", got.ExperienceAwarded, tt.wantXP)
			}
		})
	}
}

func TestGrade_EmptyAnswerKey(t *testing.T) {
	got := Grade(map[string]string{}, map[string]string{"q1": "anything"}, 10)
	if got.CorrectCount != 0 || got.TotalQuestions != 0 || got.ExperienceAwarded != 0 {
		t.Errorf("empty key should grade to zero, got %+v", got)
	}
}

func TestGrade_IsDeterministic(t *testing.T) {
	answerKey := map[string]string{"q1": "Jupiter", "q2": "Water ice"}
	submission := map[string]string{"q1": "jupiter", "q2": "rock"}

	first := Grade(answerKey, submission, 10)
	for i := 0; i < 10; i++ {
		if got := Grade(answerKey, submission, 10); got != first {
			t.Fatalf("grade changed between identical calls: %+v vs %+v", got, first)
		}
	}
}
