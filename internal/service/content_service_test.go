package service

import (
	"testing"

	"space_academy_backend/internal/model"
)

func TestGenerateQuestionFromFact(t *testing.T) {
	tests := []struct {
		name       string
		fact       model.Fact
		wantAnswer string
		wantType   string
	}{
		{
			name:       "tides fact",
			fact:       model.Fact{Title: "Tides", Text: "The Moon's gravity pulls on the oceans, creating the tides we see on Earth."},
			wantAnswer: "Tides",
			wantType:   "text",
		},
		{
			name:       "largest planet fact",
			fact:       model.Fact{Title: "Jupiter", Text: "Jupiter is by far the largest planet in the Solar System."},
			wantAnswer: "Jupiter",
			wantType:   "mcq",
		},
		{
			name:       "saturn rings fact",
			fact:       model.Fact{Title: "Saturn's Rings", Text: "The rings of Saturn are made mostly of countless chunks of water ice."},
			wantAnswer: "Water ice",
			wantType:   "mcq",
		},
		{
			name:       "olympus mons fact",
			fact:       model.Fact{Title: "Olympus Mons", Text: "Olympus Mons rises about 22 km above the Martian plains."},
			wantAnswer: "Mars",
			wantType:   "mcq",
		},
		{
			name:       "galaxy fact",
			fact:       model.Fact{Title: "Milky Way", Text: "Our galaxy, the Milky Way, holds more than 100 billion stars."},
			wantAnswer: "100 billion",
			wantType:   "text",
		},
		{
			name:       "unmatched fact falls back to its title",
			fact:       model.Fact{Title: "Neutron Stars", Text: "A teaspoon of neutron star material would weigh billions of tons."},
			wantAnswer: "Neutron Stars",
			wantType:   "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateQuestionFromFact(&tt.fact)
			if got.Answer != tt.wantAnswer {
				t.Errorf("Answer = %q, want %q", got.Answer, tt.wantAnswer)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Prompt == "" {
				t.Error("generated question must carry a prompt")
			}
			if got.Type == "mcq" {
				if len(got.Options) < 2 {
					t.Errorf("mcq question needs options, got %v", got.Options)
				}
				found := false
				for _, opt := range got.Options {
					if opt == got.Answer {
						found = true
					}
				}
				if !found {
					t.Errorf("options %v must contain the answer %q", got.Options, got.Answer)
				}
			}
		})
	}
}

func TestSanitizeQuestion_StripsAnswer(t *testing.T) {
	q := GeneratedQuestion{ID: "fact", Prompt: "p", Type: "text", Answer: "secret"}
	if got := sanitizeQuestion(q); got.Answer != "" {
		t.Errorf("sanitized question still carries answer %q", got.Answer)
	}
}
