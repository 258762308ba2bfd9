package service

import (
	"strings"
	"testing"

	"space_academy_backend/internal/config"

	"go.uber.org/zap"
)

func TestChatService_CannedAnswersWithoutAPIKey(t *testing.T) {
	svc := NewChatService(config.ChatConfig{}, zap.NewNop())

	tests := []struct {
		question string
		contains string
	}{
		{"What is a black hole?", "black hole"},
		{"Tell me about the sun", "Sun"},
		{"why does the MOON cause tides?", "Moon"},
		{"how do rockets work", "thrust"},
		{"what's your favourite pizza?", "cadet"},
	}

	for _, tt := range tests {
		reply, err := svc.Ask(tt.question, nil)
		if err != nil {
			t.Fatalf("Ask(%q): %v", tt.question, err)
		}
		if !strings.Contains(reply, tt.contains) {
			t.Errorf("Ask(%q) = %q, want it to mention %q", tt.question, reply, tt.contains)
		}
	}
}

func TestChatService_EmptyQuestion(t *testing.T) {
	svc := NewChatService(config.ChatConfig{}, zap.NewNop())

	reply, err := svc.Ask("   ", nil)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply == "" {
		t.Error("empty question must still get a nudge back")
	}
}
