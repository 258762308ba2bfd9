package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"space_academy_backend/internal/config"
	"strings"

	"go.uber.org/zap"
)

// ChatService backs Cosmo, the space tutor widget. With an API key configured
// it forwards questions to an OpenAI-compatible completion endpoint; without
// one it answers from a small canned knowledge base so the widget still works
// in offline deployments.
type ChatService struct {
	Config config.ChatConfig
	Logger *zap.Logger
}

func NewChatService(cfg config.ChatConfig, logger *zap.Logger) *ChatService {
	return &ChatService{Config: cfg, Logger: logger}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const tutorSystemPrompt = "You are Cosmo, a friendly space tutor for young space cadets. " +
	"Answer questions about astronomy, planets, rockets and space exploration in short, " +
	"encouraging, age-appropriate language. If a question is not about space, gently steer " +
	"the cadet back to space topics."

// Ask answers one cadet question, with prior turns supplied as history.
func (s *ChatService) Ask(question string, history []ChatMessage) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "Ask me anything about space!", nil
	}

	if s.Config.APIKey == "" {
		return cannedAnswer(question), nil
	}

	reply, err := s.completion(question, history)
	if err != nil {
		s.Logger.Warn("chat completion failed, using canned answer", zap.Error(err))
		return cannedAnswer(question), nil
	}
	return reply, nil
}

func (s *ChatService) completion(question string, history []ChatMessage) (string, error) {
	messages := []ChatMessage{{Role: "system", Content: tutorSystemPrompt}}
	for _, h := range history {
		messages = append(messages, ChatMessage{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, ChatMessage{Role: "user", Content: question})

	reqBody := chatCompletionRequest{
		Model:    s.Config.Model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.Config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Config.APIKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("chat API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("chat API returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}

// cannedAnswer keyword-matches against a fixed tutor script.
func cannedAnswer(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "black hole"):
		return "A black hole is a region of space where gravity is so strong that nothing, not even light, can escape it!"
	case strings.Contains(q, "sun"):
		return "The Sun is a star at the center of our solar system. It's about 4.6 billion years old and so big that a million Earths could fit inside it!"
	case strings.Contains(q, "moon"):
		return "The Moon is Earth's only natural satellite. Its gravity causes the ocean tides, and it takes about 27 days to orbit the Earth."
	case strings.Contains(q, "mars"):
		return "Mars is the Red Planet! It's home to Olympus Mons, the largest volcano in the solar system, and rovers like Curiosity are exploring it right now."
	case strings.Contains(q, "jupiter"):
		return "Jupiter is the largest planet in our solar system. Its Great Red Spot is a giant storm bigger than the whole Earth!"
	case strings.Contains(q, "saturn"):
		return "Saturn is famous for its beautiful rings, which are made mostly of water ice and rock."
	case strings.Contains(q, "galaxy") || strings.Contains(q, "milky way"):
		return "Our galaxy, the Milky Way, contains over 100 billion stars. On a dark night you can see it as a faint band across the sky!"
	case strings.Contains(q, "rocket") || strings.Contains(q, "launch"):
		return "Rockets work by pushing hot gas out of their engines very fast. The push back, called thrust, is what lifts them into space!"
	case strings.Contains(q, "astronaut"):
		return "Astronauts train for years to live and work in space. On the International Space Station they float because they are in constant free fall around the Earth!"
	default:
		return "That's a great question, cadet! I know the most about planets, stars, rockets and astronauts. Try asking me about one of those!"
	}
}
