package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"space_academy_backend/internal/model"
	"space_academy_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

type ContentService struct {
	PlanetRepo *repository.PlanetRepository
	FactRepo   *repository.FactRepository
	Redis      *redis.Client
}

func NewContentService(planetRepo *repository.PlanetRepository, factRepo *repository.FactRepository, rdb *redis.Client) *ContentService {
	return &ContentService{
		PlanetRepo: planetRepo,
		FactRepo:   factRepo,
		Redis:      rdb,
	}
}

// GeneratedQuestion is a question derived from a fact paragraph. Answer stays
// server-side; views receive the question with the answer stripped.
type GeneratedQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"-"`
}

// DailyKnowledge is the knowledge page payload: today's fact plus its
// generated question, without the answer.
type DailyKnowledge struct {
	FactCode  string            `json:"factCode"`
	Title     string            `json:"title"`
	Knowledge string            `json:"knowledge"`
	Question  GeneratedQuestion `json:"question"`
}

func (s *ContentService) GetPlanets() ([]model.Planet, error) {
	return s.PlanetRepo.FindAll()
}

// GetPlanet looks a planet up by name for the explorer's detail pane.
func (s *ContentService) GetPlanet(name string) (*model.Planet, error) {
	return s.PlanetRepo.FindByName(name)
}

// FactOfTheDay rotates through the fact bank on a stable day index, so every
// user sees the same fact on a given day.
func (s *ContentService) FactOfTheDay() (*model.Fact, error) {
	count, err := s.FactRepo.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.New("fact bank is empty")
	}
	day := int(time.Now().Unix() / 86400)
	return s.FactRepo.FindByOffset(day % int(count))
}

// GetDailyKnowledge serves the knowledge page, cached in Redis until the fact
// rotates.
func (s *ContentService) GetDailyKnowledge() (*DailyKnowledge, error) {
	ctx := context.Background()
	cacheKey := "content:daily:" + time.Now().Format("2006-01-02")

	if cached, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
		var dk DailyKnowledge
		if err := json.Unmarshal(cached, &dk); err == nil {
			return &dk, nil
		}
	}

	fact, err := s.FactOfTheDay()
	if err != nil {
		return nil, err
	}

	question := GenerateQuestionFromFact(fact)
	dk := &DailyKnowledge{
		FactCode:  fact.Code,
		Title:     fact.Title,
		Knowledge: fact.Title + ": " + fact.Text,
		Question:  sanitizeQuestion(question),
	}

	if data, err := json.Marshal(dk); err == nil {
		s.Redis.Set(ctx, cacheKey, data, 24*time.Hour)
	}

	return dk, nil
}

// DailyFactQuestion returns today's generated question with its answer, for
// the quiz issuer.
func (s *ContentService) DailyFactQuestion() (*GeneratedQuestion, error) {
	fact, err := s.FactOfTheDay()
	if err != nil {
		return nil, err
	}
	q := GenerateQuestionFromFact(fact)
	return &q, nil
}

func sanitizeQuestion(q GeneratedQuestion) GeneratedQuestion {
	q.Answer = ""
	return q
}

// GenerateQuestionFromFact derives a question and its authoritative answer
// from a fact paragraph with lightweight keyword heuristics; no external calls.
func GenerateQuestionFromFact(fact *model.Fact) GeneratedQuestion {
	text := strings.ToLower(fact.Text)

	q := GeneratedQuestion{ID: "fact"}
	switch {
	case strings.Contains(text, "tide") || strings.Contains(text, "tidal"):
		q.Prompt = "What natural phenomenon on Earth is caused by the Moon's gravity?"
		q.Answer = "Tides"
		q.Type = "text"
	case strings.Contains(text, "largest planet"):
		q.Prompt = "Which planet is the largest in the Solar System?"
		q.Answer = "Jupiter"
		q.Type = "mcq"
		q.Options = []string{"Jupiter", "Saturn", "Earth", "Mars"}
	case strings.Contains(text, "rings") && strings.Contains(text, "saturn"):
		q.Prompt = "What are Saturn's rings mostly made of?"
		q.Answer = "Water ice"
		q.Type = "mcq"
		q.Options = []string{"Water ice", "Iron", "Carbon dioxide", "Silicates"}
	case strings.Contains(text, "olympus mons") || strings.Contains(text, "tallest volcano"):
		q.Prompt = "On which planet is Olympus Mons located?"
		q.Answer = "Mars"
		q.Type = "mcq"
		q.Options = []string{"Mars", "Earth", "Venus", "Mercury"}
	case strings.Contains(text, "milky way") || strings.Contains(text, "galaxy"):
		q.Prompt = "Approximately how many stars does the Milky Way contain (order of magnitude)?"
		q.Answer = "100 billion"
		q.Type = "text"
	default:
		q.Prompt = "What is the topic of the following paragraph?"
		q.Answer = fact.Title
		q.Type = "text"
	}
	return q
}
