package service

import (
	"space_academy_backend/internal/model"
	"space_academy_backend/internal/repository"
)

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
	QuizRepo        *repository.QuizRepository
	MissionRepo     *repository.MissionRepository
	Progression     *ProgressionService
}

func NewAchievementService(achievementRepo *repository.AchievementRepository,
	userRepo *repository.UserRepository, quizRepo *repository.QuizRepository,
	missionRepo *repository.MissionRepository, progression *ProgressionService) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		UserRepo:        userRepo,
		QuizRepo:        quizRepo,
		MissionRepo:     missionRepo,
		Progression:     progression,
	}
}

type UserAchievements struct {
	TotalXP      int                 `json:"totalXp"`
	CurrentLevel int                 `json:"currentLevel"`
	NextLevelXP  int                 `json:"nextLevelXp"`
	Badges       []model.Achievement `json:"badges"`
	Leaderboard  []LeaderboardEntry  `json:"leaderboard"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	User   string `json:"user"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
	Avatar string `json:"avatar,omitempty"`
}

func (s *AchievementService) GetUserAchievements(userID uint) (*UserAchievements, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	badges, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	leaderboard, err := s.GetLeaderboard(10)
	if err != nil {
		return nil, err
	}

	return &UserAchievements{
		TotalXP:      user.XP,
		CurrentLevel: user.Level,
		NextLevelXP:  s.Progression.NextLevelXP(user.Level),
		Badges:       badges,
		Leaderboard:  leaderboard,
	}, nil
}

// ProgressHistory is the activity log shown on the profile page: recent quiz
// results and mission completions, newest first.
type ProgressHistory struct {
	QuizResults        []model.QuizResult        `json:"quizResults"`
	MissionCompletions []model.MissionCompletion `json:"missionCompletions"`
}

func (s *AchievementService) GetProgressHistory(userID uint) (*ProgressHistory, error) {
	results, err := s.QuizRepo.FindByUser(userID, 20)
	if err != nil {
		return nil, err
	}

	completions, err := s.MissionRepo.CompletionsByUser(userID)
	if err != nil {
		return nil, err
	}

	return &ProgressHistory{
		QuizResults:        results,
		MissionCompletions: completions,
	}, nil
}

func (s *AchievementService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	users, err := s.UserRepo.FindTopByXP(limit)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		leaderboard[i] = LeaderboardEntry{
			Rank:   i + 1,
			User:   user.Username,
			XP:     user.XP,
			Level:  user.Level,
			Avatar: user.Avatar,
		}
	}

	return leaderboard, nil
}
