package service

import (
	"fmt"

	"space_academy_backend/internal/config"
	"space_academy_backend/internal/model"
	"space_academy_backend/internal/util"
)

// UserProgressionStore is the slice of the user repository the ledger needs.
type UserProgressionStore interface {
	FindByID(id uint) (*model.User, error)
	ApplyXP(userID uint, amount int) (*model.User, error)
	PromoteLevel(userID uint, level int) error
}

// BadgeStore records the badge granted on each level-up.
type BadgeStore interface {
	Create(achievement *model.Achievement) error
}

// ProgressionService owns a user's cumulative XP and derived level. All XP
// mutations go through AwardExperience; nothing else may write those columns.
type ProgressionService struct {
	Users      UserProgressionStore
	Badges     BadgeStore
	thresholds []int
}

func NewProgressionService(users UserProgressionStore, badges BadgeStore, game config.GameConfig) *ProgressionService {
	return &ProgressionService{
		Users:      users,
		Badges:     badges,
		thresholds: game.LevelThresholds,
	}
}

// LevelForXP derives the level for a cumulative XP value: the highest level
// whose threshold the XP meets, capped at the table length. One award can
// cross several thresholds, hence the loop.
func (s *ProgressionService) LevelForXP(xp int) int {
	level := 1
	for level < len(s.thresholds) && xp >= s.thresholds[level] {
		level++
	}
	return level
}

// NextLevelXP returns the cumulative XP needed for the next level, or 0 when
// the user already sits at the top of the table.
func (s *ProgressionService) NextLevelXP(level int) int {
	if level >= len(s.thresholds) {
		return 0
	}
	return s.thresholds[level]
}

// AwardExperience applies an earned award and recomputes the level. A zero
// award is a no-op and performs no write. The call is deliberately not
// idempotent: each invocation represents a distinct earned award.
func (s *ProgressionService) AwardExperience(userID uint, amount int) (*model.User, error) {
	if amount < 0 {
		return nil, util.ErrInvalidAward
	}
	if amount == 0 {
		return s.Users.FindByID(userID)
	}

	user, err := s.Users.ApplyXP(userID, amount)
	if err != nil {
		return nil, err
	}

	level := s.LevelForXP(user.XP)
	if level > user.Level {
		if err := s.Users.PromoteLevel(userID, level); err != nil {
			return nil, err
		}
		if s.Badges != nil {
			for lv := user.Level + 1; lv <= level; lv++ {
				badge := &model.Achievement{
					UserID: userID,
					Name:   fmt.Sprintf("Reached Level %d", lv),
					Icon:   "/img/badges/level.png",
					Level:  lv,
				}
				if err := s.Badges.Create(badge); err != nil {
					return nil, err
				}
			}
		}
		user.Level = level
	}

	return user, nil
}
