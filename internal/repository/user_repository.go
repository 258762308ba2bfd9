package repository

import (
	"errors"

	"space_academy_backend/internal/model"
	"space_academy_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// ApplyXP increments the user's XP atomically and returns the row as it stands
// after the increment. The increment and the re-read run in one transaction
// with the row locked, so two concurrent awards serialize instead of losing
// one (plain read-modify-write would drop an update under contention).
func (r *UserRepository) ApplyXP(userID uint, amount int) (*model.User, error) {
	var user model.User
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("xp", gorm.Expr("xp + ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrUserNotFound
		}
		return tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PromoteLevel raises the user's level to the given value. The guard keeps the
// level monotonic when concurrent awards race on the same row.
func (r *UserRepository) PromoteLevel(userID uint, level int) error {
	return r.DB.Model(&model.User{}).
		Where("id = ? AND level < ?", userID, level).
		Update("level", level).
		Error
}

func (r *UserRepository) FindTopByXP(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("xp DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", gorm.Expr("CURRENT_TIMESTAMP(3)")).
		Error
}
