package repository

import (
	"errors"

	"space_academy_backend/internal/model"
	"space_academy_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SolarRepository struct {
	DB *gorm.DB
}

func NewSolarRepository(db *gorm.DB) *SolarRepository {
	return &SolarRepository{DB: db}
}

// Upsert keeps one saved system per user, replacing the layout on re-save.
func (r *SolarRepository) Upsert(system *model.SolarSystem) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"layout", "updated_at"}),
	}).Create(system).Error
}

func (r *SolarRepository) FindByUserID(userID uint) (*model.SolarSystem, error) {
	var system model.SolarSystem
	err := r.DB.Where("user_id = ?", userID).First(&system).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoSavedSystem
	}
	if err != nil {
		return nil, err
	}
	return &system, nil
}
