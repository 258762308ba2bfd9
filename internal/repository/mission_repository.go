package repository

import (
	"errors"

	"space_academy_backend/internal/model"
	"space_academy_backend/internal/util"

	"gorm.io/gorm"
)

type MissionRepository struct {
	DB *gorm.DB
}

func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{DB: db}
}

func (r *MissionRepository) FindAll() ([]model.Mission, error) {
	var missions []model.Mission
	err := r.DB.Order("id ASC").Find(&missions).Error
	return missions, err
}

func (r *MissionRepository) FindByCode(code string) (*model.Mission, error) {
	var mission model.Mission
	err := r.DB.Where("code = ?", code).First(&mission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrMissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

func (r *MissionRepository) SaveCompletion(completion *model.MissionCompletion) error {
	return r.DB.Create(completion).Error
}

func (r *MissionRepository) CompletionsByUser(userID uint) ([]model.MissionCompletion, error) {
	var completions []model.MissionCompletion
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&completions).Error
	return completions, err
}
