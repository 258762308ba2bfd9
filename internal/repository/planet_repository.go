package repository

import (
	"errors"

	"space_academy_backend/internal/model"
	"space_academy_backend/internal/util"

	"gorm.io/gorm"
)

type PlanetRepository struct {
	DB *gorm.DB
}

func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{DB: db}
}

func (r *PlanetRepository) FindAll() ([]model.Planet, error) {
	var planets []model.Planet
	err := r.DB.Order("id ASC").Find(&planets).Error
	return planets, err
}

func (r *PlanetRepository) FindByName(name string) (*model.Planet, error) {
	var planet model.Planet
	err := r.DB.Where("name = ?", name).First(&planet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPlanetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &planet, nil
}
