package repository

import (
	"space_academy_backend/internal/model"

	"gorm.io/gorm"
)

type FactRepository struct {
	DB *gorm.DB
}

func NewFactRepository(db *gorm.DB) *FactRepository {
	return &FactRepository{DB: db}
}

func (r *FactRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Fact{}).Count(&count).Error
	return count, err
}

// FindByOffset returns the fact at a stable position, used for the
// day-indexed rotation of the daily knowledge page.
func (r *FactRepository) FindByOffset(offset int) (*model.Fact, error) {
	var fact model.Fact
	err := r.DB.Order("id ASC").Offset(offset).First(&fact).Error
	return &fact, err
}
