package service

import (
	"encoding/json"
	"errors"
	"space_academy_backend/internal/model"
	"space_academy_backend/internal/repository"
)

// SolarService persists the solar-builder canvas. The layout is an opaque
// array of placed bodies owned by the frontend; the server only checks it is
// well-formed JSON before storing it.
type SolarService struct {
	SolarRepo *repository.SolarRepository
}

func NewSolarService(solarRepo *repository.SolarRepository) *SolarService {
	return &SolarService{SolarRepo: solarRepo}
}

// SaveSystem replaces the user's saved layout.
func (s *SolarService) SaveSystem(userID uint, layout json.RawMessage) error {
	var items []json.RawMessage
	if err := json.Unmarshal(layout, &items); err != nil {
		return errors.New("system layout must be a JSON array")
	}

	return s.SolarRepo.Upsert(&model.SolarSystem{
		UserID: userID,
		Layout: string(layout),
	})
}

// LoadSystem returns the user's saved layout, or util.ErrNoSavedSystem.
func (s *SolarService) LoadSystem(userID uint) (json.RawMessage, error) {
	system, err := s.SolarRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(system.Layout), nil
}
