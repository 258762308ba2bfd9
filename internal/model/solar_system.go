package model

// SolarSystem stores the layout a user assembled in the solar builder,
// one saved system per user, as an opaque JSON document.
type SolarSystem struct {
	BaseModel
	UserID uint   `gorm:"uniqueIndex;type:bigint unsigned;not null"`
	Layout string `gorm:"type:json;not null"`
}

func (SolarSystem) TableName() string {
	return "solar_systems"
}
