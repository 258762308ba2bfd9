package model

// swagger:model Planet
type Planet struct {
	BaseModel
	Name            string `gorm:"size:50;unique;not null" json:"name"`
	Diameter        string `gorm:"size:50" json:"diameter"`
	Moons           string `gorm:"size:20" json:"moons"`
	DistanceFromSun string `gorm:"size:50" json:"distanceFromSun"`
	Image           string `gorm:"size:255" json:"image"`
}

func (Planet) TableName() string {
	return "planets"
}
