package model

// Mission is one curated space mission. Achievements is a JSON array of
// notable accomplishments; it doubles as the option list for the mission quiz.
type Mission struct {
	BaseModel
	Code         string `gorm:"size:30;unique;not null" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Agency       string `gorm:"size:100;not null" json:"agency"`
	LaunchDate   string `gorm:"size:20;not null" json:"launchDate"`
	Summary      string `gorm:"type:text" json:"summary"`
	Achievements string `gorm:"type:json" json:"achievements"`
	FunFact      string `gorm:"type:text" json:"funFact"`
	Image        string `gorm:"size:255" json:"image"`
}

func (Mission) TableName() string {
	return "missions"
}

// MissionCompletion records a graded mission activity for a user.
type MissionCompletion struct {
	BaseModel
	UserID      uint         `gorm:"index;type:bigint unsigned;not null"`
	MissionCode string       `gorm:"size:30;index"`
	Kind        ActivityKind `gorm:"size:20;not null"`
	Score       int          `gorm:"not null"`
	Total       int          `gorm:"not null"`
	XPAwarded   int          `gorm:"not null"`
}

func (MissionCompletion) TableName() string {
	return "mission_completions"
}
