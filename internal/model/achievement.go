package model

// Achievement is a badge earned by reaching a level. One row per level-up.
type Achievement struct {
	BaseModel
	UserID uint   `gorm:"index;type:bigint unsigned"`
	Name   string `gorm:"size:100;not null"`
	Icon   string `gorm:"size:255"`
	Level  int    `gorm:"not null"`
}

func (Achievement) TableName() string {
	return "achievements"
}
