package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Username string `gorm:"size:100;unique;not null" json:"Username"`
	Password string `gorm:"size:100;not null" json:"-"`
	// XP only ever grows; Level is derived from XP through the threshold table
	// and must never be written independently of it.
	XP       int       `gorm:"default:0" json:"XP"`
	Level    int       `gorm:"default:1" json:"Level"`
	Avatar   string    `gorm:"size:255" json:"avatar"`
	LastSeen time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"LastSeen"`
}

func (User) TableName() string {
	return "users"
}
