package model

// Fact is a titled knowledge paragraph used for the daily knowledge page and
// for generating the fact-derived quiz question.
type Fact struct {
	BaseModel
	Code  string `gorm:"size:20;unique;not null"`
	Title string `gorm:"size:200;not null"`
	Text  string `gorm:"type:text;not null"`
}

func (Fact) TableName() string {
	return "facts"
}
