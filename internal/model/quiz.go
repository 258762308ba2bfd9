package model

type QuestionType string

const (
	QuestionMCQ  QuestionType = "mcq"
	QuestionText QuestionType = "text"
)

// QuizQuestion is one entry of the general question bank. Options is a JSON
// array for mcq questions, empty for free-text ones. Answer never leaves the
// server except through the grading path.
type QuizQuestion struct {
	BaseModel
	Code    string       `gorm:"size:20;unique;not null"`
	Type    QuestionType `gorm:"size:10;not null"`
	Prompt  string       `gorm:"size:500;not null"`
	Options string       `gorm:"type:json"`
	Answer  string       `gorm:"size:255;not null" json:"-"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

type ActivityKind string

const (
	ActivityDailyQuiz    ActivityKind = "daily_quiz"
	ActivityMissionQuiz  ActivityKind = "mission_quiz"
	ActivityPhotoMission ActivityKind = "photo_mission"
	ActivityNeoMission   ActivityKind = "neo_mission"
)

// QuizResult records one graded activity and the XP it earned.
type QuizResult struct {
	BaseModel
	UserID    uint         `gorm:"index;type:bigint unsigned;not null"`
	Kind      ActivityKind `gorm:"size:20;not null;index"`
	Score     int          `gorm:"not null"`
	Total     int          `gorm:"not null"`
	XPAwarded int          `gorm:"not null"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
