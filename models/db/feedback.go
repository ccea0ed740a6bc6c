package dbmodels

import (
	"time"

	"github.com/lib/pq"
)

type Feedback struct {
	BaseModel
	InterviewID     string         `gorm:"type:uuid;index;not null"`
	Interview       *Interview     `gorm:"foreignKey:InterviewID"`
	ApplicationID   string         `gorm:"type:uuid;index;not null"`
	EvaluatorID     string         `gorm:"type:uuid;not null"`
	Evaluator       *User          `gorm:"foreignKey:EvaluatorID"`
	CandidateID     string         `gorm:"type:uuid;not null"`
	Candidate       *User          `gorm:"foreignKey:CandidateID"`
	Rating          int            `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comments        string         `gorm:"type:text;not null"`
	Strengths       pq.StringArray `gorm:"type:text[]"`
	Weaknesses      pq.StringArray `gorm:"type:text[]"`
	Recommendations string         `gorm:"type:text"`
	SubmissionDate  time.Time
}
