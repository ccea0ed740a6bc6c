package dbmodels

import (
	"recruit-backend/models"
	"time"
)

type Application struct {
	BaseModel
	CandidateID    string                   `gorm:"type:uuid;index;not null"`
	Candidate      *User                    `gorm:"foreignKey:CandidateID"`
	JobPostID      string                   `gorm:"type:uuid;index;not null"`
	JobPost        *JobPost                 `gorm:"foreignKey:JobPostID"`
	CV             string                   // ссылка на резюме
	Status         models.ApplicationStatus `gorm:"type:varchar(20);index"`
	SubmissionDate time.Time
}

type ApplicationHistory struct {
	BaseModel
	ApplicationID string                   `gorm:"type:uuid;index"`
	OldStatus     models.ApplicationStatus `gorm:"type:varchar(20)"`
	NewStatus     models.ApplicationStatus `gorm:"type:varchar(20)"`
	Comment       string                   `gorm:"type:text"`
}
