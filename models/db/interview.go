package dbmodels

import "time"

type Interview struct {
	BaseModel
	ApplicationID string       `gorm:"type:uuid;index;not null"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	CandidateID   string       `gorm:"type:uuid;index;not null"`
	ScheduledAt   time.Time
	Location      string `gorm:"type:varchar(255)"` // адрес или ссылка на звонок
}
