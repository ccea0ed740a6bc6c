package dbmodels

import "time"

type ContactMessage struct {
	BaseModel
	Username   string     `gorm:"type:varchar(255);not null"`
	Email      string     `gorm:"type:varchar(255);not null"`
	Subject    string     `gorm:"type:varchar(255);not null"`
	Message    string     `gorm:"type:text;not null"`
	NotifiedAt *time.Time `gorm:"index"` // nil - уведомление HR еще не отправлено
}
