package dbmodels

import (
	"fmt"
	"recruit-backend/models"
)

type User struct {
	BaseModel
	FirstName   string          `gorm:"type:varchar(150)"`
	LastName    string          `gorm:"type:varchar(150)"`
	Email       string          `gorm:"type:varchar(255);uniqueIndex"`
	Role        models.UserRole `gorm:"type:varchar(50)"`
	Image       string          // ссылка на фото в хранилище
	PhoneNumber string          `gorm:"type:varchar(20)"`
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
