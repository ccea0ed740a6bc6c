package userapimodels

import (
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
	dbmodels "recruit-backend/models/db"
	"time"
)

type RegisterData struct {
	FirstName   string `json:"firstName" form:"firstName" validate:"required"`
	LastName    string `json:"lastName" form:"lastName" validate:"required"`
	Email       string `json:"email" form:"email" validate:"required"`
	Role        string `json:"role" form:"role" validate:"omitempty,oneof=CANDIDATE HR ADMIN"` // по умолчанию CANDIDATE
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Image       string `json:"image" form:"image"` // ссылка на фото, если файл не приложен
}

func (r RegisterData) Validate() error {
	return apimodels.ValidateStruct(r)
}

func (r RegisterData) GetRole() models.UserRole {
	if r.Role == "" {
		return models.CandidateRole
	}
	return models.UserRole(r.Role)
}

type UserView struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Image       string    `json:"image"`
	PhoneNumber string    `json:"phoneNumber"`
	CreateDate  time.Time `json:"createDate"`
}

func Convert(rec dbmodels.User) UserView {
	return UserView{
		ID:          rec.ID,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Email:       rec.Email,
		Role:        string(rec.Role),
		Image:       rec.Image,
		PhoneNumber: rec.PhoneNumber,
		CreateDate:  rec.CreatedAt,
	}
}
