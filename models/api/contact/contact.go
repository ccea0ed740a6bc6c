package contactapimodels

import (
	"fmt"
	apimodels "recruit-backend/models/api"
	dbmodels "recruit-backend/models/db"
)

type ContactData struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

func (r ContactData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ContactView struct {
	ContactData
	ID string `json:"id"`
}

func Convert(rec dbmodels.ContactMessage) ContactView {
	return ContactView{
		ContactData: ContactData{
			Username: rec.Username,
			Email:    rec.Email,
			Subject:  rec.Subject,
			Message:  rec.Message,
		},
		ID: rec.ID,
	}
}

// NotifyText текст письма HR о новом обращении
func NotifyText(rec dbmodels.ContactMessage) string {
	return fmt.Sprintf("%s (%s):\r\n%s", rec.Username, rec.Email, rec.Message)
}
