package profilehistoryapimodels

import (
	apimodels "recruit-backend/models/api"
	dbmodels "recruit-backend/models/db"
	"time"
)

type ProfileHistoryData struct {
	CV            string `json:"CV" validate:"required"`
	ExtractedData string `json:"extractedData" validate:"required"`
}

func (r ProfileHistoryData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ProfileHistoryView struct {
	ProfileHistoryData
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func Convert(rec dbmodels.ProfileHistory) ProfileHistoryView {
	return ProfileHistoryView{
		ProfileHistoryData: ProfileHistoryData{
			CV:            rec.CV,
			ExtractedData: rec.ExtractedData,
		},
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
	}
}
