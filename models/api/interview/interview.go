package interviewapimodels

import (
	apperrors "recruit-backend/lib/utils/app-errors"
	apimodels "recruit-backend/models/api"
	dbmodels "recruit-backend/models/db"
	"time"
)

type InterviewData struct {
	ApplicationID string    `json:"applicationId" validate:"required"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	Location      string    `json:"location"`
}

func (r InterviewData) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if r.ScheduledAt.IsZero() {
		return apperrors.Validation("не указано поле 'scheduledAt'")
	}
	return nil
}

type InterviewView struct {
	InterviewData
	ID          string `json:"id"`
	CandidateID string `json:"candidateId"`
}

func Convert(rec dbmodels.Interview) InterviewView {
	return InterviewView{
		InterviewData: InterviewData{
			ApplicationID: rec.ApplicationID,
			ScheduledAt:   rec.ScheduledAt,
			Location:      rec.Location,
		},
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
	}
}
