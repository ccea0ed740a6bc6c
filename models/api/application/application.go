package applicationapimodels

import (
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
	jobpostapimodels "recruit-backend/models/api/jobpost"
	userapimodels "recruit-backend/models/api/user"
	dbmodels "recruit-backend/models/db"
	"time"
)

type ApplicationData struct {
	CandidateID string `json:"candidateId" form:"candidateId" validate:"required"`
	JobPostID   string `json:"jobPostId" form:"jobPostId" validate:"required"`
	CV          string `json:"cv" form:"cv"` // ссылка на резюме, если файл не приложен
}

func (r ApplicationData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type StatusChange struct {
	Status  string `json:"status" validate:"required,oneof=SUBMITTED REVIEWED INTERVIEWED REJECTED ACCEPTED"`
	Comment string `json:"comment"`
}

func (r StatusChange) Validate() error {
	return apimodels.ValidateStruct(r)
}

type ApplicationView struct {
	ID             string                        `json:"id"`
	CandidateID    string                        `json:"candidateId"`
	Candidate      *userapimodels.UserView       `json:"candidate,omitempty"`
	JobPostID      string                        `json:"jobPostId"`
	JobPost        *jobpostapimodels.JobPostView `json:"jobPost,omitempty"`
	CV             string                        `json:"cv"`
	Status         models.ApplicationStatus      `json:"status"`
	StatusStep     int                           `json:"statusStep"` // индекс шага, -1 для неизвестного статуса
	SubmissionDate time.Time                     `json:"submissionDate"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ID:             rec.ID,
		CandidateID:    rec.CandidateID,
		JobPostID:      rec.JobPostID,
		CV:             rec.CV,
		Status:         rec.Status,
		StatusStep:     rec.Status.StepIndex(),
		SubmissionDate: rec.SubmissionDate,
	}
	if rec.Candidate != nil {
		candidate := userapimodels.Convert(*rec.Candidate)
		result.Candidate = &candidate
	}
	if rec.JobPost != nil {
		jobPost := jobpostapimodels.Convert(*rec.JobPost)
		result.JobPost = &jobPost
	}
	return result
}

type ApplicationHistoryView struct {
	OldStatus models.ApplicationStatus `json:"oldStatus"`
	NewStatus models.ApplicationStatus `json:"newStatus"`
	Comment   string                   `json:"comment"`
	CreatedAt time.Time                `json:"createdAt"`
}

func HistoryConvert(rec dbmodels.ApplicationHistory) ApplicationHistoryView {
	return ApplicationHistoryView{
		OldStatus: rec.OldStatus,
		NewStatus: rec.NewStatus,
		Comment:   rec.Comment,
		CreatedAt: rec.CreatedAt,
	}
}
