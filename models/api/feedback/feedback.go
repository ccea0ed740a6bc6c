package feedbackapimodels

import (
	apimodels "recruit-backend/models/api"
	dbmodels "recruit-backend/models/db"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type FeedbackData struct {
	InterviewID     string     `json:"interview" validate:"required"`
	ApplicationID   string     `json:"application" validate:"required"`
	EvaluatorID     string     `json:"evaluator" validate:"required"`
	CandidateID     string     `json:"candidate" validate:"required"`
	Rating          int        `json:"rating" validate:"min=1,max=5"`
	Comments        string     `json:"comments" validate:"required"`
	Strengths       []string   `json:"strengths"`
	Weaknesses      []string   `json:"weaknesses"`
	Recommendations string     `json:"recommendations"`
	SubmissionDate  *time.Time `json:"submissionDate"` // по умолчанию - момент создания
}

func (r FeedbackData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type FeedbackView struct {
	ID              string    `json:"id"`
	InterviewID     string    `json:"interview"`
	ApplicationID   string    `json:"application"`
	EvaluatorID     string    `json:"evaluator"`
	CandidateID     string    `json:"candidate"`
	Rating          int       `json:"rating"`
	Comments        string    `json:"comments"`
	Strengths       []string  `json:"strengths"`
	Weaknesses      []string  `json:"weaknesses"`
	Recommendations string    `json:"recommendations"`
	SubmissionDate  time.Time `json:"submissionDate"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func Convert(rec dbmodels.Feedback) FeedbackView {
	return FeedbackView{
		ID:              rec.ID,
		InterviewID:     rec.InterviewID,
		ApplicationID:   rec.ApplicationID,
		EvaluatorID:     rec.EvaluatorID,
		CandidateID:     rec.CandidateID,
		Rating:          rec.Rating,
		Comments:        rec.Comments,
		Strengths:       nonNil(rec.Strengths),
		Weaknesses:      nonNil(rec.Weaknesses),
		Recommendations: rec.Recommendations,
		SubmissionDate:  rec.SubmissionDate,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
