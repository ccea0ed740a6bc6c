package jobpostapimodels

import (
	apperrors "recruit-backend/lib/utils/app-errors"
	apimodels "recruit-backend/models/api"
	dbmodels "recruit-backend/models/db"
	"time"
)

type JobPostData struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	JobType     string   `json:"jobType"`
	Experience  string   `json:"experience"`
	SalaryFrom  int      `json:"salaryFrom" validate:"gte=0"`
	SalaryTo    int      `json:"salaryTo" validate:"gte=0"`
	Tags        []string `json:"tags"`
}

func (r JobPostData) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if r.SalaryTo > 0 && r.SalaryFrom > r.SalaryTo {
		return apperrors.Validation("зарплата 'от' больше зарплаты 'до'")
	}
	return nil
}

type JobPostView struct {
	JobPostData
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func Convert(rec dbmodels.JobPost) JobPostView {
	tags := []string(rec.Tags)
	if tags == nil {
		tags = []string{}
	}
	return JobPostView{
		JobPostData: JobPostData{
			Title:       rec.Title,
			Description: rec.Description,
			Location:    rec.Location,
			Category:    rec.Category,
			JobType:     rec.JobType,
			Experience:  rec.Experience,
			SalaryFrom:  rec.SalaryFrom,
			SalaryTo:    rec.SalaryTo,
			Tags:        tags,
		},
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
	}
}
