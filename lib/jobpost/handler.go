package jobposthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-backend/db"
	jobpoststore "recruit-backend/lib/jobpost/store"
	apperrors "recruit-backend/lib/utils/app-errors"
	"recruit-backend/lib/utils/helpers"
	initchecker "recruit-backend/lib/utils/init-checker"
	jobpostapimodels "recruit-backend/models/api/jobpost"
	dbmodels "recruit-backend/models/db"
	"strings"
)

type Provider interface {
	Create(data jobpostapimodels.JobPostData) (jobpostapimodels.JobPostView, error)
	Get(id string) (jobpostapimodels.JobPostView, error)
	List(filter jobpostapimodels.JobPostFilter) ([]jobpostapimodels.JobPostView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: jobpoststore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store jobpoststore.Provider
}

func (i impl) Create(data jobpostapimodels.JobPostData) (jobpostapimodels.JobPostView, error) {
	if err := data.Validate(); err != nil {
		return jobpostapimodels.JobPostView{}, err
	}
	rec := dbmodels.JobPost{
		Title:       strings.TrimSpace(data.Title),
		Description: data.Description,
		Location:    data.Location,
		Category:    data.Category,
		JobType:     data.JobType,
		Experience:  data.Experience,
		SalaryFrom:  data.SalaryFrom,
		SalaryTo:    data.SalaryTo,
		Tags:        data.Tags,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).WithField("title", rec.Title).Error("ошибка добавления вакансии")
		return jobpostapimodels.JobPostView{}, errors.New("ошибка добавления вакансии")
	}
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		log.WithError(err).WithField("job_post_id", id).Error("ошибка получения добавленной вакансии")
		return jobpostapimodels.JobPostView{}, errors.New("ошибка добавления вакансии")
	}
	return jobpostapimodels.Convert(*created), nil
}

func (i impl) Get(id string) (jobpostapimodels.JobPostView, error) {
	if !helpers.IsUUID(id) {
		return jobpostapimodels.JobPostView{}, apperrors.NotFound("вакансия не найдена")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("job_post_id", id).Error("ошибка получения вакансии")
		return jobpostapimodels.JobPostView{}, errors.New("ошибка получения вакансии")
	}
	if rec == nil {
		return jobpostapimodels.JobPostView{}, apperrors.NotFound("вакансия не найдена")
	}
	return jobpostapimodels.Convert(*rec), nil
}

func (i impl) List(filter jobpostapimodels.JobPostFilter) ([]jobpostapimodels.JobPostView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка вакансий")
		return nil, errors.New("ошибка получения списка вакансий")
	}
	result := make([]jobpostapimodels.JobPostView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobpostapimodels.Convert(rec))
	}
	return result, nil
}
