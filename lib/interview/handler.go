package interviewhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-backend/db"
	applicationstore "recruit-backend/lib/application/store"
	interviewstore "recruit-backend/lib/interview/store"
	apperrors "recruit-backend/lib/utils/app-errors"
	"recruit-backend/lib/utils/helpers"
	initchecker "recruit-backend/lib/utils/init-checker"
	interviewapimodels "recruit-backend/models/api/interview"
	dbmodels "recruit-backend/models/db"
)

type Provider interface {
	Create(data interviewapimodels.InterviewData) (interviewapimodels.InterviewView, error)
	Get(id string) (interviewapimodels.InterviewView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            interviewstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"applicationStore", instance.applicationStore,
	)
	Instance = instance
}

type impl struct {
	store            interviewstore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) Create(data interviewapimodels.InterviewData) (interviewapimodels.InterviewView, error) {
	if err := data.Validate(); err != nil {
		return interviewapimodels.InterviewView{}, err
	}
	logger := log.WithField("application_id", data.ApplicationID)
	var application *dbmodels.Application
	var err error
	if helpers.IsUUID(data.ApplicationID) {
		application, err = i.applicationStore.GetByID(data.ApplicationID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения отклика")
			return interviewapimodels.InterviewView{}, errors.New("ошибка получения отклика")
		}
	}
	if application == nil {
		return interviewapimodels.InterviewView{}, apperrors.Validation("отклик не найден")
	}
	rec := dbmodels.Interview{
		ApplicationID: application.ID,
		CandidateID:   application.CandidateID,
		ScheduledAt:   data.ScheduledAt,
		Location:      data.Location,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения собеседования")
		return interviewapimodels.InterviewView{}, errors.New("ошибка сохранения собеседования")
	}
	rec.ID = id
	return interviewapimodels.Convert(rec), nil
}

func (i impl) Get(id string) (interviewapimodels.InterviewView, error) {
	if !helpers.IsUUID(id) {
		return interviewapimodels.InterviewView{}, apperrors.NotFound("собеседование не найдено")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("interview_id", id).Error("ошибка получения собеседования")
		return interviewapimodels.InterviewView{}, errors.New("ошибка получения собеседования")
	}
	if rec == nil {
		return interviewapimodels.InterviewView{}, apperrors.NotFound("собеседование не найдено")
	}
	return interviewapimodels.Convert(*rec), nil
}
