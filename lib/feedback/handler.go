package feedbackhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-backend/db"
	applicationstore "recruit-backend/lib/application/store"
	feedbackstore "recruit-backend/lib/feedback/store"
	interviewstore "recruit-backend/lib/interview/store"
	usersstore "recruit-backend/lib/users/store"
	apperrors "recruit-backend/lib/utils/app-errors"
	"recruit-backend/lib/utils/helpers"
	initchecker "recruit-backend/lib/utils/init-checker"
	feedbackapimodels "recruit-backend/models/api/feedback"
	dbmodels "recruit-backend/models/db"
	"time"
)

type Provider interface {
	Create(data feedbackapimodels.FeedbackData) (feedbackapimodels.FeedbackView, error)
	Get(id string) (feedbackapimodels.FeedbackView, error)
	ListByApplication(applicationID string) ([]feedbackapimodels.FeedbackView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:            feedbackstore.NewInstance(db.DB),
		interviewStore:   interviewstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		userStore:        usersstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"interviewStore", instance.interviewStore,
		"applicationStore", instance.applicationStore,
		"userStore", instance.userStore,
	)
	Instance = instance
}

type impl struct {
	store            feedbackstore.Provider
	interviewStore   interviewstore.Provider
	applicationStore applicationstore.Provider
	userStore        usersstore.Provider
}

func (i impl) Create(data feedbackapimodels.FeedbackData) (feedbackapimodels.FeedbackView, error) {
	if err := data.Validate(); err != nil {
		return feedbackapimodels.FeedbackView{}, err
	}
	if err := i.checkRefs(data); err != nil {
		return feedbackapimodels.FeedbackView{}, err
	}
	rec := dbmodels.Feedback{
		InterviewID:     data.InterviewID,
		ApplicationID:   data.ApplicationID,
		EvaluatorID:     data.EvaluatorID,
		CandidateID:     data.CandidateID,
		Rating:          data.Rating,
		Comments:        data.Comments,
		Strengths:       data.Strengths,
		Weaknesses:      data.Weaknesses,
		Recommendations: data.Recommendations,
		SubmissionDate:  time.Now(),
	}
	if data.SubmissionDate != nil && !data.SubmissionDate.IsZero() {
		rec.SubmissionDate = *data.SubmissionDate
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).WithField("application_id", data.ApplicationID).Error("ошибка сохранения отзыва")
		return feedbackapimodels.FeedbackView{}, errors.New("ошибка сохранения отзыва")
	}
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		log.WithError(err).WithField("feedback_id", id).Error("ошибка получения сохраненного отзыва")
		return feedbackapimodels.FeedbackView{}, errors.New("ошибка сохранения отзыва")
	}
	return feedbackapimodels.Convert(*created), nil
}

func (i impl) Get(id string) (feedbackapimodels.FeedbackView, error) {
	if !helpers.IsUUID(id) {
		return feedbackapimodels.FeedbackView{}, apperrors.NotFound("отзыв не найден")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("feedback_id", id).Error("ошибка получения отзыва")
		return feedbackapimodels.FeedbackView{}, errors.New("ошибка получения отзыва")
	}
	if rec == nil {
		return feedbackapimodels.FeedbackView{}, apperrors.NotFound("отзыв не найден")
	}
	return feedbackapimodels.Convert(*rec), nil
}

func (i impl) ListByApplication(applicationID string) ([]feedbackapimodels.FeedbackView, error) {
	if !helpers.IsUUID(applicationID) {
		return nil, apperrors.NotFound("отклик не найден")
	}
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		log.WithError(err).WithField("application_id", applicationID).Error("ошибка получения отклика")
		return nil, errors.New("ошибка получения отклика")
	}
	if application == nil {
		return nil, apperrors.NotFound("отклик не найден")
	}
	list, err := i.store.ListByApplication(applicationID)
	if err != nil {
		log.WithError(err).WithField("application_id", applicationID).Error("ошибка получения списка отзывов")
		return nil, errors.New("ошибка получения списка отзывов")
	}
	result := make([]feedbackapimodels.FeedbackView, 0, len(list))
	for _, rec := range list {
		result = append(result, feedbackapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) checkRefs(data feedbackapimodels.FeedbackData) error {
	logger := log.WithField("application_id", data.ApplicationID)
	if !helpers.IsUUID(data.InterviewID) {
		return apperrors.Validation("собеседование не найдено")
	}
	interview, err := i.interviewStore.GetByID(data.InterviewID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения собеседования")
		return errors.New("ошибка получения собеседования")
	}
	if interview == nil {
		return apperrors.Validation("собеседование не найдено")
	}
	if interview.ApplicationID != data.ApplicationID {
		return apperrors.Validation("собеседование относится к другому отклику")
	}

	if !helpers.IsUUID(data.ApplicationID) {
		return apperrors.Validation("отклик не найден")
	}
	application, err := i.applicationStore.GetByID(data.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения отклика")
		return errors.New("ошибка получения отклика")
	}
	if application == nil {
		return apperrors.Validation("отклик не найден")
	}
	if application.CandidateID != data.CandidateID {
		return apperrors.Validation("кандидат не совпадает с кандидатом отклика")
	}

	for _, userID := range []string{data.EvaluatorID, data.CandidateID} {
		if !helpers.IsUUID(userID) {
			return apperrors.Validation("пользователь не найден")
		}
		user, err := i.userStore.GetByID(userID)
		if err != nil {
			logger.WithError(err).WithField("user_id", userID).Error("ошибка получения пользователя")
			return errors.New("ошибка получения пользователя")
		}
		if user == nil {
			return apperrors.Validation("пользователь не найден")
		}
	}
	return nil
}
