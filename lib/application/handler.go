package applicationhandler

import (
	"bytes"
	"context"
	"fmt"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-backend/db"
	applicationhistorystore "recruit-backend/lib/application/history-store"
	applicationstore "recruit-backend/lib/application/store"
	xlsexport "recruit-backend/lib/export/xls"
	filestorage "recruit-backend/lib/file-storage"
	jobpoststore "recruit-backend/lib/jobpost/store"
	usersstore "recruit-backend/lib/users/store"
	apperrors "recruit-backend/lib/utils/app-errors"
	"recruit-backend/lib/utils/helpers"
	initchecker "recruit-backend/lib/utils/init-checker"
	"recruit-backend/lib/utils/lock"
	"recruit-backend/models"
	apimodels "recruit-backend/models/api"
	applicationapimodels "recruit-backend/models/api/application"
	dbmodels "recruit-backend/models/db"
	"time"
)

type Provider interface {
	Create(ctx context.Context, data applicationapimodels.ApplicationData, cv *apimodels.UploadFile) (applicationapimodels.ApplicationView, error)
	Get(id string) (applicationapimodels.ApplicationView, error)
	ListByJobPost(jobPostID string) ([]applicationapimodels.ApplicationView, error)
	ChangeStatus(ctx context.Context, id string, change applicationapimodels.StatusChange) (applicationapimodels.ApplicationView, error)
	History(id string) ([]applicationapimodels.ApplicationHistoryView, error)
	ExportCandidates(jobPostID string) (*bytes.Buffer, error)
}

var Instance Provider

const statusLockWait = 5 * time.Second

func NewHandler() {
	instance := impl{
		store:        applicationstore.NewInstance(db.DB),
		historyStore: applicationhistorystore.NewInstance(db.DB),
		userStore:    usersstore.NewInstance(db.DB),
		jobPostStore: jobpoststore.NewInstance(db.DB),
		fileStorage:  filestorage.Instance,
		xlsExport:    xlsexport.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"historyStore", instance.historyStore,
		"userStore", instance.userStore,
		"jobPostStore", instance.jobPostStore,
		"fileStorage", instance.fileStorage,
		"xlsExport", instance.xlsExport,
	)
	Instance = instance
}

type impl struct {
	store        applicationstore.Provider
	historyStore applicationhistorystore.Provider
	userStore    usersstore.Provider
	jobPostStore jobpoststore.Provider
	fileStorage  filestorage.Provider
	xlsExport    xlsexport.Provider
}

func (i impl) Create(ctx context.Context, data applicationapimodels.ApplicationData, cv *apimodels.UploadFile) (applicationapimodels.ApplicationView, error) {
	if err := data.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	logger := log.
		WithField("candidate_id", data.CandidateID).
		WithField("job_post_id", data.JobPostID)

	var candidate *dbmodels.User
	var err error
	if helpers.IsUUID(data.CandidateID) {
		candidate, err = i.userStore.GetByID(data.CandidateID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения кандидата")
			return applicationapimodels.ApplicationView{}, errors.New("ошибка получения кандидата")
		}
	}
	if candidate == nil {
		return applicationapimodels.ApplicationView{}, apperrors.Validation("кандидат не найден")
	}
	var jobPost *dbmodels.JobPost
	if helpers.IsUUID(data.JobPostID) {
		jobPost, err = i.jobPostStore.GetByID(data.JobPostID)
		if err != nil {
			logger.WithError(err).Error("ошибка получения вакансии")
			return applicationapimodels.ApplicationView{}, errors.New("ошибка получения вакансии")
		}
	}
	if jobPost == nil {
		return applicationapimodels.ApplicationView{}, apperrors.Validation("вакансия не найдена")
	}

	cvURL := data.CV
	if cv != nil {
		cvURL, err = i.fileStorage.Upload(ctx, filestorage.ApplicationCVFolder, *cv)
		if err != nil {
			logger.WithError(err).Error("ошибка загрузки резюме")
			return applicationapimodels.ApplicationView{}, errors.New("ошибка загрузки резюме")
		}
	}

	rec := dbmodels.Application{
		CandidateID:    candidate.ID,
		JobPostID:      jobPost.ID,
		CV:             cvURL,
		Status:         models.ApplicationSubmitted,
		SubmissionDate: time.Now(),
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения отклика")
		return applicationapimodels.ApplicationView{}, errors.New("ошибка сохранения отклика")
	}
	rec.ID = id
	rec.Candidate = candidate
	rec.JobPost = jobPost
	i.saveHistory(rec.ID, "", rec.Status, "отклик отправлен")
	logger.WithField("application_id", id).Info("отклик сохранен")
	return applicationapimodels.Convert(rec), nil
}

func (i impl) Get(id string) (applicationapimodels.ApplicationView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	return applicationapimodels.Convert(*rec), nil
}

func (i impl) ListByJobPost(jobPostID string) ([]applicationapimodels.ApplicationView, error) {
	if _, err := i.getJobPost(jobPostID); err != nil {
		return nil, err
	}
	list, err := i.store.ListByJobPost(jobPostID)
	if err != nil {
		log.WithError(err).WithField("job_post_id", jobPostID).Error("ошибка получения кандидатов по вакансии")
		return nil, errors.New("ошибка получения кандидатов по вакансии")
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) ChangeStatus(ctx context.Context, id string, change applicationapimodels.StatusChange) (applicationapimodels.ApplicationView, error) {
	if err := change.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	newStatus := models.ApplicationStatus(change.Status)
	var result applicationapimodels.ApplicationView
	// проверка перехода и запись статуса не должны пересекаться с другим запросом по этому же отклику
	locked, err := lock.WithDelay(ctx, "application-status:"+id, statusLockWait, func() error {
		rec, err := i.getRec(id)
		if err != nil {
			return err
		}
		if !rec.Status.CanTransitionTo(newStatus) {
			return apperrors.Conflict(fmt.Sprintf("переход из статуса %s в статус %s недопустим", rec.Status, newStatus))
		}
		if rec.Status == newStatus {
			result = applicationapimodels.Convert(*rec)
			return nil
		}
		if err = i.store.UpdateStatus(id, newStatus); err != nil {
			log.WithError(err).WithField("application_id", id).Error("ошибка изменения статуса отклика")
			return errors.New("ошибка изменения статуса отклика")
		}
		i.saveHistory(id, rec.Status, newStatus, change.Comment)
		rec.Status = newStatus
		result = applicationapimodels.Convert(*rec)
		return nil
	})
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if !locked {
		return applicationapimodels.ApplicationView{}, apperrors.Conflict("отклик изменяется другим пользователем")
	}
	return result, nil
}

func (i impl) History(id string) ([]applicationapimodels.ApplicationHistoryView, error) {
	if _, err := i.getRec(id); err != nil {
		return nil, err
	}
	list, err := i.historyStore.List(id)
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("ошибка получения истории отклика")
		return nil, errors.New("ошибка получения истории отклика")
	}
	result := make([]applicationapimodels.ApplicationHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.HistoryConvert(rec))
	}
	return result, nil
}

func (i impl) ExportCandidates(jobPostID string) (*bytes.Buffer, error) {
	jobPost, err := i.getJobPost(jobPostID)
	if err != nil {
		return nil, err
	}
	list, err := i.store.ListByJobPost(jobPostID)
	if err != nil {
		log.WithError(err).WithField("job_post_id", jobPostID).Error("ошибка получения кандидатов по вакансии")
		return nil, errors.New("ошибка получения кандидатов по вакансии")
	}
	buf, err := i.xlsExport.ExportCandidates(*jobPost, list)
	if err != nil {
		log.WithError(err).WithField("job_post_id", jobPostID).Error("ошибка выгрузки кандидатов")
		return nil, errors.New("ошибка выгрузки кандидатов")
	}
	return buf, nil
}

func (i impl) getRec(id string) (*dbmodels.Application, error) {
	if !helpers.IsUUID(id) {
		return nil, apperrors.NotFound("отклик не найден")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("application_id", id).Error("ошибка получения отклика")
		return nil, errors.New("ошибка получения отклика")
	}
	if rec == nil {
		return nil, apperrors.NotFound("отклик не найден")
	}
	return rec, nil
}

func (i impl) getJobPost(id string) (*dbmodels.JobPost, error) {
	if !helpers.IsUUID(id) {
		return nil, apperrors.NotFound("вакансия не найдена")
	}
	rec, err := i.jobPostStore.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("job_post_id", id).Error("ошибка получения вакансии")
		return nil, errors.New("ошибка получения вакансии")
	}
	if rec == nil {
		return nil, apperrors.NotFound("вакансия не найдена")
	}
	return rec, nil
}

func (i impl) saveHistory(applicationID string, oldStatus, newStatus models.ApplicationStatus, comment string) {
	rec := dbmodels.ApplicationHistory{
		ApplicationID: applicationID,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		Comment:       comment,
	}
	if _, err := i.historyStore.Create(rec); err != nil {
		log.
			WithError(err).
			WithField("application_id", applicationID).
			WithField("status", newStatus).
			Error("ошибка сохранения истории отклика")
	}
}
