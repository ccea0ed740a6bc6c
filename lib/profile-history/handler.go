package profilehistoryhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-backend/db"
	profilehistorystore "recruit-backend/lib/profile-history/store"
	apperrors "recruit-backend/lib/utils/app-errors"
	"recruit-backend/lib/utils/helpers"
	initchecker "recruit-backend/lib/utils/init-checker"
	profilehistoryapimodels "recruit-backend/models/api/profile-history"
	dbmodels "recruit-backend/models/db"
)

type Provider interface {
	Create(data profilehistoryapimodels.ProfileHistoryData) (profilehistoryapimodels.ProfileHistoryView, error)
	List() ([]profilehistoryapimodels.ProfileHistoryView, error)
	Get(id string) (profilehistoryapimodels.ProfileHistoryView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: profilehistorystore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store profilehistorystore.Provider
}

func (i impl) Create(data profilehistoryapimodels.ProfileHistoryData) (profilehistoryapimodels.ProfileHistoryView, error) {
	if err := data.Validate(); err != nil {
		return profilehistoryapimodels.ProfileHistoryView{}, err
	}
	rec := dbmodels.ProfileHistory{
		CV:            data.CV,
		ExtractedData: data.ExtractedData,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка сохранения истории профиля")
		return profilehistoryapimodels.ProfileHistoryView{}, errors.New("ошибка сохранения истории профиля")
	}
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		log.WithError(err).WithField("profile_history_id", id).Error("ошибка получения сохраненной истории профиля")
		return profilehistoryapimodels.ProfileHistoryView{}, errors.New("ошибка сохранения истории профиля")
	}
	return profilehistoryapimodels.Convert(*created), nil
}

func (i impl) List() ([]profilehistoryapimodels.ProfileHistoryView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения истории профиля")
		return nil, errors.New("ошибка получения истории профиля")
	}
	result := make([]profilehistoryapimodels.ProfileHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, profilehistoryapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Get(id string) (profilehistoryapimodels.ProfileHistoryView, error) {
	if !helpers.IsUUID(id) {
		return profilehistoryapimodels.ProfileHistoryView{}, apperrors.NotFound("запись истории профиля не найдена")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("profile_history_id", id).Error("ошибка получения записи истории профиля")
		return profilehistoryapimodels.ProfileHistoryView{}, errors.New("ошибка получения записи истории профиля")
	}
	if rec == nil {
		return profilehistoryapimodels.ProfileHistoryView{}, apperrors.NotFound("запись истории профиля не найдена")
	}
	return profilehistoryapimodels.Convert(*rec), nil
}
