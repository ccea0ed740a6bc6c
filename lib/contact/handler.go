package contacthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-backend/db"
	contactstore "recruit-backend/lib/contact/store"
	"recruit-backend/lib/smtp"
	apperrors "recruit-backend/lib/utils/app-errors"
	"recruit-backend/lib/utils/helpers"
	initchecker "recruit-backend/lib/utils/init-checker"
	contactapimodels "recruit-backend/models/api/contact"
	dbmodels "recruit-backend/models/db"
	"time"
)

type Provider interface {
	Create(data contactapimodels.ContactData) (contactapimodels.ContactView, error)
	List() ([]contactapimodels.ContactView, error)
	Get(id string) (contactapimodels.ContactView, error)
	Delete(id string) error
}

var Instance Provider

func NewHandler(notifyEmail string) {
	instance := impl{
		store:       contactstore.NewInstance(db.DB),
		mail:        smtp.Instance,
		notifyEmail: notifyEmail,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"mail", instance.mail,
	)
	Instance = instance
}

type impl struct {
	store       contactstore.Provider
	mail        smtp.Provider
	notifyEmail string
}

func (i impl) Create(data contactapimodels.ContactData) (contactapimodels.ContactView, error) {
	if err := data.Validate(); err != nil {
		return contactapimodels.ContactView{}, err
	}
	rec := dbmodels.ContactMessage{
		Username: data.Username,
		Email:    data.Email,
		Subject:  data.Subject,
		Message:  data.Message,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).WithField("email", data.Email).Error("ошибка сохранения обращения")
		return contactapimodels.ContactView{}, errors.New("ошибка сохранения обращения")
	}
	rec.ID = id
	if i.notifyEmail != "" {
		go i.notify(rec)
	}
	return contactapimodels.Convert(rec), nil
}

func (i impl) notify(rec dbmodels.ContactMessage) {
	err := i.mail.SendEMail(rec.Email, i.notifyEmail, contactapimodels.NotifyText(rec), rec.Subject)
	if err != nil {
		// повторит воркер уведомлений
		log.WithError(err).WithField("contact_id", rec.ID).Warn("не удалось уведомить о новом обращении")
		return
	}
	err = i.store.SetNotified(rec.ID, time.Now())
	if err != nil {
		log.WithError(err).WithField("contact_id", rec.ID).Error("ошибка отметки об уведомлении")
	}
}

func (i impl) List() ([]contactapimodels.ContactView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка обращений")
		return nil, errors.New("ошибка получения списка обращений")
	}
	result := make([]contactapimodels.ContactView, 0, len(list))
	for _, rec := range list {
		result = append(result, contactapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) Get(id string) (contactapimodels.ContactView, error) {
	if !helpers.IsUUID(id) {
		return contactapimodels.ContactView{}, apperrors.NotFound("обращение не найдено")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithError(err).WithField("contact_id", id).Error("ошибка получения обращения")
		return contactapimodels.ContactView{}, errors.New("ошибка получения обращения")
	}
	if rec == nil {
		return contactapimodels.ContactView{}, apperrors.NotFound("обращение не найдено")
	}
	return contactapimodels.Convert(*rec), nil
}

func (i impl) Delete(id string) error {
	if !helpers.IsUUID(id) {
		return apperrors.NotFound("обращение не найдено")
	}
	found, err := i.store.Delete(id)
	if err != nil {
		log.WithError(err).WithField("contact_id", id).Error("ошибка удаления обращения")
		return errors.New("ошибка удаления обращения")
	}
	if !found {
		return apperrors.NotFound("обращение не найдено")
	}
	log.WithField("contact_id", id).Info("обращение удалено")
	return nil
}
