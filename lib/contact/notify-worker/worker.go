package contactnotifyworker

import (
	"context"
	"recruit-backend/db"
	contactstore "recruit-backend/lib/contact/store"
	"recruit-backend/lib/smtp"
	baseworker "recruit-backend/lib/utils/base-worker"
	"recruit-backend/lib/utils/helpers"
	contactapimodels "recruit-backend/models/api/contact"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// обращения моложе этого срока еще уведомляет сам обработчик
	pendingDelay = 5 * time.Minute
	batchSize    = 50
)

func StartWorker(ctx context.Context, notifyEmail string) {
	if notifyEmail == "" {
		log.Info("Contact.NotifyEmail не задан, воркер уведомлений об обращениях не запущен")
		return
	}
	i := &impl{
		BaseImpl:    *baseworker.NewInstance("ContactNotifyWorker", 30*time.Second, 10*time.Minute),
		store:       contactstore.NewInstance(db.DB),
		mail:        smtp.Instance,
		notifyEmail: notifyEmail,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	store       contactstore.Provider
	mail        smtp.Provider
	notifyEmail string
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	list, err := i.store.ListNotNotified(time.Now().Add(-pendingDelay), batchSize)
	if err != nil {
		logger.WithError(err).Error("ошибка получения обращений без уведомления")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		err = i.mail.SendEMail(rec.Email, i.notifyEmail, contactapimodels.NotifyText(rec), rec.Subject)
		if err != nil {
			logger.WithError(err).WithField("contact_id", rec.ID).Warn("повторная отправка уведомления не удалась")
			continue
		}
		err = i.store.SetNotified(rec.ID, time.Now())
		if err != nil {
			logger.WithError(err).WithField("contact_id", rec.ID).Error("ошибка отметки об уведомлении")
		}
	}
}
