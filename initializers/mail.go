package initializers

import (
	"recruit-backend/config"
	"recruit-backend/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	conf := config.Conf.Smtp
	if conf.Host == "" && config.Conf.Contact.NotifyEmail != "" {
		log.WithField("notify_email", config.Conf.Contact.NotifyEmail).
			Warn("smtp не настроен, уведомления об обращениях отправляться не будут")
	}
	if err := smtp.Connect(conf.User, conf.Password, conf.Host, conf.Port, *conf.TLSEnabled); err != nil {
		panic(err.Error())
	}
}
