package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "recruit-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	models := []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"ContactMessage", &dbmodels.ContactMessage{}},
		{"JobPost", &dbmodels.JobPost{}},
		{"Application", &dbmodels.Application{}},
		{"ApplicationHistory", &dbmodels.ApplicationHistory{}},
		{"Interview", &dbmodels.Interview{}},
		{"Feedback", &dbmodels.Feedback{}},
		{"ProfileHistory", &dbmodels.ProfileHistory{}},
	}
	for _, item := range models {
		if err := DB.AutoMigrate(item.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %s", item.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}
