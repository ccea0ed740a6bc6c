package applicationhistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicationHistory) (id string, err error)
	List(applicationID string) ([]dbmodels.ApplicationHistory, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicationHistory) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(applicationID string) ([]dbmodels.ApplicationHistory, error) {
	list := []dbmodels.ApplicationHistory{}
	err := i.db.
		Model(dbmodels.ApplicationHistory{}).
		Where("application_id = ?", applicationID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения истории отклика")
	}
	return list, nil
}
