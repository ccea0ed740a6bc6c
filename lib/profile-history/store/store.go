package profilehistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ProfileHistory) (id string, err error)
	List() ([]dbmodels.ProfileHistory, error)
	GetByID(id string) (*dbmodels.ProfileHistory, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ProfileHistory) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения истории профиля")
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.ProfileHistory, error) {
	list := []dbmodels.ProfileHistory{}
	err := i.db.Model(dbmodels.ProfileHistory{}).Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения истории профиля")
	}
	return list, nil
}

func (i impl) GetByID(id string) (*dbmodels.ProfileHistory, error) {
	rec := dbmodels.ProfileHistory{}
	err := i.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
