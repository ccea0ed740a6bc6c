package contactstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-backend/models/db"
	"time"
)

type Provider interface {
	Create(rec dbmodels.ContactMessage) (id string, err error)
	List() ([]dbmodels.ContactMessage, error)
	GetByID(id string) (*dbmodels.ContactMessage, error)
	Delete(id string) (found bool, err error)
	ListNotNotified(createdBefore time.Time, limit int) ([]dbmodels.ContactMessage, error)
	SetNotified(id string, at time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ContactMessage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения обращения")
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.ContactMessage, error) {
	list := []dbmodels.ContactMessage{}
	err := i.db.Model(dbmodels.ContactMessage{}).Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка обращений")
	}
	return list, nil
}

func (i impl) GetByID(id string) (*dbmodels.ContactMessage, error) {
	rec := dbmodels.ContactMessage{}
	err := i.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Delete(id string) (found bool, err error) {
	tx := i.db.Where("id = ?", id).Delete(&dbmodels.ContactMessage{})
	if tx.Error != nil {
		return false, errors.Wrap(tx.Error, "ошибка удаления обращения")
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) ListNotNotified(createdBefore time.Time, limit int) ([]dbmodels.ContactMessage, error) {
	list := []dbmodels.ContactMessage{}
	err := i.db.Model(dbmodels.ContactMessage{}).
		Where("notified_at is null").
		Where("created_at < ?", createdBefore).
		Order("created_at").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка обращений без уведомления")
	}
	return list, nil
}

func (i impl) SetNotified(id string, at time.Time) error {
	err := i.db.Model(dbmodels.ContactMessage{}).
		Where("id = ?", id).
		Update("notified_at", at).Error
	if err != nil {
		return errors.Wrap(err, "ошибка отметки об уведомлении")
	}
	return nil
}
