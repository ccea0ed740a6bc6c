package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"recruit-backend/models"
	dbmodels "recruit-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	ListByJobPost(jobPostID string) ([]dbmodels.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Omit("Candidate", "JobPost").
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения отклика")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Preload("JobPost").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByJobPost(jobPostID string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	err := i.db.
		Model(dbmodels.Application{}).
		Where("job_post_id = ?", jobPostID).
		Preload("Candidate").
		Order("submission_date").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка откликов")
	}
	return list, nil
}

func (i impl) UpdateStatus(id string, status models.ApplicationStatus) error {
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("status", status).
		Error
	if err != nil {
		return errors.Wrap(err, "ошибка обновления статуса отклика")
	}
	return nil
}
