package feedbackstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "recruit-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Feedback) (id string, err error)
	GetByID(id string) (*dbmodels.Feedback, error)
	ListByApplication(applicationID string) ([]dbmodels.Feedback, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Feedback) (id string, err error) {
	err = i.db.
		Omit("Interview", "Evaluator", "Candidate").
		Save(&rec).
		Error
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения отзыва")
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Feedback, error) {
	rec := dbmodels.Feedback{}
	err := i.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByApplication(applicationID string) ([]dbmodels.Feedback, error) {
	list := []dbmodels.Feedback{}
	err := i.db.
		Model(dbmodels.Feedback{}).
		Where("application_id = ?", applicationID).
		Order("submission_date").
		Find(&list).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка отзывов")
	}
	return list, nil
}
