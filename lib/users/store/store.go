package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"recruit-backend/lib/utils/helpers"
	dbmodels "recruit-backend/models/db"
)

// ErrDuplicateEmail пользователь с таким email уже есть (уникальный индекс)
var ErrDuplicateEmail = errors.New("пользователь с таким email уже существует")

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	List() ([]dbmodels.User, error)
	GetByID(id string) (*dbmodels.User, error)
	GetByEmail(email string) (*dbmodels.User, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	rec.Email = helpers.NormalizeEmail(rec.Email)
	err = i.db.Save(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrDuplicateEmail
		}
		return "", errors.Wrap(err, "ошибка добавления пользователя")
	}
	return rec.ID, nil
}

func (i impl) List() ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	err := i.db.Model(dbmodels.User{}).Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка пользователей")
	}
	return list, nil
}

func (i impl) GetByID(id string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) GetByEmail(email string) (*dbmodels.User, error) {
	rec := dbmodels.User{}
	err := i.db.
		Where("email = ?", helpers.NormalizeEmail(email)).
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
