package usershandler

import (
	"context"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"recruit-backend/db"
	filestorage "recruit-backend/lib/file-storage"
	usersstore "recruit-backend/lib/users/store"
	apperrors "recruit-backend/lib/utils/app-errors"
	initchecker "recruit-backend/lib/utils/init-checker"
	apimodels "recruit-backend/models/api"
	userapimodels "recruit-backend/models/api/user"
	dbmodels "recruit-backend/models/db"
	"strings"
)

type Provider interface {
	Register(ctx context.Context, data userapimodels.RegisterData, picture *apimodels.UploadFile) (userapimodels.UserView, error)
	List() ([]userapimodels.UserView, error)
	GetByEmail(email string) (userapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       usersstore.NewInstance(db.DB),
		fileStorage: filestorage.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"fileStorage", instance.fileStorage,
	)
	Instance = instance
}

type impl struct {
	store       usersstore.Provider
	fileStorage filestorage.Provider
}

func (i impl) Register(ctx context.Context, data userapimodels.RegisterData, picture *apimodels.UploadFile) (userapimodels.UserView, error) {
	if err := data.Validate(); err != nil {
		return userapimodels.UserView{}, err
	}
	logger := log.WithField("email", data.Email)
	exist, err := i.store.GetByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки email на дубли")
		return userapimodels.UserView{}, errors.New("ошибка проверки email на дубли")
	}
	if exist != nil {
		return userapimodels.UserView{}, apperrors.Conflict("пользователь с таким email уже зарегистрирован")
	}

	image := data.Image
	if picture != nil {
		image, err = i.fileStorage.Upload(ctx, filestorage.UserPhotoFolder, *picture)
		if err != nil {
			logger.WithError(err).Error("ошибка загрузки фото пользователя")
			return userapimodels.UserView{}, errors.New("ошибка загрузки фото пользователя")
		}
	}

	rec := dbmodels.User{
		FirstName:   strings.TrimSpace(data.FirstName),
		LastName:    strings.TrimSpace(data.LastName),
		Email:       data.Email,
		Role:        data.GetRole(),
		Image:       image,
		PhoneNumber: data.PhoneNumber,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		// параллельная регистрация с тем же email
		if errors.Is(err, usersstore.ErrDuplicateEmail) {
			return userapimodels.UserView{}, apperrors.Conflict("пользователь с таким email уже зарегистрирован")
		}
		logger.WithError(err).Error("ошибка регистрации пользователя")
		return userapimodels.UserView{}, errors.New("ошибка регистрации пользователя")
	}
	created, err := i.store.GetByID(id)
	if err != nil || created == nil {
		logger.WithError(err).Error("ошибка получения зарегистрированного пользователя")
		return userapimodels.UserView{}, errors.New("ошибка регистрации пользователя")
	}
	logger.WithField("user_id", id).Info("пользователь зарегистрирован")
	return userapimodels.Convert(*created), nil
}

func (i impl) List() ([]userapimodels.UserView, error) {
	list, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка пользователей")
		return nil, errors.New("ошибка получения списка пользователей")
	}
	result := make([]userapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, userapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) GetByEmail(email string) (userapimodels.UserView, error) {
	if strings.TrimSpace(email) == "" {
		return userapimodels.UserView{}, apperrors.Validation("не указан email")
	}
	rec, err := i.store.GetByEmail(email)
	if err != nil {
		log.WithError(err).WithField("email", email).Error("ошибка получения пользователя")
		return userapimodels.UserView{}, errors.New("ошибка получения пользователя")
	}
	if rec == nil {
		return userapimodels.UserView{}, apperrors.NotFound("пользователь не найден")
	}
	return userapimodels.Convert(*rec), nil
}
