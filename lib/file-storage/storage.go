package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apimodels "recruit-backend/models/api"
)

type Folder string

const (
	UserPhotoFolder     Folder = "user-photo"
	ApplicationCVFolder Folder = "application-cv"
)

type Provider interface {
	// Upload сохраняет файл и возвращает публичную ссылку на него
	Upload(ctx context.Context, folder Folder, file apimodels.UploadFile) (url string, err error)
}

var Instance Provider

func NewHandler(s3client *minio.Client, bucketName, publicURL string) {
	Instance = impl{
		s3client:   s3client,
		bucketName: bucketName,
		publicURL:  strings.TrimRight(publicURL, "/"),
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
	publicURL  string
}

func (i impl) Upload(ctx context.Context, folder Folder, file apimodels.UploadFile) (url string, err error) {
	if i.s3client == nil {
		return "", errors.New("файловое хранилище не настроено")
	}
	objectName := i.objectName(folder, file.Name)
	logger := log.
		WithField("bucket", i.bucketName).
		WithField("object", objectName).
		WithField("file_name", file.Name)
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = i.s3client.PutObject(ctx, i.bucketName, objectName, bytes.NewReader(file.Body), int64(len(file.Body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки файла в хранилище")
		return "", errors.Wrap(err, "ошибка загрузки файла")
	}
	logger.Info("файл загружен в хранилище")
	return i.publicLink(objectName), nil
}

func (i impl) objectName(folder Folder, fileName string) string {
	return fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), strings.ToLower(filepath.Ext(fileName)))
}

func (i impl) publicLink(objectName string) string {
	return i.publicURL + "/" + objectName
}
