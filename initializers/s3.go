package initializers

import (
	"context"
	"recruit-backend/config"
	filestorage "recruit-backend/lib/file-storage"
	s3client "recruit-backend/s3"
	"time"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	conf := config.Conf.S3
	err := s3client.Connect(conf.Endpoint, conf.AccessKeyID, conf.SecretAccessKey, *conf.UseSSL)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = s3client.MakeBucket(ctx, conf.BucketName); err != nil {
		log.WithError(err).Error("S3 соединение не удалось - бакет недоступен")
	}
	filestorage.NewHandler(s3client.Client, conf.BucketName, s3client.PublicURL(conf.PublicURL, conf.Endpoint, conf.BucketName, *conf.UseSSL))
	log.Info("S3 клиент успешно инициализирован")
}
