package s3client

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

var Client *minio.Client

func Connect(endpoint, accessKeyID, secretAccessKey string, useSSL bool) error {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return errors.Wrap(err, "ошибка инициализации клиента S3")
	}
	Client = minioClient
	return nil
}

func MakeBucket(ctx context.Context, bucketName string) error {
	if Client == nil {
		return errors.New("клиент S3 не инициализирован")
	}
	location := "us-east-1"
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

// PublicURL адрес, по которому доступны объекты бакета
func PublicURL(configured, endpoint, bucketName string, useSSL bool) string {
	if configured != "" {
		return configured
	}
	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucketName)
}
