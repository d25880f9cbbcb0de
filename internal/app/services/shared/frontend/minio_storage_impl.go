package frontend

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

const minioErrorCodeNoSuchKey = "NoSuchKey"

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.FrontendStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) Open(ctx context.Context, name string) (*models.FrontendObject, error) {
	objectName := cleanObjectName(name)
	if objectName == "" {
		return nil, exceptions.ErrFrontendObjectNotFound(nil, objectName)
	}

	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrFrontendObjectRead(err, objectName)
	}
	defer object.Close()

	info, err := object.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == minioErrorCodeNoSuchKey {
			return nil, exceptions.ErrFrontendObjectNotFound(err, objectName)
		}
		return nil, exceptions.ErrFrontendObjectRead(err, objectName)
	}

	body, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrFrontendObjectRead(err, objectName)
	}

	contentType := info.ContentType
	if contentType == "" || contentType == constvars.MIMEOctetStream {
		contentType = contentTypeFor(objectName, body)
	}

	return &models.FrontendObject{
		Name:        objectName,
		ContentType: contentType,
		ModTime:     info.LastModified,
		Body:        body,
	}, nil
}
