package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/apperr"
)

type minioStorage struct {
	client *minio.Client
	bucket string
}

func NewMinIO(ctx context.Context, client *minio.Client, bucket string) (Storage, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &minioStorage{client: client, bucket: bucket}, nil
}

func (s *minioStorage) Put(ctx context.Context, r io.Reader, objectName string, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *minioStorage) Get(ctx context.Context, objectName string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, translateMinioErr(err, objectName)
	}

	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, ObjectInfo{}, translateMinioErr(err, objectName)
	}

	return obj, ObjectInfo{Size: stat.Size, ContentType: stat.ContentType}, nil
}

func (s *minioStorage) GetRange(ctx context.Context, objectName string, start, end int64) (io.ReadCloser, error) {
	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(start, end); err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, objectName, opts)
	if err != nil {
		return nil, translateMinioErr(err, objectName)
	}

	return obj, nil
}

func (s *minioStorage) Stat(ctx context.Context, objectName string) (ObjectInfo, error) {
	stat, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, translateMinioErr(err, objectName)
	}

	return ObjectInfo{Size: stat.Size, ContentType: stat.ContentType}, nil
}

func (s *minioStorage) Delete(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return translateMinioErr(err, objectName)
	}
	return nil
}

func (s *minioStorage) URL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, objectName)
}

func translateMinioErr(err error, objectName string) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return apperr.E(apperr.KindNotFound, fmt.Errorf("object %s: %w", objectName, err))
	}
	return err
}
