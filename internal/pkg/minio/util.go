package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// UploadFile 上传文件到MinIO
func UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}

	uploadInfo, err := Client.PutObject(ctx, CertBucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// GetFile 获取文件读取流，调用方负责 Close
func GetFile(ctx context.Context, objectName string) (io.ReadCloser, int64, string, error) {
	if Client == nil {
		return nil, 0, "", fmt.Errorf("minio client is not initialized")
	}

	object, err := Client.GetObject(ctx, CertBucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, "", fmt.Errorf("failed to get file: %w", err)
	}

	stat, err := object.Stat()
	if err != nil {
		_ = object.Close()
		return nil, 0, "", fmt.Errorf("failed to stat file: %w", err)
	}

	return object, stat.Size, stat.ContentType, nil
}

// DeleteFile 删除MinIO中的文件
func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}

	err := Client.RemoveObject(ctx, CertBucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
