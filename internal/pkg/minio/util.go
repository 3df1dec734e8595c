package minio

import (
	"Atelier/internal/api/config"
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

	uploadInfo, err := Client.PutObject(ctx, BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadInfo.Key, nil
}

// GetFile 获取文件读取流，调用方负责 Close
func GetFile(ctx context.Context, objectName string) (io.ReadCloser, int64, error) {
	if Client == nil {
		return nil, 0, fmt.Errorf("minio client is not initialized")
	}

	obj, err := Client.GetObject(ctx, BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get file: %w", err)
	}

	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, 0, fmt.Errorf("failed to stat file: %w", err)
	}

	return obj, stat.Size, nil
}

// DeleteFile 删除文件
func DeleteFile(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}
	return Client.RemoveObject(ctx, BucketName, objectName, minio.RemoveObjectOptions{})
}

// GetPublicURL 拼接可公开访问的文件地址
func GetPublicURL(objectName string) string {
	if objectName == "" {
		return ""
	}

	cfg := config.Cfg.MinIO
	if cfg.UsePublicLink {
		return "https://" + cfg.ExternalEndpoint + "/" + BucketName + "/" + objectName
	}

	scheme := "http"
	if cfg.InternalUseSSL {
		scheme = "https"
	}
	return scheme + "://" + cfg.InternalEndpoint + "/" + BucketName + "/" + objectName
}
