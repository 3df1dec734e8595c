package util

import (
	"io"
	"net/http"
)

// GetSafeContentType 嗅探文件真实类型，不信任客户端声明的 Content-Type
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	return http.DetectContentType(buf[:n]), nil
}
