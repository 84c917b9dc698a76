package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go_langlearn_quiz/internal/middleware"
)

// LocalStorage はローカルディスクに画像を保存する開発用の実装です。
// 保存先ディレクトリは /media のような静的ファイルルートとして配信されます。
type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	return &LocalStorage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Upload はディスクへファイルを書き込み、配信用URLを返します
func (s *LocalStorage) Upload(ctx context.Context, key, contentType string, data io.Reader) (string, error) {
	logger := middleware.GetLogger(ctx)

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Error("Failed to create media directory", "error", err, "path", path)
		return "", fmt.Errorf("LocalStorage.Upload: %w", err)
	}

	// キーはUUIDベースなので既存ファイルと衝突しない。O_EXCLで念のため上書きを防ぐ。
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error("Failed to create media file", "error", err, "path", path)
		return "", fmt.Errorf("LocalStorage.Upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		logger.Error("Failed to write media file", "error", err, "path", path)
		return "", fmt.Errorf("LocalStorage.Upload: %w", err)
	}

	logger.Info("Object stored on local disk", "key", key)
	return s.baseURL + "/" + key, nil
}
