//go:generate mockery --name Storage --output ./mocks --outpkg mocks --case=underscore
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage は画像ファイルの保存先です。保存後の公開URLを返します。
type Storage interface {
	Upload(ctx context.Context, key, contentType string, data io.Reader) (string, error)
}

// ObjectKey は保存用のキーを生成します。
// 元のファイル名は使わず、UUIDと拡張子だけの衝突しないキーにします（上書き防止）。
func ObjectKey(filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	return "objects/" + uuid.New().String() + "." + strings.ToLower(ext)
}
