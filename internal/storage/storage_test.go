package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	t.Run("正常系: objects/配下のUUIDキーに元ファイルの拡張子が付く", func(t *testing.T) {
		key := ObjectKey("photo.png")
		assert.True(t, strings.HasPrefix(key, "objects/"))
		assert.True(t, strings.HasSuffix(key, ".png"))
	})

	t.Run("正常系: 拡張子は小文字に正規化される", func(t *testing.T) {
		key := ObjectKey("PHOTO.JPG")
		assert.True(t, strings.HasSuffix(key, ".jpg"))
	})

	t.Run("正常系: 拡張子がない場合はjpgになる", func(t *testing.T) {
		key := ObjectKey("photo")
		assert.True(t, strings.HasSuffix(key, ".jpg"))
	})

	t.Run("正常系: 同じファイル名でもキーは毎回異なる", func(t *testing.T) {
		assert.NotEqual(t, ObjectKey("a.png"), ObjectKey("a.png"))
	})
}

func TestLocalStorage_Upload(t *testing.T) {
	t.Run("正常系: ファイルが保存され配信用URLが返る", func(t *testing.T) {
		dir := t.TempDir()
		s := NewLocalStorage(dir, "/media/")

		url, err := s.Upload(context.Background(), "objects/test.png", "image/png", strings.NewReader("fake image bytes"))
		require.NoError(t, err)
		assert.Equal(t, "/media/objects/test.png", url)

		data, err := os.ReadFile(filepath.Join(dir, "objects", "test.png"))
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(data))
	})

	t.Run("異常系: 同じキーへの二重アップロードは失敗する", func(t *testing.T) {
		dir := t.TempDir()
		s := NewLocalStorage(dir, "/media")

		_, err := s.Upload(context.Background(), "objects/dup.png", "image/png", strings.NewReader("a"))
		require.NoError(t, err)

		_, err = s.Upload(context.Background(), "objects/dup.png", "image/png", strings.NewReader("b"))
		assert.Error(t, err)
	})
}
