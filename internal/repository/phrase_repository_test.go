// internal/repository/phrase_repository_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"go_langlearn_quiz/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRepoTestDB はテストごとに独立したインメモリDBを用意します
func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")

	err = db.AutoMigrate(&model.User{}, &model.UserSetting{}, &model.Phrase{}, &model.ObjectItem{})
	require.NoError(t, err, "failed to migrate database for testing")
	return db
}

func strPtr(s string) *string {
	return &s
}

func newTestPhrase(en string) *model.Phrase {
	return &model.Phrase{
		PhraseID:   uuid.New(),
		LangEn:     en,
		LangJa:     "テスト",
		LangJaHira: strPtr("てすと"),
		LangMy:     "စမ်းသပ်",
	}
}

func Test_gormPhraseRepository_CreateAndFindByID(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	repo := NewGormPhraseRepository()

	phrase := newTestPhrase("Good morning")

	err := repo.Create(ctx, db, phrase)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, db, phrase.PhraseID)
	require.NoError(t, err)
	assert.Equal(t, phrase.PhraseID, found.PhraseID)
	assert.Equal(t, "Good morning", found.LangEn)
	require.NotNil(t, found.LangJaHira)
	assert.Equal(t, "てすと", *found.LangJaHira)

	t.Run("異常系: 存在しないIDはErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormPhraseRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	repo := NewGormPhraseRepository()

	// created_at の降順で返ることを確認するため、時間をずらして登録する
	older := newTestPhrase("older")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := newTestPhrase("newer")
	newer.CreatedAt = time.Now()
	require.NoError(t, repo.Create(ctx, db, older))
	require.NoError(t, repo.Create(ctx, db, newer))

	phrases, err := repo.FindAll(ctx, db)
	require.NoError(t, err)
	require.Len(t, phrases, 2)
	assert.Equal(t, "newer", phrases[0].LangEn)
	assert.Equal(t, "older", phrases[1].LangEn)
}

func Test_gormPhraseRepository_Update(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	repo := NewGormPhraseRepository()

	phrase := newTestPhrase("before")
	require.NoError(t, repo.Create(ctx, db, phrase))

	t.Run("正常系: 指定カラムのみ更新される", func(t *testing.T) {
		updates := map[string]interface{}{"lang_en": "after"}
		require.NoError(t, repo.Update(ctx, db, phrase.PhraseID, updates))

		found, err := repo.FindByID(ctx, db, phrase.PhraseID)
		require.NoError(t, err)
		assert.Equal(t, "after", found.LangEn)
		assert.Equal(t, "テスト", found.LangJa) // 触っていないカラムはそのまま
	})

	t.Run("正常系: 更新内容が空なら何もしない", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, db, phrase.PhraseID, map[string]interface{}{}))
	})

	t.Run("異常系: 存在しないIDはErrNotFound", func(t *testing.T) {
		err := repo.Update(ctx, db, uuid.New(), map[string]interface{}{"lang_en": "x"})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormPhraseRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	repo := NewGormPhraseRepository()

	phrase := newTestPhrase("to delete")
	require.NoError(t, repo.Create(ctx, db, phrase))

	require.NoError(t, repo.Delete(ctx, db, phrase.PhraseID))

	// 論理削除なので通常の検索では見つからない
	_, err := repo.FindByID(ctx, db, phrase.PhraseID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Unscoped なら deleted_at が立った行が残っている
	var deleted model.Phrase
	err = db.Unscoped().Where("phrase_id = ?", phrase.PhraseID).First(&deleted).Error
	require.NoError(t, err)
	assert.True(t, deleted.DeletedAt.Valid, "DeletedAt should be set")

	t.Run("異常系: 存在しないIDはErrNotFound", func(t *testing.T) {
		err := repo.Delete(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_gormSettingRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupRepoTestDB(t)
	repo := NewGormSettingRepository()

	userID := uuid.New()

	t.Run("正常系: 初回は行が作られる", func(t *testing.T) {
		err := repo.Upsert(ctx, db, &model.UserSetting{UserID: userID, CountdownSeconds: 7})
		require.NoError(t, err)

		found, err := repo.Find(ctx, db, userID)
		require.NoError(t, err)
		assert.Equal(t, 7, found.CountdownSeconds)
	})

	t.Run("正常系: 2回目は同じ行が更新される", func(t *testing.T) {
		err := repo.Upsert(ctx, db, &model.UserSetting{UserID: userID, CountdownSeconds: 12})
		require.NoError(t, err)

		found, err := repo.Find(ctx, db, userID)
		require.NoError(t, err)
		assert.Equal(t, 12, found.CountdownSeconds)

		var count int64
		require.NoError(t, db.Model(&model.UserSetting{}).Where("user_id = ?", userID).Count(&count).Error)
		assert.EqualValues(t, 1, count, "upsert should not create a second row")
	})

	t.Run("異常系: 未設定ユーザーはErrNotFound", func(t *testing.T) {
		_, err := repo.Find(ctx, db, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
