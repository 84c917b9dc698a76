//go:generate mockery --name SettingRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_langlearn_quiz/internal/middleware"
	"go_langlearn_quiz/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserSetting, error)
	Upsert(ctx context.Context, db *gorm.DB, setting *model.UserSetting) error
}

type gormSettingRepository struct{}

func NewGormSettingRepository() SettingRepository {
	return &gormSettingRepository{}
}

func (r *gormSettingRepository) Find(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserSetting, error) {
	logger := middleware.GetLogger(ctx)
	var setting model.UserSetting

	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user setting in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormSettingRepository.Find: %w", result.Error)
	}
	return &setting, nil
}

func (r *gormSettingRepository) Upsert(ctx context.Context, db *gorm.DB, setting *model.UserSetting) error {
	logger := middleware.GetLogger(ctx)

	// user_id 1件につき1行。既存行があれば秒数のみ更新する。
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"countdown_seconds", "updated_at"}),
	}).Create(setting)
	if result.Error != nil {
		logger.Error("Error upserting user setting in DB",
			"error", result.Error,
			"user_id", setting.UserID.String(),
		)
		return fmt.Errorf("gormSettingRepository.Upsert: %w", result.Error)
	}
	return nil
}
