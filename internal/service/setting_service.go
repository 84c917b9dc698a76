//go:generate mockery --name SettingService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_langlearn_quiz/internal/middleware"
	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingService interface {
	GetCountdownSeconds(ctx context.Context, userID uuid.UUID) (int, error)
	SetCountdownSeconds(ctx context.Context, userID uuid.UUID, seconds int) (int, error)
}

type settingService struct {
	db          *gorm.DB
	settingRepo repository.SettingRepository
}

func NewSettingService(db *gorm.DB, settingRepo repository.SettingRepository) SettingService {
	return &settingService{
		db:          db,
		settingRepo: settingRepo,
	}
}

func (s *settingService) GetCountdownSeconds(ctx context.Context, userID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)

	setting, err := s.settingRepo.Find(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.DefaultCountdownSeconds, nil
		}
		logger.Error("Error finding countdown setting", "error", err)
		return 0, model.ErrInternalServer
	}

	// 過去に不正な値が保存されていても範囲内に丸めて返す
	return model.ClampCountdownSeconds(setting.CountdownSeconds), nil
}

func (s *settingService) SetCountdownSeconds(ctx context.Context, userID uuid.UUID, seconds int) (int, error) {
	logger := middleware.GetLogger(ctx)

	clamped := model.ClampCountdownSeconds(seconds)
	setting := &model.UserSetting{
		UserID:           userID,
		CountdownSeconds: clamped,
	}
	if err := s.settingRepo.Upsert(ctx, s.db, setting); err != nil {
		logger.Error("Error upserting countdown setting", "error", err)
		return 0, model.ErrInternalServer
	}
	return clamped, nil
}
