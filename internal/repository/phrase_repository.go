//go:generate mockery --name PhraseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_langlearn_quiz/internal/middleware"
	"go_langlearn_quiz/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhraseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, phrase *model.Phrase) error
	FindByID(ctx context.Context, db *gorm.DB, phraseID uuid.UUID) (*model.Phrase, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Phrase, error)
	Update(ctx context.Context, tx *gorm.DB, phraseID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, phraseID uuid.UUID) error
}

type gormPhraseRepository struct{}

func NewGormPhraseRepository() PhraseRepository {
	return &gormPhraseRepository{}
}

func (r *gormPhraseRepository) Create(ctx context.Context, tx *gorm.DB, phrase *model.Phrase) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(phrase)
	if result.Error != nil {
		logger.Error("Error creating phrase in DB",
			"error", result.Error,
			"lang_en", phrase.LangEn,
		)
		return fmt.Errorf("gormPhraseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPhraseRepository) FindByID(ctx context.Context, db *gorm.DB, phraseID uuid.UUID) (*model.Phrase, error) {
	logger := middleware.GetLogger(ctx)
	var phrase model.Phrase
	result := db.WithContext(ctx).Where("phrase_id = ?", phraseID).First(&phrase)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding phrase by ID in DB",
			"error", result.Error,
			"phrase_id", phraseID.String(),
		)
		return nil, fmt.Errorf("gormPhraseRepository.FindByID: %w", result.Error)
	}
	return &phrase, nil
}

func (r *gormPhraseRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Phrase, error) {
	logger := middleware.GetLogger(ctx)
	var phrases []*model.Phrase
	result := db.WithContext(ctx).Order("created_at DESC").Find(&phrases)
	if result.Error != nil {
		logger.Error("Error finding phrases in DB", "error", result.Error)
		return nil, fmt.Errorf("gormPhraseRepository.FindAll: %w", result.Error)
	}
	return phrases, nil
}

func (r *gormPhraseRepository) Update(ctx context.Context, tx *gorm.DB, phraseID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Phrase{}).Where("phrase_id = ?", phraseID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating phrase in DB",
			"error", result.Error,
			"phrase_id", phraseID.String(),
		)
		return fmt.Errorf("gormPhraseRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPhraseRepository) Delete(ctx context.Context, tx *gorm.DB, phraseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("phrase_id = ?", phraseID).Delete(&model.Phrase{})
	if result.Error != nil {
		logger.Error("Error deleting phrase in DB",
			"error", result.Error,
			"phrase_id", phraseID.String(),
		)
		return fmt.Errorf("gormPhraseRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
