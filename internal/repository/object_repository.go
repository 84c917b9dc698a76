//go:generate mockery --name ObjectRepository --output ./mocks --outpkg mocks --case=underscore
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

type ObjectRepository interface {
	Create(ctx context.Context, tx *gorm.DB, object *model.ObjectItem) error
	FindByID(ctx context.Context, db *gorm.DB, objectID uuid.UUID) (*model.ObjectItem, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.ObjectItem, error)
	Update(ctx context.Context, tx *gorm.DB, objectID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, objectID uuid.UUID) error
}

type gormObjectRepository struct{}

func NewGormObjectRepository() ObjectRepository {
	return &gormObjectRepository{}
}

func (r *gormObjectRepository) Create(ctx context.Context, tx *gorm.DB, object *model.ObjectItem) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(object)
	if result.Error != nil {
		logger.Error("Error creating object in DB",
			"error", result.Error,
			"label_en", object.LabelEn,
		)
		return fmt.Errorf("gormObjectRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormObjectRepository) FindByID(ctx context.Context, db *gorm.DB, objectID uuid.UUID) (*model.ObjectItem, error) {
	logger := middleware.GetLogger(ctx)
	var object model.ObjectItem
	result := db.WithContext(ctx).Where("object_id = ?", objectID).First(&object)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding object by ID in DB",
			"error", result.Error,
			"object_id", objectID.String(),
		)
		return nil, fmt.Errorf("gormObjectRepository.FindByID: %w", result.Error)
	}
	return &object, nil
}

func (r *gormObjectRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.ObjectItem, error) {
	logger := middleware.GetLogger(ctx)
	var objects []*model.ObjectItem
	result := db.WithContext(ctx).Order("created_at DESC").Find(&objects)
	if result.Error != nil {
		logger.Error("Error finding objects in DB", "error", result.Error)
		return nil, fmt.Errorf("gormObjectRepository.FindAll: %w", result.Error)
	}
	return objects, nil
}

func (r *gormObjectRepository) Update(ctx context.Context, tx *gorm.DB, objectID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.ObjectItem{}).Where("object_id = ?", objectID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating object in DB",
			"error", result.Error,
			"object_id", objectID.String(),
		)
		return fmt.Errorf("gormObjectRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormObjectRepository) Delete(ctx context.Context, tx *gorm.DB, objectID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("object_id = ?", objectID).Delete(&model.ObjectItem{})
	if result.Error != nil {
		logger.Error("Error deleting object in DB",
			"error", result.Error,
			"object_id", objectID.String(),
		)
		return fmt.Errorf("gormObjectRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
