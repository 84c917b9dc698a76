//go:generate mockery --name ObjectService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"strings"

	"go_langlearn_quiz/internal/middleware"
	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/repository"
	"go_langlearn_quiz/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxImageSizeBytes はアップロード可能な画像の上限サイズです
const MaxImageSizeBytes = 20 << 20 // 20MB

type ObjectService interface {
	CreateObject(ctx context.Context, req *model.PostObjectRequest, image *model.ImageUpload) (*model.ObjectItem, error)
	GetObject(ctx context.Context, objectID uuid.UUID) (*model.ObjectItem, error)
	ListObjects(ctx context.Context) ([]*model.ObjectItem, error)
	UpdateObject(ctx context.Context, objectID uuid.UUID, req *model.PatchObjectRequest) (*model.ObjectItem, error)
	DeleteObject(ctx context.Context, objectID uuid.UUID) error
}

type objectService struct {
	db         *gorm.DB
	objectRepo repository.ObjectRepository
	store      storage.Storage
}

func NewObjectService(db *gorm.DB, objectRepo repository.ObjectRepository, store storage.Storage) ObjectService {
	return &objectService{
		db:         db,
		objectRepo: objectRepo,
		store:      store,
	}
}

// validateImage はアップロード前に画像ファイルを検証します。
// ストレージへのアクセスが発生する前に弾くこと。
func validateImage(image *model.ImageUpload) error {
	if image == nil || image.Data == nil {
		return model.NewAppError("IMAGE_REQUIRED", "画像ファイルは必須です。", "image", model.ErrInvalidInput)
	}
	if !strings.HasPrefix(image.ContentType, "image/") {
		return model.NewAppError("INVALID_IMAGE_TYPE", "画像ファイルのみアップロードできます。", "image", model.ErrInvalidInput)
	}
	if image.Size > MaxImageSizeBytes {
		return model.NewAppError("IMAGE_TOO_LARGE", "画像サイズは20MB以下にしてください。", "image", model.ErrInvalidInput)
	}
	return nil
}

func (s *objectService) CreateObject(ctx context.Context, req *model.PostObjectRequest, image *model.ImageUpload) (*model.ObjectItem, error) {
	logger := middleware.GetLogger(ctx)

	if err := validateImage(image); err != nil {
		return nil, err
	}

	key := storage.ObjectKey(image.Filename)
	imageURL, err := s.store.Upload(ctx, key, image.ContentType, image.Data)
	if err != nil {
		logger.Error("Error uploading object image", "error", err, "key", key)
		return nil, model.ErrInternalServer
	}

	object := &model.ObjectItem{
		ObjectID:     uuid.New(),
		Category:     req.Category,
		ImageURL:     &imageURL,
		LabelEn:      req.LabelEn,
		LabelJa:      combinedJapanese(req.LabelJaHira, req.LabelJaKanji),
		LabelJaHira:  &req.LabelJaHira,
		LabelJaKanji: req.LabelJaKanji,
		LabelMy:      req.LabelMy,
	}

	if err := s.objectRepo.Create(ctx, s.db, object); err != nil {
		logger.Error("Error creating object", "error", err)
		return nil, model.ErrInternalServer
	}
	return object, nil
}

func (s *objectService) GetObject(ctx context.Context, objectID uuid.UUID) (*model.ObjectItem, error) {
	object, err := s.objectRepo.FindByID(ctx, s.db, objectID)
	if err != nil {
		return nil, err
	}
	return object, nil
}

func (s *objectService) ListObjects(ctx context.Context) ([]*model.ObjectItem, error) {
	logger := middleware.GetLogger(ctx)
	objects, err := s.objectRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing objects", "error", err)
		return nil, model.ErrInternalServer
	}
	return objects, nil
}

func (s *objectService) UpdateObject(ctx context.Context, objectID uuid.UUID, req *model.PatchObjectRequest) (*model.ObjectItem, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.ObjectItem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		object, err := s.objectRepo.FindByID(ctx, tx, objectID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Category != nil {
			updates["category"] = req.Category
		}
		if req.LabelEn != nil {
			updates["label_en"] = *req.LabelEn
		}
		if req.LabelMy != nil {
			updates["label_my"] = *req.LabelMy
		}

		// 日本語の分離フィールドが変わる場合は旧統合フィールドも同期する
		if req.LabelJaHira != nil || req.LabelJaKanji != nil {
			hira := ""
			if object.LabelJaHira != nil {
				hira = *object.LabelJaHira
			}
			if req.LabelJaHira != nil {
				hira = *req.LabelJaHira
				updates["label_ja_hira"] = *req.LabelJaHira
			}
			kanji := object.LabelJaKanji
			if req.LabelJaKanji != nil {
				kanji = req.LabelJaKanji
				updates["label_ja_kanji"] = req.LabelJaKanji
			}
			updates["label_ja"] = combinedJapanese(hira, kanji)
		}

		if err := s.objectRepo.Update(ctx, tx, objectID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error updating object in transaction", "error", err)
			return model.ErrInternalServer
		}

		updated, err = s.objectRepo.FindByID(ctx, tx, objectID)
		if err != nil {
			logger.Error("Error fetching updated object in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdateObject", "error", err)
		return nil, model.ErrInternalServer
	}
	return updated, nil
}

func (s *objectService) DeleteObject(ctx context.Context, objectID uuid.UUID) error {
	// レコードは論理削除する。ストレージ上の画像は履歴として残す。
	err := s.objectRepo.Delete(ctx, s.db, objectID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return model.ErrInternalServer
	}
	return nil
}
