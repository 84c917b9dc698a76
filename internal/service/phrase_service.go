//go:generate mockery --name PhraseService --output ./mocks --outpkg mocks --case=underscore
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

type PhraseService interface {
	CreatePhrase(ctx context.Context, req *model.PostPhraseRequest) (*model.Phrase, error)
	GetPhrase(ctx context.Context, phraseID uuid.UUID) (*model.Phrase, error)
	ListPhrases(ctx context.Context) ([]*model.Phrase, error)
	ReplacePhrase(ctx context.Context, phraseID uuid.UUID, req *model.PutPhraseRequest) (*model.Phrase, error)
	UpdatePhrase(ctx context.Context, phraseID uuid.UUID, req *model.PatchPhraseRequest) (*model.Phrase, error)
	DeletePhrase(ctx context.Context, phraseID uuid.UUID) error
}

type phraseService struct {
	db         *gorm.DB // トランザクション用にDB接続を持つ
	phraseRepo repository.PhraseRepository
}

func NewPhraseService(db *gorm.DB, phraseRepo repository.PhraseRepository) PhraseService {
	return &phraseService{
		db:         db,
		phraseRepo: phraseRepo,
	}
}

// combinedJapanese は旧統合フィールド lang_ja の値を分離フィールドから導出します。
// 漢字表記があればそれを、なければひらがなを入れます。
func combinedJapanese(hira string, kanji *string) string {
	if kanji != nil && *kanji != "" {
		return *kanji
	}
	return hira
}

func (s *phraseService) CreatePhrase(ctx context.Context, req *model.PostPhraseRequest) (*model.Phrase, error) {
	logger := middleware.GetLogger(ctx)

	phrase := &model.Phrase{
		PhraseID:    uuid.New(),
		Category:    req.Category,
		LangEn:      req.LangEn,
		LangJa:      combinedJapanese(req.LangJaHira, req.LangJaKanji),
		LangJaHira:  &req.LangJaHira,
		LangJaKanji: req.LangJaKanji,
		LangMy:      req.LangMy,
		Notes:       req.Notes,
	}

	if err := s.phraseRepo.Create(ctx, s.db, phrase); err != nil {
		logger.Error("Error creating phrase", "error", err)
		return nil, model.ErrInternalServer
	}
	return phrase, nil
}

func (s *phraseService) GetPhrase(ctx context.Context, phraseID uuid.UUID) (*model.Phrase, error) {
	phrase, err := s.phraseRepo.FindByID(ctx, s.db, phraseID)
	if err != nil {
		// エラーはリポジトリで変換済み
		return nil, err
	}
	return phrase, nil
}

func (s *phraseService) ListPhrases(ctx context.Context) ([]*model.Phrase, error) {
	logger := middleware.GetLogger(ctx)
	phrases, err := s.phraseRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Error listing phrases", "error", err)
		return nil, model.ErrInternalServer
	}
	return phrases, nil
}

func (s *phraseService) ReplacePhrase(ctx context.Context, phraseID uuid.UUID, req *model.PutPhraseRequest) (*model.Phrase, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Phrase

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.phraseRepo.FindByID(ctx, tx, phraseID); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"category":      req.Category,
			"lang_en":       req.LangEn,
			"lang_ja":       combinedJapanese(req.LangJaHira, req.LangJaKanji),
			"lang_ja_hira":  req.LangJaHira,
			"lang_ja_kanji": req.LangJaKanji,
			"lang_my":       req.LangMy,
			"notes":         req.Notes,
		}
		if err := s.phraseRepo.Update(ctx, tx, phraseID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error replacing phrase in transaction", "error", err)
			return model.ErrInternalServer
		}

		var err error
		updated, err = s.phraseRepo.FindByID(ctx, tx, phraseID)
		if err != nil {
			logger.Error("Error fetching replaced phrase in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for ReplacePhrase", "error", err)
		return nil, model.ErrInternalServer
	}
	return updated, nil
}

func (s *phraseService) UpdatePhrase(ctx context.Context, phraseID uuid.UUID, req *model.PatchPhraseRequest) (*model.Phrase, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.Phrase

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		phrase, err := s.phraseRepo.FindByID(ctx, tx, phraseID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Category != nil {
			updates["category"] = req.Category
		}
		if req.LangEn != nil {
			updates["lang_en"] = *req.LangEn
		}
		if req.LangMy != nil {
			updates["lang_my"] = *req.LangMy
		}
		if req.Notes != nil {
			updates["notes"] = req.Notes
		}

		// 日本語の分離フィールドが変わる場合は旧統合フィールドも同期する
		if req.LangJaHira != nil || req.LangJaKanji != nil {
			hira := ""
			if phrase.LangJaHira != nil {
				hira = *phrase.LangJaHira
			}
			if req.LangJaHira != nil {
				hira = *req.LangJaHira
				updates["lang_ja_hira"] = *req.LangJaHira
			}
			kanji := phrase.LangJaKanji
			if req.LangJaKanji != nil {
				kanji = req.LangJaKanji
				updates["lang_ja_kanji"] = req.LangJaKanji
			}
			updates["lang_ja"] = combinedJapanese(hira, kanji)
		}

		if err := s.phraseRepo.Update(ctx, tx, phraseID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			logger.Error("Error updating phrase in transaction", "error", err)
			return model.ErrInternalServer
		}

		updated, err = s.phraseRepo.FindByID(ctx, tx, phraseID)
		if err != nil {
			logger.Error("Error fetching updated phrase in transaction", "error", err)
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		logger.Error("Transaction failed for UpdatePhrase", "error", err)
		return nil, model.ErrInternalServer
	}
	return updated, nil
}

func (s *phraseService) DeletePhrase(ctx context.Context, phraseID uuid.UUID) error {
	err := s.phraseRepo.Delete(ctx, s.db, phraseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return model.ErrInternalServer
	}
	return nil
}
