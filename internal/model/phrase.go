// internal/model/phrase.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Phrase は3言語のフレーズを表します
type Phrase struct {
	PhraseID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Category    *string        `json:"category"`
	LangEn      string         `gorm:"not null" json:"lang_en"`
	LangJa      string         `gorm:"not null" json:"lang_ja"` // 旧統合フィールド（漢字があれば漢字、なければひらがな）
	LangJaHira  *string        `json:"lang_ja_hira"`            // ひらがな（分離導入前のデータはnullの場合あり）
	LangJaKanji *string        `json:"lang_ja_kanji"`           // 漢字表記（任意）
	LangMy      string         `gorm:"not null" json:"lang_my"`
	Notes       *string        `json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Phrase) TableName() string {
	return "phrases"
}

func (p *Phrase) Kind() ItemKind    { return KindPhrase }
func (p *Phrase) ItemID() uuid.UUID { return p.PhraseID }
func (p *Phrase) Image() *string    { return nil }

func (p *Phrase) CardText() CardText {
	return CardText{
		En:       p.LangEn,
		JaHira:   p.LangJaHira,
		JaKanji:  p.LangJaKanji,
		JaLegacy: p.LangJa,
		My:       p.LangMy,
	}
}

// フレーズ作成リクエストDTO
type PostPhraseRequest struct {
	Category    *string `json:"category,omitempty"`
	LangEn      string  `json:"lang_en" validate:"required"`
	LangJaHira  string  `json:"lang_ja_hira" validate:"required"`
	LangJaKanji *string `json:"lang_ja_kanji,omitempty"`
	LangMy      string  `json:"lang_my" validate:"required"`
	Notes       *string `json:"notes,omitempty"`
}

// フレーズ更新（全体）リクエストDTO
type PutPhraseRequest struct {
	Category    *string `json:"category,omitempty"`
	LangEn      string  `json:"lang_en" validate:"required"`
	LangJaHira  string  `json:"lang_ja_hira" validate:"required"`
	LangJaKanji *string `json:"lang_ja_kanji,omitempty"`
	LangMy      string  `json:"lang_my" validate:"required"`
	Notes       *string `json:"notes,omitempty"`
}

// フレーズ更新（部分）リクエストDTO
type PatchPhraseRequest struct {
	Category    *string `json:"category,omitempty"`
	LangEn      *string `json:"lang_en,omitempty" validate:"omitempty,min=1"`
	LangJaHira  *string `json:"lang_ja_hira,omitempty" validate:"omitempty,min=1"`
	LangJaKanji *string `json:"lang_ja_kanji,omitempty"`
	LangMy      *string `json:"lang_my,omitempty" validate:"omitempty,min=1"`
	Notes       *string `json:"notes,omitempty"`
}
