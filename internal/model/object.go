// internal/model/object.go
package model

import (
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObjectItem は画像付きの物品ラベルを表します
type ObjectItem struct {
	ObjectID     uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Category     *string        `json:"category"`
	ImageURL     *string        `json:"image_url"` // 画像必須化前に作られたデータはnullの場合あり
	LabelEn      string         `gorm:"not null" json:"label_en"`
	LabelJa      string         `gorm:"not null" json:"label_ja"` // 旧統合フィールド
	LabelJaHira  *string        `json:"label_ja_hira"`
	LabelJaKanji *string        `json:"label_ja_kanji"`
	LabelMy      string         `gorm:"not null" json:"label_my"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ObjectItem) TableName() string {
	return "objects"
}

func (o *ObjectItem) Kind() ItemKind    { return KindObject }
func (o *ObjectItem) ItemID() uuid.UUID { return o.ObjectID }
func (o *ObjectItem) Image() *string    { return o.ImageURL }

func (o *ObjectItem) CardText() CardText {
	return CardText{
		En:       o.LabelEn,
		JaHira:   o.LabelJaHira,
		JaKanji:  o.LabelJaKanji,
		JaLegacy: o.LabelJa,
		My:       o.LabelMy,
	}
}

// 物品作成リクエストDTO（画像本体はmultipartで別パートとして受け取る）
type PostObjectRequest struct {
	Category     *string `json:"category,omitempty"`
	LabelEn      string  `json:"label_en" validate:"required"`
	LabelJaHira  string  `json:"label_ja_hira" validate:"required"`
	LabelJaKanji *string `json:"label_ja_kanji,omitempty"`
	LabelMy      string  `json:"label_my" validate:"required"`
}

// 物品更新（部分）リクエストDTO
type PatchObjectRequest struct {
	Category     *string `json:"category,omitempty"`
	LabelEn      *string `json:"label_en,omitempty" validate:"omitempty,min=1"`
	LabelJaHira  *string `json:"label_ja_hira,omitempty" validate:"omitempty,min=1"`
	LabelJaKanji *string `json:"label_ja_kanji,omitempty"`
	LabelMy      *string `json:"label_my,omitempty" validate:"omitempty,min=1"`
}

// ImageUpload はアップロードされた画像ファイルの情報です
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        io.Reader
}
