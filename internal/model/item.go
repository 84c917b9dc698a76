// internal/model/item.go
package model

import "github.com/google/uuid"

// Language はカードで扱う言語タグです
type Language string

const (
	LangEnglish  Language = "en"
	LangJapanese Language = "ja"
	LangBurmese  Language = "my"
)

// Valid は既知の言語タグかどうかを判定します
func (l Language) Valid() bool {
	switch l {
	case LangEnglish, LangJapanese, LangBurmese:
		return true
	}
	return false
}

// Label は言語の英語表記を返します（クイズ画面のセクション見出し用）
func (l Language) Label() string {
	switch l {
	case LangEnglish:
		return "English"
	case LangJapanese:
		return "Japanese"
	case LangBurmese:
		return "Burmese"
	}
	return string(l)
}

// ItemKind はレビュー対象の種別タグです（フレーズ or 物品）
type ItemKind string

const (
	KindPhrase ItemKind = "phrases"
	KindObject ItemKind = "objects"
)

func (k ItemKind) Valid() bool {
	return k == KindPhrase || k == KindObject
}

// CardText は1アイテム分の4言語テキストのスナップショットです。
// JaHira / JaKanji が分離フィールド、JaLegacy は分離導入前の旧統合フィールド。
type CardText struct {
	En       string
	JaHira   *string
	JaKanji  *string
	JaLegacy string
	My       string
}

// ReviewItem は Phrase | ObjectItem のタグ付きバリアントです。
// 種別による分岐は必ず Kind() のswitchで行うこと（プロパティ有無での判定は禁止）。
type ReviewItem interface {
	Kind() ItemKind
	ItemID() uuid.UUID
	CardText() CardText
	// Image は物品アイテムの画像URLを返します（フレーズ・画像未設定の旧データは nil）
	Image() *string
}
