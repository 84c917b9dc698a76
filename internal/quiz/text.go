// internal/quiz/text.go
package quiz

import "go_langlearn_quiz/internal/model"

// JapaneseText は日本語の代表テキストを解決します。
// 優先順位: 漢字 → ひらがな → 旧統合フィールド。
func JapaneseText(t model.CardText) string {
	if t.JaKanji != nil && *t.JaKanji != "" {
		return *t.JaKanji
	}
	if t.JaHira != nil && *t.JaHira != "" {
		return *t.JaHira
	}
	return t.JaLegacy
}

// Text は指定言語の代表テキストを返します
func Text(t model.CardText, lang model.Language) string {
	switch lang {
	case model.LangEnglish:
		return t.En
	case model.LangJapanese:
		return JapaneseText(t)
	case model.LangBurmese:
		return t.My
	}
	return ""
}

// PromptText は出題面（カウントダウン中に見せる側）のテキストを返します
func PromptText(item model.ReviewItem, lang model.Language) string {
	return Text(item.CardText(), lang)
}

// japaneseVariantLines は日本語の表示行を組み立てます。
// 片方しかない・両者が同一の場合は1行、異なる2表記がある場合は [漢字, ひらがな] の2行。
func japaneseVariantLines(t model.CardText) []string {
	primary := JapaneseText(t)
	var secondary *string
	if t.JaKanji != nil && *t.JaKanji != "" {
		secondary = t.JaHira
	}
	if secondary == nil || *secondary == "" || *secondary == primary {
		return []string{primary}
	}
	return []string{primary, *secondary}
}

// RevealField は公開面の1言語分の表示ブロックです
type RevealField struct {
	Language model.Language `json:"language"`
	Label    string         `json:"label"`
	Lines    []string       `json:"lines"`
}

// RevealFields は公開面に表示する言語ブロック列を返します。
// フレーズは出題言語のフィールドを省き（画面上で重複するため）、
// 物品は出題言語に関わらず常に3言語すべてを表示します。
func RevealFields(item model.ReviewItem, prompt model.Language) []RevealField {
	t := item.CardText()
	all := []RevealField{
		{Language: model.LangEnglish, Label: model.LangEnglish.Label(), Lines: []string{t.En}},
		{Language: model.LangJapanese, Label: model.LangJapanese.Label(), Lines: japaneseVariantLines(t)},
		{Language: model.LangBurmese, Label: model.LangBurmese.Label(), Lines: []string{t.My}},
	}
	if item.Kind() == model.KindObject {
		return all
	}
	fields := make([]RevealField, 0, len(all)-1)
	for _, f := range all {
		if f.Language == prompt {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}
