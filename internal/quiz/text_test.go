// internal/quiz/text_test.go
package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_langlearn_quiz/internal/model"
)

func strPtr(s string) *string {
	return &s
}

func TestJapaneseText(t *testing.T) {
	tests := []struct {
		name string
		text model.CardText
		want string
	}{
		{
			name: "正常系: 漢字表記があれば漢字を優先する",
			text: model.CardText{JaKanji: strPtr("元気です"), JaHira: strPtr("げんきです"), JaLegacy: "元気です（旧）"},
			want: "元気です",
		},
		{
			name: "正常系: 漢字がなければひらがなを使う",
			text: model.CardText{JaHira: strPtr("げんきです"), JaLegacy: "元気です（旧）"},
			want: "げんきです",
		},
		{
			name: "正常系: 分離フィールドがなければ旧統合フィールドへフォールバックする",
			text: model.CardText{JaLegacy: "元気です"},
			want: "元気です",
		},
		{
			name: "正常系: 空文字の漢字はないものとして扱う",
			text: model.CardText{JaKanji: strPtr(""), JaHira: strPtr("げんきです"), JaLegacy: "元気です"},
			want: "げんきです",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JapaneseText(tt.text))
		})
	}
}

func TestText(t *testing.T) {
	text := model.CardText{
		En:       "I'm fine",
		JaKanji:  strPtr("元気です"),
		JaHira:   strPtr("げんきです"),
		JaLegacy: "元気です",
		My:       "နေကောင်းပါတယ်",
	}

	assert.Equal(t, "I'm fine", Text(text, model.LangEnglish))
	assert.Equal(t, "元気です", Text(text, model.LangJapanese))
	assert.Equal(t, "နေကောင်းပါတယ်", Text(text, model.LangBurmese))
}

func TestRevealFields(t *testing.T) {
	phrase := &model.Phrase{
		LangEn:      "I'm fine",
		LangJa:      "元気です",
		LangJaHira:  strPtr("げんきです"),
		LangJaKanji: strPtr("元気です"),
		LangMy:      "နေကောင်းပါတယ်",
	}

	t.Run("正常系: フレーズは出題言語のフィールドを表示しない", func(t *testing.T) {
		fields := RevealFields(phrase, model.LangEnglish)
		require.Len(t, fields, 2)
		assert.Equal(t, model.LangJapanese, fields[0].Language)
		assert.Equal(t, model.LangBurmese, fields[1].Language)
	})

	t.Run("正常系: 日本語出題のフレーズは英語とビルマ語のみ表示する", func(t *testing.T) {
		fields := RevealFields(phrase, model.LangJapanese)
		require.Len(t, fields, 2)
		assert.Equal(t, model.LangEnglish, fields[0].Language)
		assert.Equal(t, model.LangBurmese, fields[1].Language)
	})

	t.Run("正常系: 物品は出題言語に関わらず3言語すべて表示する", func(t *testing.T) {
		obj := &model.ObjectItem{
			LabelEn:     "apple",
			LabelJa:     "りんご",
			LabelJaHira: strPtr("りんご"),
			LabelMy:     "ပန်းသီး",
		}
		fields := RevealFields(obj, model.LangJapanese)
		require.Len(t, fields, 3)
		assert.Equal(t, model.LangEnglish, fields[0].Language)
		assert.Equal(t, model.LangJapanese, fields[1].Language)
		assert.Equal(t, model.LangBurmese, fields[2].Language)
	})

	t.Run("正常系: 漢字とひらがなが異なる場合は日本語が2行になる", func(t *testing.T) {
		fields := RevealFields(phrase, model.LangEnglish)
		assert.Equal(t, []string{"元気です", "げんきです"}, fields[0].Lines)
	})

	t.Run("正常系: 漢字とひらがなが同一の場合は1行にまとめる", func(t *testing.T) {
		same := &model.Phrase{
			LangEn:      "hello",
			LangJa:      "こんにちは",
			LangJaHira:  strPtr("こんにちは"),
			LangJaKanji: strPtr("こんにちは"),
			LangMy:      "မင်္ဂလာပါ",
		}
		fields := RevealFields(same, model.LangEnglish)
		assert.Equal(t, []string{"こんにちは"}, fields[0].Lines)
	})

	t.Run("正常系: ひらがなのみの場合も1行になる", func(t *testing.T) {
		hiraOnly := &model.Phrase{
			LangEn:     "hello",
			LangJa:     "こんにちは",
			LangJaHira: strPtr("こんにちは"),
			LangMy:     "မင်္ဂလာပါ",
		}
		fields := RevealFields(hiraOnly, model.LangEnglish)
		assert.Equal(t, []string{"こんにちは"}, fields[0].Lines)
	})
}
