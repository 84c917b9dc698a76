// internal/model/quiz.go
package model

// PostQuizSessionRequest はクイズセッション開始リクエストです
type PostQuizSessionRequest struct {
	Kind             ItemKind `json:"kind" validate:"required,oneof=phrases objects"`
	PromptLanguage   Language `json:"prompt_language" validate:"required,oneof=en ja my"`
	Random           *bool    `json:"random,omitempty"`           // 省略時はシャッフルあり
	CountdownSeconds *int     `json:"countdown_seconds,omitempty"` // 省略時はユーザー設定またはデフォルト
}
