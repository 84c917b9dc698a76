// internal/model/setting.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// カウントダウン秒数の許容範囲とデフォルト値
const (
	MinCountdownSeconds     = 2
	MaxCountdownSeconds     = 15
	DefaultCountdownSeconds = 5
)

// ClampCountdownSeconds は秒数を [Min, Max] に丸めます
func ClampCountdownSeconds(seconds int) int {
	if seconds < MinCountdownSeconds {
		return MinCountdownSeconds
	}
	if seconds > MaxCountdownSeconds {
		return MaxCountdownSeconds
	}
	return seconds
}

// UserSetting はユーザーごとの設定（現状はカウントダウン秒数のみ）です
type UserSetting struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CountdownSeconds int       `gorm:"not null" json:"countdown_seconds"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserSetting) TableName() string {
	return "user_settings"
}

// カウントダウン秒数更新リクエストDTO。
// seconds は1以上を必須とし、範囲外の値はサーバ側でクランプする。
type PutCountdownRequest struct {
	Seconds int `json:"seconds" validate:"required,min=1"`
}

// カウントダウン秒数レスポンス
type CountdownResponse struct {
	Seconds int `json:"seconds"`
	Min     int `json:"min"`
	Max     int `json:"max"`
}
