// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "langlearn-quiz"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort            = ":8080"
	DefaultLogLevel              = "info"
	DefaultAccessTokenTTLMinutes = 60 * 24
	DefaultStorageDriver         = "local"
	DefaultLocalStorageDir       = "./media"
	DefaultLocalStorageBaseURL   = "/media"
)

// クイズセッションの上限
const (
	// 最後の操作からこの分数を超えたセッションは回収対象になる
	SessionIdleMinutes = 30
)
