// internal/model/auth.go
package model

type ctxKey string

// UserIDKey は認証ミドルウェアがコンテキストに格納するユーザーIDのキーです
const UserIDKey ctxKey = "user_id"

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
