package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_langlearn_quiz/internal/config"
	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証するミドルウェアです。
// コンテンツの作成・更新・削除など、ログイン必須のルートに適用します。
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			tokenString, appErr := bearerToken(r)
			if appErr != nil {
				logger.Warn("JWT auth failed: Authorization header missing or malformed")
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, appErr := parseUserID(cfg, tokenString)
			if appErr != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", appErr)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalJWTAuthMiddleware はトークンがあれば検証してユーザーIDをコンテキストへ入れ、
// なければ匿名のまま通すミドルウェアです。クイズセッションのルートに適用します
// （ログイン済みならカウントダウン秒数のユーザー設定を引けるようにするため）。
// トークンが付いているのに不正な場合はエラーにします。
func OptionalJWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			logger := GetLogger(r.Context())

			tokenString, appErr := bearerToken(r)
			if appErr != nil {
				logger.Warn("JWT auth failed: Malformed Authorization header")
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, appErr := parseUserID(cfg, tokenString)
			if appErr != nil {
				logger.Warn("JWT auth failed: Invalid token", "error", appErr)
				webutil.HandleError(w, logger, appErr)
				return
			}

			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken は "Bearer {token}" 形式のヘッダーからトークン文字列を取り出します
func bearerToken(r *http.Request) (string, *model.AppError) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrForbidden)
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return "", model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrForbidden)
	}
	return headerParts[1], nil
}

// parseUserID はJWTの署名と有効期限を検証し、subjectのユーザーIDを返します
func parseUserID(cfg *config.Config, tokenString string) (uuid.UUID, *model.AppError) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムが期待通り(HS256)かチェック
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrForbidden)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンにユーザー情報が含まれていません。", "", model.ErrForbidden)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrForbidden)
	}
	return userID, nil
}

// GetUserIDFromContext は認証必須ルートでコンテキストからユーザーIDを取得します
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		// ミドルウェアが適用されていないルートで呼ばれた場合など
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストからユーザー情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}

// MaybeUserIDFromContext は任意認証ルートでユーザーIDを取得します（匿名なら ok=false）
func MaybeUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	return value, ok
}
