// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go_langlearn_quiz/internal/model"
)

// createRequest はJSONボディ付きのテストリクエストを作ります
func createRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// createMultipartRequest は物品登録用の multipart/form-data リクエストを作ります。
// imageContent が空文字なら画像パートなしになります。
func createMultipartRequest(t *testing.T, url string, fields map[string]string, imageFilename, imageContentType, imageContent string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if imageContent != "" {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{`form-data; name="image"; filename="` + imageFilename + `"`}
		header["Content-Type"] = []string{imageContentType}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(imageContent))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", url, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// testAuthMiddleware はJWT検証を通さず、指定したユーザーIDをコンテキストへ入れます
func testAuthMiddleware(userID uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// assertErrorResponse はエラーレスポンスの形式とコードを検証します
func assertErrorResponse(t *testing.T, body []byte, wantCode string) {
	t.Helper()

	var errResp model.APIErrorResponse
	err := json.Unmarshal(body, &errResp)
	require.NoError(t, err, "Failed to unmarshal error response body")
	assert.NotEmpty(t, errResp.Error.Message, "Error message should not be empty")
	if wantCode != "" {
		assert.Equal(t, wantCode, errResp.Error.Code)
	}
}
