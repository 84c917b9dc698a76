// internal/handlers/quiz_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_langlearn_quiz/internal/handlers"
	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/quiz"
	"go_langlearn_quiz/internal/service/mocks"
)

func newQuizRouter(t *testing.T) (*mocks.QuizService, chi.Router) {
	t.Helper()

	mockQuizService := mocks.NewQuizService(t)
	quizHandler := handlers.NewQuizHandler(mockQuizService, nil)
	router := chi.NewRouter()
	router.Route("/api/v1/quiz/sessions", func(r chi.Router) {
		r.Post("/", quizHandler.PostSession)
		r.Get("/{session_id}", quizHandler.GetSession)
		r.Post("/{session_id}/next", quizHandler.PostNext)
		r.Post("/{session_id}/previous", quizHandler.PostPrevious)
		r.Post("/{session_id}/repeat", quizHandler.PostRepeat)
		r.Post("/{session_id}/reveal", quizHandler.PostReveal)
		r.Post("/{session_id}/pause", quizHandler.PostPause)
		r.Post("/{session_id}/reshuffle", quizHandler.PostReshuffle)
		r.Delete("/{session_id}", quizHandler.DeleteSession)
	})
	return mockQuizService, router
}

func sampleSnapshot(sessionID uuid.UUID) quiz.Snapshot {
	return quiz.Snapshot{
		SessionID:      sessionID,
		Kind:           model.KindPhrase,
		PromptLanguage: model.LangEnglish,
		Order:          quiz.OrderRandom,
		Index:          0,
		Total:          3,
		Card: &quiz.CardSnapshot{
			ItemID:    uuid.New(),
			Prompt:    "Good morning",
			Remaining: model.DefaultCountdownSeconds,
		},
	}
}

func TestQuizHandler_PostSession(t *testing.T) {
	mockQuizService, router := newQuizRouter(t)

	sessionID := uuid.New()
	validReqBody := model.PostQuizSessionRequest{
		Kind:           model.KindPhrase,
		PromptLanguage: model.LangEnglish,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - Start session without login",
			body: validReqBody,
			setupMock: func() {
				mockQuizService.On("StartSession", mock.AnythingOfType("*context.valueCtx"), (*uuid.UUID)(nil), &validReqBody).
					Return(sampleSnapshot(sessionID), nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Unknown kind",
			body:           map[string]string{"kind": "verbs", "prompt_language": "en"},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Fail - Unknown prompt language",
			body:           map[string]string{"kind": "phrases", "prompt_language": "fr"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "Fail - Malformed body",
			body:           nil,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_REQUEST_BODY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/quiz/sessions", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusCreated {
				var snap quiz.Snapshot
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
				assert.Equal(t, sessionID, snap.SessionID)
				require.NotNil(t, snap.Card)
				assert.Equal(t, model.DefaultCountdownSeconds, snap.Card.Remaining)
			} else {
				assertErrorResponse(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestQuizHandler_GetSession(t *testing.T) {
	mockQuizService, router := newQuizRouter(t)

	sessionID := uuid.New()

	tests := []struct {
		name           string
		url            string
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success - Get session state",
			url:  "/api/v1/quiz/sessions/" + sessionID.String(),
			setupMock: func() {
				mockQuizService.On("GetSession", mock.AnythingOfType("*context.valueCtx"), sessionID).
					Return(sampleSnapshot(sessionID), nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Fail - Session not found",
			url:  "/api/v1/quiz/sessions/" + sessionID.String(),
			setupMock: func() {
				mockQuizService.On("GetSession", mock.AnythingOfType("*context.valueCtx"), sessionID).
					Return(quiz.Snapshot{}, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Fail - Invalid session ID",
			url:            "/api/v1/quiz/sessions/not-a-uuid",
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_URL_PARAM",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "GET", tc.url, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus != http.StatusOK {
				assertErrorResponse(t, rr.Body.Bytes(), tc.expectedCode)
			}
		})
	}
}

func TestQuizHandler_CardOperations(t *testing.T) {
	sessionID := uuid.New()

	// sessionOp で委譲している各エンドポイントが対応するサービスメソッドを呼ぶこと
	operations := []struct {
		name string
		path string
	}{
		{name: "NextCard", path: "/next"},
		{name: "PreviousCard", path: "/previous"},
		{name: "RepeatCard", path: "/repeat"},
		{name: "RevealCard", path: "/reveal"},
		{name: "TogglePause", path: "/pause"},
		{name: "Reshuffle", path: "/reshuffle"},
	}

	for _, op := range operations {
		t.Run("Success - "+op.name, func(t *testing.T) {
			mockQuizService, router := newQuizRouter(t)
			mockQuizService.On(op.name, mock.AnythingOfType("*context.valueCtx"), sessionID).
				Return(sampleSnapshot(sessionID), nil).Once()

			req := createRequest(t, "POST", "/api/v1/quiz/sessions/"+sessionID.String()+op.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			var snap quiz.Snapshot
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
			assert.Equal(t, sessionID, snap.SessionID)
		})

		t.Run("Fail - "+op.name+" on unknown session", func(t *testing.T) {
			mockQuizService, router := newQuizRouter(t)
			mockQuizService.On(op.name, mock.AnythingOfType("*context.valueCtx"), sessionID).
				Return(quiz.Snapshot{}, model.ErrNotFound).Once()

			req := createRequest(t, "POST", "/api/v1/quiz/sessions/"+sessionID.String()+op.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestQuizHandler_DeleteSession(t *testing.T) {
	mockQuizService, router := newQuizRouter(t)

	sessionID := uuid.New()

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "Success - Close session",
			setupMock: func() {
				mockQuizService.On("CloseSession", mock.AnythingOfType("*context.valueCtx"), sessionID).
					Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "Fail - Session not found",
			setupMock: func() {
				mockQuizService.On("CloseSession", mock.AnythingOfType("*context.valueCtx"), sessionID).
					Return(model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "DELETE", "/api/v1/quiz/sessions/"+sessionID.String(), nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}
