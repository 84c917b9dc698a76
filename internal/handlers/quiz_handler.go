// internal/handlers/quiz_handler.go
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"go_langlearn_quiz/internal/middleware"
	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/quiz"
	"go_langlearn_quiz/internal/service"
	"go_langlearn_quiz/internal/webutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// PostSession はクイズセッションを開始するハンドラ。
// 認証は任意で、ログイン済みならカウントダウン秒数のユーザー設定が使われます。
func (h *QuizHandler) PostSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSession"))

	var req model.PostQuizSessionRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.MaybeUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	snap, err := h.service.StartSession(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error starting quiz session in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz session started", slog.String("session_id", snap.SessionID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, snap, logger)
}

// GetSession はセッションの現在状態を取得するハンドラ
func (h *QuizHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "GetSession", h.service.GetSession)
}

// PostNext は次のカードへ進めるハンドラ
func (h *QuizHandler) PostNext(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "PostNext", h.service.NextCard)
}

// PostPrevious は前のカードへ戻すハンドラ
func (h *QuizHandler) PostPrevious(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "PostPrevious", h.service.PreviousCard)
}

// PostRepeat は同じカードをやり直すハンドラ
func (h *QuizHandler) PostRepeat(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "PostRepeat", h.service.RepeatCard)
}

// PostReveal は答えを即公開するハンドラ
func (h *QuizHandler) PostReveal(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "PostReveal", h.service.RevealCard)
}

// PostPause はカウントダウンの一時停止/再開を切り替えるハンドラ
func (h *QuizHandler) PostPause(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "PostPause", h.service.TogglePause)
}

// PostReshuffle はデッキを並べ直すハンドラ
func (h *QuizHandler) PostReshuffle(w http.ResponseWriter, r *http.Request) {
	h.sessionOp(w, r, "PostReshuffle", h.service.Reshuffle)
}

// DeleteSession はセッションを終了するハンドラ
func (h *QuizHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteSession"))

	sessionID, ok := parseUUIDParam(w, r, logger, "session_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	if err := h.service.CloseSession(r.Context(), sessionID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Quiz session not found")
		} else {
			logger.Error("Error closing quiz session in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Quiz session closed")
	w.WriteHeader(http.StatusNoContent)
}

// sessionOp はセッションIDを取るスナップショット系操作の共通処理です
func (h *QuizHandler) sessionOp(w http.ResponseWriter, r *http.Request, name string, op func(context.Context, uuid.UUID) (quiz.Snapshot, error)) {
	logger := h.logger.With(slog.String("handler", name))

	sessionID, ok := parseUUIDParam(w, r, logger, "session_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("session_id", sessionID.String()))

	snap, err := op(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Quiz session not found")
		} else {
			logger.Error("Error operating quiz session in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, snap, logger)
}
