// internal/handlers/phrase_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/service"
	"go_langlearn_quiz/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PhraseHandler struct {
	service service.PhraseService
	logger  *slog.Logger
}

func NewPhraseHandler(s service.PhraseService, logger *slog.Logger) *PhraseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PhraseHandler{
		service: s,
		logger:  logger,
	}
}

// PostPhrase は新しいフレーズを作成するためのハンドラ
func (h *PhraseHandler) PostPhrase(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostPhrase"))

	var req model.PostPhraseRequest
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

	phrase, err := h.service.CreatePhrase(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating phrase in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Phrase created successfully", slog.String("phrase_id", phrase.PhraseID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, phrase, logger)
}

// GetPhrases はフレーズの一覧を取得するためのハンドラ
func (h *PhraseHandler) GetPhrases(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPhrases"))

	phrases, err := h.service.ListPhrases(r.Context())
	if err != nil {
		logger.Error("Error listing phrases in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if phrases == nil {
		phrases = []*model.Phrase{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, phrases, logger)
}

// GetPhrase は特定のフレーズを取得するためのハンドラ
func (h *PhraseHandler) GetPhrase(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetPhrase"))

	phraseID, ok := parseUUIDParam(w, r, logger, "phrase_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("phrase_id", phraseID.String()))

	phrase, err := h.service.GetPhrase(r.Context(), phraseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Phrase not found in service")
		} else {
			logger.Error("Error getting phrase from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, phrase, logger)
}

// PutPhrase は特定のフレーズを完全に置き換えるためのハンドラ
func (h *PhraseHandler) PutPhrase(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutPhrase"))

	phraseID, ok := parseUUIDParam(w, r, logger, "phrase_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("phrase_id", phraseID.String()))

	var req model.PutPhraseRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	phrase, err := h.service.ReplacePhrase(r.Context(), phraseID, &req)
	if err != nil {
		logger.Error("Error replacing phrase in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Phrase replaced successfully")
	webutil.RespondWithJSON(w, http.StatusOK, phrase, logger)
}

// PatchPhrase は特定のフレーズの一部を更新するためのハンドラ
func (h *PhraseHandler) PatchPhrase(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchPhrase"))

	phraseID, ok := parseUUIDParam(w, r, logger, "phrase_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("phrase_id", phraseID.String()))

	var req model.PatchPhraseRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.Category == nil && req.LangEn == nil && req.LangJaHira == nil && req.LangJaKanji == nil && req.LangMy == nil && req.Notes == nil {
		logger.Warn("PatchPhrase called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	// 指定されたフィールドが空文字で必須テキストを消してしまわないように検証する
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

	phrase, err := h.service.UpdatePhrase(r.Context(), phraseID, &req)
	if err != nil {
		logger.Error("Error updating phrase in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Phrase updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, phrase, logger)
}

// DeletePhrase は特定のフレーズを削除するためのハンドラ
func (h *PhraseHandler) DeletePhrase(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeletePhrase"))

	phraseID, ok := parseUUIDParam(w, r, logger, "phrase_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("phrase_id", phraseID.String()))

	if err := h.service.DeletePhrase(r.Context(), phraseID); err != nil {
		logger.Error("Error deleting phrase in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Phrase deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// parseUUIDParam はURLパラメータのUUIDを取り出す共通ヘルパーです。
// 形式が不正な場合はエラーレスポンスを書き込み、false を返します。
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, param string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", slog.String("param", param), slog.String("value", idStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", param+"の形式が正しくありません。", param, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
