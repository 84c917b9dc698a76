// internal/handlers/setting_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_langlearn_quiz/internal/middleware"
	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/service"
	"go_langlearn_quiz/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type SettingHandler struct {
	service service.SettingService
	logger  *slog.Logger
}

func NewSettingHandler(s service.SettingService, logger *slog.Logger) *SettingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingHandler{
		service: s,
		logger:  logger,
	}
}

// GetCountdown は保存済みのカウントダウン秒数を取得するハンドラ
func (h *SettingHandler) GetCountdown(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCountdown"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	seconds, err := h.service.GetCountdownSeconds(r.Context(), userID)
	if err != nil {
		logger.Error("Error getting countdown setting in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp := model.CountdownResponse{
		Seconds: seconds,
		Min:     model.MinCountdownSeconds,
		Max:     model.MaxCountdownSeconds,
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PutCountdown はカウントダウン秒数を保存するハンドラ。
// 1以上の値は範囲外でもエラーにせず [2, 15] に丸めて保存します。
// seconds が欠けている（またはゼロの）リクエストはバリデーションエラーです。
func (h *SettingHandler) PutCountdown(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutCountdown"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.PutCountdownRequest
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

	saved, err := h.service.SetCountdownSeconds(r.Context(), userID, req.Seconds)
	if err != nil {
		logger.Error("Error saving countdown setting in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Countdown setting saved", slog.Int("seconds", saved))
	resp := model.CountdownResponse{
		Seconds: saved,
		Min:     model.MinCountdownSeconds,
		Max:     model.MaxCountdownSeconds,
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
