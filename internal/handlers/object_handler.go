// internal/handlers/object_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_langlearn_quiz/internal/model"
	"go_langlearn_quiz/internal/service"
	"go_langlearn_quiz/internal/webutil"

	"github.com/go-playground/validator/v10"
)

// multipartMemoryLimit はマルチパート解析時にメモリへ載せる上限です。
// これを超えた分は一時ファイルに書かれます。
const multipartMemoryLimit = 8 << 20 // 8MB

type ObjectHandler struct {
	service service.ObjectService
	logger  *slog.Logger
}

func NewObjectHandler(s service.ObjectService, logger *slog.Logger) *ObjectHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ObjectHandler{
		service: s,
		logger:  logger,
	}
}

// PostObject は画像付きの物品を作成するためのハンドラ。
// multipart/form-data でテキストフィールドと image パートを受け取ります。
func (h *ObjectHandler) PostObject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostObject"))

	// 画像上限 + フォームテキスト分の余裕を持たせたボディ上限
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxImageSizeBytes+(1<<20))

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "multipart/form-data の形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	req := model.PostObjectRequest{
		Category:     formValuePtr(r, "category"),
		LabelEn:      r.FormValue("label_en"),
		LabelJaHira:  r.FormValue("label_ja_hira"),
		LabelJaKanji: formValuePtr(r, "label_ja_kanji"),
		LabelMy:      r.FormValue("label_my"),
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

	// 画像パート。存在しない場合は nil のままサービスに渡し、必須チェックはサービス側で行う
	var image *model.ImageUpload
	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		image = &model.ImageUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        file,
		}
	}

	object, err := h.service.CreateObject(r.Context(), &req, image)
	if err != nil {
		logger.Error("Error creating object in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Object created successfully", slog.String("object_id", object.ObjectID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, object, logger)
}

// GetObjects は物品の一覧を取得するためのハンドラ
func (h *ObjectHandler) GetObjects(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetObjects"))

	objects, err := h.service.ListObjects(r.Context())
	if err != nil {
		logger.Error("Error listing objects in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if objects == nil {
		objects = []*model.ObjectItem{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, objects, logger)
}

// GetObject は特定の物品を取得するためのハンドラ
func (h *ObjectHandler) GetObject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetObject"))

	objectID, ok := parseUUIDParam(w, r, logger, "object_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("object_id", objectID.String()))

	object, err := h.service.GetObject(r.Context(), objectID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Object not found in service")
		} else {
			logger.Error("Error getting object from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, object, logger)
}

// PatchObject は特定の物品のラベルを部分更新するためのハンドラ。
// 画像の差し替えは対象外です（新しい物品として登録し直します）。
func (h *ObjectHandler) PatchObject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchObject"))

	objectID, ok := parseUUIDParam(w, r, logger, "object_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("object_id", objectID.String()))

	var req model.PatchObjectRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.Category == nil && req.LabelEn == nil && req.LabelJaHira == nil && req.LabelJaKanji == nil && req.LabelMy == nil {
		logger.Warn("PatchObject called with no fields provided for update")
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	// 指定されたフィールドが空文字で必須ラベルを消してしまわないように検証する
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

	object, err := h.service.UpdateObject(r.Context(), objectID, &req)
	if err != nil {
		logger.Error("Error updating object in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Object updated successfully")
	webutil.RespondWithJSON(w, http.StatusOK, object, logger)
}

// DeleteObject は特定の物品を削除するためのハンドラ
func (h *ObjectHandler) DeleteObject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteObject"))

	objectID, ok := parseUUIDParam(w, r, logger, "object_id")
	if !ok {
		return
	}
	logger = logger.With(slog.String("object_id", objectID.String()))

	if err := h.service.DeleteObject(r.Context(), objectID); err != nil {
		logger.Error("Error deleting object in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Object deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// formValuePtr は空文字のフォーム値を nil として扱うヘルパーです
func formValuePtr(r *http.Request, key string) *string {
	v := r.FormValue(key)
	if v == "" {
		return nil
	}
	return &v
}
