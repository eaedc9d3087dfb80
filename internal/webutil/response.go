// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"finlit_academy/internal/model"

	"github.com/go-playground/validator/v10"
)

// HandleError はエラーを解釈し、適切なJSONエラーレスポンスを返します。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)
	RespondWithJSON(w, statusCode, model.APIErrorResponse{Error: ErrorDetailOf(logger, err)})
}

// ErrorDetailOf はクライアントに返してよいエラー詳細を組み立てる。
// 内部エラーと生成サービスのエラーは詳細を伏せる
func ErrorDetailOf(logger *slog.Logger, err error) model.ErrorDetail {
	var appErr *model.AppError
	if !errors.As(err, &appErr) {
		logger.Error("Unhandled error", "error", err)
		return model.ErrorDetail{
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "サーバー内部でエラーが発生しました。",
		}
	}

	switch {
	case errors.Is(appErr.Err, model.ErrUpstreamGeneration):
		logger.Error("Upstream generation error", "error", appErr.Err, "code", appErr.Detail.Code)
		return model.ErrorDetail{Code: appErr.Detail.Code, Message: "一時的に処理できませんでした。時間をおいて再度お試しください。"}
	case MapErrorToStatusCode(err) >= http.StatusInternalServerError:
		logger.Error("Internal error", "error", appErr.Err, "code", appErr.Detail.Code)
		return model.ErrorDetail{Code: appErr.Detail.Code, Message: "一時的に処理できませんでした。時間をおいて再度お試しください。"}
	}
	return appErr.Detail
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrUpstreamGeneration):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR", "message":"レスポンス生成中にエラーが発生しました。"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse は validator のエラーを日本語メッセージ付きの AppError にまとめる
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	var fields []string
	var messages []string

	for _, err := range errs {
		fields = append(fields, err.Field())
		messages = append(messages, err.Translate(Trans))
	}

	return model.NewAppError(
		"VALIDATION_ERROR",
		strings.Join(messages, " "),
		strings.Join(fields, ","),
		model.ErrInvalidInput,
	)
}

// ValidateStruct は共有バリデータで検証し、失敗時は AppError を返す
func ValidateStruct(v interface{}) error {
	if err := Validator.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return NewValidationErrorResponse(verrs)
		}
		return model.NewAppError("VALIDATION_ERROR", "入力値が不正です。", "", model.ErrInvalidInput)
	}
	return nil
}
