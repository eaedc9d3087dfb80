// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"finlit_academy/internal/model"
	"finlit_academy/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware は開発時用ミドルウェアです。
// X-User-ID ヘッダーのUUIDをそのまま認証済みユーザーとして扱います。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID ヘッダーが必要です。", "", model.ErrUnauthorized))
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-ID format", "user_id", userIDStr)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-User-ID の形式が正しくありません。", "", model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] User ID set to context (no validation)", "user_id", userID.String())
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), userID)))
	})
}
