package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"finlit_academy/internal/model"
	"finlit_academy/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errUnexpectedSigningMethod = errors.New("unexpected signing method")

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub クレームのユーザーIDをコンテキストにセットする
func JWTAuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthorized))
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthorized))
				return
			}

			claims := &model.JWTCustomClaims{}
			token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errUnexpectedSigningMethod
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthorized))
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrUnauthorized))
				return
			}

			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), userID)))
		})
	}
}

// withUser はユーザーIDと、user_id 付きのロガーをコンテキストに入れる
func withUser(ctx context.Context, userID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, model.UserIDKey, userID)
	return WithLogger(ctx, GetLogger(ctx).With("user_id", userID.String()))
}

// GetUserIDFromContext は認証済みユーザーのIDを返す
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrUnauthorized)
	}
	return value, nil
}
