package graph

import (
	"context"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"
	"finlit_academy/internal/webutil"
)

// resolverError は extensions にエラーコードを載せる GraphQL エラー
type resolverError struct {
	detail model.ErrorDetail
	status int
}

func (e *resolverError) Error() string {
	return e.detail.Message
}

func (e *resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code":   e.detail.Code,
		"status": e.status,
	}
	if e.detail.Field != "" {
		ext["field"] = e.detail.Field
	}
	return ext
}

// toGraphQLError はサービス層のエラーをクライアント向けに変換する。
// 内部エラーと生成失敗はメッセージを伏せ、ログにだけ詳細を残す
func toGraphQLError(ctx context.Context, err error) error {
	logger := middleware.GetLogger(ctx)
	return &resolverError{
		detail: webutil.ErrorDetailOf(logger, err),
		status: webutil.MapErrorToStatusCode(err),
	}
}

// panicLogger はリゾルバ内の panic を slog に出す
type panicLogger struct{}

func (panicLogger) LogPanic(ctx context.Context, value interface{}) {
	middleware.GetLogger(ctx).Error("GraphQL resolver panic", "panic", value)
}
