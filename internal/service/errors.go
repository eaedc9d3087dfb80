package service

import (
	"fmt"

	"finlit_academy/internal/model"
)

// アプリケーションエラーコード
const (
	CodeBossNotFound       = "BOSS_NOT_FOUND"
	CodeBattleNotFound     = "BATTLE_NOT_FOUND"
	CodeBattleNotActive    = "BATTLE_NOT_IN_PROGRESS"
	CodeQuestionBudgetUsed = "QUESTION_BUDGET_EXHAUSTED"
	CodeNoActiveQuestion   = "NO_ACTIVE_QUESTION"
	CodeBattleConflict     = "BATTLE_CONFLICT"
	CodeGenerationFailed   = "GENERATION_FAILED"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

// newInternalError は永続化エラーを ErrInternalServer でラップする (原因は保持する)
func newInternalError(err error) error {
	return model.NewAppError(CodeInternal, "サーバー内部でエラーが発生しました。", "", fmt.Errorf("%w: %w", model.ErrInternalServer, err))
}

func newGenerationError(err error) error {
	return model.NewAppError(CodeGenerationFailed, "ボスが問題を作れませんでした。時間をおいて再度お試しください。", "", fmt.Errorf("%w: %w", model.ErrUpstreamGeneration, err))
}
