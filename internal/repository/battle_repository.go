//go:generate mockery --name BattleRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BattleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, session *model.BattleSession) error
	FindActiveByUserAndBoss(ctx context.Context, db *gorm.DB, userID uuid.UUID, bossID uint) (*model.BattleSession, error)
	FindByIDForUser(ctx context.Context, db *gorm.DB, battleID, userID uuid.UUID) (*model.BattleSession, error)
	FindLatestActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.BattleSession, error)
	UpdateWithVersion(ctx context.Context, tx *gorm.DB, session *model.BattleSession) error
}

type gormBattleRepository struct{}

func NewGormBattleRepository() BattleRepository {
	return &gormBattleRepository{}
}

// Create は進行中セッションを作成する。
// 同じ (user_id, boss_id) の進行中セッションが既にあれば model.ErrConflict を返す
func (r *gormBattleRepository) Create(ctx context.Context, tx *gorm.DB, session *model.BattleSession) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Omit("Boss").Create(session)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			logger.Warn("Active battle already exists",
				"user_id", session.UserID.String(),
				"boss_id", session.BossID,
			)
			return fmt.Errorf("gormBattleRepository.Create: %w", model.ErrConflict)
		}
		logger.Error("Error creating battle session in DB",
			"error", result.Error,
			"user_id", session.UserID.String(),
			"boss_id", session.BossID,
		)
		return fmt.Errorf("gormBattleRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormBattleRepository) FindActiveByUserAndBoss(ctx context.Context, db *gorm.DB, userID uuid.UUID, bossID uint) (*model.BattleSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.BattleSession
	result := db.WithContext(ctx).
		Where("user_id = ? AND boss_id = ? AND status = ?", userID, bossID, model.BattleInProgress).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding active battle in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"boss_id", bossID,
		)
		return nil, fmt.Errorf("gormBattleRepository.FindActiveByUserAndBoss: %w", result.Error)
	}
	return &session, nil
}

// FindByIDForUser は他ユーザーのセッションを NotFound として扱う
func (r *gormBattleRepository) FindByIDForUser(ctx context.Context, db *gorm.DB, battleID, userID uuid.UUID) (*model.BattleSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.BattleSession
	result := db.WithContext(ctx).
		Preload("Boss").
		Where("id = ? AND user_id = ?", battleID, userID).
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding battle by ID in DB",
			"error", result.Error,
			"user_battle_id", battleID.String(),
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormBattleRepository.FindByIDForUser: %w", result.Error)
	}
	return &session, nil
}

func (r *gormBattleRepository) FindLatestActiveByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.BattleSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.BattleSession
	result := db.WithContext(ctx).
		Preload("Boss").
		Where("user_id = ? AND status = ?", userID, model.BattleInProgress).
		Order("started_at DESC").
		First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding latest active battle in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormBattleRepository.FindLatestActiveByUser: %w", result.Error)
	}
	return &session, nil
}

// UpdateWithVersion は読み込み時の version と一致する場合のみ更新する。
// 一致しなければ他のリクエストが先に更新したとみなし model.ErrConflict を返す。
// 成功時は session.Version を進める
func (r *gormBattleRepository) UpdateWithVersion(ctx context.Context, tx *gorm.DB, session *model.BattleSession) error {
	logger := middleware.GetLogger(ctx)
	updates := map[string]interface{}{
		"current_health":       session.CurrentHealth,
		"questions_asked":      session.QuestionsAsked,
		"questions_correct":    session.QuestionsCorrect,
		"status":               session.Status,
		"conversation_history": session.ConversationHistory,
		"completed_at":         session.CompletedAt,
		"version":              session.Version + 1,
	}
	result := tx.WithContext(ctx).
		Model(&model.BattleSession{}).
		Where("id = ? AND version = ?", session.ID, session.Version).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating battle session in DB",
			"error", result.Error,
			"user_battle_id", session.ID.String(),
		)
		return fmt.Errorf("gormBattleRepository.UpdateWithVersion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Battle session was modified concurrently",
			"user_battle_id", session.ID.String(),
			"version", session.Version,
		)
		return fmt.Errorf("gormBattleRepository.UpdateWithVersion: %w", model.ErrConflict)
	}
	session.Version++
	return nil
}
