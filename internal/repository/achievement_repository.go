//go:generate mockery --name AchievementRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository interface {
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, achievement *model.Achievement) (bool, error)
	ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Achievement, error)
}

type gormAchievementRepository struct{}

func NewGormAchievementRepository() AchievementRepository {
	return &gormAchievementRepository{}
}

// CreateIfAbsent は (user_id, boss_id) が未登録の場合のみ挿入し、
// 実際に行が作られたかどうかを返す
func (r *gormAchievementRepository) CreateIfAbsent(ctx context.Context, tx *gorm.DB, achievement *model.Achievement) (bool, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Omit("Boss").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "boss_id"}},
			DoNothing: true,
		}).
		Create(achievement)
	if result.Error != nil {
		logger.Error("Error creating achievement in DB",
			"error", result.Error,
			"user_id", achievement.UserID.String(),
			"boss_id", achievement.BossID,
		)
		return false, fmt.Errorf("gormAchievementRepository.CreateIfAbsent: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListByUser は撃破日時の新しい順に返す
func (r *gormAchievementRepository) ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Achievement, error) {
	logger := middleware.GetLogger(ctx)
	var achievements []*model.Achievement
	result := db.WithContext(ctx).
		Preload("Boss").
		Where("user_id = ?", userID).
		Order("defeated_at DESC").
		Find(&achievements)
	if result.Error != nil {
		logger.Error("Error listing achievements in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormAchievementRepository.ListByUser: %w", result.Error)
	}
	return achievements, nil
}
