//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	CreditXP(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int) error // トランザクション対応
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserProgress, error)
}

type gormProgressRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

// CreditXP は経験値を加算する。進捗行がなければ作成する (upsert)
func (r *gormProgressRepository) CreditXP(ctx context.Context, tx *gorm.DB, userID uuid.UUID, points int) error {
	logger := middleware.GetLogger(ctx)
	now := time.Now()
	progress := &model.UserProgress{
		UserID:           userID,
		ExperiencePoints: points,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"experience_points": gorm.Expr("user_progress.experience_points + ?", points),
				"updated_at":        now,
			}),
		}).
		Create(progress)
	if result.Error != nil {
		logger.Error("Error crediting experience points in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"points", points,
		)
		return fmt.Errorf("gormProgressRepository.CreditXP: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)
	var progress model.UserProgress
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user progress in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormProgressRepository.FindByUser: %w", result.Error)
	}
	return &progress, nil
}
