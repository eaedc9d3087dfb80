//go:generate mockery --name BossRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"

	"gorm.io/gorm"
)

// BossRepository はボス定義の読み取り専用リポジトリ
type BossRepository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Boss, error)
	FindByID(ctx context.Context, db *gorm.DB, bossID uint) (*model.Boss, error)
}

type gormBossRepository struct{}

func NewGormBossRepository() BossRepository {
	return &gormBossRepository{}
}

// FindAll は difficulty (文字列順), id の順で全ボスを返す
func (r *gormBossRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Boss, error) {
	logger := middleware.GetLogger(ctx)
	var bosses []*model.Boss
	result := db.WithContext(ctx).Order("difficulty ASC, id ASC").Find(&bosses)
	if result.Error != nil {
		logger.Error("Error finding bosses in DB", "error", result.Error)
		return nil, fmt.Errorf("gormBossRepository.FindAll: %w", result.Error)
	}
	return bosses, nil
}

func (r *gormBossRepository) FindByID(ctx context.Context, db *gorm.DB, bossID uint) (*model.Boss, error) {
	logger := middleware.GetLogger(ctx)
	var boss model.Boss
	result := db.WithContext(ctx).First(&boss, bossID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding boss by ID in DB", "error", result.Error, "boss_id", bossID)
		return nil, fmt.Errorf("gormBossRepository.FindByID: %w", result.Error)
	}
	return &boss, nil
}
