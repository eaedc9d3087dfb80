// internal/service/boss_service.go
package service

import (
	"context"
	"errors"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"
	"finlit_academy/internal/repository"

	"gorm.io/gorm"
)

type BossService interface {
	ListBosses(ctx context.Context) ([]*model.Boss, error)
	GetBoss(ctx context.Context, bossID uint) (*model.Boss, error)
}

type bossService struct {
	db       *gorm.DB
	bossRepo repository.BossRepository
}

func NewBossService(db *gorm.DB, bossRepo repository.BossRepository) BossService {
	return &bossService{db: db, bossRepo: bossRepo}
}

func (s *bossService) ListBosses(ctx context.Context) ([]*model.Boss, error) {
	bosses, err := s.bossRepo.FindAll(ctx, s.db)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to list bosses", "error", err)
		return nil, newInternalError(err)
	}
	return bosses, nil
}

func (s *bossService) GetBoss(ctx context.Context, bossID uint) (*model.Boss, error) {
	boss, err := s.bossRepo.FindByID(ctx, s.db, bossID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError(CodeBossNotFound, "ボスが見つかりません。", "id", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Failed to get boss", "error", err, "boss_id", bossID)
		return nil, newInternalError(err)
	}
	return boss, nil
}
