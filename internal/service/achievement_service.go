// internal/service/achievement_service.go
package service

import (
	"context"
	"errors"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"
	"finlit_academy/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementService interface {
	ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]*model.AchievementResponse, error)
	GetUserProgress(ctx context.Context, userID uuid.UUID) (*model.UserProgress, error)
}

type achievementService struct {
	db              *gorm.DB
	achievementRepo repository.AchievementRepository
	progressRepo    repository.ProgressRepository
}

func NewAchievementService(db *gorm.DB, achievementRepo repository.AchievementRepository, progressRepo repository.ProgressRepository) AchievementService {
	return &achievementService{
		db:              db,
		achievementRepo: achievementRepo,
		progressRepo:    progressRepo,
	}
}

// ListUserAchievements は撃破記録をボス情報付きで新しい順に返す
func (s *achievementService) ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]*model.AchievementResponse, error) {
	logger := middleware.GetLogger(ctx)
	achievements, err := s.achievementRepo.ListByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list achievements", "error", err, "user_id", userID.String())
		return nil, newInternalError(err)
	}

	responses := make([]*model.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		resp := &model.AchievementResponse{
			BossID:     a.BossID,
			DefeatedAt: a.DefeatedAt,
			FinalScore: a.FinalScore,
			TimeTaken:  a.TimeTaken,
		}
		if a.Boss != nil {
			resp.BossName = a.Boss.Name
			resp.BossTitle = a.Boss.Title
			resp.AvatarURL = a.Boss.AvatarURL
			resp.RewardPoints = a.Boss.RewardPoints
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// GetUserProgress は進捗行がまだないユーザーには 0 XP を返す
func (s *achievementService) GetUserProgress(ctx context.Context, userID uuid.UUID) (*model.UserProgress, error) {
	progress, err := s.progressRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.UserProgress{UserID: userID}, nil
		}
		middleware.GetLogger(ctx).Error("Failed to get user progress", "error", err, "user_id", userID.String())
		return nil, newInternalError(err)
	}
	return progress, nil
}
