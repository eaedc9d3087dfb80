// internal/model/achievement.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Achievement はボス初撃破の記録。(user_id, boss_id) で一意
type Achievement struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_achievement_user_boss"`
	BossID     uint      `gorm:"not null;uniqueIndex:uq_achievement_user_boss"`
	FinalScore int       `gorm:"not null"`
	TimeTaken  int       `gorm:"not null"` // 秒
	DefeatedAt time.Time `gorm:"not null;index"`

	Boss *Boss `gorm:"foreignKey:BossID"`
}

func (Achievement) TableName() string {
	return "boss_achievements"
}

// AchievementResponse は表示用にボス情報を結合したもの
type AchievementResponse struct {
	BossID       uint      `json:"boss_id"`
	BossName     string    `json:"boss_name"`
	BossTitle    string    `json:"boss_title"`
	AvatarURL    string    `json:"avatar_url"`
	DefeatedAt   time.Time `json:"defeated_at"`
	FinalScore   int       `json:"final_score"`
	TimeTaken    int       `json:"time_taken"`
	RewardPoints int       `json:"reward_points"`
}
