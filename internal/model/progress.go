// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress はユーザーの累計経験値 (学習進捗側のエンティティ)
type UserProgress struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ExperiencePoints int       `gorm:"not null;default:0" json:"experience_points"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
