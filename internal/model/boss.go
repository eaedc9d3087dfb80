// internal/model/boss.go
package model

import "time"

type BossTopic string

const (
	TopicBudgeting      BossTopic = "BUDGETING"
	TopicInvesting      BossTopic = "INVESTING"
	TopicDebtManagement BossTopic = "DEBT_MANAGEMENT"
	TopicSavings        BossTopic = "SAVINGS"
	TopicTaxes          BossTopic = "TAXES"
	TopicCryptocurrency BossTopic = "CRYPTOCURRENCY"
	TopicRetirement     BossTopic = "RETIREMENT"
	TopicCredit         BossTopic = "CREDIT"
)

type BossDifficulty string

const (
	DifficultyEasy   BossDifficulty = "EASY"
	DifficultyMedium BossDifficulty = "MEDIUM"
	DifficultyHard   BossDifficulty = "HARD"
)

// Boss はシードで投入されるボスの定義。ゲームプレイでは更新しない
type Boss struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"type:varchar(255);not null" json:"name"`
	Title            string         `gorm:"type:varchar(255);not null" json:"title"`
	Description      string         `gorm:"type:text;not null" json:"description"`
	Topic            BossTopic      `gorm:"type:varchar(100);not null" json:"topic"`
	Difficulty       BossDifficulty `gorm:"type:varchar(50);not null" json:"difficulty"`
	MaxHealth        int            `gorm:"not null" json:"max_health"`
	DamagePerCorrect int            `gorm:"not null" json:"damage_per_correct"`
	TotalQuestions   int            `gorm:"not null" json:"total_questions"`
	RewardPoints     int            `gorm:"not null" json:"reward_points"`
	AvatarURL        string         `gorm:"type:text" json:"avatar_url"`
	Personality      string         `gorm:"type:text;not null" json:"personality"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (Boss) TableName() string {
	return "boss_battles"
}
