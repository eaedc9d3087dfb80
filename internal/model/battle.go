// internal/model/battle.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BattleStatus string

const (
	BattleInProgress BattleStatus = "IN_PROGRESS"
	BattleVictory    BattleStatus = "VICTORY"
	BattleDefeat     BattleStatus = "DEFEAT"
)

// IsTerminal は終了状態 (VICTORY / DEFEAT) かどうか
func (s BattleStatus) IsTerminal() bool {
	return s == BattleVictory || s == BattleDefeat
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn は会話履歴の1ターン
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BattleSession はユーザー1人とボス1体の対戦
type BattleSession struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_battle_id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_active_battle,where:status = 'IN_PROGRESS'" json:"user_id"`
	BossID uint      `gorm:"not null;uniqueIndex:idx_active_battle,where:status = 'IN_PROGRESS'" json:"boss_id"`

	CurrentHealth       int                                  `gorm:"not null" json:"current_health"`
	QuestionsAsked      int                                  `gorm:"not null;default:0" json:"questions_asked"`
	QuestionsCorrect    int                                  `gorm:"not null;default:0" json:"questions_correct"`
	Status              BattleStatus                         `gorm:"type:varchar(50);not null;default:'IN_PROGRESS';index" json:"status"`
	ConversationHistory datatypes.JSONSlice[ConversationTurn] `gorm:"type:jsonb" json:"conversation_history"`
	// 楽観ロック用。更新のたびに +1 する
	Version     int        `gorm:"not null;default:0" json:"-"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// 関連 (Preload用)
	Boss *Boss `gorm:"foreignKey:BossID" json:"boss,omitempty"`
}

func (BattleSession) TableName() string {
	return "user_boss_battles"
}

// LastAssistantTurn は履歴を末尾から探し、最後のボス発言を返す
func (b *BattleSession) LastAssistantTurn() (ConversationTurn, bool) {
	for i := len(b.ConversationHistory) - 1; i >= 0; i-- {
		if b.ConversationHistory[i].Role == RoleAssistant {
			return b.ConversationHistory[i], true
		}
	}
	return ConversationTurn{}, false
}

// AskQuestionResult は出題APIのレスポンス
type AskQuestionResult struct {
	UserBattleID   uuid.UUID `json:"user_battle_id"`
	BossResponse   string    `json:"boss_response"`
	CurrentHealth  int       `json:"current_health"`
	QuestionsAsked int       `json:"questions_asked"`
	TotalQuestions int       `json:"total_questions"`
}

// AnswerOutcome は回答採点の結果
type AnswerOutcome struct {
	IsCorrect        bool         `json:"is_correct"`
	CorrectAnswer    string       `json:"correct_answer"`
	NewHealth        int          `json:"new_health"`
	Damage           int          `json:"damage"`
	QuestionsCorrect int          `json:"questions_correct"`
	QuestionsAsked   int          `json:"questions_asked"`
	Status           BattleStatus `json:"status"`
	IsDefeated       bool         `json:"is_defeated"`
	RewardPoints     int          `json:"reward_points"`
	XPAwarded        int          `json:"xp_awarded"` // 初回撃破時のみ付与される経験値
}

// AskQuestionRequest / SubmitAnswerRequest は入力バリデーション用DTO
type AskQuestionRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required,oneof=A B C D a b c d"`
}
