package repository

import (
	"fmt"
	"testing"
	"time"

	"finlit_academy/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedBoss(t *testing.T, db *gorm.DB, name string, difficulty model.BossDifficulty) *model.Boss {
	t.Helper()
	boss := &model.Boss{
		Name:             name,
		Title:            name + " the Test",
		Description:      "test boss",
		Topic:            model.TopicSavings,
		Difficulty:       difficulty,
		MaxHealth:        100,
		DamagePerCorrect: 20,
		TotalQuestions:   5,
		RewardPoints:     300,
		Personality:      "calm",
	}
	require.NoError(t, db.Create(boss).Error)
	return boss
}

func newSession(userID uuid.UUID, bossID uint) *model.BattleSession {
	return &model.BattleSession{
		ID:                  uuid.New(),
		UserID:              userID,
		BossID:              bossID,
		CurrentHealth:       100,
		Status:              model.BattleInProgress,
		ConversationHistory: datatypes.JSONSlice[model.ConversationTurn]{},
		StartedAt:           time.Now(),
	}
}
