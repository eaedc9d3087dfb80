package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"finlit_academy/internal/config"
	"finlit_academy/internal/metrics"
	"finlit_academy/internal/model"
	"finlit_academy/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---

// setupTestDB はテストごとに独立したインメモリDBを作成し、マイグレーションする
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Battle.PassThresholdPercent = 60
	cfg.Generator.MaxAttempts = 3
	cfg.Generator.RetryInitialInterval = time.Millisecond
	return cfg
}

type bossSpec struct {
	maxHealth int
	damage    int
	total     int
	reward    int
}

func createBoss(t *testing.T, db *gorm.DB, spec bossSpec) *model.Boss {
	t.Helper()
	boss := &model.Boss{
		Name:             "Budget Dragon",
		Title:            "Guardian of the Monthly Budget",
		Description:      "A fearsome dragon that hoards gold.",
		Topic:            model.TopicBudgeting,
		Difficulty:       model.DifficultyEasy,
		MaxHealth:        spec.maxHealth,
		DamagePerCorrect: spec.damage,
		TotalQuestions:   spec.total,
		RewardPoints:     spec.reward,
		AvatarURL:        "🐉",
		Personality:      "Grumpy but fair.",
	}
	require.NoError(t, db.Create(boss).Error)
	return boss
}

// questionWithAnswer は正解マーカー付きの問題文を返す
func questionWithAnswer(letter string) string {
	return "QUESTION: What is a budget?\nA) A plan\nB) A loan\nC) A tax\nD) A card\nCORRECT_ANSWER: " + letter
}

type stubReply struct {
	content string
	err     error
}

// stubGenerator は登録された応答を順に返す。使い切った後は最後の応答を返し続ける
type stubGenerator struct {
	replies []stubReply
	calls   int
	seen    [][]ChatMessage
}

func newAnsweringGenerator(letter string) *stubGenerator {
	return &stubGenerator{replies: []stubReply{{content: questionWithAnswer(letter)}}}
}

func (g *stubGenerator) Generate(ctx context.Context, messages []ChatMessage) (string, error) {
	g.seen = append(g.seen, messages)
	r := g.replies[min(g.calls, len(g.replies)-1)]
	g.calls++
	return r.content, r.err
}

type testEnv struct {
	db      *gorm.DB
	svc     *battleService
	gen     *stubGenerator
	metrics *metrics.BattleMetrics
}

func newTestEnv(t *testing.T, gen *stubGenerator) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	m := metrics.NewBattleMetrics()
	svc := NewBattleService(db,
		repository.NewGormBossRepository(),
		repository.NewGormBattleRepository(),
		repository.NewGormAchievementRepository(),
		repository.NewGormProgressRepository(),
		gen, m, testConfig(),
	).(*battleService)
	return &testEnv{db: db, svc: svc, gen: gen, metrics: m}
}

func (e *testEnv) countAchievements(t *testing.T, userID uuid.UUID, bossID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&model.Achievement{}).Where("user_id = ? AND boss_id = ?", userID, bossID).Count(&n).Error)
	return n
}

func (e *testEnv) experiencePoints(t *testing.T, userID uuid.UUID) int {
	t.Helper()
	var p model.UserProgress
	err := e.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	require.NoError(t, err)
	return p.ExperiencePoints
}
