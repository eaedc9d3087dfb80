package repository

import (
	"context"
	"testing"
	"time"

	"finlit_academy/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BattleRepositoryTestSuite は各テストごとに新しいDBとボスを用意する
type BattleRepositoryTestSuite struct {
	suite.Suite

	ctx    context.Context
	db     *gorm.DB
	repo   BattleRepository
	boss   *model.Boss
	userID uuid.UUID
}

func (s *BattleRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = setupTestDB(s.T())
	s.repo = NewGormBattleRepository()
	s.boss = seedBoss(s.T(), s.db, "Debt Demon", model.DifficultyHard)
	s.userID = uuid.New()
}

func TestBattleRepository(t *testing.T) {
	suite.Run(t, new(BattleRepositoryTestSuite))
}

func (s *BattleRepositoryTestSuite) TestActiveSessionUniqueness() {
	first := newSession(s.userID, s.boss.ID)
	s.Require().NoError(s.repo.Create(s.ctx, s.db, first))

	// 同じ (user, boss) の進行中セッションは2つ作れない
	err := s.repo.Create(s.ctx, s.db, newSession(s.userID, s.boss.ID))
	s.ErrorIs(err, model.ErrConflict)

	// 別ユーザーなら作れる
	s.NoError(s.repo.Create(s.ctx, s.db, newSession(uuid.New(), s.boss.ID)))

	// 終了したセッションは制約の対象外
	now := time.Now()
	first.Status = model.BattleDefeat
	first.CompletedAt = &now
	s.Require().NoError(s.repo.UpdateWithVersion(s.ctx, s.db, first))
	s.NoError(s.repo.Create(s.ctx, s.db, newSession(s.userID, s.boss.ID)))
}

func (s *BattleRepositoryTestSuite) TestUpdateWithVersion() {
	session := newSession(s.userID, s.boss.ID)
	s.Require().NoError(s.repo.Create(s.ctx, s.db, session))

	a, err := s.repo.FindByIDForUser(s.ctx, s.db, session.ID, s.userID)
	s.Require().NoError(err)
	b, err := s.repo.FindByIDForUser(s.ctx, s.db, session.ID, s.userID)
	s.Require().NoError(err)

	a.CurrentHealth = 60
	a.QuestionsCorrect = 2
	a.ConversationHistory = append(a.ConversationHistory, model.ConversationTurn{Role: model.RoleUser, Content: "hello"})
	s.Require().NoError(s.repo.UpdateWithVersion(s.ctx, s.db, a))
	s.Equal(1, a.Version)

	// 古いバージョンでの更新は失敗し、先の更新を上書きしない
	b.CurrentHealth = 100
	err = s.repo.UpdateWithVersion(s.ctx, s.db, b)
	s.ErrorIs(err, model.ErrConflict)
	s.Equal(0, b.Version)

	stored, err := s.repo.FindByIDForUser(s.ctx, s.db, session.ID, s.userID)
	s.Require().NoError(err)
	s.Equal(60, stored.CurrentHealth)
	s.Equal(2, stored.QuestionsCorrect)
	s.Equal(1, stored.Version)
	s.Require().Len(stored.ConversationHistory, 1)
	s.Equal("hello", stored.ConversationHistory[0].Content)
	s.Require().NotNil(stored.Boss)
	s.Equal("Debt Demon", stored.Boss.Name)
}

func (s *BattleRepositoryTestSuite) TestFind() {
	_, err := s.repo.FindActiveByUserAndBoss(s.ctx, s.db, s.userID, s.boss.ID)
	s.ErrorIs(err, model.ErrNotFound)
	_, err = s.repo.FindLatestActiveByUser(s.ctx, s.db, s.userID)
	s.ErrorIs(err, model.ErrNotFound)

	older := newSession(s.userID, s.boss.ID)
	older.StartedAt = time.Now().Add(-time.Hour)
	s.Require().NoError(s.repo.Create(s.ctx, s.db, older))

	other := seedBoss(s.T(), s.db, "Tax Titan", model.DifficultyHard)
	newer := newSession(s.userID, other.ID)
	s.Require().NoError(s.repo.Create(s.ctx, s.db, newer))

	found, err := s.repo.FindActiveByUserAndBoss(s.ctx, s.db, s.userID, s.boss.ID)
	s.Require().NoError(err)
	s.Equal(older.ID, found.ID)

	// 直近に開始したものを返す
	latest, err := s.repo.FindLatestActiveByUser(s.ctx, s.db, s.userID)
	s.Require().NoError(err)
	s.Equal(newer.ID, latest.ID)
	s.Require().NotNil(latest.Boss)
	s.Equal("Tax Titan", latest.Boss.Name)

	// 他ユーザーからは見えない
	_, err = s.repo.FindByIDForUser(s.ctx, s.db, older.ID, uuid.New())
	s.ErrorIs(err, model.ErrNotFound)
}
