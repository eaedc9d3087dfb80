// internal/service/battle_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"finlit_academy/internal/config"
	"finlit_academy/internal/metrics"
	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"
	"finlit_academy/internal/repository"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var errMissingAnswerMarker = errors.New("generated question has no CORRECT_ANSWER marker")

type BattleService interface {
	StartBattle(ctx context.Context, userID uuid.UUID, bossID uint) (*model.BattleSession, error)
	AskQuestion(ctx context.Context, userID, battleID uuid.UUID, message string) (*model.AskQuestionResult, error)
	SubmitAnswer(ctx context.Context, userID, battleID uuid.UUID, answer string) (*model.AnswerOutcome, error)
	GetActiveBattle(ctx context.Context, userID uuid.UUID) (*model.BattleSession, error)
}

type battleService struct {
	db              *gorm.DB
	bossRepo        repository.BossRepository
	battleRepo      repository.BattleRepository
	achievementRepo repository.AchievementRepository
	progressRepo    repository.ProgressRepository
	generator       QuestionGenerator
	metrics         *metrics.BattleMetrics

	passThresholdPercent int
	maxAttempts          int
	retryInterval        time.Duration
	now                  func() time.Time
}

func NewBattleService(
	db *gorm.DB,
	bossRepo repository.BossRepository,
	battleRepo repository.BattleRepository,
	achievementRepo repository.AchievementRepository,
	progressRepo repository.ProgressRepository,
	generator QuestionGenerator,
	m *metrics.BattleMetrics,
	cfg *config.Config,
) BattleService {
	return &battleService{
		db:                   db,
		bossRepo:             bossRepo,
		battleRepo:           battleRepo,
		achievementRepo:      achievementRepo,
		progressRepo:         progressRepo,
		generator:            generator,
		metrics:              m,
		passThresholdPercent: cfg.Battle.PassThresholdPercent,
		maxAttempts:          cfg.Generator.MaxAttempts,
		retryInterval:        cfg.Generator.RetryInitialInterval,
		now:                  time.Now,
	}
}

// StartBattle は (ユーザー, ボス) の進行中バトルがあればそれを返し、なければ新規作成する
func (s *battleService) StartBattle(ctx context.Context, userID uuid.UUID, bossID uint) (*model.BattleSession, error) {
	logger := middleware.GetLogger(ctx)

	boss, err := s.bossRepo.FindByID(ctx, s.db, bossID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError(CodeBossNotFound, "ボスが見つかりません。", "bossId", model.ErrNotFound)
		}
		return nil, newInternalError(err)
	}

	existing, err := s.battleRepo.FindActiveByUserAndBoss(ctx, s.db, userID, bossID)
	if err == nil {
		logger.Info("Resuming active battle", "user_battle_id", existing.ID.String(), "boss_id", bossID)
		existing.Boss = boss
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, newInternalError(err)
	}

	session := &model.BattleSession{
		ID:                  uuid.New(),
		UserID:              userID,
		BossID:              boss.ID,
		CurrentHealth:       boss.MaxHealth,
		Status:              model.BattleInProgress,
		ConversationHistory: datatypes.JSONSlice[model.ConversationTurn]{},
		StartedAt:           s.now(),
	}
	if err := s.battleRepo.Create(ctx, s.db, session); err != nil {
		if !errors.Is(err, model.ErrConflict) {
			return nil, newInternalError(err)
		}
		// 同時に作成された側のセッションを返す
		winner, findErr := s.battleRepo.FindActiveByUserAndBoss(ctx, s.db, userID, bossID)
		if findErr != nil {
			return nil, newInternalError(findErr)
		}
		winner.Boss = boss
		return winner, nil
	}

	s.metrics.BattlesStarted.WithLabelValues(string(boss.Topic)).Inc()
	logger.Info("Battle started", "user_battle_id", session.ID.String(), "boss_id", bossID)

	session.Boss = boss
	return session, nil
}

// AskQuestion はボスに問題を生成させ、会話履歴と出題数を更新する。
// 正解マーカーを含む応答が得られるまで最大 maxAttempts 回生成し、失敗時はセッションを変更しない
func (s *battleService) AskQuestion(ctx context.Context, userID, battleID uuid.UUID, message string) (*model.AskQuestionResult, error) {
	logger := middleware.GetLogger(ctx)

	if strings.TrimSpace(message) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "メッセージは必須項目です。", "message", model.ErrInvalidInput)
	}

	session, err := s.loadActiveSession(ctx, userID, battleID)
	if err != nil {
		return nil, err
	}
	boss := session.Boss
	if session.QuestionsAsked >= boss.TotalQuestions {
		return nil, model.NewAppError(CodeQuestionBudgetUsed, "このバトルの出題数の上限に達しています。回答を送信してください。", "", model.ErrInvalidState)
	}

	content, err := s.generateQuestion(ctx, boss, session.ConversationHistory, message)
	if err != nil {
		logger.Error("Question generation failed", "error", err, "user_battle_id", battleID.String())
		return nil, newGenerationError(err)
	}

	history := make(datatypes.JSONSlice[model.ConversationTurn], 0, len(session.ConversationHistory)+2)
	history = append(history, session.ConversationHistory...)
	history = append(history,
		model.ConversationTurn{Role: model.RoleUser, Content: message},
		model.ConversationTurn{Role: model.RoleAssistant, Content: content},
	)
	session.ConversationHistory = history
	session.QuestionsAsked++

	if err := s.battleRepo.UpdateWithVersion(ctx, s.db, session); err != nil {
		return nil, s.mapUpdateError(err)
	}

	return &model.AskQuestionResult{
		UserBattleID:   session.ID,
		BossResponse:   StripAnswerMarker(content),
		CurrentHealth:  session.CurrentHealth,
		QuestionsAsked: session.QuestionsAsked,
		TotalQuestions: boss.TotalQuestions,
	}, nil
}

// SubmitAnswer は直近の問題に対する回答を採点し、バトルの決着を判定する
func (s *battleService) SubmitAnswer(ctx context.Context, userID, battleID uuid.UUID, answer string) (*model.AnswerOutcome, error) {
	logger := middleware.GetLogger(ctx)

	letter, err := NormalizeAnswer(answer)
	if err != nil {
		return nil, err
	}

	session, err := s.loadActiveSession(ctx, userID, battleID)
	if err != nil {
		return nil, err
	}
	boss := session.Boss

	turn, ok := session.LastAssistantTurn()
	if !ok {
		return nil, model.NewAppError(CodeNoActiveQuestion, "まだ問題が出題されていません。", "", model.ErrInvalidState)
	}
	correctAnswer, ok := ParseCorrectAnswer(turn.Content)
	if !ok {
		logger.Error("Stored question has no answer marker", "user_battle_id", battleID.String())
		return nil, newGenerationError(errMissingAnswerMarker)
	}

	isCorrect := letter == correctAnswer
	damage := 0
	if isCorrect {
		damage = boss.DamagePerCorrect
		session.CurrentHealth = max(0, session.CurrentHealth-damage)
		session.QuestionsCorrect++
	}

	// 出題数は直近の AskQuestion で加算済みの値で判定する
	defeated := session.CurrentHealth <= 0
	budgetExhausted := session.QuestionsAsked >= boss.TotalQuestions

	now := s.now()
	if defeated || budgetExhausted {
		if defeated || s.passed(session.QuestionsCorrect, boss.TotalQuestions) {
			session.Status = model.BattleVictory
		} else {
			session.Status = model.BattleDefeat
		}
		session.CompletedAt = &now
	}

	xpAwarded := 0
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.battleRepo.UpdateWithVersion(ctx, tx, session); err != nil {
			return err
		}
		if session.Status != model.BattleVictory {
			return nil
		}

		achievement := &model.Achievement{
			UserID:     userID,
			BossID:     boss.ID,
			FinalScore: session.QuestionsCorrect * 100,
			TimeTaken:  int(now.Sub(session.StartedAt).Seconds()),
			DefeatedAt: now,
		}
		created, err := s.achievementRepo.CreateIfAbsent(ctx, tx, achievement)
		if err != nil {
			return err
		}
		if !created {
			logger.Info("Boss already defeated before, skipping reward", "user_id", userID.String(), "boss_id", boss.ID)
			return nil
		}
		if err := s.progressRepo.CreditXP(ctx, tx, userID, boss.RewardPoints); err != nil {
			return err
		}
		xpAwarded = boss.RewardPoints
		return nil
	})
	if err != nil {
		return nil, s.mapUpdateError(err)
	}

	s.recordOutcome(isCorrect, session.Status, xpAwarded)

	outcome := &model.AnswerOutcome{
		IsCorrect:        isCorrect,
		CorrectAnswer:    correctAnswer,
		NewHealth:        session.CurrentHealth,
		Damage:           damage,
		QuestionsCorrect: session.QuestionsCorrect,
		QuestionsAsked:   session.QuestionsAsked,
		Status:           session.Status,
		IsDefeated:       defeated,
		XPAwarded:        xpAwarded,
	}
	if session.Status == model.BattleVictory {
		outcome.RewardPoints = boss.RewardPoints
	}
	if session.Status.IsTerminal() {
		logger.Info("Battle concluded",
			"user_battle_id", session.ID.String(),
			"status", session.Status,
			"questions_correct", session.QuestionsCorrect,
			"xp_awarded", xpAwarded,
		)
	}
	return outcome, nil
}

// GetActiveBattle は直近に開始した進行中バトルを返す。なければ nil
func (s *battleService) GetActiveBattle(ctx context.Context, userID uuid.UUID) (*model.BattleSession, error) {
	session, err := s.battleRepo.FindLatestActiveByUser(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, newInternalError(err)
	}
	return session, nil
}

// loadActiveSession は本人の進行中セッションをボス付きで取得する
func (s *battleService) loadActiveSession(ctx context.Context, userID, battleID uuid.UUID) (*model.BattleSession, error) {
	session, err := s.battleRepo.FindByIDForUser(ctx, s.db, battleID, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError(CodeBattleNotFound, "バトルが見つかりません。", "userBattleId", model.ErrNotFound)
		}
		return nil, newInternalError(err)
	}
	if session.Status != model.BattleInProgress {
		return nil, model.NewAppError(CodeBattleNotActive, "このバトルは既に終了しています。", "", model.ErrInvalidState)
	}
	if session.Boss == nil {
		return nil, newInternalError(errors.New("battle session has no boss loaded"))
	}
	return session, nil
}

// generateQuestion は正解マーカー付きの応答が得られるまで指数バックオフで再試行する
func (s *battleService) generateQuestion(ctx context.Context, boss *model.Boss, history []model.ConversationTurn, userMessage string) (string, error) {
	logger := middleware.GetLogger(ctx)
	messages := buildGenerationMessages(boss, history, userMessage)

	b := backoff.NewExponentialBackOff()
	if s.retryInterval > 0 {
		b.InitialInterval = s.retryInterval
	}
	retries := 0
	if s.maxAttempts > 1 {
		retries = s.maxAttempts - 1
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)

	attempt := 0
	var content string
	err := backoff.Retry(func() error {
		attempt++
		text, err := s.generator.Generate(ctx, messages)
		if err != nil {
			logger.Warn("Question generator failed", "attempt", attempt, "max_attempts", s.maxAttempts, "error", err)
			s.countRetry(attempt)
			return err
		}
		if _, ok := ParseCorrectAnswer(text); !ok {
			logger.Warn("Generated question lacks answer marker", "attempt", attempt, "max_attempts", s.maxAttempts)
			s.countRetry(attempt)
			return errMissingAnswerMarker
		}
		content = text
		return nil
	}, policy)
	if err != nil {
		s.metrics.QuestionsGenerated.WithLabelValues(metrics.GenerationFailed).Inc()
		return "", err
	}

	s.metrics.QuestionsGenerated.WithLabelValues(metrics.GenerationOK).Inc()
	return content, nil
}

// countRetry は次の試行が残っている失敗だけを retry として数える
func (s *battleService) countRetry(attempt int) {
	if attempt < s.maxAttempts {
		s.metrics.QuestionsGenerated.WithLabelValues(metrics.GenerationRetry).Inc()
	}
}

// passed は 正解数 / 総問題数 が合格ラインに達しているか (整数演算で判定)
func (s *battleService) passed(correct, total int) bool {
	return correct*100 >= total*s.passThresholdPercent
}

func (s *battleService) mapUpdateError(err error) error {
	if errors.Is(err, model.ErrConflict) {
		return model.NewAppError(CodeBattleConflict, "バトルが他のリクエストで更新されました。再度お試しください。", "", model.ErrConflict)
	}
	return newInternalError(err)
}

func (s *battleService) recordOutcome(isCorrect bool, status model.BattleStatus, xpAwarded int) {
	if isCorrect {
		s.metrics.AnswersGraded.WithLabelValues("correct").Inc()
	} else {
		s.metrics.AnswersGraded.WithLabelValues("incorrect").Inc()
	}
	if status.IsTerminal() {
		s.metrics.BattlesConcluded.WithLabelValues(string(status)).Inc()
	}
	if xpAwarded > 0 {
		s.metrics.XPAwarded.Add(float64(xpAwarded))
	}
}
