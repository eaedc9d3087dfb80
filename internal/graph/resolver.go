package graph

import (
	"context"
	"strconv"
	"strings"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"
	"finlit_academy/internal/service"
	"finlit_academy/internal/webutil"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"
)

// Resolver は Query と Mutation のルートリゾルバ
type Resolver struct {
	bosses       service.BossService
	battles      service.BattleService
	achievements service.AchievementService
}

func NewResolver(bosses service.BossService, battles service.BattleService, achievements service.AchievementService) *Resolver {
	return &Resolver{bosses: bosses, battles: battles, achievements: achievements}
}

// NewSchema はスキーマをパースしてリゾルバを結び付ける
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, r,
		graphql.UseFieldResolvers(),
		graphql.MaxDepth(8),
		graphql.Logger(panicLogger{}),
	)
}

// --- Query ---

func (r *Resolver) BossBattles(ctx context.Context) ([]*bossDTO, error) {
	if _, err := middleware.GetUserIDFromContext(ctx); err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	bosses, err := r.bosses.ListBosses(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	dtos := make([]*bossDTO, 0, len(bosses))
	for _, b := range bosses {
		dtos = append(dtos, toBossDTO(b))
	}
	return dtos, nil
}

func (r *Resolver) BossBattle(ctx context.Context, args struct{ ID graphql.ID }) (*bossDTO, error) {
	if _, err := middleware.GetUserIDFromContext(ctx); err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	id, err := parseBossID(args.ID, "id")
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	boss, err := r.bosses.GetBoss(ctx, id)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	return toBossDTO(boss), nil
}

func (r *Resolver) UserActiveBattle(ctx context.Context) (*battleDTO, error) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	session, err := r.battles.GetActiveBattle(ctx, userID)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	if session == nil {
		return nil, nil
	}
	return toBattleDTO(session), nil
}

func (r *Resolver) UserBossAchievements(ctx context.Context) ([]*achievementDTO, error) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	achievements, err := r.achievements.ListUserAchievements(ctx, userID)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	dtos := make([]*achievementDTO, 0, len(achievements))
	for _, a := range achievements {
		dtos = append(dtos, toAchievementDTO(a))
	}
	return dtos, nil
}

func (r *Resolver) MyProgress(ctx context.Context) (*progressDTO, error) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	progress, err := r.achievements.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	return &progressDTO{ExperiencePoints: int32(progress.ExperiencePoints)}, nil
}

// --- Mutation ---

func (r *Resolver) StartBossBattle(ctx context.Context, args struct{ BossID graphql.ID }) (*battleDTO, error) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	id, err := parseBossID(args.BossID, "bossId")
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	session, err := r.battles.StartBattle(ctx, userID, id)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	return toBattleDTO(session), nil
}

func (r *Resolver) AskBossQuestion(ctx context.Context, args struct {
	UserBattleID graphql.ID
	Message      string
}) (*questionDTO, error) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	battleID, err := parseBattleID(args.UserBattleID)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	if err := webutil.ValidateStruct(&model.AskQuestionRequest{Message: args.Message}); err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	result, err := r.battles.AskQuestion(ctx, userID, battleID, args.Message)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	return toQuestionDTO(result), nil
}

func (r *Resolver) SubmitBossAnswer(ctx context.Context, args struct {
	UserBattleID graphql.ID
	Answer       string
}) (*answerDTO, error) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	battleID, err := parseBattleID(args.UserBattleID)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	// 前後の空白はサービス側と同じく許容する
	answer := strings.TrimSpace(args.Answer)
	if err := webutil.ValidateStruct(&model.SubmitAnswerRequest{Answer: answer}); err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	outcome, err := r.battles.SubmitAnswer(ctx, userID, battleID, answer)
	if err != nil {
		return nil, toGraphQLError(ctx, err)
	}
	return toAnswerDTO(outcome), nil
}

func parseBossID(id graphql.ID, field string) (uint, error) {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil || n == 0 {
		return 0, model.NewAppError("INVALID_ID", "IDの形式が正しくありません。", field, model.ErrInvalidInput)
	}
	return uint(n), nil
}

func parseBattleID(id graphql.ID) (uuid.UUID, error) {
	battleID, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", "IDの形式が正しくありません。", "userBattleId", model.ErrInvalidInput)
	}
	return battleID, nil
}
