package graph

import (
	"strconv"
	"time"

	"finlit_academy/internal/model"
	"finlit_academy/internal/service"

	graphql "github.com/graph-gophers/graphql-go"
)

// 以下はスキーマの型に対応する DTO。フィールド名で解決される (UseFieldResolvers)

type bossDTO struct {
	ID               graphql.ID
	Name             string
	Title            string
	Description      string
	Topic            string
	Difficulty       string
	MaxHealth        int32
	DamagePerCorrect int32
	TotalQuestions   int32
	RewardPoints     int32
	AvatarURL        string
	Personality      string
}

type messageDTO struct {
	Role    string
	Content string
}

type battleDTO struct {
	ID                  graphql.ID
	BossID              graphql.ID
	Boss                *bossDTO
	CurrentHealth       int32
	QuestionsAsked      int32
	QuestionsCorrect    int32
	Status              string
	ConversationHistory []*messageDTO
	StartedAt           string
	CompletedAt         *string
}

type questionDTO struct {
	UserBattleID   graphql.ID
	BossResponse   string
	CurrentHealth  int32
	QuestionsAsked int32
	TotalQuestions int32
}

type answerDTO struct {
	IsCorrect        bool
	CorrectAnswer    string
	NewHealth        int32
	Damage           int32
	QuestionsCorrect int32
	QuestionsAsked   int32
	Status           string
	IsDefeated       bool
	RewardPoints     int32
	XPAwarded        int32
}

type achievementDTO struct {
	BossID       graphql.ID
	BossName     string
	BossTitle    string
	AvatarURL    string
	DefeatedAt   string
	FinalScore   int32
	TimeTaken    int32
	RewardPoints int32
}

type progressDTO struct {
	ExperiencePoints int32
}

func bossID(id uint) graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(id), 10))
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toBossDTO(b *model.Boss) *bossDTO {
	if b == nil {
		return nil
	}
	return &bossDTO{
		ID:               bossID(b.ID),
		Name:             b.Name,
		Title:            b.Title,
		Description:      b.Description,
		Topic:            string(b.Topic),
		Difficulty:       string(b.Difficulty),
		MaxHealth:        int32(b.MaxHealth),
		DamagePerCorrect: int32(b.DamagePerCorrect),
		TotalQuestions:   int32(b.TotalQuestions),
		RewardPoints:     int32(b.RewardPoints),
		AvatarURL:        b.AvatarURL,
		Personality:      b.Personality,
	}
}

// toBattleDTO はボスの発言から正解行を除いて返す
func toBattleDTO(s *model.BattleSession) *battleDTO {
	history := make([]*messageDTO, 0, len(s.ConversationHistory))
	for _, turn := range s.ConversationHistory {
		content := turn.Content
		if turn.Role == model.RoleAssistant {
			content = service.StripAnswerMarker(content)
		}
		history = append(history, &messageDTO{Role: turn.Role, Content: content})
	}

	dto := &battleDTO{
		ID:                  graphql.ID(s.ID.String()),
		BossID:              bossID(s.BossID),
		Boss:                toBossDTO(s.Boss),
		CurrentHealth:       int32(s.CurrentHealth),
		QuestionsAsked:      int32(s.QuestionsAsked),
		QuestionsCorrect:    int32(s.QuestionsCorrect),
		Status:              string(s.Status),
		ConversationHistory: history,
		StartedAt:           formatTime(s.StartedAt),
	}
	if s.CompletedAt != nil {
		completed := formatTime(*s.CompletedAt)
		dto.CompletedAt = &completed
	}
	return dto
}

func toQuestionDTO(r *model.AskQuestionResult) *questionDTO {
	return &questionDTO{
		UserBattleID:   graphql.ID(r.UserBattleID.String()),
		BossResponse:   r.BossResponse,
		CurrentHealth:  int32(r.CurrentHealth),
		QuestionsAsked: int32(r.QuestionsAsked),
		TotalQuestions: int32(r.TotalQuestions),
	}
}

func toAnswerDTO(o *model.AnswerOutcome) *answerDTO {
	return &answerDTO{
		IsCorrect:        o.IsCorrect,
		CorrectAnswer:    o.CorrectAnswer,
		NewHealth:        int32(o.NewHealth),
		Damage:           int32(o.Damage),
		QuestionsCorrect: int32(o.QuestionsCorrect),
		QuestionsAsked:   int32(o.QuestionsAsked),
		Status:           string(o.Status),
		IsDefeated:       o.IsDefeated,
		RewardPoints:     int32(o.RewardPoints),
		XPAwarded:        int32(o.XPAwarded),
	}
}

func toAchievementDTO(a *model.AchievementResponse) *achievementDTO {
	return &achievementDTO{
		BossID:       bossID(a.BossID),
		BossName:     a.BossName,
		BossTitle:    a.BossTitle,
		AvatarURL:    a.AvatarURL,
		DefeatedAt:   formatTime(a.DefeatedAt),
		FinalScore:   int32(a.FinalScore),
		TimeTaken:    int32(a.TimeTaken),
		RewardPoints: int32(a.RewardPoints),
	}
}
