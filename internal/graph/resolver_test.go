package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"
	"finlit_academy/internal/service"
	"finlit_academy/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message    string                 `json:"message"`
		Extensions map[string]interface{} `json:"extensions"`
	} `json:"errors"`
}

type testServer struct {
	bosses       *mocks.BossService
	battles      *mocks.BattleService
	achievements *mocks.AchievementService
	handler      http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		bosses:       mocks.NewBossService(t),
		battles:      mocks.NewBattleService(t),
		achievements: mocks.NewAchievementService(t),
	}
	schema, err := NewSchema(NewResolver(ts.bosses, ts.battles, ts.achievements))
	require.NoError(t, err)
	ts.handler = middleware.DevUserContextMiddleware(NewHandler(schema))
	return ts
}

func (ts *testServer) do(t *testing.T, userID *uuid.UUID, query string, variables map[string]interface{}) (int, graphqlResponse) {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{"query": query, "variables": variables})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	var resp graphqlResponse
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	}
	return rr.Code, resp
}

func testBoss() *model.Boss {
	return &model.Boss{
		ID:               1,
		Name:             "Budget Dragon",
		Title:            "Guardian of the Monthly Budget",
		Description:      "A fearsome dragon that hoards gold.",
		Topic:            model.TopicBudgeting,
		Difficulty:       model.DifficultyEasy,
		MaxHealth:        100,
		DamagePerCorrect: 20,
		TotalQuestions:   5,
		RewardPoints:     300,
		AvatarURL:        "🐉",
		Personality:      "Grumpy but fair.",
	}
}

func TestResolver_BossBattles(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 一覧を返す", func(t *testing.T) {
		ts := newTestServer(t)
		second := testBoss()
		second.ID = 2
		second.Name = "Debt Demon"
		second.Difficulty = model.DifficultyHard
		ts.bosses.On("ListBosses", mock.Anything).Return([]*model.Boss{testBoss(), second}, nil).Once()

		code, resp := ts.do(t, &userID, `{ bossBattles { id name topic difficulty maxHealth avatarUrl } }`, nil)
		require.Equal(t, http.StatusOK, code)
		require.Empty(t, resp.Errors)

		var data struct {
			BossBattles []struct {
				ID         string `json:"id"`
				Name       string `json:"name"`
				Topic      string `json:"topic"`
				Difficulty string `json:"difficulty"`
				MaxHealth  int    `json:"maxHealth"`
				AvatarURL  string `json:"avatarUrl"`
			} `json:"bossBattles"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		require.Len(t, data.BossBattles, 2)
		assert.Equal(t, "1", data.BossBattles[0].ID)
		assert.Equal(t, "BUDGETING", data.BossBattles[0].Topic)
		assert.Equal(t, 100, data.BossBattles[0].MaxHealth)
		assert.Equal(t, "🐉", data.BossBattles[0].AvatarURL)
		assert.Equal(t, "HARD", data.BossBattles[1].Difficulty)
	})

	t.Run("異常系: ユーザー未指定は 401", func(t *testing.T) {
		ts := newTestServer(t)
		code, _ := ts.do(t, nil, `{ bossBattles { id } }`, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("異常系: 内部エラーは詳細を伏せる", func(t *testing.T) {
		ts := newTestServer(t)
		ts.bosses.On("ListBosses", mock.Anything).Return(nil, errors.New("pq: connection refused")).Once()

		code, resp := ts.do(t, &userID, `{ bossBattles { id } }`, nil)
		require.Equal(t, http.StatusOK, code)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Errors[0].Extensions["code"])
		assert.NotContains(t, resp.Errors[0].Message, "pq:")
	})
}

func TestResolver_BossBattle(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系", func(t *testing.T) {
		ts := newTestServer(t)
		ts.bosses.On("GetBoss", mock.Anything, uint(1)).Return(testBoss(), nil).Once()

		_, resp := ts.do(t, &userID, `query($id: ID!) { bossBattle(id: $id) { name rewardPoints } }`, map[string]interface{}{"id": "1"})
		require.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"bossBattle":{"name":"Budget Dragon","rewardPoints":300}}`, string(resp.Data))
	})

	t.Run("異常系: 存在しないボス", func(t *testing.T) {
		ts := newTestServer(t)
		ts.bosses.On("GetBoss", mock.Anything, uint(99)).
			Return(nil, model.NewAppError(service.CodeBossNotFound, "ボスが見つかりません。", "id", model.ErrNotFound)).Once()

		_, resp := ts.do(t, &userID, `{ bossBattle(id: "99") { name } }`, nil)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, service.CodeBossNotFound, resp.Errors[0].Extensions["code"])
		assert.Equal(t, float64(http.StatusNotFound), resp.Errors[0].Extensions["status"])
		assert.Equal(t, "id", resp.Errors[0].Extensions["field"])
	})

	t.Run("異常系: 不正なID", func(t *testing.T) {
		ts := newTestServer(t)
		_, resp := ts.do(t, &userID, `{ bossBattle(id: "dragon") { name } }`, nil)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "INVALID_ID", resp.Errors[0].Extensions["code"])
		ts.bosses.AssertNotCalled(t, "GetBoss", mock.Anything, mock.Anything)
	})
}

func TestResolver_BattleFlow(t *testing.T) {
	userID := uuid.New()
	battleID := uuid.New()
	startedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("正常系: startBossBattle", func(t *testing.T) {
		ts := newTestServer(t)
		ts.battles.On("StartBattle", mock.Anything, userID, uint(1)).Return(&model.BattleSession{
			ID:                  battleID,
			UserID:              userID,
			BossID:              1,
			CurrentHealth:       100,
			Status:              model.BattleInProgress,
			ConversationHistory: datatypes.JSONSlice[model.ConversationTurn]{},
			StartedAt:           startedAt,
			Boss:                testBoss(),
		}, nil).Once()

		_, resp := ts.do(t, &userID,
			`mutation($bossId: ID!) { startBossBattle(bossId: $bossId) { id bossId currentHealth status startedAt completedAt boss { name } conversationHistory { role } } }`,
			map[string]interface{}{"bossId": "1"})
		require.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"startBossBattle":{"id":"`+battleID.String()+`","bossId":"1","currentHealth":100,"status":"IN_PROGRESS",
			"startedAt":"2026-01-02T03:04:05Z","completedAt":null,"boss":{"name":"Budget Dragon"},"conversationHistory":[]}}`, string(resp.Data))
	})

	t.Run("正常系: askBossQuestion", func(t *testing.T) {
		ts := newTestServer(t)
		ts.battles.On("AskQuestion", mock.Anything, userID, battleID, "Give me a question").Return(&model.AskQuestionResult{
			UserBattleID:   battleID,
			BossResponse:   "QUESTION: What is a budget?",
			CurrentHealth:  100,
			QuestionsAsked: 1,
			TotalQuestions: 5,
		}, nil).Once()

		_, resp := ts.do(t, &userID,
			`mutation($id: ID!, $m: String!) { askBossQuestion(userBattleId: $id, message: $m) { userBattleId bossResponse questionsAsked totalQuestions } }`,
			map[string]interface{}{"id": battleID.String(), "m": "Give me a question"})
		require.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"askBossQuestion":{"userBattleId":"`+battleID.String()+`","bossResponse":"QUESTION: What is a budget?","questionsAsked":1,"totalQuestions":5}}`, string(resp.Data))
	})

	t.Run("異常系: askBossQuestion 空メッセージ", func(t *testing.T) {
		ts := newTestServer(t)
		_, resp := ts.do(t, &userID,
			`mutation($id: ID!) { askBossQuestion(userBattleId: $id, message: "") { bossResponse } }`,
			map[string]interface{}{"id": battleID.String()})
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "VALIDATION_ERROR", resp.Errors[0].Extensions["code"])
		ts.battles.AssertNotCalled(t, "AskQuestion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: askBossQuestion 生成失敗は 502 でメッセージを伏せる", func(t *testing.T) {
		ts := newTestServer(t)
		ts.battles.On("AskQuestion", mock.Anything, userID, battleID, "hi").
			Return(nil, model.NewAppError(service.CodeGenerationFailed, "openai: rate limited", "", model.ErrUpstreamGeneration)).Once()

		_, resp := ts.do(t, &userID,
			`mutation($id: ID!) { askBossQuestion(userBattleId: $id, message: "hi") { bossResponse } }`,
			map[string]interface{}{"id": battleID.String()})
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, service.CodeGenerationFailed, resp.Errors[0].Extensions["code"])
		assert.Equal(t, float64(http.StatusBadGateway), resp.Errors[0].Extensions["status"])
		assert.NotContains(t, resp.Errors[0].Message, "openai")
	})

	t.Run("正常系: submitBossAnswer 撃破", func(t *testing.T) {
		ts := newTestServer(t)
		ts.battles.On("SubmitAnswer", mock.Anything, userID, battleID, "b").Return(&model.AnswerOutcome{
			IsCorrect:        true,
			CorrectAnswer:    "B",
			NewHealth:        0,
			Damage:           20,
			QuestionsCorrect: 5,
			QuestionsAsked:   5,
			Status:           model.BattleVictory,
			IsDefeated:       true,
			RewardPoints:     300,
			XPAwarded:        300,
		}, nil).Once()

		_, resp := ts.do(t, &userID,
			`mutation($id: ID!) { submitBossAnswer(userBattleId: $id, answer: "b") { isCorrect correctAnswer newHealth status isDefeated rewardPoints xpAwarded } }`,
			map[string]interface{}{"id": battleID.String()})
		require.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"submitBossAnswer":{"isCorrect":true,"correctAnswer":"B","newHealth":0,"status":"VICTORY","isDefeated":true,"rewardPoints":300,"xpAwarded":300}}`, string(resp.Data))
	})

	t.Run("正常系: submitBossAnswer 前後の空白は除いて渡す", func(t *testing.T) {
		ts := newTestServer(t)
		ts.battles.On("SubmitAnswer", mock.Anything, userID, battleID, "b").Return(&model.AnswerOutcome{
			IsCorrect:      false,
			CorrectAnswer:  "C",
			NewHealth:      100,
			QuestionsAsked: 1,
			Status:         model.BattleInProgress,
		}, nil).Once()

		_, resp := ts.do(t, &userID,
			`mutation($id: ID!) { submitBossAnswer(userBattleId: $id, answer: " b ") { isCorrect correctAnswer status } }`,
			map[string]interface{}{"id": battleID.String()})
		require.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"submitBossAnswer":{"isCorrect":false,"correctAnswer":"C","status":"IN_PROGRESS"}}`, string(resp.Data))
	})

	t.Run("異常系: submitBossAnswer 選択肢外", func(t *testing.T) {
		ts := newTestServer(t)
		_, resp := ts.do(t, &userID,
			`mutation($id: ID!) { submitBossAnswer(userBattleId: $id, answer: "E") { status } }`,
			map[string]interface{}{"id": battleID.String()})
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "VALIDATION_ERROR", resp.Errors[0].Extensions["code"])
		assert.Equal(t, "answer", resp.Errors[0].Extensions["field"])
		ts.battles.AssertNotCalled(t, "SubmitAnswer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: submitBossAnswer 終了済み", func(t *testing.T) {
		ts := newTestServer(t)
		ts.battles.On("SubmitAnswer", mock.Anything, userID, battleID, "A").
			Return(nil, model.NewAppError(service.CodeBattleNotActive, "このバトルは既に終了しています。", "", model.ErrInvalidState)).Once()

		_, resp := ts.do(t, &userID,
			`mutation($id: ID!) { submitBossAnswer(userBattleId: $id, answer: "A") { status } }`,
			map[string]interface{}{"id": battleID.String()})
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, service.CodeBattleNotActive, resp.Errors[0].Extensions["code"])
		assert.Equal(t, float64(http.StatusUnprocessableEntity), resp.Errors[0].Extensions["status"])
		assert.Equal(t, "このバトルは既に終了しています。", resp.Errors[0].Message)
	})
}

func TestResolver_UserActiveBattle(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 正解行を履歴から除く", func(t *testing.T) {
		ts := newTestServer(t)
		ts.battles.On("GetActiveBattle", mock.Anything, userID).Return(&model.BattleSession{
			ID:     uuid.New(),
			BossID: 1,
			Status: model.BattleInProgress,
			ConversationHistory: datatypes.JSONSlice[model.ConversationTurn]{
				{Role: model.RoleUser, Content: "ready"},
				{Role: model.RoleAssistant, Content: "QUESTION: Pick one\nA) x\nB) y\nC) z\nD) w\nCORRECT_ANSWER: C"},
			},
			StartedAt: time.Now(),
		}, nil).Once()

		_, resp := ts.do(t, &userID, `{ userActiveBattle { conversationHistory { role content } } }`, nil)
		require.Empty(t, resp.Errors)
		var data struct {
			UserActiveBattle struct {
				ConversationHistory []struct {
					Role    string `json:"role"`
					Content string `json:"content"`
				} `json:"conversationHistory"`
			} `json:"userActiveBattle"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		history := data.UserActiveBattle.ConversationHistory
		require.Len(t, history, 2)
		assert.Equal(t, "ready", history[0].Content)
		assert.Contains(t, history[1].Content, "QUESTION: Pick one")
		assert.NotContains(t, history[1].Content, "CORRECT_ANSWER")
	})

	t.Run("正常系: 進行中バトルなし", func(t *testing.T) {
		ts := newTestServer(t)
		ts.battles.On("GetActiveBattle", mock.Anything, userID).Return(nil, nil).Once()

		_, resp := ts.do(t, &userID, `{ userActiveBattle { id } }`, nil)
		require.Empty(t, resp.Errors)
		assert.JSONEq(t, `{"userActiveBattle":null}`, string(resp.Data))
	})
}

func TestResolver_AchievementsAndProgress(t *testing.T) {
	userID := uuid.New()
	ts := newTestServer(t)
	ts.achievements.On("ListUserAchievements", mock.Anything, userID).Return([]*model.AchievementResponse{{
		BossID:       1,
		BossName:     "Budget Dragon",
		BossTitle:    "Guardian of the Monthly Budget",
		AvatarURL:    "🐉",
		DefeatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		FinalScore:   500,
		TimeTaken:    90,
		RewardPoints: 300,
	}}, nil).Once()
	ts.achievements.On("GetUserProgress", mock.Anything, userID).Return(&model.UserProgress{UserID: userID, ExperiencePoints: 300}, nil).Once()

	_, resp := ts.do(t, &userID, `{ userBossAchievements { bossId bossName defeatedAt finalScore timeTaken rewardPoints } myProgress { experiencePoints } }`, nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"userBossAchievements":[{"bossId":"1","bossName":"Budget Dragon","defeatedAt":"2026-03-01T12:00:00Z","finalScore":500,"timeTaken":90,"rewardPoints":300}],
		"myProgress":{"experiencePoints":300}}`, string(resp.Data))
}

func TestHandler_RejectsBadRequests(t *testing.T) {
	userID := uuid.New()
	ts := newTestServer(t)

	t.Run("異常系: GET は 405", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		ts.handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("異常系: query なしは 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString(`{"variables":{}}`))
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		ts.handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("異常系: 不正なJSONは 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewBufferString(`{"query":`))
		req.Header.Set("X-User-ID", userID.String())
		rr := httptest.NewRecorder()
		ts.handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
