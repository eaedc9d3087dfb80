package service

import (
	"context"
	"testing"

	"finlit_academy/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCorrectAnswer(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{"正常系: 標準形式", "QUESTION: ...\nCORRECT_ANSWER: C", "C", true},
		{"正常系: 小文字ラベルと小文字の選択肢", "correct_answer: b", "B", true},
		{"正常系: 空白なし", "CORRECT_ANSWER:D", "D", true},
		{"異常系: マーカーなし", "QUESTION: what?\nA) x", "", false},
		{"異常系: 範囲外の選択肢", "CORRECT_ANSWER: E", "", false},
		{"正常系: 複数ある場合は末尾のマーカー", "Last round's CORRECT_ANSWER: A was tricky.\nQUESTION: ...\nCORRECT_ANSWER: C", "C", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCorrectAnswer(tt.content)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripAnswerMarker(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "正常系: 末尾のマーカー行を除く",
			content: questionWithAnswer("C"),
			want:    "QUESTION: What is a budget?\nA) A plan\nB) A loan\nC) A tax\nD) A card",
		},
		{
			name:    "正常系: 選択肢の行にあるマーカーは行を残して除く",
			content: "QUESTION: What is a budget?\nA) A plan\nB) A loan\nC) A tax\nD) A card  (CORRECT_ANSWER: A)",
			want:    "QUESTION: What is a budget?\nA) A plan\nB) A loan\nC) A tax\nD) A card",
		},
		{
			name:    "正常系: 文中のマーカー",
			content: "QUESTION: Pick one CORRECT_ANSWER: B\nA) x\nB) y\nC) z\nD) w",
			want:    "QUESTION: Pick one\nA) x\nB) y\nC) z\nD) w",
		},
		{
			name:    "正常系: マーカーなしはそのまま",
			content: "QUESTION: Ready?\nA) yes\nB) no",
			want:    "QUESTION: Ready?\nA) yes\nB) no",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripAnswerMarker(tt.content)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "CORRECT_ANSWER")
		})
	}
}

func TestNormalizeAnswer(t *testing.T) {
	for _, in := range []string{"a", "B", " c ", "d"} {
		got, err := NormalizeAnswer(in)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
	for _, in := range []string{"", "E", "AB", "1"} {
		_, err := NormalizeAnswer(in)
		assert.ErrorIs(t, err, model.ErrInvalidInput, "input %q", in)
	}
}

func TestScriptedGenerator_AlwaysEmitsMarker(t *testing.T) {
	gen := NewScriptedGenerator()
	boss := &model.Boss{Name: "Crypto Knight", Title: "Defender of the Blockchain", Topic: model.TopicCryptocurrency, Difficulty: model.DifficultyMedium}

	var history []model.ConversationTurn
	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		content, err := gen.Generate(context.Background(), buildGenerationMessages(boss, history, "next"))
		require.NoError(t, err)
		letter, ok := ParseCorrectAnswer(content)
		require.True(t, ok, content)
		assert.NotEmpty(t, letter)
		assert.Contains(t, content, "A) ")
		assert.Contains(t, content, "D) ")
		seen[content] = true
		history = append(history,
			model.ConversationTurn{Role: model.RoleUser, Content: "next"},
			model.ConversationTurn{Role: model.RoleAssistant, Content: content},
		)
	}
	// 2問をローテーションする
	assert.Len(t, seen, 2)
}
