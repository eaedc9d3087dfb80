// internal/service/question.go
package service

import (
	"fmt"
	"regexp"
	"strings"

	"finlit_academy/internal/model"
)

// 生成文中の正解マーカー (例: "CORRECT_ANSWER: C")
var correctAnswerPattern = regexp.MustCompile(`(?i)CORRECT_ANSWER:\s*([A-D])`)

// 表示から取り除く範囲。選択肢の行末に括弧付きで書かれた場合も括弧ごと消す
var answerMarkerText = regexp.MustCompile(`(?i)[(\[]?\s*CORRECT_ANSWER:\s*[A-D]\s*[)\]]?`)

const systemPromptTemplate = `You are %[1]s, the %[2]s. %[3]s

You are testing the user's knowledge about %[4]s. Your goal is to:
1. Ask ONE clear, specific financial question about %[4]s
2. The question should be %[5]s difficulty
3. Provide 4 multiple choice options (A, B, C, D)
4. Keep your response in character
5. Be educational but engaging

Format your response EXACTLY like this:
QUESTION: [Your question here]
A) [Option A]
B) [Option B]
C) [Option C]
D) [Option D]
CORRECT_ANSWER: [A, B, C, or D]

Important: You must ALWAYS include the CORRECT_ANSWER line at the end!`

// BuildSystemPrompt はボスのキャラクターと出題形式を指示するシステムプロンプトを組み立てる
func BuildSystemPrompt(boss *model.Boss) string {
	return fmt.Sprintf(systemPromptTemplate,
		boss.Name,
		boss.Title,
		boss.Personality,
		boss.Topic,
		strings.ToLower(string(boss.Difficulty)),
	)
}

// ParseCorrectAnswer は生成文から正解の選択肢 (大文字) を取り出す。
// マーカーは末尾に置く指示なので、複数ある場合は最後のものを使う
func ParseCorrectAnswer(content string) (string, bool) {
	matches := correctAnswerPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return "", false
	}
	return strings.ToUpper(matches[len(matches)-1][1]), true
}

// StripAnswerMarker はクライアントに返す前に正解マーカーを取り除く。
// マーカーだけの行は行ごと消し、他の文字がある行は残す
func StripAnswerMarker(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !answerMarkerText.MatchString(line) {
			kept = append(kept, line)
			continue
		}
		stripped := strings.TrimRight(answerMarkerText.ReplaceAllString(line, ""), " \t")
		if strings.TrimSpace(stripped) == "" {
			continue
		}
		kept = append(kept, stripped)
	}
	return strings.TrimRight(strings.Join(kept, "\n"), "\n ")
}

// NormalizeAnswer は回答を大文字の A〜D に正規化する
func NormalizeAnswer(answer string) (string, error) {
	a := strings.ToUpper(strings.TrimSpace(answer))
	switch a {
	case "A", "B", "C", "D":
		return a, nil
	}
	return "", model.NewAppError("INVALID_ANSWER", "回答はA〜Dのいずれかで指定してください。", "answer", model.ErrInvalidInput)
}

// buildGenerationMessages はシステム指示 + これまでの会話 + 新しいユーザー発言を並べる
func buildGenerationMessages(boss *model.Boss, history []model.ConversationTurn, userMessage string) []ChatMessage {
	messages := make([]ChatMessage, 0, len(history)+2)
	messages = append(messages, ChatMessage{Role: RoleSystem, Content: BuildSystemPrompt(boss)})
	for _, turn := range history {
		messages = append(messages, ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, ChatMessage{Role: model.RoleUser, Content: userMessage})
	return messages
}
