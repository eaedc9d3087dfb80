package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"finlit_academy/internal/config"
	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"
)

const RoleSystem = "system"

// ChatMessage は生成サービスに渡す1ターン
type ChatMessage struct {
	Role    string
	Content string
}

// QuestionGenerator はボスの発言 (問題文) を生成する外部サービス
type QuestionGenerator interface {
	Generate(ctx context.Context, messages []ChatMessage) (string, error)
}

// NewQuestionGenerator は generator.type に応じて実装を選ぶ
func NewQuestionGenerator(cfg *config.Config) QuestionGenerator {
	switch cfg.Generator.Type {
	case config.GeneratorTypeOpenAI:
		slog.Info("Using OpenAI question generator", "model", cfg.Generator.Model)
		return NewOpenAIGenerator(&cfg.Generator)
	case config.GeneratorTypeScripted:
		slog.Info("Using scripted question generator")
		return NewScriptedGenerator()
	default:
		slog.Warn("Unknown generator type specified, defaulting to scripted.", "type", cfg.Generator.Type)
		return NewScriptedGenerator()
	}
}

// --- ScriptedGenerator ---

type scriptedQuestion struct {
	question string
	options  [4]string
	correct  string
}

// ScriptedGenerator は外部APIを使わずにトピック別の固定問題を順番に返す。
// 開発環境と APIキー未設定時に使う
type ScriptedGenerator struct {
	bank map[model.BossTopic][]scriptedQuestion
}

func NewScriptedGenerator() *ScriptedGenerator {
	return &ScriptedGenerator{bank: defaultQuestionBank}
}

func (g *ScriptedGenerator) Generate(ctx context.Context, messages []ChatMessage) (string, error) {
	logger := middleware.GetLogger(ctx)

	topic := detectTopic(messages)
	questions, ok := g.bank[topic]
	if !ok {
		questions = g.bank[model.TopicBudgeting]
	}

	asked := 0
	for _, m := range messages {
		if m.Role == model.RoleAssistant {
			asked++
		}
	}
	q := questions[asked%len(questions)]

	logger.Debug("Scripted question selected", "topic", topic, "index", asked%len(questions))

	var b strings.Builder
	fmt.Fprintf(&b, "QUESTION: %s\n", q.question)
	for i, opt := range q.options {
		fmt.Fprintf(&b, "%c) %s\n", 'A'+i, opt)
	}
	fmt.Fprintf(&b, "CORRECT_ANSWER: %s", q.correct)
	return b.String(), nil
}

// detectTopic はシステムプロンプトに埋め込まれたトピック名を探す
func detectTopic(messages []ChatMessage) model.BossTopic {
	for _, m := range messages {
		if m.Role != RoleSystem {
			continue
		}
		for topic := range defaultQuestionBank {
			if strings.Contains(m.Content, "knowledge about "+string(topic)) {
				return topic
			}
		}
	}
	return model.TopicBudgeting
}

var defaultQuestionBank = map[model.BossTopic][]scriptedQuestion{
	model.TopicBudgeting: {
		{"In the 50/30/20 rule, what share of income goes to needs?", [4]string{"20%", "30%", "50%", "70%"}, "C"},
		{"Which expense is usually fixed?", [4]string{"Rent", "Dining out", "Concert tickets", "Gifts"}, "A"},
		{"What is a zero-based budget?", [4]string{"Spending nothing", "Every dollar is assigned a job", "Budgeting only for zero-cost items", "Saving everything"}, "B"},
	},
	model.TopicInvesting: {
		{"What does diversification primarily reduce?", [4]string{"Taxes", "Fees", "Inflation", "Unsystematic risk"}, "D"},
		{"An index fund typically aims to...", [4]string{"Track a market index", "Beat the market every year", "Avoid all risk", "Pay fixed interest"}, "A"},
		{"Compound returns grow faster when...", [4]string{"Returns are withdrawn", "Returns are reinvested", "Fees are higher", "Holding periods are shorter"}, "B"},
	},
	model.TopicDebtManagement: {
		{"The avalanche method pays off which debt first?", [4]string{"Smallest balance", "Newest debt", "Highest interest rate", "Lowest interest rate"}, "C"},
		{"A debt-to-income ratio compares debt payments to...", [4]string{"Gross monthly income", "Net worth", "Savings", "Credit limit"}, "A"},
	},
	model.TopicSavings: {
		{"A common emergency fund target is...", [4]string{"1 week of expenses", "3 to 6 months of expenses", "10 years of expenses", "One paycheck"}, "B"},
		{"Paying yourself first means...", [4]string{"Buying treats first", "Paying bills late", "Saving before spending", "Investing only bonuses"}, "C"},
	},
	model.TopicTaxes: {
		{"A tax deduction reduces your...", [4]string{"Tax rate", "Refund", "Withholding", "Taxable income"}, "D"},
		{"A marginal tax rate applies to...", [4]string{"Your next dollar of income", "All of your income", "Only investment income", "Only sales tax"}, "A"},
	},
	model.TopicCryptocurrency: {
		{"What secures most public blockchains?", [4]string{"A central bank", "Cryptographic consensus", "Insurance", "Gold reserves"}, "B"},
		{"A private key should be...", [4]string{"Posted publicly", "Shared with support staff", "Kept secret", "Emailed to yourself"}, "C"},
	},
	model.TopicRetirement: {
		{"An employer 401(k) match is best described as...", [4]string{"A loan", "A tax", "A fee", "Free money for contributing"}, "D"},
		{"Starting retirement savings early mainly benefits from...", [4]string{"Compounding", "Inflation", "Higher fees", "Shorter horizons"}, "A"},
	},
	model.TopicCredit: {
		{"Which factor weighs most in a typical credit score?", [4]string{"Payment history", "Number of cards", "Income", "Age"}, "A"},
		{"Credit utilization is the ratio of...", [4]string{"Income to rent", "Balances to credit limits", "Loans to savings", "Cards to accounts"}, "B"},
	},
}
