// Package seed はボス定義の初期データを投入する
package seed

import (
	"context"
	"errors"
	"fmt"

	"finlit_academy/internal/middleware"
	"finlit_academy/internal/model"

	"gorm.io/gorm"
)

// Bosses は投入する8体のボス定義
var Bosses = []model.Boss{
	{
		Name:             "Budget Dragon",
		Title:            "Guardian of Spending Discipline",
		Description:      "A fierce dragon who hoards knowledge about budgeting and expense tracking. Defeat them to master the art of budget management!",
		Topic:            model.TopicBudgeting,
		Difficulty:       model.DifficultyEasy,
		MaxHealth:        100,
		DamagePerCorrect: 20,
		TotalQuestions:   5,
		RewardPoints:     300,
		AvatarURL:        "🐉",
		Personality:      "Wise and patient, but strict about financial discipline. Loves to test knowledge with practical budgeting scenarios.",
	},
	{
		Name:             "Investment Wizard",
		Title:            "Master of Market Magic",
		Description:      "A mystical wizard who sees the future of markets. Prove your investment knowledge to unlock their ancient secrets!",
		Topic:            model.TopicInvesting,
		Difficulty:       model.DifficultyMedium,
		MaxHealth:        150,
		DamagePerCorrect: 30,
		TotalQuestions:   5,
		RewardPoints:     500,
		AvatarURL:        "🧙‍♂️",
		Personality:      "Cryptic and mysterious, speaks in market metaphors. Tests deep understanding of stocks, bonds, and portfolio management.",
	},
	{
		Name:             "Debt Demon",
		Title:            "Crusher of Credit Scores",
		Description:      "An evil demon that feeds on debt and poor credit decisions. Banish them by mastering debt management strategies!",
		Topic:            model.TopicDebtManagement,
		Difficulty:       model.DifficultyHard,
		MaxHealth:        200,
		DamagePerCorrect: 40,
		TotalQuestions:   5,
		RewardPoints:     750,
		AvatarURL:        "👹",
		Personality:      "Aggressive and challenging, tries to trick users into bad financial decisions. Tests advanced debt payoff strategies.",
	},
	{
		Name:             "Savings Sorcerer",
		Title:            "Keeper of Emergency Funds",
		Description:      "A benevolent sorcerer who guards the secrets of building wealth through savings. Learn from their wisdom!",
		Topic:            model.TopicSavings,
		Difficulty:       model.DifficultyEasy,
		MaxHealth:        100,
		DamagePerCorrect: 20,
		TotalQuestions:   5,
		RewardPoints:     300,
		AvatarURL:        "🧙‍♀️",
		Personality:      "Encouraging and supportive, teaches the importance of emergency funds and long-term savings strategies.",
	},
	{
		Name:             "Tax Titan",
		Title:            "Lord of Deductions",
		Description:      "A massive titan who knows every tax law and deduction. Defeat them to become a tax strategy expert!",
		Topic:            model.TopicTaxes,
		Difficulty:       model.DifficultyHard,
		MaxHealth:        200,
		DamagePerCorrect: 40,
		TotalQuestions:   5,
		RewardPoints:     800,
		AvatarURL:        "⚡",
		Personality:      "Formal and precise, speaks in tax code. Tests knowledge of deductions, credits, and tax-efficient strategies.",
	},
	{
		Name:             "Crypto Knight",
		Title:            "Protector of the Blockchain",
		Description:      "A futuristic knight wielding the power of cryptocurrency. Master blockchain basics to claim victory!",
		Topic:            model.TopicCryptocurrency,
		Difficulty:       model.DifficultyMedium,
		MaxHealth:        150,
		DamagePerCorrect: 30,
		TotalQuestions:   5,
		RewardPoints:     600,
		AvatarURL:        "🤖",
		Personality:      "Tech-savvy and modern, speaks about DeFi and blockchain. Tests understanding of crypto fundamentals and risks.",
	},
	{
		Name:             "Retirement Reaper",
		Title:            "Harbinger of Future Planning",
		Description:      "A mysterious reaper who controls time and retirement futures. Prove your long-term planning skills!",
		Topic:            model.TopicRetirement,
		Difficulty:       model.DifficultyMedium,
		MaxHealth:        150,
		DamagePerCorrect: 30,
		TotalQuestions:   5,
		RewardPoints:     550,
		AvatarURL:        "💀",
		Personality:      "Philosophical and forward-thinking, emphasizes compound interest and 401k strategies.",
	},
	{
		Name:             "Credit Card Chaos",
		Title:            "Emperor of Interest Rates",
		Description:      "A chaotic entity born from credit card debt. Defeat them by mastering credit card management!",
		Topic:            model.TopicCredit,
		Difficulty:       model.DifficultyEasy,
		MaxHealth:        100,
		DamagePerCorrect: 20,
		TotalQuestions:   5,
		RewardPoints:     350,
		AvatarURL:        "💳",
		Personality:      "Fast-paced and tricky, tries to confuse with APR calculations. Tests credit score knowledge and responsible usage.",
	},
}

// SeedBosses は名前が未登録のボスだけを作成する。何度実行しても結果は同じ。
// 既存の対戦履歴や撃破記録には触れない
func SeedBosses(ctx context.Context, db *gorm.DB) (int, error) {
	logger := middleware.GetLogger(ctx)
	created := 0

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, def := range Bosses {
			var existing model.Boss
			err := tx.Where("name = ?", def.Name).First(&existing).Error
			if err == nil {
				logger.Debug("Boss already exists, skipping", "boss_id", existing.ID, "name", existing.Name)
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("seed boss %q: %w", def.Name, err)
			}

			boss := def
			if err := tx.Create(&boss).Error; err != nil {
				return fmt.Errorf("seed boss %q: %w", def.Name, err)
			}
			created++
			logger.Info("Boss created", "boss_id", boss.ID, "name", boss.Name)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
