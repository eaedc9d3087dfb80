package graph

// Schema はボスバトル機能の GraphQL スキーマ
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	bossBattles: [BossBattle!]!
	bossBattle(id: ID!): BossBattle!
	userActiveBattle: UserBossBattle
	userBossAchievements: [BossAchievement!]!
	myProgress: UserProgress!
}

type Mutation {
	startBossBattle(bossId: ID!): UserBossBattle!
	askBossQuestion(userBattleId: ID!, message: String!): BossQuestionResult!
	submitBossAnswer(userBattleId: ID!, answer: String!): BossAnswerResult!
}

enum BossTopic {
	BUDGETING
	INVESTING
	DEBT_MANAGEMENT
	SAVINGS
	TAXES
	CRYPTOCURRENCY
	RETIREMENT
	CREDIT
}

enum BossDifficulty {
	EASY
	MEDIUM
	HARD
}

enum BattleStatus {
	IN_PROGRESS
	VICTORY
	DEFEAT
}

type BossBattle {
	id: ID!
	name: String!
	title: String!
	description: String!
	topic: BossTopic!
	difficulty: BossDifficulty!
	maxHealth: Int!
	damagePerCorrect: Int!
	totalQuestions: Int!
	rewardPoints: Int!
	avatarUrl: String!
	personality: String!
}

type ConversationMessage {
	role: String!
	content: String!
}

type UserBossBattle {
	id: ID!
	bossId: ID!
	boss: BossBattle
	currentHealth: Int!
	questionsAsked: Int!
	questionsCorrect: Int!
	status: BattleStatus!
	conversationHistory: [ConversationMessage!]!
	startedAt: String!
	completedAt: String
}

type BossQuestionResult {
	userBattleId: ID!
	bossResponse: String!
	currentHealth: Int!
	questionsAsked: Int!
	totalQuestions: Int!
}

type BossAnswerResult {
	isCorrect: Boolean!
	correctAnswer: String!
	newHealth: Int!
	damage: Int!
	questionsCorrect: Int!
	questionsAsked: Int!
	status: BattleStatus!
	isDefeated: Boolean!
	rewardPoints: Int!
	xpAwarded: Int!
}

type BossAchievement {
	bossId: ID!
	bossName: String!
	bossTitle: String!
	avatarUrl: String!
	defeatedAt: String!
	finalScore: Int!
	timeTaken: Int!
	rewardPoints: Int!
}

type UserProgress {
	experiencePoints: Int!
}
`
