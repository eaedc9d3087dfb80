// Package metrics はボスバトルエンジンの Prometheus コレクタをまとめる
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "finlit"

// 質問生成の結果ラベル
const (
	GenerationOK     = "ok"
	GenerationRetry  = "retry"
	GenerationFailed = "failed"
)

type BattleMetrics struct {
	BattlesStarted     *prometheus.CounterVec
	QuestionsGenerated *prometheus.CounterVec
	AnswersGraded      *prometheus.CounterVec
	BattlesConcluded   *prometheus.CounterVec
	XPAwarded          prometheus.Counter
}

func NewBattleMetrics() *BattleMetrics {
	return &BattleMetrics{
		BattlesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boss_battles_started_total",
			Help:      "Total number of newly created boss battle sessions",
		}, []string{"topic"}),
		QuestionsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boss_questions_generated_total",
			Help:      "Question generation attempts by outcome",
		}, []string{"outcome"}),
		AnswersGraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boss_answers_graded_total",
			Help:      "Graded answers by result",
		}, []string{"result"}),
		BattlesConcluded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boss_battles_concluded_total",
			Help:      "Concluded boss battles by final status",
		}, []string{"status"}),
		XPAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boss_xp_awarded_total",
			Help:      "Experience points credited for first-time boss defeats",
		}),
	}
}

// NewRegistry は Go ランタイム/プロセスのコレクタとバトル用コレクタを登録したレジストリを返す
func NewRegistry(m *BattleMetrics) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.BattlesStarted,
		m.QuestionsGenerated,
		m.AnswersGraded,
		m.BattlesConcluded,
		m.XPAwarded,
	)
	return registry
}

func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
