package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bridge_sdk"

var (
	// TaskRuns counts effect runs that did work, by task.
	TaskRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_runs_total",
		Help:      "Number of initializer/synchronizer runs that started work.",
	}, []string{"task"})

	// TaskFailures counts effect runs that ended with an error, by task.
	TaskFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_failures_total",
		Help:      "Number of initializer/synchronizer runs that failed.",
	}, []string{"task"})

	// StaleResults counts initializer results dropped because a newer run had started.
	StaleResults = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_results_total",
		Help:      "Number of SDK instances discarded because a newer initialization started.",
	})

	// Publishes counts writes to the shared SDK state, by writer.
	Publishes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sdk_publishes_total",
		Help:      "Number of times the shared SDK state was replaced.",
	}, []string{"writer"})

	// SignerAdoptions counts ChangeSignerAddress calls per sub-client and outcome.
	SignerAdoptions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signer_adoptions_total",
		Help:      "Number of signer address adoption calls.",
	}, []string{"sub_client", "result"})

	// ConfiguredDomains is the number of domains in the latest client config.
	ConfiguredDomains = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "configured_domains",
		Help:      "Number of domains in the most recently built client config.",
	})

	// DirectoryFetches counts directory list loads by list and outcome.
	DirectoryFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_fetches_total",
		Help:      "Number of chain/asset directory loads.",
	}, []string{"list", "result"})
)

var registerOnce sync.Once

// MustRegisterMetrics registers all collectors with the default registry. Safe to call twice.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			TaskRuns,
			TaskFailures,
			StaleResults,
			Publishes,
			SignerAdoptions,
			ConfiguredDomains,
			DirectoryFetches,
		)
	})
}
