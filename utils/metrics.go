package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Domain metrics
	NoteOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "note_operations_total",
			Help: "Total number of note operations",
		},
		[]string{"operation"},
	)

	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Total number of registered accounts",
		},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)

	TrashPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trash_notes_purged_total",
			Help: "Total number of trashed notes permanently removed by retention",
		},
	)

	TrashPurgeRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trash_purge_runs_total",
			Help: "Retention purge runs by outcome",
		},
		[]string{"result"},
	)

	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_errors_total",
			Help: "Application errors by component and kind",
		},
		[]string{"component", "kind"},
	)
)

// TrackDBOperation starts a timer for a database operation; callers defer
// ObserveDuration on the returned timer.
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

func TrackNoteOperation(operation string) {
	NoteOperationsTotal.WithLabelValues(operation).Inc()
}

func TrackRegistration() {
	RegistrationsTotal.Inc()
}

func TrackLogin(result string) {
	LoginsTotal.WithLabelValues(result).Inc()
}

func TrackTrashPurge(deleted int64, err error) {
	if err != nil {
		TrashPurgeRuns.WithLabelValues("error").Inc()
		return
	}
	TrashPurgeRuns.WithLabelValues("success").Inc()
	TrashPurgedTotal.Add(float64(deleted))
}

func TrackError(component, kind string) {
	ErrorsTotal.WithLabelValues(component, kind).Inc()
}
