package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/DailyPoll_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Poll Metrics
var (
	VotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVotesTotal,
			Help: HelpTextVotesTotal,
		},
		[]string{LabelOutcome},
	)

	ScoringRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScoringRuns,
			Help: HelpTextScoringRuns,
		},
		[]string{LabelOutcome},
	)

	GradingVotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGradingVotes,
			Help: HelpTextGradingVotes,
		},
		[]string{LabelResult},
	)

	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameScoringDuration,
			Help:    HelpTextScoringDuration,
			Buckets: ScoringDurationBuckets,
		},
	)

	StreakLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameStreakLength,
			Help:    HelpTextStreakLength,
			Buckets: StreakLengthBuckets,
		},
	)
)

// VoteOutcome maps a SubmitVote error to its outcome label
func VoteOutcome(err error) string {
	switch {
	case err == nil:
		return VoteOutcomeAccepted
	case errors.Is(err, domain.ErrDuplicateVote):
		return VoteOutcomeDuplicate
	case errors.Is(err, domain.ErrVotingClosed):
		return VoteOutcomeClosed
	case errors.Is(err, domain.ErrInvalidOption), errors.Is(err, domain.ErrInvalidInput):
		return VoteOutcomeInvalid
	case errors.Is(err, domain.ErrProfileIncomplete):
		return VoteOutcomeIncomplete
	default:
		return VoteOutcomeError
	}
}

// ScoringOutcome maps a Score error to its outcome label
func ScoringOutcome(err error) string {
	switch {
	case err == nil:
		return ScoringOutcomeScored
	case errors.Is(err, domain.ErrPartialGrading):
		return ScoringOutcomePartial
	case errors.Is(err, domain.ErrAlreadyScored):
		return ScoringOutcomeAlreadyScored
	case errors.Is(err, domain.ErrQuestionNotFound):
		return ScoringOutcomeNotFound
	case errors.Is(err, domain.ErrNoVotesRecorded):
		return ScoringOutcomeNoVotes
	default:
		return ScoringOutcomeError
	}
}

// RecordVote increments the vote counter for the outcome of err
func RecordVote(err error) {
	VotesTotal.WithLabelValues(VoteOutcome(err)).Inc()
}

// RecordScoringRun records the outcome and duration of one scoring run
func RecordScoringRun(err error, seconds float64) {
	ScoringRuns.WithLabelValues(ScoringOutcome(err)).Inc()
	ScoringDuration.Observe(seconds)
}
