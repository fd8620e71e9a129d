package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Poll metric names
const (
	MetricNameVotesTotal      = "dailypoll_votes_total"
	MetricNameScoringRuns     = "dailypoll_scoring_runs_total"
	MetricNameGradingVotes    = "dailypoll_grading_votes_total"
	MetricNameScoringDuration = "dailypoll_scoring_duration_seconds"
	MetricNameStreakLength    = "dailypoll_vote_streak_length"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Poll metric help text
const (
	HelpTextVotesTotal      = "Vote submissions by outcome"
	HelpTextScoringRuns     = "Scoring runs by outcome"
	HelpTextGradingVotes    = "Votes processed by the grader by result"
	HelpTextScoringDuration = "Duration of a scoring run in seconds"
	HelpTextStreakLength    = "Voter streak length right after an accepted vote"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// ============================================================================
// Label Values
// ============================================================================

// Vote outcomes
const (
	VoteOutcomeAccepted   = "accepted"
	VoteOutcomeDuplicate  = "duplicate"
	VoteOutcomeClosed     = "closed"
	VoteOutcomeInvalid    = "invalid"
	VoteOutcomeIncomplete = "profile_incomplete"
	VoteOutcomeError      = "error"
)

// Scoring outcomes
const (
	ScoringOutcomeScored        = "scored"
	ScoringOutcomeAlreadyScored = "already_scored"
	ScoringOutcomeNotFound      = "not_found"
	ScoringOutcomeNoVotes       = "no_votes"
	ScoringOutcomePartial       = "partial"
	ScoringOutcomeError         = "error"
)

// Grading results
const (
	GradingResultCorrect   = "correct"
	GradingResultIncorrect = "incorrect"
	GradingResultUngraded  = "ungraded"
)

// UnmatchedRoute labels requests that did not match a registered route
const UnmatchedRoute = "unmatched"

// OtherMethod labels requests with a non-standard HTTP method
const OtherMethod = "OTHER"

// ScrapePath is where promhttp is mounted
const ScrapePath = "/metrics"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ScoringDurationBuckets covers scoring runs from 10ms to two minutes
var ScoringDurationBuckets = []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 120}

// StreakLengthBuckets spans a first vote up to a year of daily votes
var StreakLengthBuckets = []float64{1, 2, 3, 5, 7, 14, 30, 60, 100, 365}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnknown = "Event payload has unexpected shape"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
