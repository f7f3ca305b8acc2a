package domain

// OutcomeStats aggregates recorded translation outcomes for one event name
// over a time window.
type OutcomeStats struct {
	EventName  string
	From       int64 // unix second
	To         int64 // unix second
	Total      int64
	Translated int64
	Rejected   int64

	GroupBy string // "", "reason", "time"
	Groups  []StatsGroup
}

type StatsGroup struct {
	Key        string // reason code, or an RFC3339 bucket start
	Total      int64
	Translated int64
	Rejected   int64
}
