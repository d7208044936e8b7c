package model

// Status represents the health state of a check or a group of checks.
type Status string

const (
	StatusUp           Status = "UP"
	StatusUnknown      Status = "UNKNOWN"
	StatusOutOfService Status = "OUT_OF_SERVICE"
	StatusDown         Status = "DOWN"
)

// severity orders statuses from best to worst. A combined status is always
// the worst status among its members, so DOWN beats OUT_OF_SERVICE beats
// UNKNOWN beats UP. Statuses outside the known set rank as UNKNOWN.
var severity = map[Status]int{
	StatusUp:           0,
	StatusUnknown:      1,
	StatusOutOfService: 2,
	StatusDown:         3,
}

// Severity returns the ordering rank of the status.
func (s Status) Severity() int {
	if rank, ok := severity[s]; ok {
		return rank
	}
	return severity[StatusUnknown]
}

// AggregateStatus combines individual statuses into a single status by
// taking the maximum severity. The empty set aggregates to UP, so a group
// with no members reports healthy (the liveness-probe case).
//
// The result does not depend on argument order, which is what allows
// checks to be evaluated concurrently.
func AggregateStatus(statuses ...Status) Status {
	combined := StatusUp
	for _, s := range statuses {
		if s.Severity() > combined.Severity() {
			combined = s
		}
	}
	return combined
}

// AggregateResults combines check results into a single status.
func AggregateResults(results []CheckResult) Status {
	combined := StatusUp
	for _, r := range results {
		if r.Status.Severity() > combined.Severity() {
			combined = r.Status
		}
	}
	return combined
}
