package verification

import (
	"time"

	"github.com/autocommit-tools/setupcheck/internal/check"
)

type Result struct {
	check.Check
	ElapsedTime time.Duration
	// Err contains the error a check itself throws if it failed to run.
	// If populated, the expectation is that this Result is in the
	// Results{}.Errors slice.
	err error
}

type Results struct {
	TestedScript   string
	TestedWorkflow string
	PassedOverall  bool
	Passed         []Result
	Failed         []Result
	Errors         []Result
}

func (r Result) Error() error {
	return r.err
}

func (r *Result) WithError(err error) *Result {
	r.err = err
	return r
}

// PassedCount is the number of checks that passed.
func (r Results) PassedCount() int {
	return len(r.Passed)
}

// TotalCount is the number of checks that actually executed. Checks skipped
// behind a failed gate are never recorded and therefore never counted.
func (r Results) TotalCount() int {
	return len(r.Passed) + len(r.Failed) + len(r.Errors)
}

// SuccessRate is the percentage of executed checks that passed.
func (r Results) SuccessRate() float64 {
	total := r.TotalCount()
	if total == 0 {
		return 0
	}

	return float64(r.PassedCount()) * 100 / float64(total)
}

// Merge combines multiple result sets into one, preserving the order in
// which they were produced. The merged set passes overall only if every
// input set did.
func Merge(results ...Results) Results {
	merged := Results{PassedOverall: true}
	for _, r := range results {
		merged.Passed = append(merged.Passed, r.Passed...)
		merged.Failed = append(merged.Failed, r.Failed...)
		merged.Errors = append(merged.Errors, r.Errors...)
		merged.PassedOverall = merged.PassedOverall && r.PassedOverall

		if r.TestedScript != "" {
			merged.TestedScript = r.TestedScript
		}
		if r.TestedWorkflow != "" {
			merged.TestedWorkflow = r.TestedWorkflow
		}
	}

	return merged
}
