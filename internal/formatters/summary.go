package formatters

import (
	"context"
	"fmt"
	"strings"

	"github.com/autocommit-tools/setupcheck/verification"
)

const (
	passedBanner = "SETUP VERIFICATION PASSED"
	failedBanner = "SETUP VERIFICATION FAILED"
)

// summaryFormatter is a FormatterFunc rendering the human-readable report:
// one line per executed check, the passed/total tally with a one-decimal
// success rate, and a final pass/fail banner.
func summaryFormatter(ctx context.Context, r verification.Results) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("Setup Verification Report\n")
	if r.TestedScript != "" {
		fmt.Fprintf(&sb, "script:   %s\n", r.TestedScript)
	}
	if r.TestedWorkflow != "" {
		fmt.Fprintf(&sb, "workflow: %s\n", r.TestedWorkflow)
	}
	sb.WriteString("\n")

	for _, result := range r.Passed {
		fmt.Fprintf(&sb, "PASSED  %s\n", result.Name())
	}
	for _, result := range r.Failed {
		fmt.Fprintf(&sb, "FAILED  %s\n", result.Name())
		if suggestion := result.Help().Suggestion; suggestion != "" {
			fmt.Fprintf(&sb, "        suggestion: %s\n", suggestion)
		}
	}
	for _, result := range r.Errors {
		if err := result.Error(); err != nil {
			fmt.Fprintf(&sb, "ERROR   %s: %s\n", result.Name(), err.Error())
			continue
		}
		fmt.Fprintf(&sb, "ERROR   %s\n", result.Name())
	}

	fmt.Fprintf(&sb, "\n%d/%d checks passed (%.1f%%)\n", r.PassedCount(), r.TotalCount(), r.SuccessRate())

	if r.PassedOverall {
		sb.WriteString(passedBanner + "\n")
	} else {
		sb.WriteString(failedBanner + "\n")
	}

	return []byte(sb.String()), nil
}
