package verification

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/autocommit-tools/setupcheck/internal/check"
)

func namedResults(prefix string, count int) []Result {
	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		results = append(results, Result{
			Check: check.NewGenericCheck(fmt.Sprintf("%s%d", prefix, i), nil, check.Metadata{}, check.HelpText{}),
		})
	}
	return results
}

var _ = Describe("Results", func() {
	Describe("Counting executed checks", func() {
		Context("with results in every bucket", func() {
			results := Results{
				Passed: namedResults("passed", 8),
				Failed: namedResults("failed", 1),
				Errors: namedResults("errored", 1),
			}

			It("should count only passed checks as passed", func() {
				Expect(results.PassedCount()).To(Equal(8))
			})
			It("should count every executed check in the total", func() {
				Expect(results.TotalCount()).To(Equal(10))
			})
			It("should render an 80.0% success rate", func() {
				Expect(fmt.Sprintf("%.1f%%", results.SuccessRate())).To(Equal("80.0%"))
			})
		})

		Context("with no executed checks", func() {
			It("should report a zero success rate rather than dividing by zero", func() {
				Expect(Results{}.SuccessRate()).To(BeZero())
			})
		})
	})

	Describe("Attaching errors to a result", func() {
		It("should surface the error through Error()", func() {
			boom := errors.New("boom")
			r := Result{Check: check.NewGenericCheck("errored", nil, check.Metadata{}, check.HelpText{})}
			Expect(r.WithError(boom).Error()).To(MatchError(boom))
		})
	})

	Describe("Merging result sets", func() {
		scriptResults := Results{
			TestedScript:  "scripts/auto-commit.sh",
			PassedOverall: true,
			Passed:        namedResults("script", 6),
		}
		workflowResults := Results{
			TestedWorkflow: ".github/workflows/auto-commit.yml",
			PassedOverall:  false,
			Passed:         namedResults("workflow", 5),
			Failed:         namedResults("workflowFailed", 1),
		}

		It("should preserve the order in which results were produced", func() {
			merged := Merge(scriptResults, workflowResults)
			Expect(merged.Passed).To(HaveLen(11))
			Expect(merged.Passed[0].Name()).To(Equal("script0"))
			Expect(merged.Passed[6].Name()).To(Equal("workflow0"))
		})

		It("should carry both target paths", func() {
			merged := Merge(scriptResults, workflowResults)
			Expect(merged.TestedScript).To(Equal("scripts/auto-commit.sh"))
			Expect(merged.TestedWorkflow).To(Equal(".github/workflows/auto-commit.yml"))
		})

		It("should fail overall when any input failed", func() {
			Expect(Merge(scriptResults, workflowResults).PassedOverall).To(BeFalse())
		})

		It("should pass overall when every input passed", func() {
			passingWorkflow := workflowResults
			passingWorkflow.PassedOverall = true
			passingWorkflow.Failed = nil
			Expect(Merge(scriptResults, passingWorkflow).PassedOverall).To(BeTrue())
		})
	})
})
