package formatters

import (
	"context"
	"encoding/xml"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/verification"
)

var _ = Describe("JUnitXML Formatter", func() {
	Context("With a valid set of results", func() {
		var response verification.Results
		BeforeEach(func() {
			meta := check.Metadata{
				Description:      "description",
				KnowledgeBaseURL: "kburl",
				CheckURL:         "checkurl",
			}
			help := check.HelpText{
				Message:    "helptext",
				Suggestion: "suggestion",
			}

			erroredResult := verification.Result{
				Check:       check.NewGenericCheck("ErroredCheck", nil, meta, help),
				ElapsedTime: 0,
			}
			erroredResult.WithError(errors.New("errored check failure"))

			response = verification.Results{
				TestedScript:  "scripts/auto-commit.sh",
				PassedOverall: false,
				Passed: []verification.Result{
					{
						Check:       check.NewGenericCheck("PassedCheck", nil, meta, help),
						ElapsedTime: 0,
					},
				},
				Failed: []verification.Result{
					{
						Check:       check.NewGenericCheck("FailedCheck", nil, meta, help),
						ElapsedTime: 0,
					},
				},
				Errors: []verification.Result{erroredResult},
			}
		})

		It("should format without error", func() {
			out, err := junitXMLFormatter(context.TODO(), response)
			Expect(err).ToNot(HaveOccurred())

			var suites JUnitTestSuites
			Expect(xml.Unmarshal(out, &suites)).To(Succeed())
			Expect(suites.Suites).To(HaveLen(1))
			Expect(suites.Suites[0].Tests).To(Equal(3))
			Expect(suites.Suites[0].Failures).To(Equal(2))
			Expect(suites.Suites[0].TestCases).To(HaveLen(3))
		})

		It("should classify every test case by the tested file", func() {
			out, err := junitXMLFormatter(context.TODO(), response)
			Expect(err).ToNot(HaveOccurred())

			var suites JUnitTestSuites
			Expect(xml.Unmarshal(out, &suites)).To(Succeed())
			for _, tc := range suites.Suites[0].TestCases {
				Expect(tc.Classname).To(Equal("scripts/auto-commit.sh"))
			}
		})

		It("should carry the check error text in the failure contents", func() {
			out, err := junitXMLFormatter(context.TODO(), response)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(out)).To(ContainSubstring("errored check failure"))
		})

		Context("only a workflow was tested", func() {
			It("should fall back to the workflow path for the classname", func() {
				response.TestedScript = ""
				response.TestedWorkflow = ".github/workflows/auto-commit.yml"

				out, err := junitXMLFormatter(context.TODO(), response)
				Expect(err).ToNot(HaveOccurred())

				var suites JUnitTestSuites
				Expect(xml.Unmarshal(out, &suites)).To(Succeed())
				Expect(suites.Suites[0].TestCases[0].Classname).To(Equal(".github/workflows/auto-commit.yml"))
			})
		})
	})

	Context("When XML marshaling fails", func() {
		It("should return an error", func() {
			xmlMarshalIndent = func(v any, prefix, indent string) ([]byte, error) {
				return nil, errors.New("this is an error")
			}
			DeferCleanup(func() { xmlMarshalIndent = xml.MarshalIndent })

			_, err := junitXMLFormatter(context.TODO(), verification.Results{})
			Expect(err).To(HaveOccurred())
		})
	})
})
