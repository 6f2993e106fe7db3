package cli

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/autocommit-tools/setupcheck/artifacts"
	"github.com/autocommit-tools/setupcheck/internal/check"
	"github.com/autocommit-tools/setupcheck/internal/formatters"
	"github.com/autocommit-tools/setupcheck/verification"
)

var _ = Describe("CLI Library function", func() {
	passingRun := func(ctx context.Context) (verification.Results, error) {
		return verification.Results{
			TestedScript:  "scripts/auto-commit.sh",
			PassedOverall: true,
			Passed: []verification.Result{
				{
					Check:       check.NewGenericCheck("testCheck", nil, check.Metadata{}, check.HelpText{}),
					ElapsedTime: 1,
				},
			},
		}, nil
	}

	When("invoking setupcheck using the CLI library", func() {
		Context("without passing in an artifact writer", func() {
			It("should throw an error", func() {
				_, err := RunVerification(context.TODO(), passingRun, CheckConfig{}, nil, nil)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("no artifact writer"))
			})
		})

		Context("with a preconfigured artifact writer", func() {
			var testcontext context.Context
			var artifactWriter *artifacts.MapWriter
			var testFormatter formatters.ResponseFormatter

			BeforeEach(func() {
				var err error
				artifactWriter, err = artifacts.NewMapWriter()
				Expect(err).ToNot(HaveOccurred())
				testcontext = artifacts.ContextWithWriter(context.Background(), artifactWriter)

				testFormatter, err = formatters.NewByName(formatters.DefaultFormat)
				Expect(err).ToNot(HaveOccurred())
			})

			It("should fail if the artifact writer cannot write the results file", func() {
				// Prewrite the expected result file to cause a conflict.
				_, err := artifactWriter.WriteFile(
					ResultsFilenameWithExtension(testFormatter.FileExtension()),
					strings.NewReader("written for cli test case."))
				Expect(err).ToNot(HaveOccurred())

				_, err = RunVerification(testcontext, passingRun, CheckConfig{}, testFormatter, &bufferResultWriter{})
				Expect(err).To(HaveOccurred())
			})

			It("should fail if the result writer cannot open the results file", func() {
				_, err := RunVerification(testcontext, passingRun, CheckConfig{}, testFormatter, &badResultWriter{errmsg: "cannot open"})
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("cannot open"))
			})

			It("should return an error if check execution encounters an error", func() {
				_, err := RunVerification(testcontext, func(ctx context.Context) (verification.Results, error) {
					return verification.Results{}, errors.New("some error")
				}, CheckConfig{}, testFormatter, &bufferResultWriter{})
				Expect(err).To(HaveOccurred())
			})

			It("should throw an error writing formatted results if the formatter returns an error", func() {
				var err error
				testFormatter, err = formatters.New("test", "test", func(ctx context.Context, r verification.Results) ([]byte, error) {
					return []byte{}, errors.New("unable to format")
				})
				Expect(err).ToNot(HaveOccurred())

				_, err = RunVerification(testcontext, passingRun, CheckConfig{}, testFormatter, &bufferResultWriter{})
				Expect(err).To(HaveOccurred())
			})

			It("should write the formatted results and return them to the caller", func() {
				rw := &bufferResultWriter{}
				results, err := RunVerification(testcontext, passingRun, CheckConfig{}, testFormatter, rw)
				Expect(err).ToNot(HaveOccurred())
				Expect(results.PassedOverall).To(BeTrue())
				Expect(rw.buf.String()).To(ContainSubstring("testCheck"))
				Expect(artifactWriter.Files()).To(HaveKey("results.txt"))
			})

			When("JUnit results are requested", func() {
				It("should write the junit results as an artifact", func() {
					c := CheckConfig{
						IncludeJUnitResults: true,
					}

					_, err := RunVerification(testcontext, passingRun, c, testFormatter, &bufferResultWriter{})
					Expect(err).ToNot(HaveOccurred())
					Expect(artifactWriter.Files()).To(HaveKey("results-junit.xml"))
				})

				It("should return an error if the junit artifact cannot be written", func() {
					// Simulate this failure by causing a conflict writing the results-junit.xml file.
					c := CheckConfig{
						IncludeJUnitResults: true,
					}

					_, err := artifactWriter.WriteFile("results-junit.xml", strings.NewReader("conflicting junit contents for testing"))
					Expect(err).ToNot(HaveOccurred())

					_, err = RunVerification(testcontext, passingRun, c, testFormatter, &bufferResultWriter{})
					Expect(err).To(HaveOccurred())
				})
			})
		})
	})

	DescribeTable("Determine filename to which to write test results",
		func(extension, expected string) {
			actual := ResultsFilenameWithExtension(extension)
			Expect(actual).To(Equal(expected))
		},
		Entry("with an extension of txt", "txt", "results.txt"),
		Entry("with an extension of json", "json", "results.json"),
	)
})
