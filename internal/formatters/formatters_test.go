package formatters

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/autocommit-tools/setupcheck/verification"
)

var _ = Describe("Formatters", func() {
	Describe("When getting the formatter for the named default format", func() {
		It("should never fail", func() {
			_, err := NewByName(DefaultFormat)
			Expect(err).ToNot(HaveOccurred())
		})
	})

	DescribeTable("When getting a predefined formatter by name",
		func(name string) {
			formatter, err := NewByName(name)
			Expect(err).ToNot(HaveOccurred())
			Expect(formatter).ToNot(BeNil())
		},
		Entry("summary", "summary"),
		Entry("json", "json"),
		Entry("xml", "xml"),
		Entry("yaml", "yaml"),
		Entry("junitxml", "junitxml"),
	)

	Describe("When an unknown format is requested by the user", func() {
		It("should return an error", func() {
			formatter, err := NewByName("unknownFormat")
			Expect(err).To(HaveOccurred())
			Expect(formatter).To(BeNil())
		})
	})

	Describe("When creating a new generic formatter", func() {
		Context("with improper arguments", func() {
			var fn FormatterFunc = func(context.Context, verification.Results) ([]byte, error) {
				return []byte{}, nil
			}

			emptyNameFormatter, err := New("", "txt", fn)
			It("should return an error because of an empty name", func() {
				Expect(err).To(HaveOccurred())
				Expect(emptyNameFormatter).To(BeNil())
			})
		})

		Context("with proper arguments", func() {
			expectedResult := []byte("this is a test")
			name := "testFormatter"
			extension := "txt"
			var fn FormatterFunc = func(context.Context, verification.Results) ([]byte, error) {
				return expectedResult, nil
			}

			formatter, err := New(name, extension, fn)
			It("should not return an error", func() {
				Expect(err).ToNot(HaveOccurred())
				Expect(formatter).ToNot(BeNil())
			})

			formattingResult, err := formatter.Format(context.TODO(), verification.Results{})
			It("should format results as expected", func() {
				Expect(err).ToNot(HaveOccurred())
				Expect(formattingResult).To(Equal(expectedResult))
			})

			It("should be identifiable as the provided name", func() {
				Expect(formatter.PrettyName()).To(Equal(name))
			})

			It("should report the provided file extension", func() {
				Expect(formatter.FileExtension()).To(Equal(extension))
			})
		})
	})
})
