package workflow

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/autocommit-tools/setupcheck/internal/target"
)

var _ = Describe("HasScheduleTrigger", func() {
	var hasScheduleTrigger HasScheduleTriggerCheck

	Describe("Checking that the workflow declares a schedule trigger", func() {
		Context("When the workflow has a schedule block", func() {
			It("should pass Validate", func() {
				ok, err := hasScheduleTrigger.Validate(context.TODO(), target.Reference{Contents: goodWorkflow})
				Expect(err).ToNot(HaveOccurred())
				Expect(ok).To(BeTrue())
			})
		})
		Context("When the workflow only triggers on push", func() {
			wf := []byte("name: Auto Commit\non:\n  push:\n")
			It("should not pass Validate", func() {
				ok, err := hasScheduleTrigger.Validate(context.TODO(), target.Reference{Contents: wf})
				Expect(err).ToNot(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})
	})

	AssertMetaData(&hasScheduleTrigger)
})
