package script

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/autocommit-tools/setupcheck/internal/target"
)

var _ = Describe("PushesChanges", func() {
	var pushesChanges PushesChangesCheck

	Describe("Checking that the script pushes the commit", func() {
		Context("When the script contains a push command", func() {
			script := []byte("#!/bin/bash\ngit commit -m update\ngit push origin main\n")
			It("should pass Validate", func() {
				ok, err := pushesChanges.Validate(context.TODO(), target.Reference{Contents: script})
				Expect(err).ToNot(HaveOccurred())
				Expect(ok).To(BeTrue())
			})
		})
		Context("When the script commits but never pushes", func() {
			script := []byte("#!/bin/bash\ngit commit -m update\n")
			It("should not pass Validate", func() {
				ok, err := pushesChanges.Validate(context.TODO(), target.Reference{Contents: script})
				Expect(err).ToNot(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})
	})

	AssertMetaData(&pushesChanges)
})
