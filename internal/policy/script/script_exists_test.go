package script

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/autocommit-tools/setupcheck/internal/target"
)

var _ = Describe("ScriptExists", func() {
	var scriptExists ScriptExistsCheck
	var fs afero.Fs

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
	})

	Describe("Checking that the script file is present", func() {
		Context("When the file exists at the configured path", func() {
			BeforeEach(func() {
				err := afero.WriteFile(fs, "scripts/auto-commit.sh", []byte("#!/bin/bash\n"), 0o644)
				Expect(err).ToNot(HaveOccurred())
			})
			It("should pass Validate", func() {
				ok, err := scriptExists.Validate(context.TODO(), target.Reference{Path: "scripts/auto-commit.sh", FS: fs})
				Expect(err).ToNot(HaveOccurred())
				Expect(ok).To(BeTrue())
			})
		})
		Context("When no file exists at the configured path", func() {
			It("should not pass Validate", func() {
				ok, err := scriptExists.Validate(context.TODO(), target.Reference{Path: "scripts/auto-commit.sh", FS: fs})
				Expect(err).ToNot(HaveOccurred())
				Expect(ok).To(BeFalse())
			})
		})
	})

	Describe("Checking that the check gates the battery", func() {
		It("should be gating", func() {
			Expect(scriptExists.Gating()).To(BeTrue())
		})
	})

	AssertMetaData(&scriptExists)
})
