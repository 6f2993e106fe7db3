package viper

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Package-level Viper Instance", func() {
	When("Requesting the instance", func() {
		It("Should lazy-load an instance", func() {
			Expect(Instance()).ToNot(BeNil())
		})
		It("Should return the same instance on subsequent calls", func() {
			v := Instance()
			v.Set("testkey", "testvalue")
			Expect(Instance().GetString("testkey")).To(Equal("testvalue"))
		})
	})
})
