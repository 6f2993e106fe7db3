package log

import (
	"bytes"
	"errors"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Buffer Sink", func() {
	var buf bytes.Buffer
	var logger logr.Logger

	BeforeEach(func() {
		buf = bytes.Buffer{}
		logger = logr.New(NewBufferSink(&buf))
	})

	When("Logging through the sink", func() {
		It("Should collect info lines in the buffer", func() {
			logger.Info("a message", "key", "value")
			Expect(buf.String()).To(ContainSubstring("a message"))
			Expect(buf.String()).To(ContainSubstring("value"))
		})
		It("Should collect error lines in the buffer", func() {
			logger.Error(errors.New("boom"), "it failed")
			Expect(buf.String()).To(ContainSubstring("boom"))
			Expect(buf.String()).To(ContainSubstring("it failed"))
		})
		It("Should include the logger name once named", func() {
			logger.WithName("named").Info("a message")
			Expect(buf.String()).To(ContainSubstring("named"))
		})
		It("Should remain enabled at high verbosity", func() {
			logger.V(TRC).Info("trace message")
			Expect(buf.String()).To(ContainSubstring("trace message"))
		})
	})
})
