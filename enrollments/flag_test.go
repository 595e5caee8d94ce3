package enrollments_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/careloop/assessment/enrollments"
)

var _ = Describe("FlagActive", func() {
	It("is total over the requested patient set", func() {
		flags := enrollments.FlagActive([]string{"alpha", "beta", "gamma"}, []string{"beta"})
		Expect(flags).To(HaveLen(3))
		Expect(flags["alpha"]).To(BeFalse())
		Expect(flags["beta"]).To(BeTrue())
		Expect(flags["gamma"]).To(BeFalse())
	})

	It("treats repeated matches as idempotent", func() {
		flags := enrollments.FlagActive([]string{"alpha"}, []string{"alpha", "alpha"})
		Expect(flags).To(Equal(map[string]bool{"alpha": true}))
	})

	It("ignores matches outside the requested set", func() {
		flags := enrollments.FlagActive([]string{"alpha"}, []string{"stranger"})
		Expect(flags).To(Equal(map[string]bool{"alpha": false}))
	})

	It("returns an empty mapping for an empty request set", func() {
		Expect(enrollments.FlagActive(nil, []string{"alpha"})).To(BeEmpty())
	})
})
