package assessments_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/careloop/assessment/assessments"
	observationsTest "github.com/careloop/assessment/observations/test"
)

var _ = Describe("Classify", func() {
	It("returns NoData without a value when there is no observation", func() {
		result := assessments.Classify("alpha", nil, false)
		Expect(result.PatientId).To(Equal("alpha"))
		Expect(result.RiskCategory).To(Equal(assessments.RiskNoData))
		Expect(result.HbA1cValue).To(BeNil())
		Expect(result.Error).To(BeNil())
	})

	It("treats the band boundaries as inclusive lower bounds", func() {
		now := time.Now()
		expectations := map[string]assessments.RiskCategory{
			"6.99": assessments.RiskWellControlled,
			"7.0":  assessments.RiskNeedsAttention,
			"8.99": assessments.RiskNeedsAttention,
			"9.0":  assessments.RiskHighRisk,
		}

		for value, category := range expectations {
			observation := observationsTest.QuantityObservation("alpha", value, now)
			result := assessments.Classify("alpha", &observation, false)
			Expect(result.RiskCategory).To(Equal(category), "value %s", value)
			Expect(result.HbA1cValue).ToNot(BeNil())
			Expect(result.Error).To(BeNil())
		}
	})

	It("passes the enrollment flag through unchanged", func() {
		result := assessments.Classify("alpha", nil, true)
		Expect(result.InProgram).To(BeTrue())
	})

	It("converts a malformed value into a patient error", func() {
		observation := observationsTest.QuantityObservation("alpha", "NaN", time.Now())
		result := assessments.Classify("alpha", &observation, false)
		Expect(result.Error).ToNot(BeNil())
		Expect(*result.Error).To(ContainSubstring("alpha"))
		Expect(result.HbA1cValue).To(BeNil())
	})
})
