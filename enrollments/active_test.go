package enrollments_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/careloop/assessment/enrollments"
)

var _ = Describe("ActiveDiabetes", func() {
	It("matches an active enrollment in a diabetes program", func() {
		enrollment := enrollments.Enrollment{
			SubjectId:   "alpha",
			ProgramName: "Type 2 Diabetes Management",
			Status:      enrollments.StatusActive,
		}
		Expect(enrollment.ActiveDiabetes()).To(BeTrue())
	})

	It("rejects an inactive enrollment in a diabetes program", func() {
		enrollment := enrollments.Enrollment{
			SubjectId:   "alpha",
			ProgramName: "Type 2 Diabetes Management",
			Status:      "Completed",
		}
		Expect(enrollment.ActiveDiabetes()).To(BeFalse())
	})

	It("rejects an active enrollment in a non-diabetes program", func() {
		enrollment := enrollments.Enrollment{
			SubjectId:   "alpha",
			ProgramName: "Hypertension Care",
			Status:      enrollments.StatusActive,
		}
		Expect(enrollment.ActiveDiabetes()).To(BeFalse())
	})

	It("matches the program name case-sensitively", func() {
		enrollment := enrollments.Enrollment{
			SubjectId:   "alpha",
			ProgramName: "diabetes prevention",
			Status:      enrollments.StatusActive,
		}
		Expect(enrollment.ActiveDiabetes()).To(BeFalse())
	})
})
