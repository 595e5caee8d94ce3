package codes_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/careloop/assessment/codes"
	codesTest "github.com/careloop/assessment/codes/test"
)

var _ = Describe("CachingResolver", func() {
	var ctrl *gomock.Controller
	var delegate *codesTest.MockResolver

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		delegate = codesTest.NewMockResolver(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("resolves through the delegate only once per name", func() {
		resolver, err := codes.NewCachingResolver(16, time.Minute, delegate)
		Expect(err).ToNot(HaveOccurred())

		delegate.EXPECT().
			Resolve(gomock.Any(), gomock.Eq(codes.HbA1cCodeName)).
			Return("5f1f0b", nil).
			Times(1)

		for i := 0; i < 3; i++ {
			codeId, err := resolver.Resolve(context.Background(), codes.HbA1cCodeName)
			Expect(err).ToNot(HaveOccurred())
			Expect(codeId).To(Equal("5f1f0b"))
		}
	})

	It("does not cache misses", func() {
		resolver, err := codes.NewCachingResolver(16, time.Minute, delegate)
		Expect(err).ToNot(HaveOccurred())

		delegate.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return("", codes.ErrNotFound).
			Times(2)

		for i := 0; i < 2; i++ {
			_, err := resolver.Resolve(context.Background(), codes.HbA1cCodeName)
			Expect(err).To(MatchError(codes.ErrNotFound))
		}
	})

	It("re-resolves expired entries", func() {
		// A non-positive expiration means every entry is born expired.
		resolver, err := codes.NewCachingResolver(16, -time.Second, delegate)
		Expect(err).ToNot(HaveOccurred())

		delegate.EXPECT().
			Resolve(gomock.Any(), gomock.Any()).
			Return("5f1f0b", nil).
			Times(2)

		for i := 0; i < 2; i++ {
			codeId, err := resolver.Resolve(context.Background(), codes.HbA1cCodeName)
			Expect(err).ToNot(HaveOccurred())
			Expect(codeId).To(Equal("5f1f0b"))
		}
	})
})
