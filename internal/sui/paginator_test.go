package sui_test

import (
	"context"
	"errors"
	"strings"

	"suitax/internal/sui"
	"suitax/internal/sui/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Paginator", func() {
	var (
		paginator     *sui.Paginator
		fakeRetriever *fake.NodeRetriever
		ctx           context.Context

		address    string
		collection sui.DigestCollection
	)

	BeforeEach(func() {
		fakeRetriever = new(fake.NodeRetriever)
		ctx = context.Background()
		address = "0x" + strings.Repeat("a", 64)

		paginator = sui.NewPaginator(zap.NewNop().Sugar(), fakeRetriever, 2, 0)
	})

	JustBeforeEach(func() {
		collection = paginator.CollectAllDigests(ctx, address, sui.NetworkMainnet)
	})

	When("the history spans several pages", func() {
		BeforeEach(func() {
			fakeRetriever.GetAccountPageReturnsOnCall(0, &sui.TransactionPage{
				Data:        []sui.PageEntry{{Digest: "d1"}, {Digest: "d2"}},
				NextCursor:  "cur1",
				HasNextPage: true,
			}, nil)
			fakeRetriever.GetAccountPageReturnsOnCall(1, &sui.TransactionPage{
				Data:        []sui.PageEntry{{Digest: "d3"}},
				HasNextPage: false,
			}, nil)
		})

		It("should follow the cursor and collect everything", func() {
			Expect(collection.Complete).To(BeTrue())
			Expect(collection.Digests).To(Equal([]string{"d1", "d2", "d3"}))

			Expect(fakeRetriever.GetAccountPageCallCount()).To(Equal(2))
			_, _, _, _, firstCursor := fakeRetriever.GetAccountPageArgsForCall(0)
			_, _, _, _, secondCursor := fakeRetriever.GetAccountPageArgsForCall(1)
			Expect(firstCursor).To(BeEmpty())
			Expect(secondCursor).To(Equal("cur1"))
		})
	})

	When("the account has no history", func() {
		BeforeEach(func() {
			fakeRetriever.GetAccountPageReturns(&sui.TransactionPage{}, nil)
		})

		It("should report an empty complete collection", func() {
			Expect(collection.Complete).To(BeTrue())
			Expect(collection.Digests).To(BeEmpty())
		})
	})

	When("a page request fails mid-enumeration", func() {
		BeforeEach(func() {
			fakeRetriever.GetAccountPageReturnsOnCall(0, &sui.TransactionPage{
				Data:        []sui.PageEntry{{Digest: "d1"}, {Digest: "d2"}},
				NextCursor:  "cur1",
				HasNextPage: true,
			}, nil)
			fakeRetriever.GetAccountPageReturnsOnCall(1, nil, errors.New("boom"))
		})

		It("should return the partial history marked incomplete", func() {
			Expect(collection.Complete).To(BeFalse())
			Expect(collection.Digests).To(Equal([]string{"d1", "d2"}))
		})
	})

	When("the node claims more pages but omits the cursor", func() {
		BeforeEach(func() {
			fakeRetriever.GetAccountPageReturns(&sui.TransactionPage{
				Data:        []sui.PageEntry{{Digest: "d1"}},
				HasNextPage: true,
			}, nil)
		})

		It("should truncate instead of looping forever", func() {
			Expect(collection.Complete).To(BeFalse())
			Expect(collection.Digests).To(Equal([]string{"d1"}))
			Expect(fakeRetriever.GetAccountPageCallCount()).To(Equal(1))
		})
	})
})
