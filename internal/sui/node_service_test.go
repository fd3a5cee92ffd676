package sui_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"suitax/internal/identity"
	"suitax/internal/sui"
	"suitax/internal/sui/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("NodeService", func() {
	var (
		service    *sui.NodeService
		fakeClient *fake.RPCClient
		fakeCache  *fake.Cache
		ctx        context.Context

		digest  string
		address string
		rawTx   []byte
		fakeErr error
	)

	BeforeEach(func() {
		fakeClient = new(fake.RPCClient)
		fakeCache = new(fake.Cache)
		ctx = context.Background()

		digest = strings.Repeat("a", 64)
		address = "0x" + strings.Repeat("b", 64)
		rawTx = []byte(`{"digest":"` + digest + `","timestampMs":"1735689600000"}`)
		fakeErr = errors.New("fake error")

		service = sui.NewNodeService(zap.NewNop().Sugar(), fakeClient, fakeCache)
	})

	Describe("GetTransaction", func() {
		var (
			tx  *sui.RawTransaction
			err error
		)

		JustBeforeEach(func() {
			tx, err = service.GetTransaction(ctx, digest, sui.NetworkMainnet, true)
		})

		When("the digest is malformed", func() {
			BeforeEach(func() {
				digest = "definitely-not-a-digest"
			})

			It("should reject without a network call", func() {
				Expect(err).To(MatchError(sui.ErrNotFound))
				Expect(fakeClient.CallCallCount()).To(Equal(0))
				Expect(fakeCache.GetTransactionCallCount()).To(Equal(0))
			})
		})

		When("the transaction is cached", func() {
			BeforeEach(func() {
				fakeCache.GetTransactionReturns(rawTx, nil)
			})

			It("should serve the cached copy", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.Digest).To(Equal(digest))
				Expect(fakeClient.CallCallCount()).To(Equal(0))
			})
		})

		When("the cache misses", func() {
			BeforeEach(func() {
				fakeCache.GetTransactionReturns(nil, sui.ErrCacheMiss)
				fakeClient.CallReturns(json.RawMessage(rawTx), nil)
			})

			It("should fetch from the node and backfill the cache", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.Digest).To(Equal(digest))

				Expect(fakeClient.CallCallCount()).To(Equal(1))
				_, network, method, params := fakeClient.CallArgsForCall(0)
				Expect(network).To(Equal(sui.NetworkMainnet))
				Expect(method).To(Equal("sui_getTransactionBlock"))
				Expect(params[0]).To(Equal(digest))

				Expect(fakeCache.PutTransactionCallCount()).To(Equal(1))
				_, cachedDigest, _, data := fakeCache.PutTransactionArgsForCall(0)
				Expect(cachedDigest).To(Equal(digest))
				Expect(data).To(Equal(rawTx))
			})
		})

		When("the cache read fails outright", func() {
			BeforeEach(func() {
				fakeCache.GetTransactionReturns(nil, fakeErr)
				fakeClient.CallReturns(json.RawMessage(rawTx), nil)
			})

			It("should degrade to a miss and fetch from the node", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.Digest).To(Equal(digest))
				Expect(fakeClient.CallCallCount()).To(Equal(1))
			})
		})

		When("the cached copy is corrupt", func() {
			BeforeEach(func() {
				fakeCache.GetTransactionReturns([]byte("{broken"), nil)
				fakeClient.CallReturns(json.RawMessage(rawTx), nil)
			})

			It("should fall through to the node", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.CallCallCount()).To(Equal(1))
			})
		})

		When("the cache write fails", func() {
			BeforeEach(func() {
				fakeCache.GetTransactionReturns(nil, sui.ErrCacheMiss)
				fakeCache.PutTransactionReturns(fakeErr)
				fakeClient.CallReturns(json.RawMessage(rawTx), nil)
			})

			It("should still return the transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.Digest).To(Equal(digest))
			})
		})

		When("the node has no such transaction", func() {
			BeforeEach(func() {
				fakeCache.GetTransactionReturns(nil, sui.ErrCacheMiss)
				fakeClient.CallReturns(json.RawMessage("null"), nil)
			})

			It("should return ErrNotFound", func() {
				Expect(err).To(MatchError(sui.ErrNotFound))
				Expect(fakeCache.PutTransactionCallCount()).To(Equal(0))
			})
		})

		When("the node call fails", func() {
			BeforeEach(func() {
				fakeCache.GetTransactionReturns(nil, sui.ErrCacheMiss)
				fakeClient.CallReturns(nil, sui.ErrRetrievalFailed)
			})

			It("should propagate the retrieval failure", func() {
				Expect(err).To(MatchError(sui.ErrRetrievalFailed))
			})
		})
	})

	Describe("GetAccountPage", func() {
		var (
			page *sui.TransactionPage
			err  error
		)

		JustBeforeEach(func() {
			page, err = service.GetAccountPage(ctx, address, sui.NetworkTestnet, 50, "")
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				address = "0x1234"
			})

			It("should reject without a network call", func() {
				Expect(err).To(MatchError(identity.ErrInvalidIdentity))
				Expect(fakeClient.CallCallCount()).To(Equal(0))
			})
		})

		When("the node returns a page", func() {
			BeforeEach(func() {
				fakeClient.CallReturns(json.RawMessage(`{"data":[{"digest":"d1"},{"digest":"d2"}],"nextCursor":"cur","hasNextPage":true}`), nil)
			})

			It("should decode the page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(page.Digests()).To(Equal([]string{"d1", "d2"}))
				Expect(page.NextCursor).To(Equal("cur"))
				Expect(page.HasNextPage).To(BeTrue())

				_, network, method, params := fakeClient.CallArgsForCall(0)
				Expect(network).To(Equal(sui.NetworkTestnet))
				Expect(method).To(Equal("suix_queryTransactionBlocks"))
				Expect(params).To(HaveLen(4))
				Expect(params[1]).To(BeNil())
				Expect(params[2]).To(Equal(50))
			})
		})

		When("the node call fails", func() {
			BeforeEach(func() {
				fakeClient.CallReturns(nil, sui.ErrRetrievalFailed)
			})

			It("should propagate the retrieval failure", func() {
				Expect(err).To(MatchError(sui.ErrRetrievalFailed))
			})
		})
	})
})
