package repository_test

import (
	"context"
	"errors"
	"time"

	"suitax/internal/db"
	"suitax/internal/repository"
	"suitax/internal/repository/fake"
	"suitax/internal/sui"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CacheRepository", func() {
	var (
		cache       *repository.CacheRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		cache = repository.NewCacheRepository(fakeStorage, time.Hour, 24*time.Hour)
	})

	Describe("Migrate", func() {
		It("should migrate both cache tables at once", func() {
			Expect(cache.Migrate()).To(Succeed())
			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			Expect(fakeStorage.MigrateTableArgsForCall(0)).To(HaveLen(2))
		})

		When("the migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("should wrap the error", func() {
				err := cache.Migrate()
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring("migrate cache tables"))
			})
		})
	})

	Describe("GetTransaction", func() {
		var (
			data []byte
			err  error
		)

		JustBeforeEach(func() {
			data, err = cache.GetTransaction(ctx, "digest-1", sui.NetworkMainnet)
		})

		When("a fresh entry exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereCalls(func(_ context.Context, entity any, query string, args ...any) error {
					entry, ok := entity.(*repository.TransactionCache)
					Expect(ok).To(BeTrue())
					Expect(query).To(Equal("digest = ? AND network = ?"))
					Expect(args).To(Equal([]any{"digest-1", "mainnet"}))

					entry.Digest = "digest-1"
					entry.Network = "mainnet"
					entry.Data = []byte(`{"digest":"digest-1"}`)
					entry.CachedAt = time.Now().Unix()
					return nil
				})
			})

			It("should return the cached bytes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(data).To(Equal([]byte(`{"digest":"digest-1"}`)))
			})
		})

		When("the entry has outlived its TTL", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereCalls(func(_ context.Context, entity any, _ string, _ ...any) error {
					entry := entity.(*repository.TransactionCache)
					entry.Data = []byte("stale")
					entry.CachedAt = time.Now().Add(-2 * time.Hour).Unix()
					return nil
				})
			})

			It("should report a miss", func() {
				Expect(err).To(MatchError(sui.ErrCacheMiss))
				Expect(data).To(BeNil())
			})
		})

		When("there is no entry at all", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("should report a miss", func() {
				Expect(err).To(MatchError(sui.ErrCacheMiss))
			})
		})

		When("the storage read fails outright", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(fakeErr)
			})

			It("should wrap the error rather than miss", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(errors.Is(err, sui.ErrCacheMiss)).To(BeFalse())
			})
		})
	})

	Describe("PutTransaction", func() {
		It("should upsert a stamped entry", func() {
			err := cache.PutTransaction(ctx, "digest-1", sui.NetworkTestnet, []byte("raw"))
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.UpsertCallCount()).To(Equal(1))

			_, record := fakeStorage.UpsertArgsForCall(0)
			entry, ok := record.(*repository.TransactionCache)
			Expect(ok).To(BeTrue())
			Expect(entry.Digest).To(Equal("digest-1"))
			Expect(entry.Network).To(Equal("testnet"))
			Expect(entry.Data).To(Equal([]byte("raw")))
			Expect(entry.CachedAt).To(BeNumerically("~", time.Now().Unix(), 5))
		})

		When("the upsert fails", func() {
			BeforeEach(func() {
				fakeStorage.UpsertReturns(fakeErr)
			})

			It("should wrap the error", func() {
				err := cache.PutTransaction(ctx, "digest-1", sui.NetworkTestnet, []byte("raw"))
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTaxRates", func() {
		When("a fresh entry exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereCalls(func(_ context.Context, entity any, query string, args ...any) error {
					entry := entity.(*repository.TaxRateCache)
					Expect(query).To(Equal("country = ?"))
					Expect(args).To(Equal([]any{"US"}))

					entry.Country = "US"
					entry.Data = []byte(`{"currency":"USD"}`)
					entry.CachedAt = time.Now().Unix()
					return nil
				})
			})

			It("should uppercase the country and return the bytes", func() {
				data, err := cache.GetTaxRates(ctx, "us")
				Expect(err).NotTo(HaveOccurred())
				Expect(data).To(Equal([]byte(`{"currency":"USD"}`)))
			})
		})

		When("the entry is stale", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereCalls(func(_ context.Context, entity any, _ string, _ ...any) error {
					entry := entity.(*repository.TaxRateCache)
					entry.CachedAt = time.Now().Add(-48 * time.Hour).Unix()
					return nil
				})
			})

			It("should report a miss", func() {
				_, err := cache.GetTaxRates(ctx, "US")
				Expect(err).To(MatchError(sui.ErrCacheMiss))
			})
		})
	})

	Describe("PutTaxRates", func() {
		It("should normalize the country before writing", func() {
			Expect(cache.PutTaxRates(ctx, "de", []byte("rates"))).To(Succeed())

			_, record := fakeStorage.UpsertArgsForCall(0)
			entry := record.(*repository.TaxRateCache)
			Expect(entry.Country).To(Equal("DE"))
			Expect(entry.Data).To(Equal([]byte("rates")))
		})
	})
})
