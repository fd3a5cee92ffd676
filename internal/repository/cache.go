package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"suitax/internal/db"
	"suitax/internal/sui"
)

var timeNow = time.Now

// CacheRepository is the cache store behind both the transaction cache and
// the jurisdiction rate cache. Expired entries read as misses; overwrites
// refresh the expiry clock.
type CacheRepository struct {
	db       Storage
	txTTL    time.Duration
	ratesTTL time.Duration
}

func NewCacheRepository(storage Storage, txTTL, ratesTTL time.Duration) *CacheRepository {
	return &CacheRepository{
		db:       storage,
		txTTL:    txTTL,
		ratesTTL: ratesTTL,
	}
}

func (r *CacheRepository) Migrate() error {
	if err := r.db.MigrateTable(&TransactionCache{}, &TaxRateCache{}); err != nil {
		return fmt.Errorf("migrate cache tables: %w", err)
	}
	return nil
}

func (r *CacheRepository) GetTransaction(ctx context.Context, digest string, network sui.Network) ([]byte, error) {
	var entry TransactionCache
	err := r.db.GetOneWhere(ctx, &entry, "digest = ? AND network = ?", digest, string(network))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, sui.ErrCacheMiss
		}
		return nil, fmt.Errorf("read transaction cache: %w", err)
	}

	if expired(entry.CachedAt, r.txTTL) {
		return nil, sui.ErrCacheMiss
	}

	return entry.Data, nil
}

func (r *CacheRepository) PutTransaction(ctx context.Context, digest string, network sui.Network, data []byte) error {
	entry := TransactionCache{
		Digest:   digest,
		Network:  string(network),
		Data:     data,
		CachedAt: timeNow().Unix(),
	}
	if err := r.db.Upsert(ctx, &entry); err != nil {
		return fmt.Errorf("write transaction cache: %w", err)
	}
	return nil
}

func (r *CacheRepository) GetTaxRates(ctx context.Context, country string) ([]byte, error) {
	var entry TaxRateCache
	err := r.db.GetOneWhere(ctx, &entry, "country = ?", strings.ToUpper(country))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, sui.ErrCacheMiss
		}
		return nil, fmt.Errorf("read tax rate cache: %w", err)
	}

	if expired(entry.CachedAt, r.ratesTTL) {
		return nil, sui.ErrCacheMiss
	}

	return entry.Data, nil
}

func (r *CacheRepository) PutTaxRates(ctx context.Context, country string, data []byte) error {
	entry := TaxRateCache{
		Country:  strings.ToUpper(country),
		Data:     data,
		CachedAt: timeNow().Unix(),
	}
	if err := r.db.Upsert(ctx, &entry); err != nil {
		return fmt.Errorf("write tax rate cache: %w", err)
	}
	return nil
}

func expired(cachedAt int64, ttl time.Duration) bool {
	return timeNow().Unix()-cachedAt >= int64(ttl.Seconds())
}
