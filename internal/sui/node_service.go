package sui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"suitax/internal/identity"

	"go.uber.org/zap"
)

const (
	methodGetTransaction = "sui_getTransactionBlock"
	methodQueryBlocks    = "suix_queryTransactionBlocks"
)

// transactionOptions selects the response sections the parser needs.
type transactionOptions struct {
	ShowInput          bool `json:"showInput"`
	ShowEffects        bool `json:"showEffects"`
	ShowEvents         bool `json:"showEvents"`
	ShowObjectChanges  bool `json:"showObjectChanges"`
	ShowBalanceChanges bool `json:"showBalanceChanges"`
}

type transactionQuery struct {
	Filter transactionFilter `json:"filter"`
}

type transactionFilter struct {
	FromOrToAddress string `json:"FromOrToAddress"`
}

// NodeService retrieves transaction data from the fullnodes, consulting the
// cache first.
type NodeService struct {
	logs   *zap.SugaredLogger
	client RPCClient
	cache  Cache
}

func NewNodeService(logger *zap.SugaredLogger, client RPCClient, cache Cache) *NodeService {
	return &NodeService{
		logs:   logger,
		client: client,
		cache:  cache,
	}
}

// GetTransaction fetches one transaction block by digest. Malformed digests
// are rejected without a network call. Cache failures never fail the
// retrieval; they degrade to a miss on read and a skipped write.
func (s *NodeService) GetTransaction(ctx context.Context, digest string, network Network, useCache bool) (*RawTransaction, error) {
	if identity.Classify(digest) != identity.KindTransaction {
		return nil, fmt.Errorf("%w: invalid digest format", ErrNotFound)
	}

	if useCache {
		if cached := s.cachedTransaction(ctx, digest, network); cached != nil {
			return cached, nil
		}
	}

	raw, err := s.client.Call(ctx, network, methodGetTransaction, digest, transactionOptions{
		ShowInput:          true,
		ShowEffects:        true,
		ShowEvents:         true,
		ShowObjectChanges:  true,
		ShowBalanceChanges: true,
	})
	if err != nil {
		return nil, fmt.Errorf("get transaction %q: %w", shorten(digest), err)
	}

	if isEmptyResult(raw) {
		return nil, fmt.Errorf("%w: transaction %q", ErrNotFound, shorten(digest))
	}

	var tx RawTransaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, fmt.Errorf("%w: decode transaction: %v", ErrRetrievalFailed, err)
	}

	if useCache {
		if err := s.cache.PutTransaction(ctx, digest, network, raw); err != nil {
			s.logs.Errorw("cache write failed", "digest", shorten(digest), "network", network, "error", err)
		}
	}

	return &tx, nil
}

// GetAccountPage fetches one page of an account's transaction references,
// following the given cursor.
func (s *NodeService) GetAccountPage(ctx context.Context, address string, network Network, limit int, cursor string) (*TransactionPage, error) {
	if identity.Classify(address) != identity.KindAccount {
		return nil, fmt.Errorf("%w: %q is not an address", identity.ErrInvalidIdentity, shorten(address))
	}

	params := []any{
		transactionQuery{Filter: transactionFilter{FromOrToAddress: address}},
		nil,
		limit,
		true,
	}
	if cursor != "" {
		params[1] = cursor
	}

	raw, err := s.client.Call(ctx, network, methodQueryBlocks, params...)
	if err != nil {
		return nil, fmt.Errorf("query transactions for %q: %w", shorten(address), err)
	}

	var page TransactionPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("%w: decode page: %v", ErrRetrievalFailed, err)
	}

	return &page, nil
}

func (s *NodeService) cachedTransaction(ctx context.Context, digest string, network Network) *RawTransaction {
	data, err := s.cache.GetTransaction(ctx, digest, network)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			s.logs.Debugw("cache read failed", "digest", shorten(digest), "error", err)
		}
		return nil
	}

	var tx RawTransaction
	if err := json.Unmarshal(data, &tx); err != nil {
		s.logs.Debugw("cached transaction is corrupt", "digest", shorten(digest), "error", err)
		return nil
	}

	s.logs.Debugw("cache hit", "digest", shorten(digest), "network", network)
	return &tx
}

func isEmptyResult(raw json.RawMessage) bool {
	switch string(raw) {
	case "", "null", "{}", "[]":
		return true
	}
	return false
}

func shorten(value string) string {
	if len(value) <= 10 {
		return value
	}
	return value[:10] + "..."
}
