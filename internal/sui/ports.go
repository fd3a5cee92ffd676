package sui

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNotFound error = errors.New("not found")
var ErrRetrievalFailed error = errors.New("retrieval failed")
var ErrNoNetwork error = errors.New("not found on any network")
var ErrCacheMiss error = errors.New("cache miss")

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// RPCClient issues one JSON-RPC round trip against a network's fullnode.
// Transport errors, non-success statuses and RPC error envelopes are all
// surfaced as ErrRetrievalFailed.
//
//counterfeiter:generate -o fake -fake-name RPCClient . RPCClient
type RPCClient interface {
	Call(ctx context.Context, network Network, method string, params ...any) (json.RawMessage, error)
}

// Cache is the transaction cache boundary. Failures on either operation are
// non-fatal to retrieval; the caller logs and proceeds as a miss.
//
//counterfeiter:generate -o fake -fake-name Cache . Cache
type Cache interface {
	GetTransaction(ctx context.Context, digest string, network Network) ([]byte, error)
	PutTransaction(ctx context.Context, digest string, network Network, data []byte) error
}

// NodeRetriever fetches one transaction or one page of an account's history.
//
//counterfeiter:generate -o fake -fake-name NodeRetriever . NodeRetriever
type NodeRetriever interface {
	GetTransaction(ctx context.Context, digest string, network Network, useCache bool) (*RawTransaction, error)
	GetAccountPage(ctx context.Context, address string, network Network, limit int, cursor string) (*TransactionPage, error)
}

// Classifier assigns a category and explanation to a parsed transaction.
// Implementations are expected to degrade to a deterministic fallback; a
// returned error makes the batch processor keep the record unclassified.
//
//counterfeiter:generate -o fake -fake-name Classifier . Classifier
type Classifier interface {
	Classify(ctx context.Context, tx Transaction) (Classification, error)
}
