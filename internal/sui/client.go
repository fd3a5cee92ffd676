package sui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ybbus/jsonrpc/v3"
)

const callTimeout = 30 * time.Second

// Client talks JSON-RPC to one fullnode per network.
type Client struct {
	clients map[Network]jsonrpc.RPCClient
}

func NewClient(endpoints map[string]string) *Client {
	httpClient := &http.Client{
		Timeout: callTimeout,
	}

	clients := make(map[Network]jsonrpc.RPCClient, len(endpoints))
	for name, url := range endpoints {
		clients[Network(name)] = jsonrpc.NewClientWithOpts(url, &jsonrpc.RPCClientOpts{
			HTTPClient: httpClient,
		})
	}

	return &Client{
		clients: clients,
	}
}

// Call performs one request/response round trip. Every failure mode,
// transport error, timeout, or an error envelope inside the response, comes
// back as ErrRetrievalFailed so callers have a single failure path.
func (c *Client) Call(ctx context.Context, network Network, method string, params ...any) (json.RawMessage, error) {
	client, ok := c.clients[network]
	if !ok {
		return nil, fmt.Errorf("%w: unknown network %q", ErrRetrievalFailed, network)
	}

	resp, err := client.Call(ctx, method, params...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s call: %v", ErrRetrievalFailed, method, err)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("%w: rpc error %d: %s", ErrRetrievalFailed, resp.Error.Code, resp.Error.Message)
	}

	raw, err := json.Marshal(resp.Result)
	if err != nil {
		return nil, fmt.Errorf("%w: encode result: %v", ErrRetrievalFailed, err)
	}

	return raw, nil
}
