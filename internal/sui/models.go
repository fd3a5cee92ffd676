package sui

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Network is a Sui network identifier.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkDevnet  Network = "devnet"
)

// ProbeOrder is the fixed priority order for network detection. Mainnet is
// the common case, so it is checked first.
var ProbeOrder = []Network{NetworkMainnet, NetworkTestnet, NetworkDevnet}

// SuiCoinType is the coin type of the base asset used for gas and value
// transfer accounting.
const SuiCoinType = "0x2::sui::SUI"

// mistPerSui converts MIST amounts to SUI.
const mistPerSui = 1_000_000_000

// Number tolerates both string and numeric JSON encodings of integers, which
// the fullnode mixes freely. Unparseable values never fail decoding; they
// surface as a failed Int64 conversion instead.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" {
		value = ""
	}
	*n = Number(value)
	return nil
}

func (n Number) Int64() (int64, bool) {
	parsed, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// RawTransaction is the transaction block document returned by the fullnode.
// It is interpreted only by the Parser.
type RawTransaction struct {
	Digest        string          `json:"digest"`
	TimestampMs   Number          `json:"timestampMs"`
	Transaction   TransactionBody `json:"transaction"`
	Effects       Effects         `json:"effects"`
	ObjectChanges []ObjectChange  `json:"objectChanges"`
}

type TransactionBody struct {
	Data TransactionData `json:"data"`
}

type TransactionData struct {
	Sender      string          `json:"sender"`
	Transaction TransactionKind `json:"transaction"`
}

type TransactionKind struct {
	Kind string `json:"kind"`
}

type Effects struct {
	Status         ExecutionStatus `json:"status"`
	GasUsed        GasUsed         `json:"gasUsed"`
	BalanceChanges []BalanceChange `json:"balanceChanges"`
}

type ExecutionStatus struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type GasUsed struct {
	ComputationCost         Number `json:"computationCost"`
	StorageCost             Number `json:"storageCost"`
	StorageRebate           Number `json:"storageRebate"`
	NonRefundableStorageFee Number `json:"nonRefundableStorageFee"`
}

// BalanceChange is one signed balance delta. Owner is either a bare address
// string or an object like {"AddressOwner": "0x.."} depending on ownership.
type BalanceChange struct {
	Owner    json.RawMessage `json:"owner"`
	CoinType string          `json:"coinType"`
	Amount   Number          `json:"amount"`
}

// OwnerAddress extracts the owning address, or "" when the record has no
// address owner.
func (b BalanceChange) OwnerAddress() string {
	if len(b.Owner) == 0 {
		return ""
	}

	var address string
	if err := json.Unmarshal(b.Owner, &address); err == nil {
		return address
	}

	var object struct {
		AddressOwner string `json:"AddressOwner"`
	}
	if err := json.Unmarshal(b.Owner, &object); err == nil {
		return object.AddressOwner
	}

	return ""
}

type ObjectChange struct {
	Type string `json:"type"`
}

// TransactionPage is one page of an account's transaction references.
type TransactionPage struct {
	Data        []PageEntry `json:"data"`
	NextCursor  string      `json:"nextCursor"`
	HasNextPage bool        `json:"hasNextPage"`
}

type PageEntry struct {
	Digest string `json:"digest"`
}

func (p *TransactionPage) Digests() []string {
	digests := make([]string, 0, len(p.Data))
	for _, entry := range p.Data {
		digests = append(digests, entry.Digest)
	}
	return digests
}

// DigestCollection is the result of enumerating an account's history.
// Complete is false when pagination terminated early, either on a page
// failure or on inconsistent pagination metadata.
type DigestCollection struct {
	Digests  []string
	Complete bool
}

// Transaction is the normalized record produced by the Parser. Amounts are
// in SUI, attributable to the sender.
type Transaction struct {
	Digest          string    `json:"digest"`
	Timestamp       time.Time `json:"timestamp"`
	Sender          string    `json:"sender"`
	Kind            string    `json:"transaction_type"`
	GasCost         float64   `json:"gas_cost"`
	AmountIn        float64   `json:"amount_in"`
	AmountOut       float64   `json:"amount_out"`
	NetChange       float64   `json:"net_change"`
	ObjectsCreated  int       `json:"objects_created"`
	ObjectsModified int       `json:"objects_modified"`
	ObjectsDeleted  int       `json:"objects_deleted"`
	Status          string    `json:"status"`
	Network         Network   `json:"network"`
	Category        string    `json:"category,omitempty"`
	Explanation     string    `json:"explanation,omitempty"`
	ErrorMessage    string    `json:"error_message,omitempty"`
}

// Classification is the Classifier's verdict for one transaction.
type Classification struct {
	Category    string
	Explanation string
}
