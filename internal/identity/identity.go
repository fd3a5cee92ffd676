package identity

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidIdentity error = errors.New("input is neither a transaction digest nor an address")

// Kind classifies a caller-supplied identity string.
type Kind int

const (
	KindInvalid Kind = iota
	KindTransaction
	KindAccount
)

func (k Kind) String() string {
	switch k {
	case KindTransaction:
		return "transaction"
	case KindAccount:
		return "account"
	default:
		return "invalid"
	}
}

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// Classify reports whether the input names a single transaction or an
// account. Format validity is necessary but not sufficient: existence is
// only confirmed by a successful retrieval.
func Classify(input string) Kind {
	if IsTransactionDigest(input) {
		return KindTransaction
	}
	if IsAddress(input) {
		return KindAccount
	}
	return KindInvalid
}

// IsTransactionDigest reports whether the value is a well-formed transaction
// digest: a 32-byte hash encoded as 64 hex characters or as base64
// (43 chars unpadded, 44 padded).
func IsTransactionDigest(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}

	switch len(value) {
	case 64:
		return isHex(value)
	case 43, 44:
		return decodesTo32Bytes(value)
	default:
		return false
	}
}

// IsAddress reports whether the value is a well-formed account address:
// 64 hex characters with an optional 0x prefix.
func IsAddress(value string) bool {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "0x")

	if len(value) != 64 {
		return false
	}
	return isHex(value)
}

func isHex(value string) bool {
	_, err := hex.DecodeString(value)
	return err == nil
}

func decodesTo32Bytes(value string) bool {
	if !base64Pattern.MatchString(value) {
		return false
	}

	padded := value
	if rem := len(value) % 4; rem != 0 {
		padded = value + strings.Repeat("=", 4-rem)
	}

	decoded, err := base64.StdEncoding.DecodeString(padded)
	if err != nil {
		return false
	}
	return len(decoded) == 32
}
