package api

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// WalletData is the document returned by the wallet-data server. The
// server owns its shape; beyond the three accessors below the mapping
// is carried as an opaque pass-through value, extra fields included.
type WalletData map[string]interface{}

// FetchResult carries the outcome of an asynchronous fetch.
type FetchResult struct {
	Data WalletData
	Err  error
}

// Address returns the wallet address, or an empty string if the server
// did not include one.
func (w WalletData) Address() string {
	address, _ := w["address"].(string)
	return address
}

// EtherBalance returns the ether balance from the balance block. The
// server reports it either as a JSON number or as a numeric string.
func (w WalletData) EtherBalance() (decimal.Decimal, error) {
	balance, ok := w["balance"].(map[string]interface{})
	if !ok {
		return decimal.Zero, fmt.Errorf("wallet data has no balance field")
	}

	switch v := balance["ether"].(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("unexpected ether balance type %T", v)
	}
}

// Transactions returns the wallet's transaction history as opaque
// records, or nil if the server did not include any.
func (w WalletData) Transactions() []interface{} {
	transactions, _ := w["transactions"].([]interface{})
	return transactions
}
