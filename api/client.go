package api

// API Client-
//
// Files:
//   client.go  - Core client functionality (client struct, newClient, decode helper)
//   types.go   - Struct definitions (walletData, fetchResult, accessors)
//   errors.go  - Typed errors returned at the package boundary
//   wallet.go  - Wallet data fetching (blocking, context-aware, async)
//   export.go  - Saving wallet data to disk
//
// Usage:
//   client := api.NewClient("")                  // from client.go, default base URL
//   data, err := client.FetchWalletData()        // from wallet.go
//   name, err := api.SaveWalletData(data, "")    // from export.go

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the wallet-data server address used when none is given.
const DefaultBaseURL = "http://localhost:3000"

// requestTimeout bounds every request made by the client.
const requestTimeout = 30 * time.Second

// Client handles API calls to the wallet-data server
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client for the given base URL.
// Trailing slashes are stripped so paths can be appended directly.
// An empty baseURL selects DefaultBaseURL. No network I/O happens here.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// BaseURL returns the normalized base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// decodeWalletData parses a response body into a WalletData mapping.
// Numbers are kept as json.Number so values round-trip through save
// without floating-point mangling.
func decodeWalletData(r io.Reader) (WalletData, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var data WalletData
	if err := dec.Decode(&data); err != nil {
		return nil, &FetchError{Err: err}
	}

	return data, nil
}
