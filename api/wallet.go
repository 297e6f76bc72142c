package api

import (
	"context"
	"net/http"
)

// walletDataPath is the single endpoint the client talks to.
const walletDataPath = "/wallet-data"

// FetchWalletData fetches wallet data from the server, blocking until
// the full response arrives. Any 2xx status is accepted. Transport
// failures, other statuses, and unparseable bodies all surface as a
// *FetchError; nothing is retried.
func (c *Client) FetchWalletData() (WalletData, error) {
	resp, err := c.httpClient.Get(c.baseURL + walletDataPath)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	return decodeWalletData(resp.Body)
}

// FetchWalletDataContext fetches wallet data under the given context.
// Each call acquires its own transport and releases it when the call
// completes, on every exit path. Only an exact 200 is accepted here,
// while FetchWalletData accepts any 2xx; callers that care about the
// difference should pick the variant deliberately.
func (c *Client) FetchWalletDataContext(ctx context.Context) (WalletData, error) {
	transport := &http.Transport{}
	defer transport.CloseIdleConnections()

	client := &http.Client{
		Transport: transport,
		Timeout:   c.httpClient.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+walletDataPath, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	return decodeWalletData(resp.Body)
}

// FetchWalletDataAsync starts a fetch in the background and returns a
// channel that delivers the single result. The channel is buffered, so
// the result is never lost even if the caller is slow to receive.
func (c *Client) FetchWalletDataAsync(ctx context.Context) <-chan FetchResult {
	ch := make(chan FetchResult, 1)

	go func() {
		data, err := c.FetchWalletDataContext(ctx)
		ch <- FetchResult{Data: data, Err: err}
	}()

	return ch
}
