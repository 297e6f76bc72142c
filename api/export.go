package api

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SaveWalletData writes wallet data to disk as indented JSON and
// returns the filename used. An empty filename generates one from the
// current local time, e.g. metamask_data_20260823_142530.json. An
// existing file of the same name is overwritten.
func SaveWalletData(data WalletData, filename string) (string, error) {
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = fmt.Sprintf("metamask_data_%s.json", timestamp)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", &SaveError{Filename: filename, Err: err}
	}

	if err := os.WriteFile(filename, out, 0600); err != nil {
		return "", &SaveError{Filename: filename, Err: err}
	}

	return filename, nil
}
