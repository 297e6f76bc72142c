package api

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestSaveWalletDataExplicitFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	filename, err := SaveWalletData(WalletData{"a": 1}, path)
	require.NoError(t, err)
	assert.Equal(t, path, filename)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(content))
}

func TestSaveWalletDataGeneratedFilename(t *testing.T) {
	chdir(t, t.TempDir())

	filename, err := SaveWalletData(WalletData{"a": 1}, "")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^metamask_data_\d{8}_\d{6}\.json$`), filename)

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(content))
}

func TestSaveWalletDataOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	_, err := SaveWalletData(WalletData{"a": 1}, path)
	require.NoError(t, err)

	_, err = SaveWalletData(WalletData{"b": 2}, path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"b":2}`, string(content))
}

func TestSaveWalletDataInvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.json")

	filename, err := SaveWalletData(WalletData{"a": 1}, path)
	assert.Empty(t, filename)

	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, path, saveErr.Filename)
}

// The wallet document is pass-through: fields the client never looks
// at must land on disk unchanged, numbers included.
func TestSaveWalletDataPassThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	data := WalletData{
		"address":      "0xabc",
		"balance":      map[string]interface{}{"ether": "1.5", "wei": "1500000000000000000"},
		"transactions": []interface{}{map[string]interface{}{"hash": "0x1"}},
		"extra":        "kept",
	}

	_, err := SaveWalletData(data, path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"address": "0xabc",
		"balance": {"ether": "1.5", "wei": "1500000000000000000"},
		"transactions": [{"hash": "0x1"}],
		"extra": "kept"
	}`, string(content))
}
