package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClientNormalizesBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"no trailing slash", "http://x", "http://x"},
		{"single trailing slash", "http://x/", "http://x"},
		{"multiple trailing slashes", "http://x///", "http://x"},
		{"slash elsewhere untouched", "http://x/api/", "http://x/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.baseURL)
			assert.Equal(t, tt.want, client.BaseURL())
		})
	}
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, "http://localhost:3000", client.BaseURL())
}
