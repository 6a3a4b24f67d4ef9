package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthURL(t *testing.T) {
	tests := []struct {
		name string
		addr string
		base string
		want string
	}{
		{"defaults", "", "", "http://127.0.0.1:8080/api/v1/health"},
		{"bind all", "0.0.0.0:9000", "/", "http://127.0.0.1:9000/api/v1/health"},
		{"empty host", ":9000", "", "http://127.0.0.1:9000/api/v1/health"},
		{"base path", "127.0.0.1:8080", "/official-website/", "http://127.0.0.1:8080/official-website/api/v1/health"},
		{"garbage addr", "nonsense", "", "http://127.0.0.1:8080/api/v1/health"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, healthURL(tt.addr, tt.base))
		})
	}
}
