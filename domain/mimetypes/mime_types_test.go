package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected MIME
	}{
		{"joke payload", `{"id":"R7UfaahVfFd","joke":"My dog used to chase people on a bike a lot.","status":200}`, ApplicationJSON},
		{"html error page", "<!DOCTYPE html><html><body>Bad gateway</body></html>", TextHTML},
		{"plain text", "service unavailable", TextPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, Sniff([]byte(tt.body)))
		})
	}
}
