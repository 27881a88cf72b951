// Package jsonx decodes JSON with Sonic instead of encoding/json.
package jsonx

import (
	"github.com/bytedance/sonic"
)

var api = sonic.Config{
	EscapeHTML: false,
	UseInt64:   true,
}.Froze()

// Unmarshal parses the JSON-encoded data and stores the result in v.
func Unmarshal(data []byte, v interface{}) error {
	return api.Unmarshal(data, v)
}
