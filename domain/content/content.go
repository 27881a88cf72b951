// Package content holds the externally fetched material the teacher tells.
package content

import "strings"

// Riddle is a two-part riddle. Question and Answer are either both set or both empty.
type Riddle struct {
	Question string
	Answer   string
}

// IsComplete reports whether both parts carry text.
func (r Riddle) IsComplete() bool {
	return strings.TrimSpace(r.Question) != "" && strings.TrimSpace(r.Answer) != ""
}
