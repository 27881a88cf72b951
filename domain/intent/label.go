// Package intent defines the closed set of intents the teacher understands
// and the training corpus the classifier learns them from.
package intent

import (
	"fmt"
	"strings"

	"teacher-bot/errors"
)

type Label string

const (
	Greeting Label = "greeting"
	Question Label = "question"
	Joke     Label = "joke"
	Farewell Label = "farewell"
	Riddle   Label = "riddle"
)

// Labels returns the closed label set in its fixed enumeration order.
// Classification ties are broken by this order, first wins.
func Labels() []Label {
	return []Label{Greeting, Question, Joke, Farewell, Riddle}
}

func (l Label) String() string {
	return string(l)
}

// Position returns the index of the label in Labels(), or -1 when unknown.
func (l Label) Position() int {
	for i, label := range Labels() {
		if label == l {
			return i
		}
	}
	return -1
}

func (l Label) IsValid() bool {
	return l.Position() >= 0
}

func ParseLabel(s string) (Label, error) {
	label := Label(strings.ToLower(strings.TrimSpace(s)))
	if !label.IsValid() {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownLabel, s)
	}
	return label, nil
}
