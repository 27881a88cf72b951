package intent

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"teacher-bot/errors"
)

var validate = validator.New()

// TrainingExample is one labeled utterance.
type TrainingExample struct {
	Utterance string `yaml:"utterance" validate:"required"`
	Label     Label  `yaml:"label" validate:"required,oneof=greeting question joke farewell riddle"`
}

// Corpus is the immutable set of training examples.
// It is built once at startup and handed to the classifier by value.
type Corpus struct {
	examples []TrainingExample
}

// NewCorpus validates and copies the given examples.
// An empty corpus is accepted here; training rejects it.
func NewCorpus(examples ...TrainingExample) (Corpus, error) {
	for i, example := range examples {
		if !example.Label.IsValid() {
			return Corpus{}, fmt.Errorf("%w: example %d has label %q", errors.ErrUnknownLabel, i, example.Label)
		}
		if err := validate.Struct(example); err != nil {
			return Corpus{}, fmt.Errorf("%w: example %d: %v", errors.ErrInvalidExample, i, err)
		}
	}
	copied := make([]TrainingExample, len(examples))
	copy(copied, examples)
	return Corpus{examples: copied}, nil
}

// DefaultCorpus is the built-in training set: the bot's twelve historical
// examples plus "how old is your teacher", a deliberate addition to that data
// set. Trained on the twelve alone, "how old are you" is classified as a
// greeting because "how are you" shares three of its tokens and greeting has
// the higher prior; the extra question example restores it.
func DefaultCorpus() Corpus {
	return Corpus{examples: []TrainingExample{
		{Utterance: "hello", Label: Greeting},
		{Utterance: "hi", Label: Greeting},
		{Utterance: "how are you", Label: Greeting},
		{Utterance: "what is your name", Label: Question},
		{Utterance: "how old are you", Label: Question},
		{Utterance: "how old is your teacher", Label: Question},
		{Utterance: "tell me a joke", Label: Joke},
		{Utterance: "another joke", Label: Joke},
		{Utterance: "joke please", Label: Joke},
		{Utterance: "bye", Label: Farewell},
		{Utterance: "goodbye", Label: Farewell},
		{Utterance: "tell me a riddle", Label: Riddle},
		{Utterance: "another riddle", Label: Riddle},
	}}
}

// With returns a new corpus holding c's examples followed by extra.
func (c Corpus) With(extra ...TrainingExample) (Corpus, error) {
	return NewCorpus(append(c.Examples(), extra...)...)
}

// Examples returns a copy of the examples in insertion order.
func (c Corpus) Examples() []TrainingExample {
	out := make([]TrainingExample, len(c.examples))
	copy(out, c.examples)
	return out
}

func (c Corpus) Len() int {
	return len(c.examples)
}

// Count returns the number of examples carrying label.
func (c Corpus) Count(label Label) int {
	n := 0
	for _, example := range c.examples {
		if example.Label == label {
			n++
		}
	}
	return n
}

// LoadCorpus reads a YAML list of training examples:
//
//	- utterance: tell me something funny
//	  label: joke
func LoadCorpus(path string) (Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}
	var examples []TrainingExample
	if err := yaml.Unmarshal(data, &examples); err != nil {
		return Corpus{}, fmt.Errorf("failed to decode corpus file %s: %w", path, err)
	}
	return NewCorpus(examples...)
}
