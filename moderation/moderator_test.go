package moderation

import (
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"teacher-bot/errors"
)

const replacementChar = '*'

func embeddedModerator(t *testing.T) Moderator {
	t.Helper()
	data, err := LoadEmbedded()
	require.NoError(t, err)
	mod, err := NewModerator(data.Words, replacementChar, logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	return mod
}

func TestModerator_Censor(t *testing.T) {
	mod := embeddedModerator(t)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Forbidden word in a joke",
			input:    "Don't be stupid, said the cow.",
			expected: "Don't be ******, said the cow.",
			words:    []string{"stupid"},
		},
		{
			name:     "Two-word entry keeps its length",
			input:    "Shut up and tell me a joke!",
			expected: "******* and tell me a joke!",
			words:    []string{"shutup"},
		},
		{
			name:     "Leet speak",
			input:    "My dog is $tup1d",
			expected: "My dog is ******",
			words:    []string{"stupid"},
		},
		{
			name:     "Repeated word with punctuation",
			input:    "Damn, damn, DAMN!",
			expected: "****, ****, ****!",
			words:    []string{"damn", "damn", "damn"},
		},
		{
			name:     "Word followed by an apostrophe",
			input:    "The idiot's guide to riddles",
			expected: "The *****'s guide to riddles",
			words:    []string{"idiot"},
		},
		{
			name:     "Entry spelled across two innocent words",
			input:    "Why did Adam never eat the apple?",
			expected: "Why did Adam never eat the apple?",
		},
		{
			name:     "Two-word entry hidden across three words",
			input:    "The bus hut up the road was closed.",
			expected: "The bus hut up the road was closed.",
		},
		{
			name:     "Entry as the start of a longer word",
			input:    "A drunken pirate walks into a bar.",
			expected: "A drunken pirate walks into a bar.",
		},
		{
			name:     "Innocent riddle",
			input:    "What has keys but can't open locks? A piano.",
			expected: "What has keys but can't open locks? A piano.",
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content)
			req.Equal(tt.words, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a dictionary mixing noise entries and a real word
	mod, err := NewModerator([]string{"...", ",,,", "", "damn"}, replacementChar, log)
	req.NoError(err)

	// Then the real word is censored
	content, words := mod.Censor("Damn, it rained on the picnic")
	req.Equal("****, it rained on the picnic", content)
	req.Equal([]string{"damn"}, words)

	// Then a match ending inside the next word is ignored
	content, words = mod.Censor("The dam never broke")
	req.Equal("The dam never broke", content)
	req.Nil(words)

	// Then noise alone is left alone
	content, words = mod.Censor("Knock knock ...")
	req.Equal("Knock knock ...", content)
	req.Nil(words)
}

func TestModerator_Without_Words(t *testing.T) {
	req := require.New(t)

	// Given a dictionary made of noise only
	mod, err := NewModerator([]string{"", "...", " - "}, replacementChar, nil)
	req.NoError(err)

	// Then everything passes through
	content, words := mod.Censor("I'm reading a book about anti-gravity.")
	req.Equal("I'm reading a book about anti-gravity.", content)
	req.Nil(words)
}

func TestLoadAll(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{
		"words/en.txt":    {Data: []byte("# comment\ndamn\r\nidiot\n\ndamn\n")},
		"words/fr.txt":    {Data: []byte("idiot\nbête\n")},
		"words/README.md": {Data: []byte("ignored")},
	}

	data, err := LoadAll(fsys, "words")
	req.NoError(err)
	req.Equal([]string{"damn", "idiot", "bête"}, data.Words)
	req.Equal([]string{"en", "fr"}, data.Languages)
}

func TestLoadAll_No_Words(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{"words/en.txt": {Data: []byte("# nothing\n\n")}}

	_, err := LoadAll(fsys, "words")
	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestLoadEmbedded(t *testing.T) {
	req := require.New(t)
	data, err := LoadEmbedded()
	req.NoError(err)
	req.Contains(data.Languages, "en")
	req.NotEmpty(data.Words)
}

func TestParseWords(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"stupid", "shut up"}, ParseWords(" stupid, ,shut up,"))
	req.Nil(ParseWords(""))
}
