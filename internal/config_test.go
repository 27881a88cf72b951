package internal

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"teacher-bot/errors"
	"teacher-bot/infrastructure/fetcher"
)

var configKeys = []string{
	"LOG_LEVEL", "FETCH_TIMEOUT", "MAX_JOKE_ATTEMPTS", "JOKE_API_URL", "RIDDLE_API_URL",
	"USER_AGENT", "CORPUS_FILE", "CENSORED_WORDS", "CENSOR_CHARACTER", "SPEECH_COMMAND",
	"SPEECH_TIMEOUT", "COLOURS",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	clearEnv(t)

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("INFO", config.LogLevel)
	req.Equal(5*time.Second, config.FetchTimeout)
	req.Equal(5, config.MaxJokeAttempts)
	req.Equal(fetcher.DefaultJokeURL, config.JokeAPIURL)
	req.Equal(fetcher.DefaultRiddleURL, config.RiddleAPIURL)
	req.Equal(DefaultUserAgent, config.UserAgent)
	req.Empty(config.SpeechCommand)
	req.True(config.Colours)

	r, err := config.CharacterRune()
	req.NoError(err)
	req.Equal('*', r)
}

func TestLoadConfig_Overrides(t *testing.T) {
	req := require.New(t)
	clearEnv(t)
	t.Setenv("FETCH_TIMEOUT", "750ms")
	t.Setenv("MAX_JOKE_ATTEMPTS", "2")
	t.Setenv("JOKE_API_URL", "http://localhost:9000/joke")
	t.Setenv("CENSOR_CHARACTER", "#")
	t.Setenv("SPEECH_COMMAND", "espeak -s 140")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal(750*time.Millisecond, config.FetchTimeout)
	req.Equal(2, config.MaxJokeAttempts)
	req.Equal("http://localhost:9000/joke", config.JokeAPIURL)
	req.Equal("espeak -s 140", config.SpeechCommand)

	r, err := config.CharacterRune()
	req.NoError(err)
	req.Equal('#', r)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero attempts", "MAX_JOKE_ATTEMPTS", "0"},
		{"negative timeout", "FETCH_TIMEOUT", "-1s"},
		{"multi rune censor character", "CENSOR_CHARACTER", "**"},
		{"not a url", "RIDDLE_API_URL", "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			req.ErrorIs(err, errors.ErrInvalidConfig)
		})
	}
}
