package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"teacher-bot/errors"
	"teacher-bot/infrastructure/fetcher"
)

const DefaultUserAgent = "Teacher Bot for Kids"

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT,default=5s"`
	MaxJokeAttempts int           `env:"MAX_JOKE_ATTEMPTS,default=5" validate:"min=1"`
	JokeAPIURL      string        `env:"JOKE_API_URL" validate:"omitempty,url"`
	RiddleAPIURL    string        `env:"RIDDLE_API_URL" validate:"omitempty,url"`
	UserAgent       string        `env:"USER_AGENT"`
	CorpusFile      string        `env:"CORPUS_FILE"`
	CensoredWords   string        `env:"CENSORED_WORDS"`
	CensorCharacter string        `env:"CENSOR_CHARACTER,default=*"`
	SpeechCommand   string        `env:"SPEECH_COMMAND"`
	SpeechTimeout   time.Duration `env:"SPEECH_TIMEOUT,default=30s"`
	Colours         bool          `env:"COLOURS,default=true"`
}

var validate = validator.New()

// LoadConfig reads a local .env file when present, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// withDefaults fills the values that cannot be written in a struct tag.
func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.JokeAPIURL) == "" {
		c.JokeAPIURL = fetcher.DefaultJokeURL
	}
	if strings.TrimSpace(c.RiddleAPIURL) == "" {
		c.RiddleAPIURL = fetcher.DefaultRiddleURL
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: FETCH_TIMEOUT must be positive, got %s", errors.ErrInvalidConfig, c.FetchTimeout)
	}
	if _, err := c.CharacterRune(); err != nil {
		return err
	}
	return nil
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CensorCharacter)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"%w: CENSOR_CHARACTER must be a single character, got %q",
			errors.ErrInvalidConfig, c.CensorCharacter,
		)
	}
	return r[0], nil
}
