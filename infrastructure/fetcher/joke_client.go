package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"teacher-bot/errors"
)

// DefaultJokeURL serves one random dad joke per request.
const DefaultJokeURL = "https://icanhazdadjoke.com/"

type jokePayload struct {
	ID     string `json:"id"`
	Joke   string `json:"joke"`
	Status int    `json:"status"`
}

type JokeClient struct {
	client    *http.Client
	url       string
	userAgent string
	log       *slog.Logger
}

func NewJokeClient(client *http.Client, url, userAgent string, log *slog.Logger) *JokeClient {
	return &JokeClient{client: client, url: url, userAgent: userAgent, log: log}
}

// FetchJoke returns the text of one joke.
func (c *JokeClient) FetchJoke(ctx context.Context) (string, error) {
	var payload jokePayload
	if err := getJSON(ctx, c.client, c.url, c.userAgent, &payload); err != nil {
		return "", err
	}
	if payload.Status != 0 && payload.Status != http.StatusOK {
		return "", fmt.Errorf("%w: payload status %d", errors.ErrFetch, payload.Status)
	}
	joke := strings.TrimSpace(payload.Joke)
	if joke == "" {
		return "", fmt.Errorf("%w: empty joke", errors.ErrFetch)
	}
	c.log.Debug("Joke fetched", "id", payload.ID)
	return joke, nil
}
