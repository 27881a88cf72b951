package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"teacher-bot/domain/content"
	"teacher-bot/errors"
)

// DefaultRiddleURL asks JokeAPI for two-part content only.
const DefaultRiddleURL = "https://v2.jokeapi.dev/joke/Miscellaneous?type=twopart&lang=en"

type riddlePayload struct {
	Error    bool   `json:"error"`
	Message  string `json:"message"`
	ID       int64  `json:"id"`
	Type     string `json:"type"`
	Setup    string `json:"setup"`
	Delivery string `json:"delivery"`
	Joke     string `json:"joke"`
}

type RiddleClient struct {
	client    *http.Client
	url       string
	userAgent string
	log       *slog.Logger
}

func NewRiddleClient(client *http.Client, url, userAgent string, log *slog.Logger) *RiddleClient {
	return &RiddleClient{client: client, url: url, userAgent: userAgent, log: log}
}

// FetchRiddle returns a complete two-part riddle, never a half-filled one.
func (c *RiddleClient) FetchRiddle(ctx context.Context) (content.Riddle, error) {
	var payload riddlePayload
	if err := getJSON(ctx, c.client, c.url, c.userAgent, &payload); err != nil {
		return content.Riddle{}, err
	}
	if payload.Error {
		return content.Riddle{}, fmt.Errorf("%w: provider error: %s", errors.ErrFetch, payload.Message)
	}
	if payload.Type != "twopart" {
		return content.Riddle{}, fmt.Errorf("%w: got type %q", errors.ErrNotTwoPart, payload.Type)
	}

	riddle := content.Riddle{
		Question: strings.TrimSpace(payload.Setup),
		Answer:   strings.TrimSpace(payload.Delivery),
	}
	if !riddle.IsComplete() {
		return content.Riddle{}, fmt.Errorf("%w: missing setup or delivery", errors.ErrNotTwoPart)
	}
	c.log.Debug("Riddle fetched", "id", payload.ID)
	return riddle, nil
}
