//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"teacher-bot/domain/content"
	"teacher-bot/domain/intent"
)

// JokeFetcher fetches one joke from an external provider.
// Transport errors, non-success statuses and malformed payloads wrap errors.ErrFetch.
type JokeFetcher interface {
	FetchJoke(ctx context.Context) (string, error)
}

// RiddleFetcher fetches one two-part riddle. A single-part payload
// wraps errors.ErrNotTwoPart, every other failure errors.ErrFetch.
type RiddleFetcher interface {
	FetchRiddle(ctx context.Context) (content.Riddle, error)
}

// Classifier maps an utterance to exactly one intent. It never fails.
type Classifier interface {
	Predict(utterance string) intent.Label
}

// Speaker reads text aloud. Fire and forget.
type Speaker interface {
	Speak(text string)
}

// Censor masks words not suitable for the audience and returns the matches.
type Censor interface {
	Censor(text string) (string, []string)
}
