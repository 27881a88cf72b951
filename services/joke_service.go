package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"teacher-bot/contract"
	"teacher-bot/errors"
	"teacher-bot/repositories"
)

const (
	JokeUnavailableMessage = "Sorry, I couldn't fetch a joke at the moment."
	JokesExhaustedMessage  = "Sorry, I've run out of new jokes for now."
)

type IJokeService interface {
	GetJoke(ctx context.Context) (string, bool)
}

// JokeService tells jokes that were not told before in the session.
type JokeService struct {
	log         *slog.Logger
	fetcher     contract.JokeFetcher
	repository  repositories.IJokeRepository
	maxAttempts int
	timeout     time.Duration
}

// NewJokeService bounds each GetJoke to maxAttempts fetches and each fetch to timeout.
func NewJokeService(log *slog.Logger, fetcher contract.JokeFetcher,
	repository repositories.IJokeRepository, maxAttempts int, timeout time.Duration) *JokeService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &JokeService{
		log:         log,
		fetcher:     fetcher,
		repository:  repository,
		maxAttempts: maxAttempts,
		timeout:     timeout,
	}
}

// GetJoke returns a new joke and true, or a user-facing apology and false.
// A fetch failure stops immediately; only duplicates are retried.
func (s *JokeService) GetJoke(ctx context.Context) (string, bool) {
	joke, err := s.nextJoke(ctx)
	switch {
	case err == nil:
		return joke, true
	case errors.Is(err, errors.ErrJokesExhausted):
		s.log.Warn("Joke source keeps repeating itself", "attempts", s.maxAttempts)
		return JokesExhaustedMessage, false
	case errors.Is(err, errors.ErrFetch):
		s.log.Warn("Joke fetch failed", "error", err)
		return JokeUnavailableMessage, false
	default:
		s.log.Error("Told jokes store failed", "error", err)
		return JokeUnavailableMessage, false
	}
}

func (s *JokeService) nextJoke(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		joke, err := s.fetch(ctx)
		if err != nil {
			return "", err
		}

		told, err := s.repository.Contains(joke)
		if err != nil {
			return "", err
		}
		if told {
			s.log.Debug("Joke already told, fetching another", "attempt", attempt)
			continue
		}

		if err := s.repository.Add(joke); err != nil {
			return "", err
		}
		return joke, nil
	}
	return "", fmt.Errorf("%w (%d)", errors.ErrJokesExhausted, s.maxAttempts)
}

func (s *JokeService) fetch(ctx context.Context) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	joke, err := s.fetcher.FetchJoke(ctx)
	if err != nil && !errors.Is(err, errors.ErrFetch) {
		err = fmt.Errorf("%w: %v", errors.ErrFetch, err)
	}
	return joke, err
}
