package services

import (
	"context"
	"log/slog"
	"time"

	"teacher-bot/contract"
	"teacher-bot/domain/content"
)

const RiddleUnavailableMessage = "Sorry, I couldn't fetch a riddle at the moment."

type IRiddleService interface {
	GetRiddle(ctx context.Context) (content.Riddle, bool)
}

type RiddleService struct {
	log     *slog.Logger
	fetcher contract.RiddleFetcher
	timeout time.Duration
}

func NewRiddleService(log *slog.Logger, fetcher contract.RiddleFetcher, timeout time.Duration) *RiddleService {
	return &RiddleService{log: log, fetcher: fetcher, timeout: timeout}
}

// GetRiddle returns a complete riddle and true, or an empty riddle and false.
// The underlying error is logged, never returned.
func (s *RiddleService) GetRiddle(ctx context.Context) (content.Riddle, bool) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	riddle, err := s.fetcher.FetchRiddle(ctx)
	if err != nil {
		s.log.Warn("Riddle unavailable", "error", err)
		return content.Riddle{}, false
	}
	if !riddle.IsComplete() {
		s.log.Warn("Riddle dropped, one part is missing")
		return content.Riddle{}, false
	}
	return riddle, true
}
