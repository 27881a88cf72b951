//go:generate go run go.uber.org/mock/mockgen -source=dialogue_service.go -destination=../mocks/mock_dialogue_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/abadojack/whatlanggo"

	"teacher-bot/contract"
	"teacher-bot/domain/content"
	"teacher-bot/domain/dialogue"
	"teacher-bot/domain/intent"
)

const (
	GreetingReply = "Hello! I'm here to help you. What would you like to know?"
	QuestionReply = "That's a great question! Can you tell me a bit more?"
	FarewellReply = "Goodbye! Hope to chat with you again soon!"
	RiddleIntro   = "I have a riddle for you, try to solve it!"
	FallbackReply = "I'm not sure how to respond to that."
)

type IDialogueService interface {
	Dispatch(ctx context.Context, utterance string) dialogue.Reply
}

// DialogueService answers one utterance at a time. It owns the session's
// joke history through the joke service and never returns an error.
type DialogueService struct {
	log        *slog.Logger
	classifier contract.Classifier
	jokes      IJokeService
	riddles    IRiddleService
	censor     contract.Censor
}

func NewDialogueService(log *slog.Logger, classifier contract.Classifier,
	jokes IJokeService, riddles IRiddleService, censor contract.Censor) *DialogueService {
	return &DialogueService{
		log:        log,
		classifier: classifier,
		jokes:      jokes,
		riddles:    riddles,
		censor:     censor,
	}
}

// Dispatch classifies the utterance and runs the matching handler.
func (s *DialogueService) Dispatch(ctx context.Context, utterance string) dialogue.Reply {
	label := s.classifier.Predict(utterance)
	s.log.Debug("Intent classified", "intent", label, "lang", language(utterance))

	switch label {
	case intent.Joke:
		joke, ok := s.jokes.GetJoke(ctx)
		if !ok {
			return dialogue.UnavailableReply{Label: label, Text: joke}
		}
		return dialogue.JokeReply{Text: s.clean(joke)}
	case intent.Riddle:
		riddle, ok := s.riddles.GetRiddle(ctx)
		if !ok {
			return dialogue.UnavailableReply{Label: label, Text: RiddleUnavailableMessage}
		}
		return dialogue.RiddleReply{
			Intro: RiddleIntro,
			Riddle: content.Riddle{
				Question: s.clean(riddle.Question),
				Answer:   s.clean(riddle.Answer),
			},
		}
	default:
		text, ok := CannedResponse(label)
		if !ok {
			s.log.Warn("No canned response for intent", "intent", label)
		}
		return dialogue.CannedReply{Label: label, Text: text}
	}
}

// CannedResponse is the response table for intents answered without content.
// Unknown labels get the fallback text and false.
func CannedResponse(label intent.Label) (string, bool) {
	switch label {
	case intent.Greeting:
		return GreetingReply, true
	case intent.Question:
		return QuestionReply, true
	case intent.Farewell:
		return FarewellReply, true
	case intent.Riddle:
		return RiddleIntro, true
	default:
		return FallbackReply, false
	}
}

func (s *DialogueService) clean(text string) string {
	if s.censor == nil {
		return text
	}
	censored, _ := s.censor.Censor(text)
	return censored
}

// language tags the utterance for logs; short utterances are often guessed wrong.
func language(utterance string) string {
	if strings.TrimSpace(utterance) == "" {
		return ""
	}
	info := whatlanggo.Detect(utterance)
	if info.Lang < 0 {
		return ""
	}
	return info.Lang.Iso6391()
}
