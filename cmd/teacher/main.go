package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"

	"teacher-bot/ai"
	"teacher-bot/console"
	"teacher-bot/domain/intent"
	"teacher-bot/infrastructure/fetcher"
	"teacher-bot/internal"
	"teacher-bot/moderation"
	"teacher-bot/repositories"
	"teacher-bot/services"
	"teacher-bot/speech"
	"teacher-bot/storage"
)

// Exit codes returned to the shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Teacher bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the bot and blocks until the session ends.
// Every startup failure is returned before the first prompt is shown.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	censorChar, err := config.CharacterRune()
	if err != nil {
		return exitConfig, err
	}

	// 2. Training corpus and model
	corpus := intent.DefaultCorpus()
	if config.CorpusFile != "" {
		extra, err := intent.LoadCorpus(config.CorpusFile)
		if err != nil {
			return exitConfig, fmt.Errorf("corpus error: %w", err)
		}
		if corpus, err = corpus.With(extra.Examples()...); err != nil {
			return exitConfig, fmt.Errorf("corpus error: %w", err)
		}
	}
	model, err := ai.NewIntentClassifier(corpus)
	if err != nil {
		return exitConfig, fmt.Errorf("training failed: %w", err)
	}
	log.Info("Intent classifier trained",
		"examples", corpus.Len(),
		"vocabulary", model.Vocabulary().Size())

	// 3. Told-joke store, one key prefix per session
	db, err := storage.OpenInMemory(log)
	if err != nil {
		return exitRuntime, fmt.Errorf("told-joke store opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing told-joke store...")
		_ = db.Close()
	}()
	session := uuid.New()
	jokeRepository := repositories.NewJokeRepository(db, log, session)

	// 4. Moderation of fetched content
	words := moderation.ParseWords(config.CensoredWords)
	if len(words) == 0 {
		data, err := moderation.LoadEmbedded()
		if err != nil {
			return exitConfig, fmt.Errorf("censored words error: %w", err)
		}
		words = data.Words
		log.Debug("Censored dictionary loaded", "languages", data.Languages, "words", len(words))
	}
	moderator, err := moderation.NewModerator(words, censorChar, log)
	if err != nil {
		return exitConfig, fmt.Errorf("moderator error: %w", err)
	}

	// 5. Content providers and services
	client := fetcher.NewHTTPClient(config.FetchTimeout)
	jokeService := services.NewJokeService(log,
		fetcher.NewJokeClient(client, config.JokeAPIURL, config.UserAgent, log),
		jokeRepository, config.MaxJokeAttempts, config.FetchTimeout)
	riddleService := services.NewRiddleService(log,
		fetcher.NewRiddleClient(client, config.RiddleAPIURL, config.UserAgent, log),
		config.FetchTimeout)
	dialogueService := services.NewDialogueService(log, model, jokeService, riddleService, moderator)

	// 6. Console session until exit, end of input or Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	speaker := speech.NewCommandSpeaker(config.SpeechCommand, config.SpeechTimeout, log)
	log.Info("Session started", "session", session)
	if err := console.NewSession(os.Stdin, os.Stdout, speaker, dialogueService, log, config.Colours).Run(ctx); err != nil {
		return exitRuntime, err
	}

	if told, err := jokeRepository.List(); err == nil {
		log.Info("Session finished", "session", session, "jokes_told", len(told))
	}
	return exitOK, nil
}
