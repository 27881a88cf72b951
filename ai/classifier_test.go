package ai

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"teacher-bot/domain/intent"
	"teacher-bot/errors"
)

// twelveExampleCorpus is DefaultCorpus without "how old is your teacher".
func twelveExampleCorpus(t *testing.T) intent.Corpus {
	t.Helper()
	corpus, err := intent.NewCorpus(
		intent.TrainingExample{Utterance: "hello", Label: intent.Greeting},
		intent.TrainingExample{Utterance: "hi", Label: intent.Greeting},
		intent.TrainingExample{Utterance: "how are you", Label: intent.Greeting},
		intent.TrainingExample{Utterance: "what is your name", Label: intent.Question},
		intent.TrainingExample{Utterance: "how old are you", Label: intent.Question},
		intent.TrainingExample{Utterance: "tell me a joke", Label: intent.Joke},
		intent.TrainingExample{Utterance: "another joke", Label: intent.Joke},
		intent.TrainingExample{Utterance: "joke please", Label: intent.Joke},
		intent.TrainingExample{Utterance: "bye", Label: intent.Farewell},
		intent.TrainingExample{Utterance: "goodbye", Label: intent.Farewell},
		intent.TrainingExample{Utterance: "tell me a riddle", Label: intent.Riddle},
		intent.TrainingExample{Utterance: "another riddle", Label: intent.Riddle},
	)
	require.NoError(t, err)
	return corpus
}

func TestTrain_Empty_Corpus(t *testing.T) {
	req := require.New(t)
	corpus, err := intent.NewCorpus()
	req.NoError(err)

	_, err = Train(corpus, Vocabulary{})
	req.ErrorIs(err, errors.ErrEmptyCorpus)

	_, err = NewIntentClassifier(corpus)
	req.ErrorIs(err, errors.ErrEmptyCorpus)
}

func TestTrain_Label_Without_Examples(t *testing.T) {
	req := require.New(t)

	// Given a corpus with no riddle example
	corpus, err := intent.NewCorpus(
		intent.TrainingExample{Utterance: "hello", Label: intent.Greeting},
		intent.TrainingExample{Utterance: "what is your name", Label: intent.Question},
		intent.TrainingExample{Utterance: "tell me a joke", Label: intent.Joke},
		intent.TrainingExample{Utterance: "bye", Label: intent.Farewell},
	)
	req.NoError(err)

	// Then training is refused
	_, err = NewIntentClassifier(corpus)
	req.ErrorIs(err, errors.ErrInsufficientData)
	req.Contains(err.Error(), "riddle")
}

func TestModel_Priors(t *testing.T) {
	req := require.New(t)
	corpus := intent.DefaultCorpus()
	model, err := NewIntentClassifier(corpus)
	req.NoError(err)

	sum := 0.0
	for _, label := range intent.Labels() {
		prior := model.Prior(label)
		req.Greater(prior, 0.0, "label=%s", label)
		req.InDelta(float64(corpus.Count(label))/float64(corpus.Len()), prior, 1e-9)
		sum += prior
	}
	req.InDelta(1.0, sum, 1e-9)
	req.Equal(0.0, model.Prior("unknown"))
}

func TestModel_Predict_Training_Recall(t *testing.T) {
	req := require.New(t)
	corpus := intent.DefaultCorpus()
	model, err := NewIntentClassifier(corpus)
	req.NoError(err)

	for _, example := range corpus.Examples() {
		req.Equal(example.Label, model.Predict(example.Utterance), "utterance=%q", example.Utterance)
	}
}

func TestModel_Predict_Twelve_Example_Corpus(t *testing.T) {
	req := require.New(t)
	model, err := NewIntentClassifier(twelveExampleCorpus(t))
	req.NoError(err)

	tests := []struct {
		utterance string
		expected  intent.Label
	}{
		{utterance: "hi there", expected: intent.Greeting},
		{utterance: "tell me another joke", expected: intent.Joke},
		{utterance: "what is your name", expected: intent.Question},
		{utterance: "goodbye", expected: intent.Farewell},
		{utterance: "another riddle", expected: intent.Riddle},
		// "how are you" shares three tokens with it, and greeting has the higher prior.
		{utterance: "how old are you", expected: intent.Greeting},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, model.Predict(tt.utterance))
		})
	}
}

func TestModel_Predict_Without_Known_Tokens(t *testing.T) {
	req := require.New(t)
	model, err := NewIntentClassifier(twelveExampleCorpus(t))
	req.NoError(err)

	// Greeting and joke share the highest prior, greeting is defined first
	for i := 0; i < 5; i++ {
		req.Equal(intent.Greeting, model.Predict(""))
		req.Equal(intent.Greeting, model.Predict("zebra xylophone"))
	}
}

func TestModel_Predict_Tie_Goes_To_First_Label(t *testing.T) {
	req := require.New(t)

	// Given one example per label, so every prior is equal
	corpus, err := intent.NewCorpus(
		intent.TrainingExample{Utterance: "hello", Label: intent.Greeting},
		intent.TrainingExample{Utterance: "why", Label: intent.Question},
		intent.TrainingExample{Utterance: "joke", Label: intent.Joke},
		intent.TrainingExample{Utterance: "bye", Label: intent.Farewell},
		intent.TrainingExample{Utterance: "riddle", Label: intent.Riddle},
	)
	req.NoError(err)
	model, err := NewIntentClassifier(corpus)
	req.NoError(err)

	// Then an utterance without signal falls back on label order
	req.Equal(intent.Greeting, model.Predict("nothing known here"))
	req.Equal(intent.Riddle, model.Predict("riddle"))
}

func TestModel_Scores_Are_Smoothed(t *testing.T) {
	req := require.New(t)
	model, err := NewIntentClassifier(intent.DefaultCorpus())
	req.NoError(err)

	// "goodbye" was never seen with greeting, but its probability is not zero
	scores := model.Scores("goodbye")
	req.Len(scores, len(intent.Labels()))
	for i, score := range scores {
		req.Equal(intent.Labels()[i], score.Label)
		req.False(math.IsInf(score.LogProb, -1), "label=%s", score.Label)
	}
}

func TestModel_Stats(t *testing.T) {
	req := require.New(t)
	model, err := NewIntentClassifier(twelveExampleCorpus(t))
	req.NoError(err)

	stats := model.Stats()
	req.Len(stats, 5)

	joke := stats[intent.Joke.Position()]
	req.Equal(intent.Joke, joke.Label)
	req.Equal(3, joke.Examples)
	req.Equal(3, joke.TokenCounts["joke"])
	req.Equal(8, joke.TotalTokens)
	req.InDelta(0.25, joke.Prior, 1e-9)
}
