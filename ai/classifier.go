package ai

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"teacher-bot/domain/intent"
	"teacher-bot/errors"
)

// Model is a multinomial Naive Bayes model over bag-of-words vectors.
// Conditional probabilities use add-one smoothing. It is immutable once trained.
type Model struct {
	vocabulary Vocabulary
	labels     []labelModel
	examples   int
}

type labelModel struct {
	label         intent.Label
	examples      int
	tokenCounts   []int
	totalTokens   int
	logPrior      float64
	logLikelihood []float64
}

// LabelStats is the per-label summary of a trained model.
type LabelStats struct {
	Label       intent.Label
	Examples    int
	Prior       float64
	TotalTokens int
	TokenCounts map[string]int
}

// Score is the log-probability of an utterance under one label.
type Score struct {
	Label   intent.Label
	LogProb float64
}

// NewIntentClassifier builds the vocabulary of the corpus and trains a model on it.
func NewIntentClassifier(corpus intent.Corpus) (*Model, error) {
	vocabulary, err := BuildVocabulary(corpus)
	if err != nil {
		return nil, err
	}
	return Train(corpus, vocabulary)
}

// Train sums the feature vectors of each label and derives priors and smoothed likelihoods.
// Every label of the closed set needs at least one example.
func Train(corpus intent.Corpus, vocabulary Vocabulary) (*Model, error) {
	if corpus.Len() == 0 {
		return nil, errors.ErrEmptyCorpus
	}

	missing := lo.Filter(intent.Labels(), func(label intent.Label, _ int) bool {
		return corpus.Count(label) == 0
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: no examples for %v", errors.ErrInsufficientData, missing)
	}

	size := vocabulary.Size()
	byLabel := make(map[intent.Label]*labelModel, len(intent.Labels()))
	labels := make([]labelModel, len(intent.Labels()))
	for i, label := range intent.Labels() {
		labels[i] = labelModel{label: label, tokenCounts: make([]int, size)}
		byLabel[label] = &labels[i]
	}

	for _, example := range corpus.Examples() {
		lm := byLabel[example.Label]
		lm.examples++
		for idx, count := range vocabulary.Vectorize(example.Utterance) {
			lm.tokenCounts[idx] += count
			lm.totalTokens += count
		}
	}

	total := float64(corpus.Len())
	for i := range labels {
		lm := &labels[i]
		lm.logPrior = math.Log(float64(lm.examples) / total)
		denominator := float64(lm.totalTokens + size)
		lm.logLikelihood = make([]float64, size)
		for idx, count := range lm.tokenCounts {
			lm.logLikelihood[idx] = math.Log(float64(count+1) / denominator)
		}
	}

	return &Model{vocabulary: vocabulary, labels: labels, examples: corpus.Len()}, nil
}

// Predict returns the most probable label. Ties go to the label defined first.
// An utterance without known tokens gets the label with the highest prior.
func (m *Model) Predict(utterance string) intent.Label {
	scores := m.Scores(utterance)
	best := scores[0]
	for _, score := range scores[1:] {
		if score.LogProb > best.LogProb {
			best = score
		}
	}
	return best.Label
}

// Scores returns log(prior) + sum(count * log P(token|label)) for every label, in label order.
func (m *Model) Scores(utterance string) []Score {
	vec := m.vocabulary.Vectorize(utterance)
	scores := make([]Score, len(m.labels))
	for i, lm := range m.labels {
		logProb := lm.logPrior
		for idx, count := range vec {
			if count == 0 {
				continue
			}
			logProb += float64(count) * lm.logLikelihood[idx]
		}
		scores[i] = Score{Label: lm.label, LogProb: logProb}
	}
	return scores
}

// Prior returns the share of training examples carrying label.
func (m *Model) Prior(label intent.Label) float64 {
	for _, lm := range m.labels {
		if lm.label == label {
			return math.Exp(lm.logPrior)
		}
	}
	return 0
}

func (m *Model) Vocabulary() Vocabulary {
	return m.vocabulary
}

func (m *Model) Stats() []LabelStats {
	tokens := m.vocabulary.Tokens()
	return lo.Map(m.labels, func(lm labelModel, _ int) LabelStats {
		counts := make(map[string]int)
		for idx, count := range lm.tokenCounts {
			if count > 0 {
				counts[tokens[idx]] = count
			}
		}
		return LabelStats{
			Label:       lm.label,
			Examples:    lm.examples,
			Prior:       float64(lm.examples) / float64(m.examples),
			TotalTokens: lm.totalTokens,
			TokenCounts: counts,
		}
	})
}
