package ai

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"teacher-bot/domain/intent"
	"teacher-bot/errors"
)

// FeatureVector holds one count per vocabulary token.
type FeatureVector []int

// Vocabulary maps every distinct training token to a stable index.
// It is read-only once built.
type Vocabulary struct {
	tokens []string
	index  map[string]int
}

// Tokenize case-folds the text and splits it on anything that is not a letter or a digit.
func Tokenize(text string) []string {
	// A Caser keeps state, so a new one is made per call.
	folded := cases.Fold().String(text)
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// BuildVocabulary collects the distinct tokens of the corpus in first-seen order.
func BuildVocabulary(corpus intent.Corpus) (Vocabulary, error) {
	if corpus.Len() == 0 {
		return Vocabulary{}, errors.ErrEmptyCorpus
	}

	v := Vocabulary{index: make(map[string]int)}
	for _, example := range corpus.Examples() {
		for _, token := range Tokenize(example.Utterance) {
			if _, ok := v.index[token]; ok {
				continue
			}
			v.index[token] = len(v.tokens)
			v.tokens = append(v.tokens, token)
		}
	}
	return v, nil
}

// Vectorize counts the utterance tokens found in the vocabulary.
// Out-of-vocabulary tokens are dropped.
func (v Vocabulary) Vectorize(utterance string) FeatureVector {
	vec := make(FeatureVector, len(v.tokens))
	for _, token := range Tokenize(utterance) {
		if idx, ok := v.index[token]; ok {
			vec[idx]++
		}
	}
	return vec
}

func (v Vocabulary) Size() int {
	return len(v.tokens)
}

// Tokens returns a copy of the tokens in index order.
func (v Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}

func (v Vocabulary) Index(token string) (int, bool) {
	idx, ok := v.index[token]
	return idx, ok
}
