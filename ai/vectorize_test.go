package ai

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"teacher-bot/domain/intent"
	"teacher-bot/errors"
)

func TestTokenize(t *testing.T) {

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Lower-cases words", input: "Tell Me A JOKE", expected: []string{"tell", "me", "a", "joke"}},
		{name: "Splits on punctuation", input: "hi,there!how's it", expected: []string{"hi", "there", "how", "s", "it"}},
		{name: "Collapses whitespace", input: "  another \t riddle\n", expected: []string{"another", "riddle"}},
		{name: "Keeps digits", input: "tell me 2 jokes", expected: []string{"tell", "me", "2", "jokes"}},
		{name: "Empty string", input: "", expected: []string{}},
		{name: "Only noise", input: "?!...", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, Tokenize(tt.input), tt.name)
		})
	}
}

func TestBuildVocabulary_Empty_Corpus(t *testing.T) {
	req := require.New(t)
	corpus, err := intent.NewCorpus()
	req.NoError(err)

	_, err = BuildVocabulary(corpus)
	req.ErrorIs(err, errors.ErrEmptyCorpus)
}

func TestBuildVocabulary_First_Seen_Order(t *testing.T) {
	req := require.New(t)

	// Given the built-in corpus
	vocabulary, err := BuildVocabulary(intent.DefaultCorpus())
	req.NoError(err)

	// Then tokens are indexed in the order they first appear
	req.Equal([]string{"hello", "hi", "how", "are", "you"}, vocabulary.Tokens()[:5])
	idx, ok := vocabulary.Index("joke")
	req.True(ok)
	req.Equal("joke", vocabulary.Tokens()[idx])
	_, ok = vocabulary.Index("banana")
	req.False(ok)
}

func TestBuildVocabulary_Every_Token_Comes_From_Corpus(t *testing.T) {
	req := require.New(t)
	corpus := intent.DefaultCorpus()
	vocabulary, err := BuildVocabulary(corpus)
	req.NoError(err)

	seen := lo.FlatMap(corpus.Examples(), func(e intent.TrainingExample, _ int) []string {
		return Tokenize(e.Utterance)
	})
	for _, token := range vocabulary.Tokens() {
		req.Contains(seen, token)
	}
	req.Equal(len(lo.Uniq(seen)), vocabulary.Size())
}

func TestBuildVocabulary_Same_Token_Set_On_Rebuild(t *testing.T) {
	req := require.New(t)
	corpus := intent.DefaultCorpus()

	first, err := BuildVocabulary(corpus)
	req.NoError(err)
	second, err := BuildVocabulary(corpus)
	req.NoError(err)

	req.ElementsMatch(first.Tokens(), second.Tokens())
}

func TestVocabulary_Vectorize(t *testing.T) {
	req := require.New(t)
	vocabulary, err := BuildVocabulary(intent.DefaultCorpus())
	req.NoError(err)

	// When an utterance repeats a known token and contains unknown ones
	vec := vocabulary.Vectorize("Joke, joke... banana JOKE")

	// Then only the known token is counted, once per occurrence
	req.Len(vec, vocabulary.Size())
	idx, _ := vocabulary.Index("joke")
	req.Equal(3, vec[idx])
	req.Equal(3, lo.Sum(vec))

	// And vectorizing twice gives the same vector
	req.Equal(vec, vocabulary.Vectorize("Joke, joke... banana JOKE"))

	// And an empty utterance gives an all-zero vector
	req.Equal(0, lo.Sum(vocabulary.Vectorize("")))
	req.Len(vocabulary.Vectorize(""), vocabulary.Size())
}
