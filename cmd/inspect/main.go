// Command inspect trains the intent classifier and prints what it learned.
// Utterances given as arguments are scored against every label:
//
//	go run ./cmd/inspect "how old are you" "tell me a riddle"
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"teacher-bot/ai"
	"teacher-bot/domain/intent"
)

type Config struct {
	CorpusFile string `envconfig:"CORPUS_FILE"`
	// TOP_TOKENS limits the tokens listed per label
	TopTokens int `envconfig:"TOP_TOKENS" default:"5"`
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Config error: ", err)
	}

	corpus, err := loadCorpus(config.CorpusFile)
	if err != nil {
		log.Fatal("Corpus error: ", err)
	}

	model, err := ai.NewIntentClassifier(corpus)
	if err != nil {
		log.Fatal("Training failed: ", err)
	}

	fmt.Printf("Vocabulary: %d tokens, %d examples\n\n", model.Vocabulary().Size(), corpus.Len())
	renderStats(os.Stdout, model, config.TopTokens)

	if utterances := os.Args[1:]; len(utterances) > 0 {
		fmt.Println()
		renderScores(os.Stdout, model, utterances)
	}
}

func loadCorpus(path string) (intent.Corpus, error) {
	corpus := intent.DefaultCorpus()
	if path == "" {
		return corpus, nil
	}
	extra, err := intent.LoadCorpus(path)
	if err != nil {
		return intent.Corpus{}, err
	}
	return corpus.With(extra.Examples()...)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func renderStats(w io.Writer, model *ai.Model, top int) {
	table := newTable(w, []string{"Label", "Examples", "Prior", "Tokens", "Top tokens"})
	for _, stats := range model.Stats() {
		table.Append([]string{
			stats.Label.String(),
			fmt.Sprintf("%d", stats.Examples),
			fmt.Sprintf("%.3f", stats.Prior),
			fmt.Sprintf("%d", stats.TotalTokens),
			topTokens(stats.TokenCounts, top),
		})
	}
	table.Render()
}

// topTokens lists the most frequent tokens first, ties in alphabetical order.
func topTokens(counts map[string]int, top int) string {
	tokens := lo.Keys(counts)
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})
	if top > 0 && len(tokens) > top {
		tokens = tokens[:top]
	}
	return strings.Join(lo.Map(tokens, func(token string, _ int) string {
		return fmt.Sprintf("%s:%d", token, counts[token])
	}), " ")
}

func renderScores(w io.Writer, model *ai.Model, utterances []string) {
	header := append([]string{"Utterance", "Predicted"}, lo.Map(intent.Labels(), func(l intent.Label, _ int) string {
		return l.String()
	})...)
	table := newTable(w, header)
	for _, utterance := range utterances {
		row := []string{utterance, model.Predict(utterance).String()}
		for _, score := range model.Scores(utterance) {
			row = append(row, fmt.Sprintf("%.3f", score.LogProb))
		}
		table.Append(row)
	}
	table.Render()
}
