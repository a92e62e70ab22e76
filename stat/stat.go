package stat

import (
	"fmt"
	"io"
	"sort"

	sent "github.com/revelaction/finer2standoff/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	NumTextbounds int
	// textbounds per type
	Types map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}, Types: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds a converted sentence.
func (h *Handler) Aggregate(s sent.Sentence, textbounds []sent.Textbound) {
	h.stats.NumSentences++
	h.stats.NumTokens += len(s)
	h.stats.TokensPerSentenceDis[len(s)]++
	h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences

	for _, tb := range textbounds {
		h.stats.NumTextbounds++
		h.stats.Types[tb.Type]++
	}
}

// Fprint writes the stats, types sorted by name.
func (s Stats) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Num sentences %d, num tokens %d, num tokens per sentence %d, num textbounds %d\n",
		s.NumSentences, s.NumTokens, s.TokensPerSentenceMean, s.NumTextbounds)
	if err != nil {
		return err
	}

	types := make([]string, 0, len(s.Types))
	for t := range s.Types {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		if _, err := fmt.Fprintf(w, "%12s %d\n", t, s.Types[t]); err != nil {
			return err
		}
	}

	return nil
}
