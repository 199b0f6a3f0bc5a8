// Package sentiment scores communication content with the VADER lexicon.
package sentiment

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"gonum.org/v1/gonum/stat"

	"autoready/internal/domain"
)

var (
	analyzerOnce sync.Once
	analyzer     *govader.SentimentIntensityAnalyzer
)

// Init loads the sentiment lexicon. It is safe to call more than once; the
// analyzer is immutable reference data shared process-wide. Scoring calls
// Init on demand, so callers only need it to front-load the lexicon cost.
func Init() {
	analyzerOnce.Do(func() {
		analyzer = govader.NewSentimentIntensityAnalyzer()
	})
}

// Compound returns the compound polarity score in [-1, 1] for a single
// text snippet.
func Compound(text string) float64 {
	Init()
	return analyzer.PolarityScores(text).Compound
}

// MeanCompound scores every chat and email with non-blank content and
// returns the mean compound polarity, or 0.0 when nothing is scoreable.
func MeanCompound(comms domain.CommunicationBundle) float64 {
	var scores []float64
	for _, ev := range comms.Chats {
		if strings.TrimSpace(ev.Content) != "" {
			scores = append(scores, Compound(ev.Content))
		}
	}
	for _, ev := range comms.Emails {
		if strings.TrimSpace(ev.Content) != "" {
			scores = append(scores, Compound(ev.Content))
		}
	}
	if len(scores) == 0 {
		return 0.0
	}
	return stat.Mean(scores, nil)
}
