// Package sentiment scores text polarity with an AFINN-style valence
// lexicon. It is deterministic, requires no network access, and is used both
// as a real signal on the suggestion path and as a local fallback heuristic
// when the external completion provider is unavailable.
package sentiment

import "strings"

type Mood string

const (
	MoodPositive Mood = "positive"
	MoodNegative Mood = "negative"
	MoodNeutral  Mood = "neutral"
)

// Comparative-score thresholds for the coarse mood label.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// valences maps lowercase tokens to AFINN-style scores in [-5, 5].
// This is a compact subset tuned for customer-support vocabulary.
var valences = map[string]int{
	"amazing":      4,
	"awesome":      4,
	"excellent":    3,
	"fantastic":    4,
	"great":        3,
	"love":         3,
	"loved":        3,
	"perfect":      3,
	"wonderful":    4,
	"good":         3,
	"nice":         3,
	"helpful":      2,
	"happy":        3,
	"pleased":      3,
	"satisfied":    2,
	"thanks":       2,
	"thank":        2,
	"appreciate":   2,
	"resolved":     2,
	"works":        2,
	"working":      2,
	"fast":         1,
	"easy":         1,
	"best":         3,
	"glad":         3,
	"smooth":       2,
	"awful":        -3,
	"bad":          -3,
	"terrible":     -3,
	"horrible":     -3,
	"worst":        -3,
	"hate":         -3,
	"hated":        -3,
	"angry":        -3,
	"furious":      -4,
	"annoyed":      -2,
	"annoying":     -2,
	"broken":       -2,
	"broke":        -2,
	"crash":        -2,
	"crashed":      -2,
	"bug":          -2,
	"error":        -2,
	"fail":         -2,
	"failed":       -2,
	"failure":      -2,
	"problem":      -2,
	"problems":     -2,
	"issue":        -1,
	"issues":       -1,
	"slow":         -2,
	"useless":      -2,
	"waiting":      -1,
	"wait":         -1,
	"refund":       -1,
	"cancel":       -1,
	"complaint":    -2,
	"disappointed": -2,
	"frustrated":   -3,
	"frustrating":  -3,
	"wrong":        -2,
	"stuck":        -2,
	"confused":     -2,
	"charged":      -1,
	"scam":         -3,
	"no":           -1,
	"not":          -1,
	"never":        -1,
}

// Result is the outcome of scoring one text.
type Result struct {
	// Score is the raw sum of token valences.
	Score int
	// Comparative is Score divided by the token count, matching the
	// comparative score of AFINN-based analyzers.
	Comparative float64
	// Tokens is the number of scoreable tokens observed.
	Tokens int
}

// Analyze scores text. Same input always yields the same result.
func Analyze(text string) Result {
	tokens := tokenize(text)
	r := Result{Tokens: len(tokens)}
	for _, tok := range tokens {
		r.Score += valences[tok]
	}
	if r.Tokens > 0 {
		r.Comparative = float64(r.Score) / float64(r.Tokens)
	}
	return r
}

// Label maps a comparative score onto a coarse mood.
func Label(comparative float64) Mood {
	switch {
	case comparative > positiveThreshold:
		return MoodPositive
	case comparative < negativeThreshold:
		return MoodNegative
	default:
		return MoodNeutral
	}
}

// Classify is the one-shot helper used by handlers.
func Classify(text string) (Mood, float64) {
	r := Analyze(text)
	return Label(r.Comparative), r.Comparative
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '\''
	})
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
