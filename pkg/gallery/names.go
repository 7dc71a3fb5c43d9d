package gallery

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultMatchThreshold   = 0.7 // Fraction of target words that must match
	DefaultMinTargetWordLen = 2   // Target words shorter than this are ignored
)

// NormalizeArtistName lower-cases name, folds diacritics ("Cézanne" becomes
// "cezanne"), drops every rune that is not a letter, digit, underscore or
// space, and collapses runs of whitespace into single spaces.
//
// The result is empty only when name has no letters or digits.
// NormalizeArtistName is idempotent.
func NormalizeArtistName(name string) string {
	folded, _, err := transform.String(foldDiacritics(), strings.ToLower(name))
	if err != nil {
		folded = strings.ToLower(name)
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	// Dropping a rune can leave composable neighbours, e.g. conjoining jamo.
	return norm.NFC.String(strings.Join(strings.Fields(b.String()), " "))
}

// foldDiacritics returns a fresh transformer; transform.Chain values carry
// state and must not be shared across goroutines.
func foldDiacritics() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Matcher decides whether two normalized artist names refer to the same
// artist. It is a word-overlap heuristic with no precision guarantee: short
// particles like "van" or "de" over-match, abbreviations under-match.
type Matcher struct {
	Threshold        float64 // share of target words that must match (default 0.7)
	MinTargetWordLen int     // shorter target words are ignored (default 2)
}

// DefaultMatcher returns the matcher used by [IsArtistMatch].
func DefaultMatcher() Matcher {
	return Matcher{Threshold: DefaultMatchThreshold, MinTargetWordLen: DefaultMinTargetWordLen}
}

// WithDefaults returns a copy of m with zero values replaced by defaults.
func (m Matcher) WithDefaults() Matcher {
	if m.Threshold <= 0 || m.Threshold > 1 {
		m.Threshold = DefaultMatchThreshold
	}
	if m.MinTargetWordLen <= 0 {
		m.MinTargetWordLen = DefaultMinTargetWordLen
	}
	return m
}

// Match reports whether candidate plausibly names the same artist as target.
// Both arguments are expected to be normalized with [NormalizeArtistName].
//
// Equal names match. Otherwise each target word of at least MinTargetWordLen
// runes matches when it contains, or is contained in, some candidate word;
// the pair matches when at least ceil(Threshold × target words) do. A target
// without qualifying words never matches a different name.
func (m Matcher) Match(target, candidate string) bool {
	if target == candidate {
		return true
	}
	m = m.WithDefaults()

	var targetWords []string
	for _, w := range strings.Fields(target) {
		if utf8.RuneCountInString(w) >= m.MinTargetWordLen {
			targetWords = append(targetWords, w)
		}
	}
	if len(targetWords) == 0 {
		return false
	}
	candidateWords := strings.Fields(candidate)

	matched := 0
	for _, w := range targetWords {
		for _, cw := range candidateWords {
			if strings.Contains(cw, w) || strings.Contains(w, cw) {
				matched++
				break
			}
		}
	}
	return matched >= requiredMatches(m.Threshold, len(targetWords))
}

// requiredMatches is ceil(threshold × n), tolerant of float error so that
// 0.7 × 10 requires 7 words, not 8.
func requiredMatches(threshold float64, n int) int {
	return int(math.Ceil(threshold*float64(n) - 1e-9))
}

// IsArtistMatch applies the default [Matcher] to two normalized names.
func IsArtistMatch(target, candidate string) bool {
	return DefaultMatcher().Match(target, candidate)
}
