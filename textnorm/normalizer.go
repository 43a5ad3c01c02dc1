package textnorm

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
)

const (
	language = "russian"

	// minTokenLen is the minimum token length in runes, applied before and
	// after base-form reduction.
	minTokenLen = 3

	// maxStemRounds bounds the fixed-point stemming loop. Snowball only ever
	// shortens a word, so the bound is a safety net, not a tuning knob.
	maxStemRounds = 8
)

var (
	nonRussian = regexp.MustCompile(`[^а-яё\s]+`)
	spaces     = regexp.MustCompile(`\s+`)
)

// Normalizer reduces raw Russian text to a space-joined sequence of base-form
// tokens. It is safe for concurrent use: all state is read-only after New.
type Normalizer struct {
	stop map[string]struct{}
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithExtraStopWords unions additional stop-words (and their reduced forms)
// into the filter set.
func WithExtraStopWords(words []string) Option {
	return func(n *Normalizer) {
		addStopWords(n.stop, words)
	}
}

// New creates a Normalizer with the general and domain stop-word lists loaded.
// It verifies the Snowball Russian stemmer is available; failure here is a
// startup error, never swallowed.
func New(opts ...Option) (*Normalizer, error) {
	if _, err := snowball.Stem("проверка", language, false); err != nil {
		return nil, fmt.Errorf("textnorm: russian stemmer unavailable: %w", err)
	}

	stop := make(map[string]struct{}, 2*(len(generalStopWords)+len(domainStopWords)))
	addStopWords(stop, generalStopWords)
	addStopWords(stop, domainStopWords)

	n := &Normalizer{stop: stop}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// addStopWords inserts each word and its reduced form, so inflected stop-words
// are still caught after stemming.
func addStopWords(set map[string]struct{}, words []string) {
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
		if stem := reduce(w); stem != "" {
			set[stem] = struct{}{}
		}
	}
}

// Normalize converts raw text to its normalized form: lowercase, Russian
// letters only, stop-words and short tokens removed, every surviving token
// reduced to its base form. Token order is preserved. An empty string is a
// valid result meaning "no usable content".
func (n *Normalizer) Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := strings.ToLower(raw)
	text = nonRussian.ReplaceAllString(text, " ")
	text = strings.TrimSpace(spaces.ReplaceAllString(text, " "))
	if text == "" {
		return ""
	}

	var kept []string
	for _, token := range strings.Fields(text) {
		if n.filtered(token) {
			continue
		}
		base := reduce(token)
		if n.filtered(base) {
			continue
		}
		kept = append(kept, base)
	}
	return strings.Join(kept, " ")
}

// Tokens returns the normalized form of raw split into tokens.
func (n *Normalizer) Tokens(raw string) []string {
	normalized := n.Normalize(raw)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// filtered reports whether a token is excluded by the stop-word or minimum
// length rule.
func (n *Normalizer) filtered(token string) bool {
	if utf8.RuneCountInString(token) < minTokenLen {
		return true
	}
	_, stop := n.stop[token]
	return stop
}

// reduce stems a token to a fixed point. A single Snowball pass is not
// idempotent (the stem of a stem can shrink further), and normalization must
// be, so we iterate until the output stabilizes.
func reduce(token string) string {
	for range maxStemRounds {
		stemmed, err := snowball.Stem(token, language, false)
		if err != nil || stemmed == "" || stemmed == token {
			return token
		}
		token = stemmed
	}
	return token
}
