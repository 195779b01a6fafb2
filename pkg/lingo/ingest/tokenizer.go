// Package ingest converts raw text into position-tracked tokens.
package ingest

import (
	"strings"
	"unicode"

	"github.com/cognicore/lingo/pkg/lingo/sentence"
	"github.com/cognicore/lingo/pkg/lingo/stem"
)

// Tokenizer segments text by character class and normalizes each token
// through a stemming function.
type Tokenizer struct {
	stem stem.Func
}

// NewTokenizer creates a tokenizer around the given stemming function.
func NewTokenizer(fn stem.Func) *Tokenizer {
	if fn == nil {
		fn = stem.Noop()
	}
	return &Tokenizer{stem: fn}
}

// Tokenize splits raw text into tokens. The whole input is lower-cased
// first; classification, stemming and offsets all work on the lower-cased
// rune sequence. Rules:
//
//   - whitespace closes any open token and emits nothing;
//   - a punctuation or symbol rune closes any open token, then becomes a
//     single-rune token of its own;
//   - any other rune opens or continues a token, except that a change
//     between digit and non-digit closes the current token and opens a new
//     one, so "12wr" always yields "12" and "wr".
//
// Tokenize never fails; empty or all-whitespace input yields no tokens.
func (t *Tokenizer) Tokenize(raw string) []sentence.Token {
	var tokens []sentence.Token
	var open *builder

	index := 0
	for _, r := range strings.ToLower(raw) {
		switch {
		case unicode.IsSpace(r):
			if open != nil {
				tokens = append(tokens, open.done(t.stem))
				open = nil
			}
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			if open != nil {
				tokens = append(tokens, open.done(t.stem))
				open = nil
			}
			b := newBuilder(index, false)
			b.add(r)
			tokens = append(tokens, b.done(t.stem))
		default:
			digit := unicode.IsDigit(r)
			if open != nil && open.digits != digit {
				tokens = append(tokens, open.done(t.stem))
				open = nil
			}
			if open == nil {
				open = newBuilder(index, digit)
			}
			open.add(r)
		}
		index++
	}

	if open != nil {
		tokens = append(tokens, open.done(t.stem))
	}

	return tokens
}

// builder accumulates one token in progress.
type builder struct {
	text   strings.Builder
	start  int
	length int
	digits bool // class the token was opened with
}

func newBuilder(start int, digits bool) *builder {
	return &builder{start: start, digits: digits}
}

func (b *builder) add(r rune) {
	b.text.WriteRune(r)
	b.length++
}

func (b *builder) done(fn stem.Func) sentence.Token {
	return sentence.NewToken(fn(b.text.String()), sentence.NewLoc(b.start, b.length))
}
