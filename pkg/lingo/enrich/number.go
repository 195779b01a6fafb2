// Package enrich provides the built-in pipeline stages: numeric-literal
// detection and stop-word detection/learning. Each stage annotates tokens in
// place and exposes an extraction helper that reads its annotations back out
// of a finished sentence.
package enrich

import (
	"strconv"

	"github.com/cognicore/lingo/pkg/lingo/meta"
	"github.com/cognicore/lingo/pkg/lingo/sentence"
)

// Annotation keys written by the number stage.
const (
	MetaNumber      = "number.number"
	MetaSignIndex   = "number.sign_index"
	MetaNumberIndex = "number.number_index"
)

// defaultMarkers are the negative-sign tokens recognized out of the box.
var defaultMarkers = []string{"-", "минус", "minus"}

// Number detects unsigned and signed integer literals. A literal directly
// preceded by a negative marker token is recorded as a signed negative
// number, with cross-references between the sign token and the literal
// token; any other literal is recorded unsigned. Non-adjacent signs never
// attach.
type Number struct {
	markers map[string]struct{}
}

// NewNumber creates a number stage with the default negative markers.
func NewNumber() *Number {
	return NewNumberWithMarkers(defaultMarkers...)
}

// NewNumberWithMarkers creates a number stage recognizing only the given
// negative-marker token values.
func NewNumberWithMarkers(markers ...string) *Number {
	set := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		set[m] = struct{}{}
	}
	return &Number{markers: set}
}

// Enrich annotates every integer-literal token in s.
func (n *Number) Enrich(s *sentence.Sentence) error {
	tokens := s.TokensMut()
	for i := range tokens {
		val, err := strconv.ParseUint(tokens[i].Val, 10, 64)
		if err != nil {
			continue
		}

		if i > 0 {
			if _, isSign := n.markers[tokens[i-1].Val]; isSign {
				tokens[i].AddMeta(MetaNumber, meta.Int(-int64(val)))
				tokens[i].AddMeta(MetaSignIndex, meta.Index(i-1))
				tokens[i-1].AddMeta(MetaNumberIndex, meta.Index(i))
				continue
			}
		}
		tokens[i].AddMeta(MetaNumber, meta.Uint(val))
	}
	return nil
}

// Update is a no-op; the number stage learns nothing.
func (n *Number) Update(*sentence.Sentence) error {
	return nil
}

// NumberValue is a numeric literal recovered from a sentence. Signed values
// carry I64, unsigned values U64.
type NumberValue struct {
	Signed bool
	I64    int64
	U64    uint64
}

// NumberAt pairs a recovered number with its location. The Loc counts token
// positions, not runes: a signed number spans its sign token and literal
// token (length 2), an unsigned number spans just the literal (length 1).
type NumberAt struct {
	Loc    sentence.Loc
	Number NumberValue
}

// Numbers extracts every annotated number from s in token order. It fails
// only when an annotation carries an unexpected value kind.
func Numbers(s *sentence.Sentence) ([]NumberAt, error) {
	var numbers []NumberAt

	for i, tok := range s.Tokens() {
		value, ok := tok.Meta(MetaNumber)
		if !ok {
			continue
		}

		if sign, ok := tok.Meta(MetaSignIndex); ok {
			signIdx, err := sign.Index()
			if err != nil {
				return nil, err
			}
			val, err := value.Int()
			if err != nil {
				return nil, err
			}
			numbers = append(numbers, NumberAt{
				Loc:    sentence.NewLoc(signIdx, 2),
				Number: NumberValue{Signed: true, I64: val},
			})
			continue
		}

		val, err := value.Uint()
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, NumberAt{
			Loc:    sentence.NewLoc(i, 1),
			Number: NumberValue{U64: val},
		})
	}

	return numbers, nil
}
