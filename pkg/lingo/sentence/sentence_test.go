package sentence

import (
	"testing"

	"github.com/cognicore/lingo/pkg/lingo/meta"
)

func TestByLocCountsRunes(t *testing.T) {
	s := New("У меня 120", nil)

	cases := []struct {
		loc  Loc
		want string
	}{
		{NewLoc(0, 1), "У"},
		{NewLoc(2, 4), "меня"},
		{NewLoc(7, 3), "120"},
		{NewLoc(7, 50), "120"}, // clamped
		{NewLoc(50, 3), ""},    // past the end
	}

	for _, tc := range cases {
		if got := s.ByLoc(tc.loc); got != tc.want {
			t.Errorf("ByLoc(%+v) = %q, want %q", tc.loc, got, tc.want)
		}
	}
}

func TestTokenMeta(t *testing.T) {
	tok := NewToken("120", NewLoc(7, 3))

	if _, ok := tok.Meta("stop_word"); ok {
		t.Error("fresh token should carry no annotations")
	}

	tok.AddMeta("number.number", meta.Uint(120))
	v, ok := tok.Meta("number.number")
	if !ok {
		t.Fatal("annotation missing after AddMeta")
	}
	if got, err := v.Uint(); err != nil || got != 120 {
		t.Errorf("annotation = %d, %v; want 120", got, err)
	}

	// Overwrite is allowed.
	tok.AddMeta("number.number", meta.Uint(121))
	v, _ = tok.Meta("number.number")
	if got, _ := v.Uint(); got != 121 {
		t.Errorf("annotation after overwrite = %d, want 121", got)
	}
}

func TestTokensMutSharesBacking(t *testing.T) {
	toks := []Token{NewToken("w", NewLoc(0, 1))}
	s := New("w", toks)

	s.TokensMut()[0].AddMeta("stop_word", meta.Bool(true))

	if _, ok := s.Tokens()[0].Meta("stop_word"); !ok {
		t.Error("mutation through TokensMut not visible through Tokens")
	}
}
