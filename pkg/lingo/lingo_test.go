package lingo_test

import (
	"errors"
	"testing"

	"github.com/cognicore/lingo/pkg/lingo"
	"github.com/cognicore/lingo/pkg/lingo/dictionary"
	"github.com/cognicore/lingo/pkg/lingo/enrich"
	"github.com/cognicore/lingo/pkg/lingo/meta"
	"github.com/cognicore/lingo/pkg/lingo/sentence"
	"github.com/cognicore/lingo/pkg/lingo/stem"
)

// recorder notes the order it was invoked in and can be told to fail.
type recorder struct {
	name    string
	calls   *[]string
	failOn  bool
	updates int
}

func (r *recorder) Enrich(s *sentence.Sentence) error {
	*r.calls = append(*r.calls, r.name)
	if r.failOn {
		return errors.New(r.name + " failed")
	}
	// Leave a trace so atomicity can be checked from outside.
	if tokens := s.TokensMut(); len(tokens) > 0 {
		tokens[0].AddMeta("trace."+r.name, meta.Bool(true))
	}
	return nil
}

func (r *recorder) Update(*sentence.Sentence) error {
	r.updates++
	*r.calls = append(*r.calls, "update:"+r.name)
	return nil
}

func TestProduceRunsEnrichersInOrder(t *testing.T) {
	var calls []string
	service := lingo.New(stem.Noop(),
		&recorder{name: "first", calls: &calls},
		&recorder{name: "second", calls: &calls},
		&recorder{name: "third", calls: &calls},
	)

	if _, err := service.Produce("слона"); err != nil {
		t.Fatalf("Produce: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestProduceIsAtomic(t *testing.T) {
	var calls []string
	service := lingo.New(stem.Noop(),
		&recorder{name: "first", calls: &calls},
		&recorder{name: "second", calls: &calls, failOn: true},
		&recorder{name: "third", calls: &calls},
	)

	snt, err := service.Produce("слона")
	if err == nil {
		t.Fatal("expected failure from second enricher")
	}
	if snt != nil {
		t.Error("a failed Produce must not hand back a partially annotated sentence")
	}

	// The failing stage stops the chain.
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second]", calls)
	}
}

func TestLearnRunsAllUpdatesInOrder(t *testing.T) {
	var calls []string
	first := &recorder{name: "first", calls: &calls}
	second := &recorder{name: "second", calls: &calls}
	service := lingo.New(stem.Noop(), first, second)

	snt, err := service.Produce("слона")
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	calls = calls[:0]
	if err := service.Learn(snt); err != nil {
		t.Fatalf("Learn: %v", err)
	}

	if first.updates != 1 || second.updates != 1 {
		t.Errorf("updates = %d/%d, want 1/1", first.updates, second.updates)
	}
	if len(calls) != 2 || calls[0] != "update:first" || calls[1] != "update:second" {
		t.Errorf("calls = %v, want updates in registration order", calls)
	}
}

// failingUpdate succeeds in Enrich and fails in Update.
type failingUpdate struct{}

func (failingUpdate) Enrich(*sentence.Sentence) error { return nil }
func (failingUpdate) Update(*sentence.Sentence) error { return errors.New("persist failed") }

func TestLearnDoesNotRollBackEarlierUpdates(t *testing.T) {
	dict := dictionary.NewCached(nil)
	stop := enrich.NewStopWord(dict, false)
	service := lingo.New(stem.Noop(), stop, failingUpdate{})

	snt, err := service.Produce("кукиу")
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	snt.TokensMut()[0].AddMeta(enrich.MetaStopWord, meta.Bool(true))

	if err := service.Learn(snt); err == nil {
		t.Fatal("expected Learn to surface the update failure")
	}

	// The stop-word stage's persistence stands even though a later stage failed.
	if !dict.Contains("кукиу") {
		t.Error("earlier enricher's learned word was lost")
	}
}

func TestFullPipeline(t *testing.T) {
	dict := dictionary.NewCached([]string{"и"})
	service := lingo.New(stem.Noop(), enrich.NewNumber(), enrich.NewStopWord(dict, false))

	snt, err := service.Produce("У меня 120 печеник и 30 котов. И - 50 и -90. 140% 40 % 70")
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	numbers, err := enrich.Numbers(snt)
	if err != nil {
		t.Fatalf("Numbers: %v", err)
	}
	if len(numbers) != 7 {
		t.Errorf("got %d numbers, want 7", len(numbers))
	}

	stops := enrich.StopWords(snt)
	// "и" appears at token positions 4, 8, 11; the raw text keeps case.
	if len(stops) != 3 {
		t.Fatalf("got %d stop words, want 3: %+v", len(stops), stops)
	}
	if stops[1].Word != "И" {
		t.Errorf("second stop word = %q, want raw-case %q", stops[1].Word, "И")
	}
}

func TestProduceEmptyInput(t *testing.T) {
	service := lingo.New(stem.Noop(), enrich.NewNumber())

	snt, err := service.Produce("   ")
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	if len(snt.Tokens()) != 0 {
		t.Errorf("whitespace input produced %d tokens", len(snt.Tokens()))
	}
}

func TestServiceWithSnowballStemmer(t *testing.T) {
	fn, err := stem.Snowball("english")
	if err != nil {
		t.Fatalf("Snowball: %v", err)
	}

	dict := dictionary.NewCached([]string{"run"})
	service := lingo.New(fn, enrich.NewStopWord(dict, false))

	snt, err := service.Produce("cats running 12wr")
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}

	stops := enrich.StopWords(snt)
	if len(stops) != 1 || stops[0].Word != "running" {
		t.Errorf("stops = %+v, want the raw word %q flagged via its stem", stops, "running")
	}
}
