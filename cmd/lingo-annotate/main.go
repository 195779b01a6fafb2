// Command lingo-annotate runs text through a configured annotation pipeline
// and prints the annotated sentence as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/lingo/internal/htmltext"
	"github.com/cognicore/lingo/pkg/lingo/config"
	"github.com/cognicore/lingo/pkg/lingo/enrich"
	"github.com/cognicore/lingo/pkg/lingo/journal"
)

type tokenOut struct {
	Val   string `json:"val"`
	Start int    `json:"start"`
	Len   int    `json:"len"`
}

type numberOut struct {
	TokenIndex int    `json:"token_index"`
	TokenSpan  int    `json:"token_span"`
	Signed     bool   `json:"signed"`
	Int        int64  `json:"int,omitempty"`
	Uint       uint64 `json:"uint,omitempty"`
}

type stopOut struct {
	TokenIndex int    `json:"token_index"`
	Word       string `json:"word"`
}

type output struct {
	Raw       string      `json:"raw"`
	Tokens    []tokenOut  `json:"tokens"`
	Numbers   []numberOut `json:"numbers,omitempty"`
	StopWords []stopOut   `json:"stop_words,omitempty"`
}

func main() {
	var (
		configPath  = flag.String("config", "", "Pipeline config YAML (required)")
		text        = flag.String("text", "", "Text to annotate (default: stdin)")
		filePath    = flag.String("file", "", "Read input from file instead of stdin")
		htmlInput   = flag.Bool("html", false, "Strip HTML markup from the input first")
		learn       = flag.Bool("learn", false, "Feed the annotated sentence back into learning stages")
		journalPath = flag.String("journal", "", "Record the sentence in a journal database")
	)
	flag.Parse()

	if *configPath == "" {
		log.Fatal("--config required")
	}

	input := *text
	if input == "" {
		var data []byte
		var err error
		if *filePath != "" {
			data, err = os.ReadFile(*filePath)
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			log.Fatalf("read input: %v", err)
		}
		input = string(data)
	}
	if *htmlInput {
		input = htmltext.Extract(input)
	}

	loader := config.Loader{ConfigPath: *configPath}
	comp, err := loader.Load()
	if err != nil {
		log.Fatalf("build pipeline: %v", err)
	}
	defer comp.Close()

	snt, err := comp.Service.Produce(input)
	if err != nil {
		log.Fatalf("annotate: %v", err)
	}

	if *learn {
		if err := comp.Service.Learn(snt); err != nil {
			log.Fatalf("learn: %v", err)
		}
	}

	if *journalPath != "" {
		j, err := journal.Open(*journalPath)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer j.Close()
		id, err := j.Append(snt)
		if err != nil {
			log.Fatalf("journal: %v", err)
		}
		log.Printf("journaled as %s", id)
	}

	out := output{Raw: snt.Raw()}
	for _, tok := range snt.Tokens() {
		out.Tokens = append(out.Tokens, tokenOut{Val: tok.Val, Start: tok.Loc.Start, Len: tok.Loc.Len})
	}

	numbers, err := enrich.Numbers(snt)
	if err != nil {
		log.Fatalf("extract numbers: %v", err)
	}
	for _, n := range numbers {
		out.Numbers = append(out.Numbers, numberOut{
			TokenIndex: n.Loc.Start,
			TokenSpan:  n.Loc.Len,
			Signed:     n.Number.Signed,
			Int:        n.Number.I64,
			Uint:       n.Number.U64,
		})
	}
	for _, sw := range enrich.StopWords(snt) {
		out.StopWords = append(out.StopWords, stopOut{TokenIndex: sw.Loc.Start, Word: sw.Word})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode: %v", err)
	}

	fmt.Fprintf(os.Stderr, "%d tokens, %d numbers, %d stop words\n",
		len(out.Tokens), len(out.Numbers), len(out.StopWords))
}
