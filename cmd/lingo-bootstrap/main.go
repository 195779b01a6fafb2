// Command lingo-bootstrap seeds a SQLite dictionary from a YAML stoplist so
// a pipeline can start with a known vocabulary.
package main

import (
	"flag"
	"log"

	"github.com/cognicore/lingo/pkg/lingo/config"
	"github.com/cognicore/lingo/pkg/lingo/dictionary/sqlite"
)

func main() {
	var (
		dbPath       = flag.String("db", "", "Dictionary database path (required)")
		stoplistPath = flag.String("stoplist", "", "Stoplist YAML file (required)")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *stoplistPath == "" {
		log.Fatal("--stoplist required")
	}

	stoplist, err := config.LoadStoplist(*stoplistPath)
	if err != nil {
		log.Fatalf("load stoplist: %v", err)
	}

	store, err := sqlite.Open(*dbPath)
	if err != nil {
		log.Fatalf("open dictionary: %v", err)
	}
	defer store.Close()

	added, err := store.Seed(stoplist.Terms)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Printf("seeded %d new words (%d in stoplist)", added, len(stoplist.Terms))
}
