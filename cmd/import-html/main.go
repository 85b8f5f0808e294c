// Command import-html converts a directory of saved HTML posts into the
// JSONL corpus format consumed by style-analyze, stripping markup down to
// plain text.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/styleprof/internal/blogfs"
	"github.com/cognicore/styleprof/pkg/styleprof"
)

func main() {
	var (
		input = flag.String("input", "", "Directory of .html posts (required)")
		out   = flag.String("out", "corpus.jsonl", "Output JSONL path")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	entries, err := os.ReadDir(*input)
	if err != nil {
		log.Fatal(err)
	}

	outFile, err := os.Create(*out)
	if err != nil {
		log.Fatal("create output file:", err)
	}
	defer outFile.Close()

	encoder := json.NewEncoder(outFile)
	converted := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".html") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(*input, entry.Name()))
		if err != nil {
			log.Printf("skipping %s: %v", entry.Name(), err)
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		doc := styleprof.Document{
			ID:         name,
			Title:      name,
			Content:    blogfs.StripHTML(string(raw)),
			SourceType: "html",
		}
		if doc.Content == "" {
			log.Printf("skipping %s: no text content", entry.Name())
			continue
		}

		if err := encoder.Encode(doc); err != nil {
			log.Fatal("write output:", err)
		}
		converted++
	}

	log.Printf("wrote %d documents to %s", converted, *out)
}
