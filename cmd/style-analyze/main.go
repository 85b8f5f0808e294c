// Command style-analyze profiles a blog corpus and prints the merged
// generation guidance as JSON. With -db it also runs a learning pass so the
// corpus reinforces the stored pattern records.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/styleprof/internal/blogfs"
	"github.com/cognicore/styleprof/pkg/styleprof"
	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/config"
	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
	"github.com/cognicore/styleprof/pkg/styleprof/store/sqlite"
)

type report struct {
	Documents []documentReport   `json:"documents"`
	Guidance  styleprof.Guidance `json:"guidance"`
	Learned   int                `json:"learned,omitempty"`
}

type documentReport struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Profile analyze.Profile `json:"profile"`
}

func main() {
	var (
		input    = flag.String("input", "", "JSONL corpus file or directory of .md/.txt posts (required)")
		platform = flag.String("platform", "", "Optional platform scope for pattern learning")
		cfgPath  = flag.String("config", "", "Optional YAML threshold file")
		dbPath   = flag.String("db", "", "Optional SQLite pattern store path")
		learn    = flag.Bool("learn", false, "Run a learning pass against the pattern store (requires -db)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}
	if *learn && *dbPath == "" {
		log.Fatal("--learn requires --db")
	}

	ctx := context.Background()

	var analyzerCfg analyze.Config
	var patternCfg pattern.Config
	if *cfgPath != "" {
		f, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		analyzerCfg = f.AnalyzerConfig()
		patternCfg = f.PatternConfig()
	}

	opts := styleprof.Options{Analyzer: analyzerCfg, Extractor: patternCfg}
	if *dbPath != "" {
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatal("open pattern store:", err)
		}
		opts.Store = st
	}

	engine := styleprof.New(opts)
	defer engine.Close()

	source := blogfs.Source{Path: *input}
	docs, err := source.ListDocuments(ctx, "")
	if err != nil {
		log.Fatal(err)
	}
	if len(docs) == 0 {
		log.Fatalf("no documents found in %s", *input)
	}

	out := report{}
	for _, doc := range docs {
		out.Documents = append(out.Documents, documentReport{
			ID:      doc.ID,
			Title:   doc.Title,
			Profile: engine.AnalyzeDoc(doc),
		})
	}

	if *learn {
		n, err := engine.Learn(ctx, docs, *platform)
		if err != nil {
			log.Fatal("learn:", err)
		}
		out.Learned = n
	}

	guidance, err := engine.BuildGuidance(ctx, docs, *platform)
	if err != nil {
		log.Fatal("build guidance:", err)
	}
	out.Guidance = guidance

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "analyzed %d documents (sample size %d)\n",
		len(docs), guidance.MergedStyle.SampleSize)
}
