// Command style-report summarizes a SQLite pattern store: record counts per
// type and platform, Korean register breakdown, and the most reinforced
// patterns.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
	"github.com/cognicore/styleprof/pkg/styleprof/report"
	"github.com/cognicore/styleprof/pkg/styleprof/store/sqlite"
)

type output struct {
	Stats report.Stats     `json:"stats"`
	Top   []pattern.Record `json:"top_patterns"`
}

func main() {
	var (
		dbPath = flag.String("db", "", "SQLite pattern store path (required)")
		top    = flag.Int("top", 10, "Number of most-reinforced patterns to include")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatal("open pattern store:", err)
	}
	defer st.Close()

	stats, err := report.FromStore(ctx, st)
	if err != nil {
		log.Fatal("aggregate patterns:", err)
	}

	out := output{Stats: stats, Top: stats.TopPatterns(*top)}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}

	fmt.Fprintf(os.Stderr, "%d records, %d reinforcements\n", stats.TotalRecords, stats.TotalUsage)
}
