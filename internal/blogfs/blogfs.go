// Package blogfs loads blog documents from the filesystem: a JSONL corpus
// file or a directory of markdown/text posts. It is collaborator glue; the
// engine itself never touches the filesystem.
package blogfs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/styleprof/pkg/styleprof"
)

// LoadJSONL loads documents from a JSONL corpus file. Malformed lines are
// logged and skipped rather than failing the whole load.
func LoadJSONL(path string) ([]styleprof.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []styleprof.Document
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var doc styleprof.Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if doc.SourceType == "" {
			doc.SourceType = "jsonl"
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// LoadDir loads every .md and .txt file in a directory as one document each,
// in lexical filename order. The filename (without extension) becomes the
// document ID and title.
func LoadDir(dir string) ([]styleprof.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var docs []styleprof.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".md" && ext != ".txt" {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read file %s: %w", entry.Name(), err)
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		docs = append(docs, styleprof.Document{
			ID:         name,
			Title:      name,
			Content:    string(content),
			SourceType: strings.TrimPrefix(ext, "."),
		})
	}
	return docs, nil
}

// StripHTML reduces an HTML document to its text content.
func StripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

// Source adapts a JSONL corpus file or a post directory to
// styleprof.DocumentSource.
type Source struct {
	Path string
}

// ListDocuments loads from the configured path. The sourceFilter, when
// non-empty, keeps only documents with a matching SourceType.
func (s Source) ListDocuments(_ context.Context, sourceFilter string) ([]styleprof.Document, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", s.Path, err)
	}

	var docs []styleprof.Document
	if info.IsDir() {
		docs, err = LoadDir(s.Path)
	} else {
		docs, err = LoadJSONL(s.Path)
	}
	if err != nil {
		return nil, err
	}

	if sourceFilter == "" {
		return docs, nil
	}
	filtered := docs[:0]
	for _, doc := range docs {
		if doc.SourceType == sourceFilter {
			filtered = append(filtered, doc)
		}
	}
	return filtered, nil
}
