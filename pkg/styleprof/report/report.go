// Package report aggregates stored pattern records into corpus-level
// statistics for operators inspecting what the learner has accumulated.
package report

import (
	"context"
	"sort"

	"github.com/cognicore/styleprof/pkg/styleprof/analyze"
	"github.com/cognicore/styleprof/pkg/styleprof/pattern"
	"github.com/cognicore/styleprof/pkg/styleprof/store"
)

// Aggregator accumulates pattern records into counters.
type Aggregator struct {
	totalRecords int
	totalUsage   int
	byType       map[pattern.Type]TypeStats
	byPlatform   map[string]int
	registers    map[analyze.Dominance]int
	records      []pattern.Record
}

// TypeStats counts the records and reinforcements for one pattern type.
type TypeStats struct {
	Records int `json:"records"`
	Usage   int `json:"usage"`
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		byType:     make(map[pattern.Type]TypeStats),
		byPlatform: make(map[string]int),
		registers:  make(map[analyze.Dominance]int),
	}
}

// Add consumes one stored record.
func (a *Aggregator) Add(rec pattern.Record) {
	a.totalRecords++
	a.totalUsage += rec.UsageCount

	ts := a.byType[rec.Type]
	ts.Records++
	ts.Usage += rec.UsageCount
	a.byType[rec.Type] = ts

	a.byPlatform[rec.Platform]++

	if mix, ok := rec.Data.(pattern.KoreanEndingMix); ok {
		a.registers[mix.DominantEnding]++
	}

	a.records = append(a.records, rec)
}

// Stats is a point-in-time view of the accumulated counters.
type Stats struct {
	TotalRecords int                        `json:"total_records"`
	TotalUsage   int                        `json:"total_usage"`
	ByType       map[pattern.Type]TypeStats `json:"by_type"`
	ByPlatform   map[string]int             `json:"by_platform"`
	Registers    map[analyze.Dominance]int  `json:"korean_registers,omitempty"`

	records []pattern.Record
}

// Snapshot returns a copy of the accumulated statistics.
func (a *Aggregator) Snapshot() Stats {
	byType := make(map[pattern.Type]TypeStats, len(a.byType))
	for typ, ts := range a.byType {
		byType[typ] = ts
	}
	byPlatform := make(map[string]int, len(a.byPlatform))
	for platform, count := range a.byPlatform {
		byPlatform[platform] = count
	}
	var registers map[analyze.Dominance]int
	if len(a.registers) > 0 {
		registers = make(map[analyze.Dominance]int, len(a.registers))
		for dom, count := range a.registers {
			registers[dom] = count
		}
	}
	records := make([]pattern.Record, len(a.records))
	copy(records, a.records)
	return Stats{
		TotalRecords: a.totalRecords,
		TotalUsage:   a.totalUsage,
		ByType:       byType,
		ByPlatform:   byPlatform,
		Registers:    registers,
		records:      records,
	}
}

// TopPatterns returns the most reinforced records, usage descending with ID
// as the tie-break so output stays stable across runs.
func (s Stats) TopPatterns(limit int) []pattern.Record {
	out := make([]pattern.Record, len(s.records))
	copy(out, s.records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].UsageCount != out[j].UsageCount {
			return out[i].UsageCount > out[j].UsageCount
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FromStore aggregates every record currently persisted.
func FromStore(ctx context.Context, st store.Store) (Stats, error) {
	records, err := st.ListPatterns(ctx)
	if err != nil {
		return Stats{}, err
	}
	agg := NewAggregator()
	for _, rec := range records {
		agg.Add(rec)
	}
	return agg.Snapshot(), nil
}
