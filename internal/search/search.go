// Package search is the tool finder's index: an in-memory bleve index over
// registry names and descriptions. Name matches rank above description
// matches; ties keep registry order.
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/ryan-rushton/nova/internal/registry"
)

const (
	nameBoost        = 3.0
	descriptionBoost = 1.0
)

// Hit is one finder result.
type Hit struct {
	Tool  registry.Tool
	Score float64
}

// Index answers finder queries for one registry. It is built once and only
// read afterwards.
type Index struct {
	idx   bleve.Index
	reg   *registry.Registry
	tools []registry.Tool
}

// New indexes every tool in reg.
func New(reg *registry.Registry) (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}

	tools := reg.All()
	batch := idx.NewBatch()
	for _, t := range tools {
		if err := batch.Index(t.Route, map[string]any{
			"name":        t.Name,
			"description": t.Description,
		}); err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("indexing %s: %w", t.Route, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("indexing registry: %w", err)
	}

	return &Index{idx: idx, reg: reg, tools: tools}, nil
}

// Close releases the index.
func (x *Index) Close() error {
	return x.idx.Close()
}

// Search returns tools matching text. An empty query returns every tool in
// registry order. Each word matches whole terms or term prefixes.
func (x *Index) Search(text string) ([]Hit, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		hits := make([]Hit, len(x.tools))
		for i, t := range x.tools {
			hits[i] = Hit{Tool: t}
		}
		return hits, nil
	}

	var clauses []query.Query
	for _, w := range words {
		clauses = append(clauses,
			fieldMatch(w, "name", nameBoost),
			fieldPrefix(w, "name", nameBoost),
			fieldMatch(w, "description", descriptionBoost),
			fieldPrefix(w, "description", descriptionBoost),
		)
	}

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(clauses...), len(x.tools), 0, false)
	res, err := x.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", text, err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		t, ok := x.reg.Lookup(h.ID)
		if !ok {
			continue
		}
		hits = append(hits, Hit{Tool: t, Score: h.Score})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return x.reg.Index(hits[i].Tool.Route) < x.reg.Index(hits[j].Tool.Route)
	})
	return hits, nil
}

func fieldMatch(text, field string, boost float64) query.Query {
	q := bleve.NewMatchQuery(text)
	q.SetField(field)
	q.SetBoost(boost)
	return q
}

func fieldPrefix(prefix, field string, boost float64) query.Query {
	q := bleve.NewPrefixQuery(prefix)
	q.SetField(field)
	q.SetBoost(boost)
	return q
}
