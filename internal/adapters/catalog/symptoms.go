package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"patientintake/internal/core/domain/intake"
)

//go:embed symptoms.yaml
var defaultCatalog []byte

var ErrEmptyCatalog = errors.New("symptom catalog is empty")

type entry struct {
	Value   string   `yaml:"value"`
	Label   string   `yaml:"label"`
	Aliases []string `yaml:"aliases"`
}

type document struct {
	Symptoms []entry `yaml:"symptoms"`
}

// SymptomCatalog is a read-only, in-process symptom list.
type SymptomCatalog struct {
	entries      []entry
	defaultLimit int
}

// NewDefaultSymptomCatalog loads the catalog compiled into the binary.
func NewDefaultSymptomCatalog(defaultLimit int) (*SymptomCatalog, error) {
	return NewSymptomCatalog(defaultCatalog, defaultLimit)
}

func NewSymptomCatalog(raw []byte, defaultLimit int) (*SymptomCatalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode symptom catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Symptoms))
	entries := make([]entry, 0, len(doc.Symptoms))
	for i, e := range doc.Symptoms {
		e.Value = strings.TrimSpace(e.Value)
		if e.Value == "" {
			return nil, fmt.Errorf("symptom catalog entry %d: missing value", i)
		}
		if _, dup := seen[e.Value]; dup {
			return nil, fmt.Errorf("symptom catalog entry %d: duplicate value %q", i, e.Value)
		}
		seen[e.Value] = struct{}{}
		if strings.TrimSpace(e.Label) == "" {
			e.Label = e.Value
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &SymptomCatalog{entries: entries, defaultLimit: defaultLimit}, nil
}

// Search matches query case-insensitively against labels, values and
// aliases. Prefix matches sort first, then by label. An empty query
// returns the head of the catalog.
func (c *SymptomCatalog) Search(ctx context.Context, query string, limit int) ([]intake.Symptom, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > c.defaultLimit {
		limit = c.defaultLimit
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		n := min(limit, len(c.entries))
		out := make([]intake.Symptom, 0, n)
		for _, e := range c.entries[:n] {
			out = append(out, e.symptom())
		}
		return out, nil
	}

	matches := make([]matchedSymptom, 0, 8)
	for _, e := range c.entries {
		matched, prefix := e.match(q)
		if !matched {
			continue
		}
		matches = append(matches, matchedSymptom{entry: e, isPrefix: prefix})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].entry.Label < matches[j].entry.Label
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]intake.Symptom, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.entry.symptom())
	}
	return out, nil
}

func (e entry) symptom() intake.Symptom {
	return intake.Symptom{Value: e.Value, Label: e.Label}
}

func (e entry) match(q string) (matched, prefix bool) {
	for _, candidate := range append([]string{e.Label, e.Value}, e.Aliases...) {
		lower := strings.ToLower(candidate)
		if strings.HasPrefix(lower, q) {
			return true, true
		}
		if strings.Contains(lower, q) {
			matched = true
		}
	}
	return matched, false
}

type matchedSymptom struct {
	entry    entry
	isPrefix bool
}
