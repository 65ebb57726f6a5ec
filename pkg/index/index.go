// Package index builds unique slug and id lookup tables over a canonical
// company dataset. Positions are only valid against the dataset snapshot
// they were built from: rebuild the index whenever the dataset is rebuilt.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sw33tLie/ycindex/internal/utils"
	"github.com/sw33tLie/ycindex/pkg/company"
)

const FileName = "yc_index.json"

// ignoredSlugs lists literal placeholder tokens seen in upstream data instead
// of a real slug. Matching is case-insensitive on the trimmed slug.
var ignoredSlugs = map[string]struct{}{
	"none": {},
	"null": {},
}

// Index maps lookup keys to zero-based positions in the dataset's companies.
type Index struct {
	BySlug map[string]int `json:"bySlug"`
	ByID   map[string]int `json:"byId"`
}

// Duplicate is a key claimed by more than one record.
type Duplicate struct {
	Key       string
	Positions []int
}

// DuplicateError reports every duplicated slug and id found by Build.
type DuplicateError struct {
	Slugs []Duplicate
	IDs   []Duplicate
}

func (e *DuplicateError) Error() string {
	var b strings.Builder
	writeDuplicates(&b, "slugs", e.Slugs)
	writeDuplicates(&b, "ids", e.IDs)
	return strings.TrimSpace(b.String())
}

func writeDuplicates(b *strings.Builder, kind string, dups []Duplicate) {
	if len(dups) == 0 {
		return
	}
	fmt.Fprintf(b, "Duplicate %s found:\n", kind)
	for _, d := range dups {
		fmt.Fprintf(b, "  '%s' at indices: %v\n", d.Key, d.Positions)
	}
}

// SlugKey returns the index key for slug, or false when the slug is blank
// or one of the placeholder tokens.
func SlugKey(slug string) (string, bool) {
	key := strings.TrimSpace(slug)
	if key == "" {
		return "", false
	}
	if _, ignored := ignoredSlugs[strings.ToLower(key)]; ignored {
		return "", false
	}
	return key, true
}

// occurrences records every position that wrote a key, in first-seen key order.
type occurrences struct {
	order     []string
	positions map[string][]int
}

func newOccurrences() *occurrences {
	return &occurrences{positions: map[string][]int{}}
}

func (o *occurrences) add(key string, pos int) {
	if _, seen := o.positions[key]; !seen {
		o.order = append(o.order, key)
	}
	o.positions[key] = append(o.positions[key], pos)
}

func (o *occurrences) duplicates() []Duplicate {
	var dups []Duplicate
	for _, key := range o.order {
		if ps := o.positions[key]; len(ps) > 1 {
			dups = append(dups, Duplicate{Key: key, Positions: ps})
		}
	}
	return dups
}

func (o *occurrences) table() map[string]int {
	out := make(map[string]int, len(o.positions))
	for key, ps := range o.positions {
		out[key] = ps[0]
	}
	return out
}

// Build indexes companies by slug and by id. It fails with a *DuplicateError
// if any key is claimed by more than one position.
func Build(companies []company.Company) (*Index, error) {
	slugs := newOccurrences()
	ids := newOccurrences()

	for i, c := range companies {
		if key, ok := SlugKey(c.Slug); ok {
			slugs.add(key, i)
		}
		if id, ok := c.IDString(); ok {
			ids.add(id, i)
		}
	}

	dupErr := &DuplicateError{Slugs: slugs.duplicates(), IDs: ids.duplicates()}
	if len(dupErr.Slugs) > 0 || len(dupErr.IDs) > 0 {
		return nil, dupErr
	}

	return &Index{BySlug: slugs.table(), ByID: ids.table()}, nil
}

// Write replaces the index file at path.
func (ix *Index) Write(path string) error {
	return utils.WriteJSONFile(path, ix)
}

// Load reads an index file written by Write.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("index file not found: %s", path)
		}
		return nil, err
	}
	var ix Index
	if err := json.Unmarshal(data, &ix); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	if ix.BySlug == nil {
		ix.BySlug = map[string]int{}
	}
	if ix.ByID == nil {
		ix.ByID = map[string]int{}
	}
	return &ix, nil
}
