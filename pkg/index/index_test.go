package index

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sw33tLie/ycindex/pkg/company"
)

func mkCompanies(slugs ...string) []company.Company {
	var out []company.Company
	for i, s := range slugs {
		out = append(out, company.Company{
			ID:   []byte(strconv.Itoa(100 + i)),
			Slug: s,
		})
	}
	return out
}

func TestBuild_UniqueKeys(t *testing.T) {
	companies := mkCompanies("a", "b", "c", "d")

	ix, err := Build(companies)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(ix.BySlug) != 4 || len(ix.ByID) != 4 {
		t.Fatalf("expected 4 slugs and 4 ids, got %d and %d", len(ix.BySlug), len(ix.ByID))
	}
	for i, s := range []string{"a", "b", "c", "d"} {
		if ix.BySlug[s] != i {
			t.Errorf("expected slug %s at %d, got %d", s, i, ix.BySlug[s])
		}
		if ix.ByID[strconv.Itoa(100+i)] != i {
			t.Errorf("expected id %d at %d", 100+i, i)
		}
	}
}

func TestBuild_DuplicateSlugReportsAllPositions(t *testing.T) {
	companies := mkCompanies("a", "b", "dup", "c", "d", "dup")

	_, err := Build(companies)
	var dupErr *DuplicateError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected *DuplicateError, got %v", err)
	}
	if len(dupErr.Slugs) != 1 || dupErr.Slugs[0].Key != "dup" {
		t.Fatalf("expected duplicate slug 'dup', got %+v", dupErr.Slugs)
	}
	if got := dupErr.Slugs[0].Positions; len(got) != 2 || got[0] != 2 || got[1] != 5 {
		t.Fatalf("expected positions [2 5], got %v", got)
	}
	if len(dupErr.IDs) != 0 {
		t.Fatalf("expected no duplicate ids, got %+v", dupErr.IDs)
	}
	if !strings.Contains(err.Error(), "'dup' at indices: [2 5]") {
		t.Fatalf("unexpected report: %s", err)
	}
}

func TestBuild_SlugsAreCaseSensitive(t *testing.T) {
	if _, err := Build(mkCompanies("Acme", "acme")); err != nil {
		t.Fatalf("expected differently cased slugs to be distinct, got %v", err)
	}
}

func TestBuild_TrimmedSlugsCollide(t *testing.T) {
	_, err := Build(mkCompanies("acme", " acme "))
	if err == nil {
		t.Fatalf("expected trimmed slugs to collide")
	}
}

func TestBuild_IgnoresPlaceholderSlugs(t *testing.T) {
	companies := mkCompanies("None", "null", "", "  ", "NULL", "real")
	companies = append(companies, company.Company{ID: []byte("999")})

	ix, err := Build(companies)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(ix.BySlug) != 1 || ix.BySlug["real"] != 5 {
		t.Fatalf("expected only 'real' in bySlug, got %v", ix.BySlug)
	}
	for _, k := range []string{"None", "null", "", "NULL"} {
		if _, ok := ix.BySlug[k]; ok {
			t.Fatalf("placeholder %q should not be indexed", k)
		}
	}
	if len(ix.ByID) != 7 {
		t.Fatalf("expected 7 ids, got %d", len(ix.ByID))
	}
}

func TestBuild_NullIDsSkipped(t *testing.T) {
	companies := []company.Company{
		{Slug: "a"},
		{Slug: "b", ID: []byte("null")},
		{Slug: "c", ID: []byte(`"c-1"`)},
	}
	ix, err := Build(companies)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(ix.ByID) != 1 || ix.ByID["c-1"] != 2 {
		t.Fatalf("expected only c-1 indexed, got %v", ix.ByID)
	}
}

func TestBuild_NumericIDsKeepTheirText(t *testing.T) {
	companies := []company.Company{
		{Slug: "a", ID: []byte("1")},
		{Slug: "b", ID: []byte("1.0")},
		{Slug: "c", ID: []byte("1e2")},
		{Slug: "d", ID: []byte("100")},
	}
	ix, err := Build(companies)
	if err != nil {
		t.Fatalf("distinct id texts should not collide: %v", err)
	}
	for key, want := range map[string]int{"1": 0, "1.0": 1, "1e2": 2, "100": 3} {
		if got, ok := ix.ByID[key]; !ok || got != want {
			t.Errorf("expected id %s at %d, got %d (present %v)", key, want, got, ok)
		}
	}
}

func TestBuild_ReportsSlugAndIDDuplicates(t *testing.T) {
	companies := []company.Company{
		{Slug: "x", ID: []byte("1")},
		{Slug: "y", ID: []byte("1")},
		{Slug: "x", ID: []byte("2")},
		{Slug: "z", ID: []byte(`"1"`)},
	}

	_, err := Build(companies)
	var dupErr *DuplicateError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected *DuplicateError, got %v", err)
	}
	if len(dupErr.Slugs) != 1 || len(dupErr.IDs) != 1 {
		t.Fatalf("expected one slug and one id duplicate, got %+v", dupErr)
	}
	if got := dupErr.IDs[0].Positions; len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 3 {
		t.Fatalf("expected id positions [0 1 3], got %v", got)
	}
	msg := err.Error()
	if !strings.Contains(msg, "Duplicate slugs found") || !strings.Contains(msg, "Duplicate ids found") {
		t.Fatalf("expected both sections in report, got %s", msg)
	}
}

func TestIndex_WriteLoadLookup(t *testing.T) {
	ds := &company.Dataset{Companies: mkCompanies("first", "second")}
	ix, err := Build(ds.Companies)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out", FileName)
	if err := ix.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	c, err := loaded.LookupSlug(ds, "second")
	if err != nil || c.Slug != "second" {
		t.Fatalf("LookupSlug: %v %+v", err, c)
	}
	c, err = loaded.LookupID(ds, "100")
	if err != nil || c.Slug != "first" {
		t.Fatalf("LookupID: %v %+v", err, c)
	}
	if _, err := loaded.LookupSlug(ds, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	shrunk := &company.Dataset{Companies: ds.Companies[:1]}
	if _, err := loaded.LookupSlug(shrunk, "second"); !errors.Is(err, ErrStaleIndex) {
		t.Fatalf("expected ErrStaleIndex, got %v", err)
	}
}
