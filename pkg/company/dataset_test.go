package company

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

func TestDataset_WriteAndLoad(t *testing.T) {
	raws := gjson.Parse(`[
		{"id": 1, "slug": "one", "name": "One", "batch": "S20", "industries": ["B2B"]},
		{"id": "x2", "slug": "two", "name": "Two <&>", "batch": "W22"},
		{"slug": "three", "name": "Three"}
	]`).Array()

	ds := NewDataset(Build(raws), time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC))
	path := filepath.Join(t.TempDir(), "data", "yc_companies.json")
	if err := ds.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)
	if !strings.Contains(body, "Two <&>") {
		t.Errorf("expected unescaped name in output, got %s", body)
	}
	order := []string{`"version"`, `"count"`, `"companies"`, `"id"`, `"slug"`, `"name"`, `"smallLogoUrl"`, `"oneLiner"`, `"batch"`, `"batchIndex"`, `"status"`, `"primaryIndustry"`, `"industries"`, `"badges"`, `"regions"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(body, key)
		if idx <= last {
			t.Fatalf("expected %s after previous fields, body: %s", key, body)
		}
		last = idx
	}

	loaded, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if loaded.Version != "2024-03-09" || loaded.Count != 3 || len(loaded.Companies) != 3 {
		t.Fatalf("unexpected dataset header: %+v", loaded)
	}
	if loaded.Companies[0].Slug != "two" || loaded.Companies[1].Slug != "one" || loaded.Companies[2].Slug != "three" {
		t.Fatalf("unexpected order: %v", loaded.Companies)
	}
	if id, ok := loaded.Companies[2].IDString(); ok {
		t.Fatalf("expected null id for record without id, got %q", id)
	}
	if id, _ := loaded.Companies[0].IDString(); id != "x2" {
		t.Fatalf("expected string id x2, got %q", id)
	}
}

func TestDataset_EmptyListsSerializeAsArrays(t *testing.T) {
	ds := NewDataset([]Company{Normalize(gjson.Parse(`{}`))}, time.Now())
	data, err := json.Marshal(ds)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"industries":[]`) || !strings.Contains(string(data), `"regions":[]`) {
		t.Fatalf("expected empty arrays, got %s", data)
	}
	if !strings.Contains(string(data), `"id":null`) {
		t.Fatalf("expected null id passthrough, got %s", data)
	}
}

func TestLoadDataset_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDataset(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, ErrDatasetNotFound) {
		t.Fatalf("expected ErrDatasetNotFound, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte(`{"companies": [`), 0o644)
	_, err = LoadDataset(bad)
	if !errors.Is(err, ErrMalformedDataset) {
		t.Fatalf("expected ErrMalformedDataset, got %v", err)
	}

	noKey := filepath.Join(dir, "nokey.json")
	os.WriteFile(noKey, []byte(`{"version": "2024-01-01", "count": 0}`), 0o644)
	_, err = LoadDataset(noKey)
	if !errors.Is(err, ErrMissingCompanies) {
		t.Fatalf("expected ErrMissingCompanies, got %v", err)
	}

	notArray := filepath.Join(dir, "notarray.json")
	os.WriteFile(notArray, []byte(`{"companies": {"a": 1}}`), 0o644)
	_, err = LoadDataset(notArray)
	if !errors.Is(err, ErrMalformedDataset) {
		t.Fatalf("expected ErrMalformedDataset for non-array companies, got %v", err)
	}
}

func TestLoadDataset_HandEditedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edited.json")
	os.WriteFile(path, []byte(`{
  "version": "2024-05-01",
  "count": "2",
  "companies": [
    {"id": 1.0, "slug": 123, "name": "Numeric", "batch": "S24", "batchIndex": 2024.25, "industries": {"Fintech": true, "B2B": 1}, "badges": null},
    {"id": 2, "slug": "plain", "name": "Plain", "batchIndex": "", "regions": ["Europe", null]}
  ]
}`), 0o644)

	d, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if d.Count != 2 || len(d.Companies) != 2 {
		t.Fatalf("expected count 2 with 2 records, got %d/%d", d.Count, len(d.Companies))
	}

	c := d.Companies[0]
	if c.Slug != "123" || c.BatchIndex != "2024.25" {
		t.Fatalf("numbers should keep their JSON text, got slug %q batchIndex %q", c.Slug, c.BatchIndex)
	}
	if id, _ := c.IDString(); id != "1.0" {
		t.Fatalf("expected id 1.0, got %q", id)
	}
	if strings.Join(c.Industries, ",") != "Fintech,B2B" || len(c.Badges) != 0 {
		t.Fatalf("unexpected lists %v %v", c.Industries, c.Badges)
	}
	if got := d.Companies[1].Regions; len(got) != 1 || got[0] != "Europe" {
		t.Fatalf("unexpected regions %v", got)
	}
}
