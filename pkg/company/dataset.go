package company

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sw33tLie/ycindex/internal/utils"
	"github.com/tidwall/gjson"
)

const (
	DefaultDatasetPath = "data/yc_companies.json"
	versionLayout      = "2006-01-02"
)

var (
	ErrDatasetNotFound  = errors.New("input file not found")
	ErrMalformedDataset = errors.New("invalid JSON")
	ErrMissingCompanies = errors.New("does not contain 'companies' field")
)

// Dataset is the persisted canonical directory snapshot.
type Dataset struct {
	Version   string    `json:"version"`
	Count     int       `json:"count"`
	Companies []Company `json:"companies"`
}

// NewDataset wraps already ordered companies, stamping the version with now's date.
func NewDataset(companies []Company, now time.Time) *Dataset {
	if companies == nil {
		companies = []Company{}
	}
	return &Dataset{
		Version:   now.Format(versionLayout),
		Count:     len(companies),
		Companies: companies,
	}
}

// Write replaces the file at path with the dataset.
func (d *Dataset) Write(path string) error {
	return utils.WriteJSONFile(path, d)
}

// LoadDataset reads a dataset file. Returned errors wrap ErrDatasetNotFound,
// ErrMalformedDataset or ErrMissingCompanies.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w in %s", ErrMalformedDataset, path)
	}

	companies := gjson.GetBytes(data, "companies")
	if !companies.Exists() {
		return nil, fmt.Errorf("input file %s %w", path, ErrMissingCompanies)
	}
	if !companies.IsArray() {
		return nil, fmt.Errorf("%w in %s: 'companies' is not an array", ErrMalformedDataset, path)
	}

	d := &Dataset{
		Version:   gjson.GetBytes(data, "version").String(),
		Count:     int(gjson.GetBytes(data, "count").Int()),
		Companies: make([]Company, 0, len(companies.Array())),
	}
	companies.ForEach(func(_, v gjson.Result) bool {
		d.Companies = append(d.Companies, decodeCompany(v))
		return true
	})
	return d, nil
}

// decodeCompany reads one stored record as is. Unlike Normalize it neither
// sanitizes text nor recomputes derived fields, and it tolerates hand-edited
// values: numbers keep their JSON text, objects in list fields give their keys.
func decodeCompany(v gjson.Result) Company {
	return Company{
		ID:              passthroughID(v.Get("id")),
		Slug:            scalarText(v.Get("slug")),
		Name:            scalarText(v.Get("name")),
		SmallLogoURL:    scalarText(v.Get("smallLogoUrl")),
		OneLiner:        scalarText(v.Get("oneLiner")),
		Batch:           scalarText(v.Get("batch")),
		BatchIndex:      scalarText(v.Get("batchIndex")),
		Status:          scalarText(v.Get("status")),
		PrimaryIndustry: scalarText(v.Get("primaryIndustry")),
		Industries:      ToStrings(v.Get("industries")),
		Badges:          ToStrings(v.Get("badges")),
		Regions:         ToStrings(v.Get("regions")),
	}
}

func scalarText(v gjson.Result) string {
	if v.Type == gjson.Number {
		return v.Raw
	}
	return v.String()
}
