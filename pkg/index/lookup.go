package index

import (
	"errors"
	"fmt"

	"github.com/sw33tLie/ycindex/pkg/company"
)

var (
	ErrNotFound   = errors.New("no company for key")
	ErrStaleIndex = errors.New("index position outside dataset, rebuild the index")
)

// LookupSlug resolves a slug against ds.
func (ix *Index) LookupSlug(ds *company.Dataset, slug string) (company.Company, error) {
	key, ok := SlugKey(slug)
	if !ok {
		return company.Company{}, fmt.Errorf("%w: slug %q", ErrNotFound, slug)
	}
	pos, ok := ix.BySlug[key]
	if !ok {
		return company.Company{}, fmt.Errorf("%w: slug %q", ErrNotFound, key)
	}
	return resolve(ds, pos)
}

// LookupID resolves a stringified id against ds.
func (ix *Index) LookupID(ds *company.Dataset, id string) (company.Company, error) {
	pos, ok := ix.ByID[id]
	if !ok {
		return company.Company{}, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	return resolve(ds, pos)
}

func resolve(ds *company.Dataset, pos int) (company.Company, error) {
	if pos < 0 || pos >= len(ds.Companies) {
		return company.Company{}, fmt.Errorf("%w: position %d, dataset has %d companies", ErrStaleIndex, pos, len(ds.Companies))
	}
	return ds.Companies[pos], nil
}
