package company

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Company is the canonical, schema-stable shape of one directory record.
// Field order here is the field order of the persisted dataset.
type Company struct {
	// ID is passed through from upstream untouched; it may be any JSON scalar or null.
	ID              json.RawMessage `json:"id"`
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	SmallLogoURL    string          `json:"smallLogoUrl"`
	OneLiner        string          `json:"oneLiner"`
	Batch           string          `json:"batch"`
	BatchIndex      string          `json:"batchIndex"` // "" when the batch label is unrecognized
	Status          string          `json:"status"`
	PrimaryIndustry string          `json:"primaryIndustry"`
	Industries      []string        `json:"industries"`
	Badges          []string        `json:"badges"`
	Regions         []string        `json:"regions"`
}

// IDString returns the id as a lookup key. Numbers keep their JSON text, so
// 1 and 1.0 are distinct keys. ok is false when the id is absent or null.
func (c Company) IDString() (id string, ok bool) {
	if len(c.ID) == 0 {
		return "", false
	}
	v := gjson.ParseBytes(c.ID)
	switch v.Type {
	case gjson.Null:
		return "", false
	case gjson.Number:
		return v.Raw, true
	}
	return v.String(), true
}
