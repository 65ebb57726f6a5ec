package company

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var controlWhitespace = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")

// SanitizeText replaces newlines, carriage returns and tabs with spaces,
// collapses runs of spaces and trims the result.
func SanitizeText(s string) string {
	if s == "" {
		return ""
	}
	s = controlWhitespace.Replace(s)
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}

// BatchIndex maps a batch label to a sortable key: WYY -> 2000+YY+0.25,
// SYY -> 2000+YY+0.75. Any other label (e.g. "IK12") yields "".
func BatchIndex(batch string) string {
	b := strings.ToUpper(strings.TrimSpace(batch))
	if len(b) < 3 {
		return ""
	}

	var season float64
	switch b[0] {
	case 'W':
		season = 0.25
	case 'S':
		season = 0.75
	default:
		return ""
	}

	yy, ok := parseYear(b[1:])
	if !ok {
		return ""
	}
	return strconv.FormatFloat(float64(2000+yy)+season, 'f', -1, 64)
}

func parseYear(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	yy, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return yy, true
}

// ToStrings converts a multi-value attribute into an ordered list of strings.
// Arrays keep their element order minus null elements. Objects contribute
// their keys, in document order, never their values: upstream encodes some
// tag sets as {"tag": ...}. Anything else, including null, is empty.
func ToStrings(v gjson.Result) []string {
	out := []string{}
	switch {
	case !v.Exists() || v.Type == gjson.Null:
		return out
	case v.IsArray():
		v.ForEach(func(_, item gjson.Result) bool {
			if item.Type != gjson.Null {
				out = append(out, item.String())
			}
			return true
		})
	case v.IsObject():
		v.ForEach(func(key, _ gjson.Result) bool {
			out = append(out, key.String())
			return true
		})
	}
	return out
}

// Normalize turns one raw upstream record into a canonical Company.
// It never fails: missing, null or oddly typed fields become empty values.
func Normalize(raw gjson.Result) Company {
	batch := raw.Get("batch").String()
	industries := ToStrings(raw.Get("industries"))

	c := Company{
		ID:           passthroughID(raw.Get("id")),
		Slug:         raw.Get("slug").String(),
		Name:         SanitizeText(raw.Get("name").String()),
		SmallLogoURL: raw.Get("smallLogoUrl").String(),
		OneLiner:     SanitizeText(raw.Get("oneLiner").String()),
		Batch:        batch,
		BatchIndex:   BatchIndex(batch),
		Status:       raw.Get("status").String(),
		Industries:   industries,
		Badges:       ToStrings(raw.Get("badges")),
		Regions:      ToStrings(raw.Get("regions")),
	}
	if len(industries) > 0 {
		c.PrimaryIndustry = industries[0]
	}
	return c
}

func passthroughID(v gjson.Result) json.RawMessage {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	return json.RawMessage(v.Raw)
}

// Build normalizes every raw record and returns them in dataset order.
func Build(raws []gjson.Result) []Company {
	companies := make([]Company, 0, len(raws))
	for _, raw := range raws {
		companies = append(companies, Normalize(raw))
	}
	Sort(companies)
	return companies
}
