package company

import (
	"fmt"
	"strings"
)

// FormatCompany renders selected fields of c joined by delimiter. Supported
// flags: i (id), s (slug), n (name), b (batch), x (batchIndex), t (status),
// p (primaryIndustry), o (oneLiner), l (smallLogoUrl).
func FormatCompany(c Company, outputFlags, delimiter string) (string, error) {
	var line string
	for _, f := range outputFlags {
		switch f {
		case 'i':
			id, _ := c.IDString()
			line += id + delimiter
		case 's':
			line += c.Slug + delimiter
		case 'n':
			line += c.Name + delimiter
		case 'b':
			line += c.Batch + delimiter
		case 'x':
			line += c.BatchIndex + delimiter
		case 't':
			line += c.Status + delimiter
		case 'p':
			line += c.PrimaryIndustry + delimiter
		case 'o':
			line += c.OneLiner + delimiter
		case 'l':
			line += c.SmallLogoURL + delimiter
		default:
			return "", fmt.Errorf("invalid output flag %q", f)
		}
	}
	return strings.TrimSuffix(line, delimiter), nil
}
