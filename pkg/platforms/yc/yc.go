package yc

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sw33tLie/ycindex/pkg/platforms"
	"github.com/sw33tLie/ycindex/pkg/whttp"
	"github.com/tidwall/gjson"
)

const (
	YC_COMPANIES_ENDPOINT = "https://api.ycombinator.com/v0.1/companies"
)

// Source reads the YC company directory API.
type Source struct {
	endpoint string
	client   *retryablehttp.Client
}

// NewSource builds a source starting at endpoint (the public API when empty).
// A nil client uses the whttp default client.
func NewSource(endpoint string, client *retryablehttp.Client) *Source {
	if endpoint == "" {
		endpoint = YC_COMPANIES_ENDPOINT
	}
	return &Source{endpoint: endpoint, client: client}
}

func (s *Source) Name() string { return "yc" }

func (s *Source) StartURL() string { return s.endpoint }

func (s *Source) FetchPage(ctx context.Context, pageURL string) (*platforms.Page, error) {
	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{
		Method:  "GET",
		URL:     pageURL,
		Headers: []whttp.WHTTPHeader{{Name: "Accept", Value: "application/json"}},
	}, s.client)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		if res.HTTPTitle != "" {
			return nil, fmt.Errorf("fetching %s failed with status %d (%s)", pageURL, res.StatusCode, res.HTTPTitle)
		}
		return nil, fmt.Errorf("fetching %s failed with status %d", pageURL, res.StatusCode)
	}

	if !gjson.Valid(res.BodyString) {
		return nil, fmt.Errorf("invalid JSON body from %s", pageURL)
	}

	page := &platforms.Page{NextPage: gjson.Get(res.BodyString, "nextPage").String()}

	companies := gjson.Get(res.BodyString, "companies")
	switch {
	case !companies.Exists() || companies.Type == gjson.Null:
		// nothing on this page
	case companies.IsArray():
		page.Companies = companies.Array()
	default:
		return nil, fmt.Errorf("unexpected 'companies' payload from %s", pageURL)
	}

	return page, nil
}
