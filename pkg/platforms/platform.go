package platforms

import (
	"context"

	"github.com/tidwall/gjson"
)

// Page is one response of a cursor-paginated company directory.
type Page struct {
	Companies []gjson.Result
	// NextPage is the continuation URL, empty on the last page.
	NextPage string
}

// DirectorySource abstracts a remote company directory that is walked one
// page at a time. The continuation URL of a page is only known once the page
// has been fetched.
type DirectorySource interface {
	Name() string
	StartURL() string
	FetchPage(ctx context.Context, pageURL string) (*Page, error)
}
