package polling

import (
	"context"
	"time"

	"github.com/sw33tLie/ycindex/pkg/platforms"
	"github.com/tidwall/gjson"
)

// DefaultDelay is the pause between page requests.
const DefaultDelay = 200 * time.Millisecond

// Logger abstracts logging so callers can use logrus, stdlib log, or any
// other logger that satisfies this interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// nopLogger silently discards all messages.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Config holds everything FetchAll needs for one directory walk.
type Config struct {
	Source   platforms.DirectorySource
	MaxPages int           // <= 0 means no cap
	Delay    time.Duration // slept between pages, never after the last one
	Log      Logger        // optional; nil = no logging

	// Sleep waits between pages. Nil uses a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Result holds the outcome of a directory walk.
type Result struct {
	Companies []gjson.Result
	Pages     int
	// Err is the failure that ended the walk early, if any. Companies from
	// pages fetched before it are still in Companies.
	Err error
}

// FetchAll walks the source's pages in order until the cursor runs out, the
// page cap is reached or a page fails. It never returns partial pages.
func FetchAll(ctx context.Context, cfg Config) *Result {
	log := cfg.Log
	if log == nil {
		log = nopLogger{}
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	src := cfg.Source

	result := &Result{}
	seen := map[string]struct{}{}
	pageURL := src.StartURL()

	for pageURL != "" {
		if cfg.MaxPages > 0 && result.Pages >= cfg.MaxPages {
			log.Infof("Reached max pages (%d), stopping", cfg.MaxPages)
			break
		}
		if err := ctx.Err(); err != nil {
			result.Err = err
			break
		}
		seen[pageURL] = struct{}{}

		log.Debugf("Fetching %s", pageURL)
		page, err := src.FetchPage(ctx, pageURL)
		if err != nil {
			log.Warnf("Error fetching page %d from %s: %v", result.Pages+1, src.Name(), err)
			result.Err = err
			break
		}

		result.Companies = append(result.Companies, page.Companies...)
		result.Pages++
		log.Infof("Fetched page %d: %d companies (total: %d)", result.Pages, len(page.Companies), len(result.Companies))

		next := page.NextPage
		if _, loop := seen[next]; next != "" && loop {
			log.Warnf("Next page %s was already fetched, stopping", next)
			break
		}
		if next == "" || (cfg.MaxPages > 0 && result.Pages >= cfg.MaxPages) {
			break
		}

		if err := sleep(ctx, cfg.Delay); err != nil {
			result.Err = err
			break
		}
		pageURL = next
	}

	return result
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
