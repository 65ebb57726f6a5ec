package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sw33tLie/ycindex/pkg/company"
	"github.com/sw33tLie/ycindex/pkg/index"
	"github.com/sw33tLie/ycindex/pkg/platforms/yc"
	"github.com/sw33tLie/ycindex/pkg/polling"
)

func main() {
	// Usage: go run *.go -pages 2 -slug airbnb

	pagesFlag := flag.Int("pages", 1, "Pages to fetch")
	slugFlag := flag.String("slug", "", "Slug to look up")

	// Parse the command-line flags
	flag.Parse()

	if *slugFlag == "" {
		fmt.Println("Slug is required. Please provide it using -slug flag.")
		return
	}

	res := polling.FetchAll(context.Background(), polling.Config{
		Source:   yc.NewSource("", nil),
		MaxPages: *pagesFlag,
		Delay:    polling.DefaultDelay,
	})
	if res.Err != nil {
		fmt.Println("Stopped early:", res.Err)
	}

	dataset := &company.Dataset{Companies: company.Build(res.Companies)}
	ix, err := index.Build(dataset.Companies)
	if err != nil {
		fmt.Println(err)
		return
	}

	c, err := ix.LookupSlug(dataset, *slugFlag)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Name, c.Batch, c.OneLiner)
}
