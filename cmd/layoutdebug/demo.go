package main

import "github.com/flowkit/retained/fixtures"

// buildDemoTree returns a small fixed tree: a fit-content vertical stack
// holding two fixed-size panels and a footer whose top-right corner is
// anchored to the header's bottom-right corner.
func buildDemoTree() *fixtures.Box {
	header := fixtures.New(
		fixtures.WithStyle("width: 200\nheight: 40\nmargin: 4"),
		fixtures.WithTags("header"),
	)
	body := fixtures.New(
		fixtures.WithStyle("width: 200\nheight: 120\nmargin: 4"),
	)
	footer := fixtures.New(fixtures.WithStyle(
		"position: anchor\n" +
			"anchorTarget: header\n" +
			"anchorPoint: bottom-right\n" +
			"selfAnchor: top-right\n" +
			"width: 60\nheight: 20",
	))

	return fixtures.New(
		fixtures.WithStyle("display: vertical\npadding: 10\ngap: 8\nfitContent: true\nborder: 2"),
		fixtures.WithChildren(header, body, footer),
	)
}
