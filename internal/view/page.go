package view

import (
	"strings"

	"space/explorer/internal/domain"
	"space/explorer/internal/localization"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RegionState is the visible state of one display region.
type RegionState struct {
	ID      string
	Visible bool
	Content string
}

// Page renders the full dashboard document around the current region states.
func Page(regions map[string]RegionState, tr *localization.Translator) Node {
	sections := make([]Node, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		sections = append(sections, El("section", A("id", c.String(), "class", "category"),
			El("h2", nil, Text(c.GetCategoryName())),
			actionButton("/api/load/"+c.String(), "fa-sync", c.GetCategoryName()),
			region(regions[c.LoadingRegion()], c.LoadingRegion(), "loading", Text(tr.T("Loading"))),
			region(regions[c.ResultsRegion()], c.ResultsRegion(), "results", nil),
		))
	}

	doc := El("html", A("lang", tr.Locale()),
		El("head", nil,
			El("meta", A("charset", "utf-8")),
			El("title", nil, Text(tr.T("PageTitle"))),
		),
		El("body", nil,
			El("header", nil,
				El("h1", nil, Text(tr.T("PageTitle"))),
				actionButton("/api/load/all", "fa-satellite-dish", tr.T("LoadAll")),
			),
			El("main", nil, sections...),
		),
	)
	return Fragment(&html.Node{Type: html.DoctypeNode, Data: "html"}, doc)
}

func region(state RegionState, id, class string, placeholder Node) Node {
	attrs := A("id", id, "class", class)
	if !state.Visible {
		attrs = append(attrs, html.Attribute{Key: "hidden"})
	}

	n := El("div", attrs)
	if state.Content == "" {
		if placeholder != nil {
			n.AppendChild(placeholder)
		}
		return n
	}

	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(state.Content), context)
	if err != nil {
		n.AppendChild(Text(state.Content))
		return n
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return n
}
