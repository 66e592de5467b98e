package view

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"space/explorer/internal/domain"
	"space/explorer/internal/localization"
)

const (
	assetImageLinks = 3
	assetVideoLinks = 2
	assetKeywords   = 10
)

// ImageCategories renders the fixed image-library topic picker.
func ImageCategories(tr *localization.Translator) Node {
	return Div(Class("result-item"),
		H3(Class("result-title"), Text(tr.T("ImageLibraryTitle"))),
		P(Class("result-explanation"), Text(tr.T("ImageLibraryPrompt"))),
		Div(Class("famous-places-grid"), Each(domain.ImageTopics, func(t domain.ImageTopic) Node {
			key := "Topic" + capitalize(t.Query)
			return Button(A("class", "place-btn", "data-action", "/api/images/category/"+t.Query),
				I("fas "+t.Icon),
				Span(nil, Text(tr.T(key))),
				Small(nil, Text(tr.T(key+"Hint"))),
			)
		})),
	)
}

// ImagesByCategory renders a topic browse result.
func ImagesByCategory(res *domain.ImageCollection, category string, tr *localization.Translator) Node {
	back := backToCategories(tr)
	if res == nil || !res.Present || len(res.Items) == 0 {
		return EmptyState(tr.T("ImageLibraryTitle"),
			tr.T("NoImagesForCategory", map[string]any{"Category": category}),
			tr.T("TryAnotherCategory"), back)
	}

	return imageResults(res,
		tr.T("ImagesOfTopic", map[string]any{"Category": capitalize(category)}),
		tr, back)
}

// SearchResults renders a free-text search result.
func SearchResults(res *domain.ImageCollection, query string, tr *localization.Translator) Node {
	back := backToCategories(tr)
	if res == nil || !res.Present || len(res.Items) == 0 {
		return EmptyState(tr.T("ImageLibraryTitle"),
			tr.T("NoSearchResults", map[string]any{"Query": query}), "", back)
	}
	return imageResults(res, tr.T("SearchResultsTitle", map[string]any{"Query": query}), tr, back)
}

func imageResults(res *domain.ImageCollection, title string, tr *localization.Translator, back Node) Node {
	total := res.TotalHits
	if total == 0 {
		total = len(res.Items)
	}

	return Div(Class("result-item"),
		H3(Class("result-title"), Text(title)),
		P(Class("result-explanation"), Text(tr.T("ResultsSummary", map[string]any{
			"Total": strconv.Itoa(total),
			"Shown": strconv.Itoa(len(res.Items)),
		}))),
		Div(Class("gallery"), Each(res.Items, func(item domain.ImageItem) Node {
			itemTitle := orElse(item.Title, tr.T("Untitled"))
			preview := item.PreviewURL()

			media := tr.T("MediaImage")
			if item.MediaType == "video" {
				media = tr.T("MediaVideo")
			}

			return Div(A("class", "gallery-item", "data-nasa-id", item.NASAID),
				If(preview != "", func() Node {
					return Img(A("src", preview, "alt", itemTitle, "class", "gallery-image"))
				}),
				Div(Class("gallery-content"),
					H4(Class("gallery-title"), Text(itemTitle)),
					Div(Class("gallery-date"), Text(orElse(item.DateCreated, tr.T("NoDate")))),
					Div(Class("media-type"), Text(media)),
					If(item.NASAID != "", func() Node {
						return actionButton("/api/images/asset/"+url.PathEscape(item.NASAID), "fa-info-circle", tr.T("ViewDetails"))
					}),
				),
			)
		})),
		back,
	)
}

// AssetDetails renders one asset with its image and video renditions.
func AssetDetails(res *domain.ImageCollection, tr *localization.Translator) Node {
	back := backToCategories(tr)
	if res == nil || !res.Present {
		return EmptyState(tr.T("AssetDetailsTitle"), tr.T("AssetUnavailable"), "", back)
	}
	if len(res.Items) == 0 {
		return EmptyState(tr.T("AssetDetailsTitle"), tr.T("AssetNotFound"), "", back)
	}

	asset := res.Items[0]
	title := orElse(asset.Title, tr.T("Untitled"))
	images := firstN(asset.LinksByRender("image"), assetImageLinks)
	videos := firstN(asset.LinksByRender("video"), assetVideoLinks)
	keywords := firstN(asset.Keywords, assetKeywords)

	return Div(A("class", "result-item", "data-nasa-id", asset.NASAID),
		H3(Class("result-title"), Text(title)),
		Div(Class("result-date"), Text(orElse(asset.DateCreated, tr.T("NoDate")))),
		P(Class("result-explanation"), Text(orElse(asset.Description, tr.T("NoDescription")))),
		If(len(images) > 0, func() Node {
			return Div(Class("asset-section"),
				H4(nil, Text(tr.T("AvailableImages"))),
				Div(Class("gallery"), Each(images, func(l domain.ImageLink) Node {
					return Div(Class("gallery-item"),
						Img(A("src", l.Href, "alt", title, "class", "gallery-image")),
						Div(Class("gallery-content"),
							Div(Class("gallery-title"), Text(orElse(l.Rel, tr.T("ImageLabel"))))),
					)
				})),
			)
		}),
		If(len(videos) > 0, func() Node {
			return Div(Class("asset-section"),
				H4(nil, Text(tr.T("AvailableVideos"))),
				Div(Class("gallery"), Each(videos, func(l domain.ImageLink) Node {
					return Div(Class("gallery-item"),
						El("video", A("class", "gallery-image", "controls", ""),
							El("source", A("src", l.Href, "type", "video/mp4")),
							Text(tr.T("VideoUnsupported")),
						),
						Div(Class("gallery-content"),
							Div(Class("gallery-title"), Text(orElse(l.Rel, tr.T("VideoLabel"))))),
					)
				})),
			)
		}),
		If(len(keywords) > 0, func() Node {
			return Div(Class("asset-section"),
				H4(nil, Text(tr.T("Keywords"))),
				Div(Class("keywords"), Each(keywords, func(k string) Node {
					return Span(Class("keyword"), Text(k))
				})),
			)
		}),
		back,
	)
}

func backToCategories(tr *localization.Translator) Node {
	return actionButton("/api/load/images", "fa-arrow-left", tr.T("BackToCategories"))
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
