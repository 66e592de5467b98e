package view

import (
	"space/explorer/internal/domain"
	"space/explorer/internal/localization"
)

// APOD renders the picture of the day in lang. The toggle button only appears
// when the payload carries a complete secondary translation.
func APOD(apod *domain.APOD, lang domain.Language, tr *localization.Translator) Node {
	if apod == nil || (apod.Title == "" && apod.URL == "") {
		return NoData(tr)
	}

	title, explanation := apod.Localized(lang)
	showingSecondary := lang == domain.LanguageSecondary && apod.HasSecondary()

	toggleLabel := tr.T("ViewInSecondary")
	if showingSecondary {
		toggleLabel = tr.T("ViewInPrimary")
	}

	return Div(A("class", "result-item", "data-language", string(lang)),
		Div(Class("result-header"),
			H3(Class("result-title"), Text(orElse(title, tr.T("Untitled")))),
			If(apod.HasSecondary(), func() Node {
				return actionButton("/api/apod/language", "fa-language", toggleLabel)
			}),
		),
		Div(Class("result-date"), Text(orElse(apod.Date, tr.T("NoDate")))),
		P(Class("result-explanation"), Text(orElse(explanation, tr.T("NoDescription")))),
		apodMedia(apod, title, "result"),
		If(apod.Copyright != "", func() Node {
			return P(Class("copyright"), Text(tr.T("Copyright", map[string]any{"Owner": apod.Copyright})))
		}),
	)
}

// APODGallery renders a batch of pictures as gallery tiles. It backs both
// the multi-picture APOD view and the gallery section.
func APODGallery(apods []domain.APOD, tr *localization.Translator) Node {
	if len(apods) == 0 {
		return Div(Class("result-item empty"), Text(tr.T("NoGallery")))
	}

	return Div(Class("gallery"), Each(apods, func(a domain.APOD) Node {
		title := orElse(a.Title, tr.T("Untitled"))
		return Div(Class("gallery-item"),
			If(a.URL != "", func() Node { return apodMedia(&a, title, "gallery") }),
			Div(Class("gallery-content"),
				H4(Class("gallery-title"), Text(title)),
				Div(Class("gallery-date"), Text(orElse(a.Date, tr.T("NoDate")))),
			),
		)
	}))
}

func apodMedia(apod *domain.APOD, title, kind string) Node {
	if apod.URL == "" {
		return nil
	}
	if apod.IsVideo() {
		return El("video", A("class", kind+"-video", "controls", ""),
			El("source", A("src", apod.URL, "type", "video/mp4")))
	}
	return Img(A("src", apod.URL, "alt", title, "class", kind+"-image"))
}
