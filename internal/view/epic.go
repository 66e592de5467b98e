package view

import (
	"space/explorer/internal/domain"
	"space/explorer/internal/localization"
)

const epicTiles = 6

func EPIC(images []domain.EPICImage, archiveURL string, tr *localization.Translator) Node {
	if len(images) == 0 {
		return Div(Class("result-item empty"), Text(tr.T("NoEPIC")))
	}

	return Div(Class("gallery"), Each(firstN(images, epicTiles), func(e domain.EPICImage) Node {
		title := "EPIC " + orElse(e.Date, tr.T("NoDate"))
		src, ok := e.ImageURL(archiveURL)
		return Div(Class("gallery-item"),
			If(ok, func() Node { return Img(A("src", src, "alt", title, "class", "gallery-image")) }),
			If(!ok, func() Node { return Div(Class("gallery-placeholder"), Text(tr.T("NotAvailable"))) }),
			Div(Class("gallery-content"),
				H4(Class("gallery-title"), Text(title)),
				Div(Class("gallery-date"), Text(tr.T("EPICCaption"))),
			),
		)
	}))
}
