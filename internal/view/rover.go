package view

import (
	"strconv"

	"space/explorer/internal/domain"
	"space/explorer/internal/localization"
)

const roverTiles = 6

func RoverPhotos(photos *domain.RoverPhotos, tr *localization.Translator) Node {
	if photos == nil || len(photos.Photos) == 0 {
		return Div(Class("result-item empty"), Text(tr.T("NoRoverPhotos")))
	}

	return Div(Class("gallery"), Each(firstN(photos.Photos, roverTiles), func(p domain.RoverPhoto) Node {
		name := orElse(p.Rover.Name, tr.T("NotAvailable"))
		return Div(Class("gallery-item"),
			If(p.ImgSrc != "", func() Node {
				return Img(A("src", p.ImgSrc, "alt", "Rover "+name, "class", "gallery-image"))
			}),
			Div(Class("gallery-content"),
				H4(Class("gallery-title"), Text(name)),
				Div(Class("gallery-date"), Text(tr.T("RoverCaption", map[string]any{
					"Sol":    strconv.Itoa(p.Sol),
					"Camera": orElse(p.Camera.Name, tr.T("NotAvailable")),
				}))),
			),
		)
	}))
}
