package view

import (
	"strconv"

	"space/explorer/internal/domain"
	"space/explorer/internal/localization"
)

const asteroidTiles = 6

func Asteroids(feed *domain.AsteroidFeed, tr *localization.Translator) Node {
	if feed == nil || len(feed.Objects) == 0 {
		return Div(Class("result-item empty"), Text(tr.T("NoAsteroids")))
	}

	return Fragment(
		Div(Class("stats"),
			stat(strconv.Itoa(len(feed.Objects)), tr.T("AsteroidsDetected")),
			stat(strconv.Itoa(feed.HazardousCount()), tr.T("PotentiallyHazardous")),
		),
		Div(Class("gallery"), Each(firstN(feed.Objects, asteroidTiles), func(n domain.NearEarthObject) Node {
			distance := tr.T("NotAvailable")
			if km, ok := n.MissDistanceKm(); ok {
				distance = km
			}

			badgeClass, badge := "badge safe", tr.T("SafeBadge")
			if n.Hazardous {
				badgeClass, badge = "badge hazardous", tr.T("HazardBadge")
			}

			return Div(Class("gallery-item"),
				Div(Class("gallery-content"),
					H4(Class("gallery-title"), Text(orElse(n.Name, tr.T("Untitled")))),
					Div(Class("gallery-date"), Text(tr.T("MissDistance", map[string]any{"Km": distance}))),
					Div(Class(badgeClass), Text(badge)),
				),
			)
		})),
	)
}
