package view

import (
	"space/explorer/internal/domain"
	"space/explorer/internal/localization"
)

// MarsWeather renders the most recent sol. Missing payloads, an empty sol
// list and a sol without readings each render their own message.
func MarsWeather(weather *domain.MarsWeather, tr *localization.Translator) Node {
	title := tr.T("MarsTitle")
	if weather == nil {
		return EmptyState(title, tr.T("MarsUnavailable"), tr.T("MarsUnavailableHint"), nil)
	}

	sol, latest := weather.Latest()
	if sol == "" {
		return EmptyState(title, tr.T("MarsNoRecentData"), tr.T("MarsNoRecentHint"), nil)
	}
	if latest == nil {
		return EmptyState(title, tr.T("MarsSolMissing"), tr.T("MarsNoRecentHint"), nil)
	}

	na := tr.T("NotAvailable")
	return Div(A("class", "result-item", "data-sol", sol),
		H3(Class("result-title"), Text(title)),
		Div(Class("stats"),
			stat(reading(latest.Temperature, "°C", na), tr.T("AvgTemperature")),
			stat(reading(latest.WindSpeed, " m/s", na), tr.T("WindSpeed")),
			stat(reading(latest.Pressure, " Pa", na), tr.T("Pressure")),
		),
		P(Class("result-explanation"), Text(tr.T("MarsFooter", map[string]any{"Sol": sol}))),
		If(latest.FirstUTC != "", func() Node {
			return P(Class("updated"), Text(tr.T("LastUpdated", map[string]any{"When": latest.FirstUTC})))
		}),
	)
}

func reading(m *domain.Measurement, unit, na string) string {
	if m == nil || m.Average == "" {
		return na
	}
	return m.Average.String() + unit
}
