package view

import (
	"space/explorer/internal/localization"
)

// ErrorGlyph prefixes every rendered error message.
const ErrorGlyph = "⚠️"

// ErrorBox renders a visible inline error.
func ErrorBox(message string) Node {
	return Div(Class("error"), Text(ErrorGlyph+" "+message))
}

// EmptyState renders a titled result item carrying an error line, an
// optional hint and an optional back action.
func EmptyState(title, message, hint string, back Node) Node {
	return Div(Class("result-item"),
		H3(Class("result-title"), Text(title)),
		ErrorBox(message),
		If(hint != "", func() Node { return P(Class("result-explanation"), Text(hint)) }),
		back,
	)
}

func NoData(tr *localization.Translator) Node {
	return Div(Class("result-item empty"), Text(tr.T("NoData")))
}

func stat(value, label string) Node {
	return Div(Class("stat-item"),
		Div(Class("stat-value"), Text(value)),
		Div(Class("stat-label"), Text(label)),
	)
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func actionButton(action, icon, label string) Node {
	return Button(A("class", "btn btn-secondary", "data-action", action),
		I("fas "+icon), Text(" "+label))
}
