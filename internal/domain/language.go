package domain

import "fmt"

// Language selects which of the two parallel localized APOD fields are shown.
type Language string

const (
	LanguagePrimary   Language = "primary"
	LanguageSecondary Language = "secondary"
)

func (l Language) String() string {
	return string(l)
}

// Toggle flips primary and secondary. Anything unknown toggles to secondary.
func (l Language) Toggle() Language {
	if l == LanguageSecondary {
		return LanguagePrimary
	}
	return LanguageSecondary
}

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguagePrimary, LanguageSecondary:
		return Language(s), nil
	case "":
		return LanguagePrimary, nil
	default:
		return "", fmt.Errorf("unknown language %q", s)
	}
}
