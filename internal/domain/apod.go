package domain

// APOD is one astronomy picture (or video) of the day. The *_es fields carry
// the secondary-language translation and are often missing.
type APOD struct {
	Date          string `json:"date"`
	Title         string `json:"title"`
	Explanation   string `json:"explanation"`
	TitleES       string `json:"title_es,omitempty"`
	ExplanationES string `json:"explanation_es,omitempty"`
	URL           string `json:"url"`
	HDURL         string `json:"hdurl,omitempty"`
	MediaType     string `json:"media_type"`
	Copyright     string `json:"copyright,omitempty"`
}

func (a APOD) IsVideo() bool {
	return a.MediaType == "video"
}

// HasSecondary reports whether both translated fields are present.
func (a APOD) HasSecondary() bool {
	return a.TitleES != "" && a.ExplanationES != ""
}

// Localized returns the title and explanation for lang, falling back to the
// primary fields when the translation is incomplete.
func (a APOD) Localized(lang Language) (title, explanation string) {
	if lang == LanguageSecondary && a.HasSecondary() {
		return a.TitleES, a.ExplanationES
	}
	return a.Title, a.Explanation
}
