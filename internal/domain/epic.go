package domain

import (
	"fmt"
	"strings"
	"time"
)

type EPICImage struct {
	Identifier string `json:"identifier"`
	Image      string `json:"image"`
	Caption    string `json:"caption"`
	Date       string `json:"date"`
}

// ArchivePath returns the yyyy/mm/dd path component derived from Date
// ("2024-01-02 00:13:03").
func (e EPICImage) ArchivePath() (string, bool) {
	day, _, _ := strings.Cut(strings.TrimSpace(e.Date), " ")
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return "", false
	}
	return t.Format("2006/01/02"), true
}

// ImageURL builds the natural-color PNG URL under archiveURL.
func (e EPICImage) ImageURL(archiveURL string) (string, bool) {
	path, ok := e.ArchivePath()
	if !ok || e.Image == "" {
		return "", false
	}
	return fmt.Sprintf("%s/%s/png/%s.png", strings.TrimRight(archiveURL, "/"), path, e.Image), true
}
