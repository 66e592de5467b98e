// Package localization translates the dashboard chrome. Message files are
// embedded and named messages.<lang>.toml.
package localization

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Supported lists the locales shipped with the binary.
var Supported = []string{"en", "es"}

// NewBundle loads every embedded message file.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list message files: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		buf, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, name); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	}
	return bundle, nil
}

// Translator renders messages for one locale.
type Translator struct {
	locale    string
	localizer *i18n.Localizer
}

func New(bundle *i18n.Bundle, locale string) (*Translator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Translator{
		locale:    tag.String(),
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// MustNew builds a translator from the embedded bundle and panics on failure.
// Intended for tests and static setup.
func MustNew(locale string) *Translator {
	bundle, err := NewBundle()
	if err != nil {
		panic(err)
	}
	t, err := New(bundle, locale)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Translator) Locale() string {
	return t.locale
}

// T translates messageID. A missing message yields the id itself.
func (t *Translator) T(messageID string, data ...map[string]any) string {
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}

	msg, err := t.localizer.Localize(cfg)
	if err != nil {
		log.WithError(err).WithField("messageID", messageID).Warn("⚠️ Missing translation")
		return messageID
	}
	return msg
}
