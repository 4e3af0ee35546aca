package labels

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var catalogues embed.FS

// DefaultLanguage is used for labels a catalogue does not translate.
var DefaultLanguage = language.English

// ErrUnknownLanguage is returned for a language tag that cannot be parsed.
var ErrUnknownLanguage = errors.New("unknown language")

// Localizer turns label ids into display strings for one language.
type Localizer struct {
	bundle   *i18n.Bundle
	loc      *i18n.Localizer
	fallback *i18n.Localizer
	tag      language.Tag
	logger   *slog.Logger
}

// NewLocalizer loads the built-in catalogues and localises into lang, for
// example "de" or "pt-BR". An empty lang selects DefaultLanguage.
func NewLocalizer(lang string, logger *slog.Logger) (*Localizer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tag := DefaultLanguage
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrUnknownLanguage, lang, err)
		}
		tag = parsed
	}

	bundle := i18n.NewBundle(DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := catalogues.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading built-in catalogues: %w", err)
	}
	for _, f := range files {
		name := path.Join("locales", f.Name())
		data, err := catalogues.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	l := &Localizer{
		bundle:   bundle,
		tag:      tag,
		logger:   logger,
		fallback: i18n.NewLocalizer(bundle, DefaultLanguage.String()),
	}
	l.loc = i18n.NewLocalizer(bundle, tag.String(), DefaultLanguage.String())
	return l, nil
}

// LoadFile adds a catalogue from disk, such as "active.fr.toml". The
// language is taken from the file name.
func (l *Localizer) LoadFile(file string) error {
	if _, err := l.bundle.LoadMessageFile(file); err != nil {
		return fmt.Errorf("loading catalogue %s: %w", file, err)
	}
	return nil
}

// Language returns the requested language.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Languages lists the languages with a loaded catalogue.
func (l *Localizer) Languages() []language.Tag {
	return l.bundle.LanguageTags()
}

// Label returns the display string of id. Missing translations fall back to
// DefaultLanguage and then to the catalogue key itself.
func (l *Localizer) Label(id ID) string {
	key := id.MessageID()
	if key == "" {
		return ""
	}

	s, err := l.loc.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err == nil && s != "" {
		return s
	}

	s, err = l.fallback.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err == nil && s != "" {
		return s
	}

	l.logger.Debug("Label has no translation", "label", key, "language", l.tag.String())
	return key
}
