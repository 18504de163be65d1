// Package announce provides a delegate that speaks localized descriptions of
// swipe state changes, for screen readers and other assistive output.
package announce

import (
	"embed"
	"log/slog"
	"path"
	"sync"

	"github.com/BrandonKowalski/swipecell/pkg/swipecell"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := locales.ReadDir("locales")
		if err != nil {
			bundleErr = swipecell.NewInfrastructureError("load_messages", err)
			return
		}

		for _, entry := range entries {
			name := path.Join("locales", entry.Name())
			data, err := locales.ReadFile(name)
			if err != nil {
				bundleErr = swipecell.NewInfrastructureError("load_messages", err)
				return
			}
			if _, err := b.ParseMessageFileBytes(data, name); err != nil {
				bundleErr = swipecell.NewInfrastructureError("load_messages", err)
				return
			}
		}

		bundle = b
	})
	return bundle, bundleErr
}

// SupportedLanguages lists the languages with embedded messages.
func SupportedLanguages() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return []language.Tag{language.English}
	}
	return b.LanguageTags()
}

// Announcer implements swipecell.CurrentSideChangeHandler and
// swipecell.HideSideHandler. Combine it with other delegates through
// swipecell.MultiDelegate.
type Announcer struct {
	lang      language.Tag
	localizer *i18n.Localizer
	speak     func(text string)
	logger    *slog.Logger
}

// New creates an announcer for the closest supported match to lang. Each
// announcement is passed to speak; a nil speak logs it on the application
// logger instead.
func New(lang language.Tag, speak func(text string)) (*Announcer, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}

	supported := b.LanguageTags()
	_, index, _ := language.NewMatcher(supported).Match(lang)
	matched := supported[index]

	a := &Announcer{
		lang:      matched,
		localizer: i18n.NewLocalizer(b, matched.String()),
		speak:     speak,
		logger:    swipecell.GetLogger(),
	}
	if a.speak == nil {
		a.speak = func(text string) {
			a.logger.Info("Announcement", "text", text, "lang", a.lang.String())
		}
	}
	return a, nil
}

// Language returns the language announcements are made in.
func (a *Announcer) Language() language.Tag {
	return a.lang
}

func (a *Announcer) DidChangeCurrentSide(cell *swipecell.Cell) {
	side := cell.CurrentSide()
	if side == swipecell.SideNone {
		return
	}
	a.speak(a.Opened(side, cell.Surface(side)))
}

func (a *Announcer) DidHideSide(*swipecell.Cell, swipecell.Side) {
	a.speak(a.Closed())
}

// Opened describes side becoming available. The surface label is used when
// it has one.
func (a *Announcer) Opened(side swipecell.Side, surface *swipecell.Surface) string {
	if surface != nil && surface.Label != "" {
		return a.localize("side_opened", map[string]any{"Action": surface.Label})
	}
	return a.localize("side_opened_unnamed", map[string]any{"Side": a.sideName(side)})
}

// Closed describes the row returning to rest.
func (a *Announcer) Closed() string {
	return a.localize("side_closed", nil)
}

func (a *Announcer) sideName(side swipecell.Side) string {
	switch side {
	case swipecell.SideLeft:
		return a.localize("side_left", nil)
	case swipecell.SideRight:
		return a.localize("side_right", nil)
	default:
		return side.String()
	}
}

func (a *Announcer) localize(id string, data map[string]any) string {
	text, err := a.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		a.logger.Warn("Missing announcement message", "id", id, "lang", a.lang.String(), "error", err)
		return id
	}
	return text
}
