package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Message IDs of the strings shipped in locales/.
const (
	Placeholder    = "placeholder"
	LanguageName   = "language_name"
	HelpTitle      = "help_title"
	HelpType       = "help_type"
	HelpShift      = "help_shift"
	HelpLanguage   = "help_language"
	HelpCaps       = "help_caps"
	HelpMove       = "help_move"
	HelpConfirm    = "help_confirm"
	HelpCancel     = "help_cancel"
	HelpClose      = "help_close"
	HelpHint       = "help_hint"
	StatusLanguage = "status_language"
	CharCount      = "char_count"
)

// HelpLines are the help overlay lines in display order.
var HelpLines = []string{HelpType, HelpShift, HelpLanguage, HelpCaps, HelpMove, HelpConfirm, HelpCancel}

var errNotInitialised = errors.New("i18n not initialised")

var (
	mu sync.RWMutex
	i  *I18N
)

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
	tag       language.Tag
}

type MessageFile struct {
	Name    string
	Content []byte
}

// Init loads the embedded English and Russian messages plus any extra files and starts in English.
func Init(extra ...MessageFile) error {
	files, err := embedded()
	if err != nil {
		return err
	}
	return InitI18NFromBytes(append(files, extra...))
}

func embedded() ([]MessageFile, error) {
	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil, err
	}

	files := make([]MessageFile, 0, len(entries))
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		content, err := locales.ReadFile(name)
		if err != nil {
			return nil, err
		}
		files = append(files, MessageFile{Name: entry.Name(), Content: content})
	}
	return files, nil
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		_, err := bundle.LoadMessageFile(messageFile)
		if err != nil {
			return err
		}
	}

	install(bundle, language.English)
	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		_, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name)
		if err != nil {
			return err
		}
	}

	install(bundle, language.English)
	return nil
}

func install(bundle *i18n.Bundle, tag language.Tag) {
	mu.Lock()
	defer mu.Unlock()
	i = &I18N{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		bundle:    bundle,
		tag:       tag,
	}
}

// SetLanguage switches the active locale. Missing messages fall back to English.
func SetLanguage(lang language.Tag) {
	mu.RLock()
	current := i
	mu.RUnlock()
	if current == nil {
		return
	}
	install(current.bundle, lang)
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Current returns the active locale, English before Init.
func Current() language.Tag {
	mu.RLock()
	defer mu.RUnlock()
	if i == nil {
		return language.English
	}
	return i.tag
}

func localize(config *i18n.LocalizeConfig) (string, error) {
	mu.RLock()
	current := i
	mu.RUnlock()
	if current == nil {
		return "", errNotInitialised
	}
	return current.localizer.Localize(config)
}

// GetString retrieves a localized string by key
func GetString(key string) string {
	msg, err := localize(&i18n.LocalizeConfig{
		MessageID: key,
	})
	if err != nil {
		return "I18N Error"
	}
	return msg
}

// GetStringWithData retrieves a localized string by key with template data
func GetStringWithData(key string, templateData map[string]interface{}) string {
	msg, err := localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
	if err != nil {
		return "I18N Error"
	}
	return msg
}

// GetPluralString retrieves a localized string with plural support.
// count picks the plural form and is available to the template as {{.Count}}.
func GetPluralString(key string, count int) string {
	msg, err := localize(&i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: map[string]interface{}{"Count": count},
	})
	if err != nil {
		return "I18N Error"
	}
	return msg
}

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

// Localize retrieves a localized string using the go-i18n struct pattern.
// If a translation exists for the current locale, it will be used; otherwise the default is returned.
func Localize(message *Message, templateData map[string]interface{}) string {
	if message == nil {
		return "I18N Error: nil message"
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
	}

	if templateData != nil {
		config.TemplateData = templateData
	}

	msg, err := localize(config)
	if err != nil {
		if message.Other != "" {
			return message.Other
		}
		return "I18N Error"
	}
	return msg
}
