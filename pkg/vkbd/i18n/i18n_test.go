package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestEmbeddedMessages(t *testing.T) {
	require.NoError(t, Init())
	t.Cleanup(func() { SetLanguage(language.English) })

	assert.Equal(t, language.English, Current())
	assert.Equal(t, "Enter something...", GetString(Placeholder))
	assert.Equal(t, "1 character", GetPluralString(CharCount, 1))
	assert.Equal(t, "3 characters", GetPluralString(CharCount, 3))

	require.NoError(t, SetWithCode("ru"))
	assert.Equal(t, "Введите что-нибудь...", GetString(Placeholder))
	assert.Equal(t, "1 символ", GetPluralString(CharCount, 1))
	assert.Equal(t, "3 символа", GetPluralString(CharCount, 3))
	assert.Equal(t, "5 символов", GetPluralString(CharCount, 5))
	assert.Equal(t, "Раскладка: RU", GetStringWithData(StatusLanguage, map[string]interface{}{"Language": "RU"}))
}

func TestEveryHelpLineIsTranslated(t *testing.T) {
	require.NoError(t, Init())
	t.Cleanup(func() { SetLanguage(language.English) })

	english := map[string]string{}
	for _, id := range HelpLines {
		english[id] = GetString(id)
		assert.NotEqual(t, "I18N Error", english[id], id)
	}

	SetLanguage(language.Russian)
	for _, id := range HelpLines {
		assert.NotEqual(t, english[id], GetString(id), id)
	}
}

func TestMissingMessages(t *testing.T) {
	require.NoError(t, Init())

	assert.Equal(t, "I18N Error", GetString("no_such_message"))
	assert.Equal(t, "fallback", Localize(&Message{ID: "no_such_message", Other: "fallback"}, nil))
	assert.Equal(t, "I18N Error: nil message", Localize(nil, nil))
}

func TestExtraMessageFiles(t *testing.T) {
	require.NoError(t, Init(MessageFile{Name: "extra.en.toml", Content: []byte(`greeting = "Hi {{.Name}}"`)}))

	assert.Equal(t, "Hi Ann", GetStringWithData("greeting", map[string]interface{}{"Name": "Ann"}))
	assert.Equal(t, "Enter something...", GetString(Placeholder))
}

func TestSetWithCodeRejectsGarbage(t *testing.T) {
	assert.Error(t, SetWithCode("!!"))
}
