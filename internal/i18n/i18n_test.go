package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	require.NoError(t, Initialize())

	assert.Equal(t, "Product with id '42' was not found.", T("en", KeyProductNotFound, 42))
	assert.Equal(t, "Invalid Product: missing name", T("en", KeyValidationMissingField, "name"))
	assert.Equal(t, "無效的商品：缺少 name", T("zh_TW", KeyValidationMissingField, "name"))
}

func TestTranslateFallsBack(t *testing.T) {
	assert.Equal(t, "empty ID", T("fr", KeyValidationEmptyID))
	assert.Equal(t, "unknown.key", T("en", "unknown.key"))
}

func TestEveryKeyHasTranslations(t *testing.T) {
	keys := []string{
		KeyProductNotFound,
		KeyValidationBadData, KeyValidationMissingField, KeyValidationWrongType,
		KeyValidationInvalidField, KeyValidationEmptyID, KeyValidationInvalidID,
		KeyValidationPriceRange, KeyValidationPurchase, KeyValidationMalformedBody,
		KeyRequestNotFound, KeyRequestMethodNotAllowed, KeyRequestUnsupportedMedia,
		KeyRequestRateLimited, KeyServerInternalError,
	}

	require.NoError(t, Initialize())
	for _, lang := range GetSupportedLanguages() {
		for _, key := range keys {
			_, ok := instance.lookup(lang, key)
			assert.True(t, ok, "%s missing in %s", key, lang)
		}
	}
	assert.ElementsMatch(t, []string{"en", "zh_TW"}, GetSupportedLanguages())
}

func TestLoadTranslationsRejectsBadJSON(t *testing.T) {
	catalogue := &I18n{translations: map[string]map[string]string{}, defaultLang: DefaultLang}
	fsys := fstest.MapFS{"locales/en.json": {Data: []byte("{")}}

	err := catalogue.LoadTranslations(fsys, "locales")
	assert.ErrorContains(t, err, "failed to unmarshal locale file")
}
