// Package i18n provides internationalization support for the packboard service.
// It handles translation of user-facing error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{messages: defaultMessages()}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	if msg, ok := localeMessages[key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale extracts the locale from the gin context. Checks the
// Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := defaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// defaultMessages returns the built-in message translations.
func defaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:         "Invalid request",
			ErrKeyInvalidRequestBody:     "Invalid request body",
			ErrKeyInternal:               "An unexpected error occurred",
			ErrKeyNotFound:               "Not found",
			ErrKeyConflict:               "Conflict",
			ErrKeyRateLimitExceeded:      "Too many requests, please try again later",
			ErrKeyTimeout:                "Request timed out",
			ErrKeyInvalidDate:            "delivery date must be formatted YYYY-MM-DD",
			ErrKeyInvalidStatus:          "packing status must be pending, in_progress, packed or completed",
			ErrKeyInvalidQuantity:        "quantity: must be a positive integer",
			ErrKeyOrderNotFound:          "Order not found",
			ErrKeyLineNotFound:           "Order line not found",
			ErrKeyCustomerNotFound:       "Customer not found",
			ErrKeyProductNotFound:        "Product not found",
			ErrKeyPackingDataUnavailable: "Could not load packing data",
		},
		"nb": {
			ErrKeyInvalidRequest:         "Ugyldig forespørsel",
			ErrKeyInvalidRequestBody:     "Ugyldig forespørselsinnhold",
			ErrKeyInternal:               "En uventet feil oppstod",
			ErrKeyNotFound:               "Ikke funnet",
			ErrKeyConflict:               "Konflikt",
			ErrKeyRateLimitExceeded:      "For mange forespørsler, prøv igjen senere",
			ErrKeyTimeout:                "Forespørselen tidsavbrutt",
			ErrKeyInvalidDate:            "leveringsdato må være formatert YYYY-MM-DD",
			ErrKeyInvalidStatus:          "pakkestatus må være pending, in_progress, packed eller completed",
			ErrKeyInvalidQuantity:        "antall: må være et positivt heltall",
			ErrKeyOrderNotFound:          "Ordre ikke funnet",
			ErrKeyLineNotFound:           "Ordrelinje ikke funnet",
			ErrKeyCustomerNotFound:       "Kunde ikke funnet",
			ErrKeyProductNotFound:        "Produkt ikke funnet",
			ErrKeyPackingDataUnavailable: "Kunne ikke laste pakkedata",
		},
	}
}
