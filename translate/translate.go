// Package translate formats user visible messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// messages are written in en-US and fall back to it when the user locale
// cannot be found.
const fallback = "en-US"

var printer = newPrinter(userLocales())

func userLocales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("i8080core: locale: %v", err)
	}
	return locales
}

func newPrinter(locales []string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{fallback}
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Printf style key for the user's locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
