// Package translate renders user-visible Simpletron text in the
// language of the host locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer *message.Printer
	tag     language.Tag
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("simpletron: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the best matching printer for the listed BCP 47
// tags, falling back to en-US when none are given.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	tag = message.MatchLanguage(tags...)
	printer = message.NewPrinter(tag)
}

// Language returns the tag of the active printer.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
