package resolver

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps header parsing work on oversized input.
const maxAcceptLanguageLength = 4096

// MatchAcceptLanguage picks the best locale from available for an HTTP
// Accept-Language header, honoring quality values and base-language matches
// ("en-US" can satisfy "en" and vice versa). When the header is empty,
// unparsable, or matches nothing, the first available locale is returned.
func MatchAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags := make([]language.Tag, 0, len(available))
	locales := make([]string, 0, len(available))
	for _, locale := range available {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		locales = append(locales, locale)
	}
	if len(tags) == 0 {
		return available[0]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(desired...)
	if confidence == language.No {
		return available[0]
	}

	return locales[index]
}
