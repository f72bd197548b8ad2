// Package i18n defines the locales crypto-seal ships with and how request
// language values are matched against them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.MustParse("tr-TR"),
}

var matcher = language.NewMatcher(supported)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the fallback language tag.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag parses value and maps it onto a supported tag.
//
// The bool is false when value is malformed or no supported tag is a
// reasonable match.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supported[idx], true
}

// MatchTags returns the best supported tag for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[idx]
}
