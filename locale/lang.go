// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/danielhkuo/electoral-cartogram/models"
)

var ErrUnknownLang = errors.New("unknown language")

var frenchPrefix = regexp.MustCompile(`(?i)^fr\b`)

// ParseLang accepts exactly "en" or "fr"
func ParseLang(s string) (models.Lang, error) {
	switch models.Lang(strings.ToLower(strings.TrimSpace(s))) {
	case models.LangEN:
		return models.LangEN, nil
	case models.LangFR:
		return models.LangFR, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLang, s)
}

// Probe maps a detected locale tag to a display language.
// French when the tag's base language is French, English otherwise.
func Probe(tag string) models.Lang {
	t, err := language.Parse(tag)
	if err != nil {
		if frenchPrefix.MatchString(tag) {
			return models.LangFR
		}
		return models.DefaultLang
	}
	return fromTag(t)
}

// ProbeAcceptLanguage picks the display language from an Accept-Language
// header, using the most preferred tag
func ProbeAcceptLanguage(header string) models.Lang {
	if strings.TrimSpace(header) == "" {
		return models.DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return models.DefaultLang
	}
	return fromTag(tags[0])
}

func fromTag(t language.Tag) models.Lang {
	base, _ := t.Base()
	french, _ := language.French.Base()
	if base == french {
		return models.LangFR
	}
	return models.DefaultLang
}

// LocaleTag returns the Canadian regional locale for lang
func LocaleTag(lang models.Lang) string {
	if lang == models.LangFR {
		return "fr_CA"
	}
	return "en_CA"
}
