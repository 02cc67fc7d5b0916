// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/locales/en_CA"
	"github.com/go-playground/locales/fr_CA"
	ut "github.com/go-playground/universal-translator"

	"github.com/danielhkuo/electoral-cartogram/models"
)

// DateLayout is the layout of snapshot labels and the fallback rendering
const DateLayout = "2006-01-02"

var translators = ut.New(en_CA.New(), en_CA.New(), fr_CA.New())

var alternateName = regexp.MustCompile(`/.+$`)

// FormatDate renders t as a long date in lang's Canadian locale
func FormatDate(t time.Time, lang models.Lang) string {
	return FormatDateIn(t, LocaleTag(lang))
}

// FormatDateIn renders t in the given locale ("fr_CA", "fr-CA", ...).
// Locales we have no data for get the plain ISO rendering.
func FormatDateIn(t time.Time, tag string) string {
	trans, found := translators.GetTranslator(strings.ReplaceAll(tag, "-", "_"))
	if !found {
		return t.Format(DateLayout)
	}
	return trans.FmtDateLong(t)
}

// FormatDateLabel formats a yyyy-mm-dd snapshot label
func FormatDateLabel(label string, lang models.Lang) string {
	if label == "" {
		return UnknownDate(lang)
	}
	t, err := time.Parse(DateLayout, label)
	if err != nil {
		return UnknownDate(lang)
	}
	return FormatDate(t, lang)
}

func UnknownDate(lang models.Lang) string {
	if lang == models.LangFR {
		return "date inconnue"
	}
	return "unknown date"
}

// ElectionStatus strips the re-election marker from candidate and returns
// the display name with the matching "elected" phrase
func ElectionStatus(candidate, date string, lang models.Lang) (name, status string) {
	name, reElected := strings.CutSuffix(candidate, models.ReElectedMarker)
	switch {
	case reElected && lang == models.LangFR:
		status = "Réélu(e) " + date
	case reElected:
		status = "Re-elected " + date
	case lang == models.LangFR:
		status = "Élu(e) " + date
	default:
		status = "Elected " + date
	}
	return name, status
}

// ElectedAsClause is the party-change annotation for an original party name
func ElectedAsClause(originalPartyName string, lang models.Lang) string {
	if lang == models.LangFR {
		return " — élu(e) comme " + originalPartyName
	}
	return " — elected as " + originalPartyName
}

// VoteSummary describes the vote share and the margin over the runner-up
func VoteSummary(votePercentage, majorityPercentage float64, lang models.Lang) string {
	vote := humanize.Ftoa(votePercentage)
	margin := humanize.Ftoa(majorityPercentage)
	if lang == models.LangFR {
		return fmt.Sprintf("%s %% du vote (+%s points en avant)", vote, margin)
	}
	return fmt.Sprintf("%s%% of vote (%s points ahead)", vote, margin)
}

func Title(lang models.Lang) string {
	if lang == models.LangFR {
		return "Cartogramme électorale du Canada"
	}
	return "Electoral Cartogram of Canada"
}

// ParliamentHeading labels the summary table, e.g. "42nd Parliament (2015-10-19—2019-10-20)"
func ParliamentHeading(p models.Parliament, lang models.Lang) string {
	span := p.Start + "—" + p.End
	if lang == models.LangFR {
		return fmt.Sprintf("%dme Parlement (%s)", p.Number, span)
	}
	return fmt.Sprintf("%s Parliament (%s)", humanize.Ordinal(p.Number), span)
}

// RidingDisplayName drops an alternate name given after a slash
func RidingDisplayName(name string) string {
	return alternateName.ReplaceAllString(name, "")
}
