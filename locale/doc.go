// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package locale renders election data as English or French display strings.

Every function here is a pure function of its inputs and the language.

# Language

	lang := locale.ProbeAcceptLanguage(r.Header.Get("Accept-Language"))
	lang, err := locale.ParseLang("fr")

A locale whose base language is French selects French; anything else, or
nothing at all, selects English.

# Dates

Dates use the long CLDR pattern of the Canadian regional variant (en_CA or
fr_CA). A locale without CLDR data falls back to yyyy-mm-dd and never fails.

# Phrases

  - ElectionStatus: "Elected <date>" or "Re-elected <date>" (marker " **")
  - ElectedAsClause: " — elected as <party>" after a floor-crossing
  - VoteSummary: "45.2% of vote (12.1 points ahead)"
  - ParliamentHeading: "42nd Parliament (2015-10-19—2019-10-20)"

Formatter adds the party registry on top, for views that need party names
and colors.
*/
package locale
