// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/electoral-cartogram/locale"
	"github.com/danielhkuo/electoral-cartogram/models"
)

// requestLang reads ?lang=, falling back to a probe of Accept-Language
func requestLang(r *http.Request) (models.Lang, error) {
	if q := r.URL.Query().Get("lang"); q != "" {
		return locale.ParseLang(q)
	}
	return locale.ProbeAcceptLanguage(r.Header.Get("Accept-Language")), nil
}
