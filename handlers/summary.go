// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/electoral-cartogram/locale"
	"github.com/danielhkuo/electoral-cartogram/middleware"
	"github.com/danielhkuo/electoral-cartogram/models"
	"github.com/danielhkuo/electoral-cartogram/tally"
)

type SummaryHandler struct {
	agg        *tally.Aggregator
	formatter  *locale.Formatter
	parliament models.Parliament
}

func NewSummaryHandler(agg *tally.Aggregator, formatter *locale.Formatter, parliament models.Parliament) *SummaryHandler {
	return &SummaryHandler{agg: agg, formatter: formatter, parliament: parliament}
}

// GetSummary handles GET /summary
// Returns the seat count per party, largest first
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	lang, err := requestLang(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "lang must be en or fr")
		return
	}

	summary := h.formatter.Summary(h.agg.Summary(), h.parliament, lang)
	middleware.JSONResponse(w, http.StatusOK, models.View{
		Lang:    lang,
		Title:   locale.Title(lang),
		Summary: &summary,
	})
}
