// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/electoral-cartogram/coordinator"
	"github.com/danielhkuo/electoral-cartogram/dataset"
	"github.com/danielhkuo/electoral-cartogram/locale"
	"github.com/danielhkuo/electoral-cartogram/middleware"
	"github.com/danielhkuo/electoral-cartogram/models"
	"github.com/danielhkuo/electoral-cartogram/tally"
)

type MapHandler struct {
	data      *dataset.Dataset
	agg       *tally.Aggregator
	formatter *locale.Formatter
}

func NewMapHandler(data *dataset.Dataset, agg *tally.Aggregator, formatter *locale.Formatter) *MapHandler {
	return &MapHandler{data: data, agg: agg, formatter: formatter}
}

// GetRidings handles GET /map/ridings
// Returns every riding's label, localized and colored by its current winner
func (h *MapHandler) GetRidings(w http.ResponseWriter, r *http.Request) {
	lang, err := requestLang(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "lang must be en or fr")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MapLabelsResponse{
		Lang:   lang,
		Labels: coordinator.Labels(h.data, h.agg.Winners(), h.formatter, lang),
	})
}
