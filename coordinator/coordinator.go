// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package coordinator

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/electoral-cartogram/dataset"
	"github.com/danielhkuo/electoral-cartogram/hover"
	"github.com/danielhkuo/electoral-cartogram/locale"
	"github.com/danielhkuo/electoral-cartogram/metrics"
	"github.com/danielhkuo/electoral-cartogram/models"
	"github.com/danielhkuo/electoral-cartogram/tally"
)

// Deps are the read-only collaborators shared by every coordinator.
// Aggregator and Formatter are built from Data and Parties when nil.
type Deps struct {
	Data       *dataset.Dataset
	Parties    locale.PartyResolver
	Aggregator *tally.Aggregator
	Formatter  *locale.Formatter
	Parliament models.Parliament
	Clock      hover.Clock
}

// Coordinator ties map hover events to the hover controller and renders
// the active selection, or the seat summary when nothing is selected.
//
// Lock order is hover controller first, then mu. Nothing here calls into
// the controller while holding mu.
type Coordinator struct {
	deps  Deps
	hover *hover.Controller[models.HoverTarget]

	mu   sync.Mutex
	lang models.Lang
}

func New(deps Deps, lang models.Lang) *Coordinator {
	if deps.Aggregator == nil {
		deps.Aggregator = tally.New(deps.Data.Sets)
	}
	if deps.Formatter == nil {
		deps.Formatter = locale.NewFormatter(deps.Parties)
	}
	if lang != models.LangFR {
		lang = models.DefaultLang
	}

	c := &Coordinator{
		deps:  deps,
		hover: hover.NewController[models.HoverTarget](deps.Clock),
		lang:  lang,
	}
	c.hover.Subscribe(c.selectionChanged)
	return c
}

// HoverOn stages the riding under the pointer. With an empty date the
// riding's latest winning result is used. Unknown ridings, provinces, or
// snapshots are data errors and nothing is staged.
func (c *Coordinator) HoverOn(ridingID, date string) error {
	target, err := c.resolve(ridingID, date)
	if err != nil {
		return err
	}
	metrics.HoverEventsTotal.WithLabelValues(metrics.EventEnter).Inc()
	c.hover.Enter(target)
	return nil
}

func (c *Coordinator) HoverOff() {
	metrics.HoverEventsTotal.WithLabelValues(metrics.EventExit).Inc()
	c.hover.Exit()
}

func (c *Coordinator) resolve(ridingID, date string) (models.HoverTarget, error) {
	riding, err := c.deps.Data.Riding(ridingID)
	if err != nil {
		return models.HoverTarget{}, err
	}
	province, err := c.deps.Data.Province(riding.ProvinceID)
	if err != nil {
		return models.HoverTarget{}, fmt.Errorf("riding %s: %w", ridingID, err)
	}

	target := models.HoverTarget{Riding: riding, Province: province, Date: date}
	if date == "" {
		if r, latest, ok := c.deps.Data.LatestResult(ridingID); ok {
			target.Result = &r
			target.Date = latest
		}
		return target, nil
	}

	r, ok, err := c.deps.Data.ResultIn(ridingID, date)
	if err != nil {
		return models.HoverTarget{}, err
	}
	if ok {
		target.Result = &r
	}
	return target, nil
}

// SetLanguage is the only way the language changes after construction
func (c *Coordinator) SetLanguage(lang models.Lang) error {
	if lang != models.LangEN && lang != models.LangFR {
		return fmt.Errorf("%w: %q", locale.ErrUnknownLang, lang)
	}
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()
	metrics.LanguageChangesTotal.WithLabelValues(string(lang)).Inc()
	return nil
}

func (c *Coordinator) Language() models.Lang {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

// Selection resolves the committed target in the current language.
// It is nil when nothing is committed or the riding has no result.
func (c *Coordinator) Selection() *models.CurrentSelection {
	lang := c.Language()
	target, ok := c.hover.Active()
	if !ok || target.Result == nil {
		return nil
	}
	return selectionFor(target, lang)
}

func selectionFor(t models.HoverTarget, lang models.Lang) *models.CurrentSelection {
	r := *t.Result
	sel := &models.CurrentSelection{
		Province:           t.Province.Name.In(lang),
		Flag:               t.Province.FlagURL,
		Riding:             t.Riding.Name.In(lang),
		Candidate:          r.Candidate,
		Party:              tally.EffectiveParty(r),
		Date:               locale.FormatDateLabel(t.Date, lang),
		VotePercentage:     r.VotePercentage,
		MajorityPercentage: r.MajorityPercentage,
	}
	if sel.Party != r.Party {
		sel.OriginalParty = r.Party
	}
	return sel
}

// View is what the overlay shows right now
func (c *Coordinator) View() models.View {
	lang := c.Language()
	view := models.View{Lang: lang, Title: locale.Title(lang)}

	if sel := c.Selection(); sel != nil {
		s := c.deps.Formatter.Selection(*sel, lang)
		view.Selection = &s
		return view
	}

	summary := c.deps.Formatter.Summary(c.deps.Aggregator.Summary(), c.deps.Parliament, lang)
	view.Summary = &summary
	return view
}

// Summary is the idle view regardless of any active selection
func (c *Coordinator) Summary() models.SummaryView {
	return c.deps.Formatter.Summary(c.deps.Aggregator.Summary(), c.deps.Parliament, c.Language())
}

// MapLabels localizes the in-map riding labels and colors each by its
// current winner
func (c *Coordinator) MapLabels() []models.MapLabel {
	return Labels(c.deps.Data, c.deps.Aggregator.Winners(), c.deps.Formatter, c.Language())
}

// Labels builds map labels without a session
func Labels(data *dataset.Dataset, winners *tally.Winners, f *locale.Formatter, lang models.Lang) []models.MapLabel {
	labels := make([]models.MapLabel, 0, len(data.Ridings))
	for _, r := range data.Ridings {
		label := models.MapLabel{
			RidingID: r.ID,
			Name:     locale.RidingDisplayName(r.Name.In(lang)),
		}
		if p, err := data.Province(r.ProvinceID); err == nil {
			label.Province = p.Name.In(lang)
		}
		if partyID, ok := winners.Party(r.ID); ok {
			party := f.Party(partyID, lang)
			label.PartyID = party.ID
			label.Color = party.Color
		}
		labels = append(labels, label)
	}
	return labels
}

// State exposes the hover state for diagnostics
func (c *Coordinator) State() hover.State {
	return c.hover.State()
}

// Close cancels any pending hover timer
func (c *Coordinator) Close() {
	c.hover.Close()
}

// selectionChanged runs under the hover controller lock
func (c *Coordinator) selectionChanged(active *models.HoverTarget) {
	if active == nil {
		metrics.SelectionChangesTotal.WithLabelValues(metrics.ChangeClear).Inc()
		slog.Debug("selection cleared")
		return
	}
	metrics.SelectionChangesTotal.WithLabelValues(metrics.ChangeCommit).Inc()
	slog.Debug("selection committed", "riding_id", active.Riding.ID, "date", active.Date)
}
