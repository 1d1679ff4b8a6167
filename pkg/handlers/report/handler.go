package report

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fin-tools/expense-atlas/pkg/adapters"
	"github.com/fin-tools/expense-atlas/pkg/models/api"
	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/services/analytics"
	"github.com/fin-tools/expense-atlas/pkg/services/dataset"
)

// Source produces a fresh transaction collection, e.g. by re-reading
// the configured export file.
type Source interface {
	Load(ctx context.Context) ([]domain.Transaction, error)
}

type Handler struct {
	store       *dataset.Store
	source      Source
	origin      string
	granularity domain.Granularity
}

// NewHandler builds the report handler. granularity is the trend
// default used when a request does not specify one; zero means monthly.
func NewHandler(store *dataset.Store, source Source, origin string, granularity domain.Granularity) *Handler {
	if granularity == "" {
		granularity = domain.Monthly
	}
	return &Handler{store: store, source: source, origin: origin, granularity: granularity}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	summary := analytics.Summarize(snap.Transactions)
	h.writeJSON(w, r, adapters.MapSummaryDomainToApi(summary))
}

func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	g := h.granularity
	if s := r.URL.Query().Get("granularity"); s != "" {
		var err error
		g, err = domain.ParseGranularity(s)
		if err != nil {
			http.Error(w, "invalid granularity. Expected one of: daily, weekly, monthly", http.StatusBadRequest)
			return
		}
	}

	points, err := analytics.PeriodTrend(snap.Transactions, g)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeJSON(w, r, adapters.MapTrendDomainToApi(points))
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	totals := analytics.CategoryTotals(snap.Transactions)
	totals = totals[:min(len(totals), limitParam(r, len(totals)))]
	h.writeJSON(w, r, adapters.MapCategoryTotalsDomainToApi(totals))
}

func (h *Handler) GetCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	totals := analytics.SubcategoryTotals(snap.Transactions)
	totals = totals[:min(len(totals), limitParam(r, len(totals)))]
	h.writeJSON(w, r, adapters.MapSubcategoryTotalsDomainToApi(totals))
}

func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	groups := analytics.Groups(snap.Transactions)
	h.writeJSON(w, r, groups)
}

// GetGroupSummaries returns one summary per selected group that exists
// in the data. An empty or unknown selection yields an empty list, not
// an error.
func (h *Handler) GetGroupSummaries(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	summaries := []api.GroupSummary{}
	for _, group := range groupsParam(r) {
		summary, err := analytics.SummarizeGroup(snap.Transactions, group)
		if err != nil {
			// Group absent from the data; skip rather than fail.
			continue
		}
		summaries = append(summaries, adapters.MapGroupSummaryDomainToApi(summary))
	}
	h.writeJSON(w, r, summaries)
}

func (h *Handler) GetPivot(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	pivot := analytics.BuildPivot(snap.Transactions, groupsParam(r))
	h.writeJSON(w, r, adapters.MapPivotDomainToApi(pivot))
}

func (h *Handler) GetDrillDown(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	category := r.URL.Query().Get("category")
	group := r.URL.Query().Get("group")
	if category == "" || group == "" {
		http.Error(w, "both 'category' and 'group' parameters are required", http.StatusBadRequest)
		return
	}

	dd := analytics.DrillDown(snap.Transactions, category, group)
	h.writeJSON(w, r, adapters.MapDrillDownDomainToApi(dd))
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	txs := make([]api.Transaction, 0, len(snap.Transactions))
	for _, tx := range snap.Transactions {
		txs = append(txs, adapters.MapTransactionDomainToApi(tx))
	}
	h.writeJSON(w, r, txs)
}

// Reload re-reads the configured source and replaces the snapshot. A
// failed load leaves the previous snapshot in place.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	txs, err := h.source.Load(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.store.Replace(txs, h.origin)
	h.writeJSON(w, r, api.ReloadResult{Transactions: len(txs), Origin: h.origin})
}

func (h *Handler) snapshot(w http.ResponseWriter) (*dataset.Snapshot, bool) {
	snap, ok := h.store.Current()
	if !ok {
		http.Error(w, "no dataset loaded", http.StatusServiceUnavailable)
		return nil, false
	}
	return snap, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}

func groupsParam(r *http.Request) []string {
	raw := r.URL.Query().Get("groups")
	if raw == "" {
		return nil
	}
	var groups []string
	for _, g := range strings.Split(raw, ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

// limitParam parses the optional limit query parameter. Zero, negative
// and malformed values all mean "no limit", matching the CLI flag.
func limitParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
