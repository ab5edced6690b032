package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/tradedesk/internal/catalog"
	"github.com/Simplici0/tradedesk/internal/screening"
)

var screeningTabs = map[string]bool{"single": true, "bulk": true, "watchlists": true}

type screeningViewData struct {
	baseViewData
	Tab        string
	Scan       *screening.Scan
	Results    []catalog.ScreeningResult
	Watchlists []catalog.Watchlist
}

func (s *server) handleScreening(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if !screeningTabs[tab] {
		tab = "single"
	}

	data := screeningViewData{
		baseViewData: baseViewData{
			ActivePage:   "screening",
			ErrorMessage: r.URL.Query().Get("error"),
		},
		Tab: tab,
	}

	if id := r.URL.Query().Get("scan"); id != "" {
		if scan, ok := s.scans.Get(id); ok {
			data.Scan = &scan
		}
	}

	var err error
	if data.Results, err = s.listScreeningResults(r.Context()); err != nil {
		s.internalError(w, r, "failed to load screening results", err)
		return
	}
	if data.Watchlists, err = s.listWatchlists(r.Context()); err != nil {
		s.internalError(w, r, "failed to load watchlists", err)
		return
	}

	s.renderTemplate(w, "screening.html", data)
}

func (s *server) handleScanStart(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	entity := strings.TrimSpace(r.FormValue("entity"))
	if entity == "" {
		http.Redirect(w, r, "/screening?tab=single&error="+url.QueryEscape("entity name is required"), http.StatusSeeOther)
		return
	}

	scan, err := s.scans.Start(entity)
	if errors.Is(err, screening.ErrClosed) {
		http.Error(w, "screening unavailable", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		s.internalError(w, r, "failed to start screening", err)
		return
	}

	http.Redirect(w, r, "/screening?tab=single&scan="+url.QueryEscape(scan.ID), http.StatusSeeOther)
}

func (s *server) handleScanStatus(w http.ResponseWriter, r *http.Request) {
	scan, ok := s.scans.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, apiError{Error: "scan not found"})
		return
	}
	writeJSON(w, http.StatusOK, scan)
}

func (s *server) listScreeningResults(ctx context.Context) ([]catalog.ScreeningResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT entity, status, risk_level, lists_json, last_checked
		FROM screening_results
		ORDER BY last_checked DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query screening results: %w", err)
	}
	defer rows.Close()

	results := make([]catalog.ScreeningResult, 0)
	for rows.Next() {
		var res catalog.ScreeningResult
		var listsJSON string
		if err := rows.Scan(&res.Entity, &res.Status, &res.RiskLevel, &listsJSON, &res.LastChecked); err != nil {
			return nil, fmt.Errorf("scan screening result: %w", err)
		}
		res.Lists = decodeStringList(listsJSON)
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate screening results: %w", err)
	}

	return results, nil
}

func (s *server) listWatchlists(ctx context.Context) ([]catalog.Watchlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, entry_count, update_frequency, status
		FROM watchlists
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query watchlists: %w", err)
	}
	defer rows.Close()

	watchlists := make([]catalog.Watchlist, 0)
	for rows.Next() {
		var wl catalog.Watchlist
		if err := rows.Scan(&wl.Name, &wl.EntryCount, &wl.UpdateFrequency, &wl.Status); err != nil {
			return nil, fmt.Errorf("scan watchlist: %w", err)
		}
		watchlists = append(watchlists, wl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate watchlists: %w", err)
	}

	return watchlists, nil
}
