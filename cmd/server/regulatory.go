package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Simplici0/tradedesk/internal/catalog"
)

const allCountries = "all"

type regulatoryViewData struct {
	baseViewData
	Query       string
	Country     string
	Countries   []catalog.Option
	TariffCodes []catalog.TariffCode
	Updates     []catalog.RegulatoryUpdate
}

func (s *server) handleRegulatory(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	country := strings.TrimSpace(r.URL.Query().Get("country"))
	if country == "" {
		country = allCountries
	}

	codes, err := s.listTariffCodes(r.Context(), query)
	if err != nil {
		s.internalError(w, r, "failed to load tariff codes", err)
		return
	}

	updates, err := s.listRegulatoryUpdates(r.Context(), country)
	if err != nil {
		s.internalError(w, r, "failed to load regulatory updates", err)
		return
	}

	s.renderTemplate(w, "regulatory.html", regulatoryViewData{
		baseViewData: baseViewData{ActivePage: "regulatory"},
		Query:        query,
		Country:      country,
		Countries:    catalog.RegulatoryCountries,
		TariffCodes:  codes,
		Updates:      updates,
	})
}

func (s *server) listTariffCodes(ctx context.Context, query string) ([]catalog.TariffCode, error) {
	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, description, duty, status
		FROM tariff_codes
		WHERE (? = '' OR code LIKE ? OR description LIKE ?)
		ORDER BY id
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query tariff codes: %w", err)
	}
	defer rows.Close()

	codes := make([]catalog.TariffCode, 0)
	for rows.Next() {
		var c catalog.TariffCode
		if err := rows.Scan(&c.Code, &c.Description, &c.Duty, &c.Status); err != nil {
			return nil, fmt.Errorf("scan tariff code: %w", err)
		}
		codes = append(codes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tariff codes: %w", err)
	}

	return codes, nil
}

func (s *server) listRegulatoryUpdates(ctx context.Context, country string) ([]catalog.RegulatoryUpdate, error) {
	if country == allCountries {
		country = ""
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT published_on, title, description, priority, countries_json
		FROM regulatory_updates
		WHERE (? = '' OR EXISTS (
			SELECT 1 FROM json_each(regulatory_updates.countries_json) WHERE json_each.value = ?
		))
		ORDER BY date(published_on) DESC, id DESC
	`, country, country)
	if err != nil {
		return nil, fmt.Errorf("query regulatory updates: %w", err)
	}
	defer rows.Close()

	updates := make([]catalog.RegulatoryUpdate, 0)
	for rows.Next() {
		var u catalog.RegulatoryUpdate
		var countriesJSON string
		if err := rows.Scan(&u.PublishedOn, &u.Title, &u.Description, &u.Priority, &countriesJSON); err != nil {
			return nil, fmt.Errorf("scan regulatory update: %w", err)
		}
		u.Countries = decodeStringList(countriesJSON)
		updates = append(updates, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate regulatory updates: %w", err)
	}

	return updates, nil
}

// decodeStringList reads a JSON array column, treating malformed values as empty.
func decodeStringList(raw string) []string {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}
