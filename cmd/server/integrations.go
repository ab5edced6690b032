package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Simplici0/tradedesk/internal/catalog"
)

type integrationSummary struct {
	Connected    int
	Pending      int
	Disconnected int
	AvgHealth    int
}

type integrationsViewData struct {
	baseViewData
	Summary      integrationSummary
	Integrations []catalog.Integration
	Endpoints    []catalog.APIEndpoint
}

// summarizeIntegrations counts integrations by status. AvgHealth averages
// connected integrations only.
func summarizeIntegrations(integrations []catalog.Integration) integrationSummary {
	var sum integrationSummary
	healthTotal := 0
	for _, i := range integrations {
		switch i.Status {
		case "Connected":
			sum.Connected++
			healthTotal += i.Health
		case "Pending":
			sum.Pending++
		case "Disconnected":
			sum.Disconnected++
		}
	}
	if sum.Connected > 0 {
		sum.AvgHealth = healthTotal / sum.Connected
	}
	return sum
}

func (s *server) handleIntegrations(w http.ResponseWriter, r *http.Request) {
	integrations, err := s.listIntegrations(r.Context())
	if err != nil {
		s.internalError(w, r, "failed to load integrations", err)
		return
	}

	endpoints, err := s.listAPIEndpoints(r.Context())
	if err != nil {
		s.internalError(w, r, "failed to load api endpoints", err)
		return
	}

	s.renderTemplate(w, "integrations.html", integrationsViewData{
		baseViewData: baseViewData{ActivePage: "integrations"},
		Summary:      summarizeIntegrations(integrations),
		Integrations: integrations,
		Endpoints:    endpoints,
	})
}

func (s *server) listIntegrations(ctx context.Context) ([]catalog.Integration, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description, status, last_sync, health, features_json
		FROM integrations
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query integrations: %w", err)
	}
	defer rows.Close()

	integrations := make([]catalog.Integration, 0)
	for rows.Next() {
		var i catalog.Integration
		var featuresJSON string
		if err := rows.Scan(&i.Name, &i.Description, &i.Status, &i.LastSync, &i.Health, &featuresJSON); err != nil {
			return nil, fmt.Errorf("scan integration: %w", err)
		}
		i.Features = decodeStringList(featuresJSON)
		integrations = append(integrations, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate integrations: %w", err)
	}

	return integrations, nil
}

func (s *server) listAPIEndpoints(ctx context.Context) ([]catalog.APIEndpoint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, endpoint, status, requests, avg_response_ms
		FROM api_endpoints
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query api endpoints: %w", err)
	}
	defer rows.Close()

	endpoints := make([]catalog.APIEndpoint, 0)
	for rows.Next() {
		var e catalog.APIEndpoint
		if err := rows.Scan(&e.Name, &e.Endpoint, &e.Status, &e.Requests, &e.AvgResponseMS); err != nil {
			return nil, fmt.Errorf("scan api endpoint: %w", err)
		}
		endpoints = append(endpoints, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate api endpoints: %w", err)
	}

	return endpoints, nil
}
