package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Simplici0/tradedesk/internal/catalog"
)

func TestSummarizeIntegrations(t *testing.T) {
	tests := []struct {
		name string
		in   []catalog.Integration
		want integrationSummary
	}{
		{"samples", catalog.SampleIntegrations, integrationSummary{Connected: 4, Pending: 1, Disconnected: 1, AvgHealth: 93}},
		{"none connected", []catalog.Integration{{Status: "Pending", Health: 50}}, integrationSummary{Pending: 1}},
		{"empty", nil, integrationSummary{}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, summarizeIntegrations(tc.in)); diff != "" {
			t.Fatalf("%s: unexpected summary (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestListIntegrationsDecodesFeatures(t *testing.T) {
	srv := &server{db: newTestDB(t)}

	integrations, err := srv.listIntegrations(context.Background())
	if err != nil {
		t.Fatalf("listIntegrations returned error: %v", err)
	}
	if diff := cmp.Diff(catalog.SampleIntegrations, integrations); diff != "" {
		t.Fatalf("stored integrations differ from samples (-want +got):\n%s", diff)
	}

	endpoints, err := srv.listAPIEndpoints(context.Background())
	if err != nil {
		t.Fatalf("listAPIEndpoints returned error: %v", err)
	}
	if diff := cmp.Diff(catalog.SampleAPIEndpoints, endpoints); diff != "" {
		t.Fatalf("stored endpoints differ from samples (-want +got):\n%s", diff)
	}
}

func TestHandleIntegrationsRendersHealthClasses(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.handleIntegrations(rr, httptest.NewRequest(http.MethodGet, "/integrations", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, expected := range []string{`<span class="text-success">98%</span>`, "93%", "Test Connection"} {
		if !strings.Contains(body, expected) {
			t.Fatalf("expected body to contain %q", expected)
		}
	}
}
