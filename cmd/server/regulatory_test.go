package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListTariffCodesFiltersByCodeOrDescription(t *testing.T) {
	srv := &server{db: newTestDB(t)}
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"8471.30.01", "8517.12.00", "2203.00.00", "8703.23.00"}},
		{"BEER", []string{"2203.00.00"}},
		{"8517", []string{"8517.12.00"}},
		{"machines", []string{"8471.30.01"}},
		{"no such product", nil},
	}

	for _, tc := range tests {
		codes, err := srv.listTariffCodes(ctx, tc.query)
		if err != nil {
			t.Fatalf("listTariffCodes(%q) returned error: %v", tc.query, err)
		}
		var got []string
		for _, c := range codes {
			got = append(got, c.Code)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("listTariffCodes(%q) mismatch (-want +got):\n%s", tc.query, diff)
		}
	}
}

func TestListRegulatoryUpdatesFiltersByCountry(t *testing.T) {
	srv := &server{db: newTestDB(t)}
	ctx := context.Background()

	all, err := srv.listRegulatoryUpdates(ctx, allCountries)
	if err != nil {
		t.Fatalf("listRegulatoryUpdates returned error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 updates, got %d", len(all))
	}
	if all[0].PublishedOn != "2024-07-03" || all[2].PublishedOn != "2024-07-01" {
		t.Fatalf("updates are not sorted desc by date: %+v", all)
	}
	if diff := cmp.Diff([]string{"US", "CA", "MX"}, all[0].Countries); diff != "" {
		t.Fatalf("unexpected countries (-want +got):\n%s", diff)
	}

	eu, err := srv.listRegulatoryUpdates(ctx, "EU")
	if err != nil {
		t.Fatalf("listRegulatoryUpdates EU returned error: %v", err)
	}
	if len(eu) != 1 || eu[0].Title != "EU CBAM Phase 2 Implementation" {
		t.Fatalf("expected the CBAM update only, got %+v", eu)
	}

	none, err := srv.listRegulatoryUpdates(ctx, "AU")
	if err != nil {
		t.Fatalf("listRegulatoryUpdates AU returned error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no updates for AU, got %+v", none)
	}
}

func TestDecodeStringListToleratesMalformedJSON(t *testing.T) {
	if got := decodeStringList(`["a","b"]`); len(got) != 2 {
		t.Fatalf("expected 2 values, got %v", got)
	}
	if got := decodeStringList(`not json`); got != nil {
		t.Fatalf("expected nil for malformed json, got %v", got)
	}
}
