package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Simplici0/tradedesk/internal/catalog"
)

func validLicenseForm() url.Values {
	return url.Values{
		"license_type": {"export"},
		"destination":  {"jp"},
		"priority":     {"expedited"},
		"product":      {"Thermal imaging cameras"},
		"eccn":         {"6A003.b.4"},
		"quantity":     {"25"},
		"unit_value":   {"4200.50"},
		"end_user":     {"Acme Optics Pte Ltd"},
		"end_use":      {"Industrial inspection"},
	}
}

func postLicense(srv *server, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/licenses", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.handleLicenseCreate(rr, req)
	return rr
}

func TestSummarizeLicensesSampleData(t *testing.T) {
	got := summarizeLicenses(catalog.SampleLicenseApplications)
	want := licenseSummary{Pending: 2, Approved: 1, Urgent: 1, AvgDays: 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}

func TestSummarizeLicensesIgnoresDecidedCriticals(t *testing.T) {
	apps := []catalog.LicenseApplication{
		{Status: statusApproved, Priority: priorityCritical},
		{Status: statusDenied, Priority: priorityCritical},
		{Status: statusUnderReview, Priority: priorityCritical},
	}
	got := summarizeLicenses(apps)
	want := licenseSummary{Pending: 1, Approved: 1, Urgent: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
}

func TestHandleLicenseCreateAssignsSequentialReferences(t *testing.T) {
	srv := newTestServer(t)

	for _, want := range []string{"LIC-2026-001", "LIC-2026-002"} {
		rr := postLicense(srv, validLicenseForm())
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("expected status 303, got %d: %s", rr.Code, rr.Body.String())
		}
		location, err := url.Parse(rr.Header().Get("Location"))
		if err != nil {
			t.Fatalf("invalid redirect location: %v", err)
		}
		if msg := location.Query().Get("success"); msg != "Application "+want+" submitted." {
			t.Fatalf("unexpected success message %q", msg)
		}
	}

	apps, err := srv.listLicenseApplications(context.Background(), "LIC-2026", "all")
	if err != nil {
		t.Fatalf("listLicenseApplications returned error: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("expected 2 new applications, got %d", len(apps))
	}
	got := apps[0]
	want := catalog.LicenseApplication{
		Reference:   "LIC-2026-002",
		Type:        "Export License",
		Product:     "Thermal imaging cameras",
		Destination: "Japan",
		Status:      statusUnderReview,
		Priority:    "High",
		SubmittedOn: "2026-03-14",
		ECCN:        "6A003.b.4",
		Quantity:    25,
		UnitValue:   4200.50,
		EndUser:     "Acme Optics Pte Ltd",
		EndUse:      "Industrial inspection",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected stored application (-want +got):\n%s", diff)
	}
}

func TestHandleLicenseCreateValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		field, value, wantErr string
	}{
		{"license_type", "", "license type is required"},
		{"destination", "atlantis", "destination is required"},
		{"priority", "", "priority is required"},
		{"product", "  ", "product description is required"},
		{"quantity", "0", "quantity must be a whole number greater than 0"},
		{"quantity", "2.5", "quantity must be a whole number greater than 0"},
		{"unit_value", "cheap", "unit value must be numeric"},
		{"unit_value", "-1", "unit value must be greater than or equal to 0"},
		{"unit_value", "NaN", "unit value must be numeric"},
		{"unit_value", "+Inf", "unit value must be numeric"},
		{"unit_value", "1e400", "unit value must be numeric"},
	}

	for _, tc := range tests {
		form := validLicenseForm()
		form.Set(tc.field, tc.value)

		rr := postLicense(srv, form)
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("%s=%q: expected status 303, got %d", tc.field, tc.value, rr.Code)
		}
		location, err := url.Parse(rr.Header().Get("Location"))
		if err != nil {
			t.Fatalf("invalid redirect location: %v", err)
		}
		if location.Query().Get("tab") != "new" || location.Query().Get("error") != tc.wantErr {
			t.Fatalf("%s=%q: unexpected redirect %q", tc.field, tc.value, location)
		}
	}

	apps, err := srv.listLicenseApplications(context.Background(), "", "all")
	if err != nil {
		t.Fatalf("listLicenseApplications returned error: %v", err)
	}
	if len(apps) != len(catalog.SampleLicenseApplications) {
		t.Fatalf("expected no new applications, got %d rows", len(apps))
	}
}

func TestNextLicenseReference(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	tx, err := srv.db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	ref, err := nextLicenseReference(ctx, tx, 2024)
	if err != nil {
		t.Fatalf("nextLicenseReference returned error: %v", err)
	}
	if ref != "LIC-2024-004" {
		t.Fatalf("expected LIC-2024-004 after the sample rows, got %q", ref)
	}

	ref, err = nextLicenseReference(ctx, tx, 2031)
	if err != nil {
		t.Fatalf("nextLicenseReference returned error: %v", err)
	}
	if ref != "LIC-2031-001" {
		t.Fatalf("expected LIC-2031-001 for an empty year, got %q", ref)
	}
}

func TestListLicenseApplicationsFilters(t *testing.T) {
	srv := &server{db: newTestDB(t)}
	ctx := context.Background()

	tests := []struct {
		query, status string
		want          []string
	}{
		{"", "all", []string{"LIC-2024-003", "LIC-2024-001", "LIC-2024-002"}},
		{"", "pending", []string{"LIC-2024-003", "LIC-2024-001"}},
		{"", "approved", []string{"LIC-2024-002"}},
		{"germany", "all", []string{"LIC-2024-002"}},
		{"semiconductors", "approved", nil},
	}

	for _, tc := range tests {
		apps, err := srv.listLicenseApplications(ctx, tc.query, tc.status)
		if err != nil {
			t.Fatalf("listLicenseApplications(%q, %q) returned error: %v", tc.query, tc.status, err)
		}
		var got []string
		for _, a := range apps {
			got = append(got, a.Reference)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("listLicenseApplications(%q, %q) mismatch (-want +got):\n%s", tc.query, tc.status, diff)
		}
	}
}

func TestHandleLicensesKeepsSummaryUnfiltered(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.handleLicenses(rr, httptest.NewRequest(http.MethodGet, "/licenses?status=approved", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if strings.Contains(body, "LIC-2024-001") {
		t.Fatalf("expected pending application to be filtered out")
	}
	if !strings.Contains(body, `<div class="metric-value text-warning">2</div>`) {
		t.Fatalf("expected pending summary to count all applications")
	}
}

func TestHandleLicenseCreateConcurrentSubmissions(t *testing.T) {
	srv := newTestServer(t)

	const submissions = 8
	codes := make([]int, submissions)
	refs := make([]string, submissions)

	var wg sync.WaitGroup
	for i := range submissions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr := postLicense(srv, validLicenseForm())
			codes[i] = rr.Code
			if location, err := url.Parse(rr.Header().Get("Location")); err == nil {
				refs[i] = location.Query().Get("success")
			}
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i := range submissions {
		if codes[i] != http.StatusSeeOther {
			t.Fatalf("submission %d: expected status 303, got %d", i, codes[i])
		}
		if refs[i] == "" || seen[refs[i]] {
			t.Fatalf("submission %d: missing or duplicate reference %q", i, refs[i])
		}
		seen[refs[i]] = true
	}

	apps, err := srv.listLicenseApplications(context.Background(), "LIC-2026", "all")
	if err != nil {
		t.Fatalf("listLicenseApplications returned error: %v", err)
	}
	if len(apps) != submissions {
		t.Fatalf("expected %d new applications, got %d", submissions, len(apps))
	}
	if apps[0].Reference != "LIC-2026-008" {
		t.Fatalf("expected latest reference LIC-2026-008, got %q", apps[0].Reference)
	}
}
