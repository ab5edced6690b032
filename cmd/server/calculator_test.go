package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func postCalculator(t *testing.T, srv *server, form url.Values) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/calculator", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	srv.handleCalculatorSubmit(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	return rr.Body.String()
}

func TestCalculatorSubmitRendersBreakdown(t *testing.T) {
	srv := newTestServer(t)

	body := postCalculator(t, srv, url.Values{
		"productValue":       {"10000"},
		"quantity":           {"1"},
		"hsCode":             {"8471.30.01"},
		"originCountry":      {"cn"},
		"destinationCountry": {"us"},
		"shippingMode":       {"sea"},
	})

	for _, expected := range []string{"$12,775.00", "$850.00", "$1,200.00", "$50.00", "27.8% above product value", `value="8471.30.01"`} {
		if !strings.Contains(body, expected) {
			t.Fatalf("expected body to contain %q", expected)
		}
	}
	if !strings.Contains(body, `<option value="cn" selected>`) {
		t.Fatalf("expected submitted origin to stay selected")
	}
}

func TestCalculatorResubmitReplacesResult(t *testing.T) {
	srv := newTestServer(t)

	first := postCalculator(t, srv, url.Values{"productValue": {"10000"}, "quantity": {"1"}})
	second := postCalculator(t, srv, url.Values{"productValue": {"2000"}, "quantity": {"3"}})

	if !strings.Contains(first, "$12,775.00") {
		t.Fatalf("first result missing total")
	}
	// 6000 * 1.21 + 675
	if !strings.Contains(second, "$7,935.00") {
		t.Fatalf("second result missing total")
	}
	if strings.Contains(second, "$12,775.00") {
		t.Fatalf("second result still shows the previous total")
	}
}

func TestCalculatorSubmitDefaultsInvalidInput(t *testing.T) {
	srv := newTestServer(t)

	body := postCalculator(t, srv, url.Values{"productValue": {"abc"}, "quantity": {""}})

	// Only the flat fees remain.
	if !strings.Contains(body, "$675.00") {
		t.Fatalf("expected fee-only total for invalid input")
	}
}

func TestCalculatorFormHasNoResult(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.handleCalculatorForm(rr, httptest.NewRequest(http.MethodGet, "/calculator", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "Cost Breakdown") {
		t.Fatalf("expected empty form without a breakdown")
	}
}

func TestDutiesAPI(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
		want dutiesResponse
	}{
		{
			name: "numbers",
			body: `{"productValue": 10000, "quantity": 1, "hsCode": "8471.30.01"}`,
			want: dutiesResponse{
				ProductValue: 10000, Quantity: 1, HSCode: "8471.30.01",
				Duties: 850, Taxes: 1200, Shipping: 450, Insurance: 50, Brokerage: 150, Other: 75,
				TotalLandedCost: 12775, OverheadPercent: 27.75,
			},
		},
		{
			name: "strings",
			body: `{"productValue": "500", "quantity": "2"}`,
			want: dutiesResponse{
				ProductValue: 1000, Quantity: 2,
				Duties: 85, Taxes: 120, Shipping: 450, Insurance: 5, Brokerage: 150, Other: 75,
				TotalLandedCost: 1885, OverheadPercent: 88.5,
			},
		},
		{
			name: "invalid values default",
			body: `{"productValue": "lots", "quantity": null}`,
			want: dutiesResponse{
				Quantity: 1, Shipping: 450, Brokerage: 150, Other: 75, TotalLandedCost: 675,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			srv.handleDutiesAPI(rr, httptest.NewRequest(http.MethodPost, "/api/v1/duties", strings.NewReader(tc.body)))

			if rr.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
			}
			var got dutiesResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected response (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDutiesAPIRejectsInvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.handleDutiesAPI(rr, httptest.NewRequest(http.MethodPost, "/api/v1/duties", strings.NewReader(`{"productValue":`)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("expected json content type, got %q", rr.Header().Get("Content-Type"))
	}
	if !strings.Contains(rr.Body.String(), "invalid JSON body") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestScalarText(t *testing.T) {
	tests := map[string]string{
		``:       "",
		`null`:   "",
		`12.5`:   "12.5",
		`"12.5"`: "12.5",
		`true`:   "true",
		`"  7 "`: "  7 ",
	}
	for raw, want := range tests {
		if got := scalarText(json.RawMessage(raw)); got != want {
			t.Fatalf("scalarText(%q) = %q, want %q", raw, got, want)
		}
	}
}
