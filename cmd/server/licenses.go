package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Simplici0/tradedesk/internal/catalog"
)

const (
	statusApproved      = "Approved"
	statusDenied        = "Denied"
	statusUnderReview   = "Under Review"
	statusPendingDocs   = "Pending Documentation"
	priorityCritical    = "Critical"
	licenseRefPrefix    = "LIC-"
	licenseRefSeqDigits = 3
)

var licenseTabs = map[string]bool{"applications": true, "determination": true, "new": true}

type licenseSummary struct {
	Pending  int
	Approved int
	Urgent   int
	AvgDays  int
}

type licensesViewData struct {
	baseViewData
	Tab          string
	Query        string
	StatusFilter string
	Summary      licenseSummary
	Applications []catalog.LicenseApplication
	Requirements []catalog.LicenseRequirement
	LicenseTypes []catalog.Option
	Destinations []catalog.Option
}

func isPendingStatus(status string) bool {
	return status == statusUnderReview || status == statusPendingDocs
}

// summarizeLicenses derives the summary cards from the full application list.
func summarizeLicenses(apps []catalog.LicenseApplication) licenseSummary {
	var sum licenseSummary
	daysTotal, daysCount := 0, 0
	for _, a := range apps {
		switch {
		case a.Status == statusApproved:
			sum.Approved++
		case isPendingStatus(a.Status):
			sum.Pending++
		}
		if a.Priority == priorityCritical && a.Status != statusApproved && a.Status != statusDenied {
			sum.Urgent++
		}
		if a.DaysRemaining != nil {
			daysTotal += *a.DaysRemaining
			daysCount++
		}
	}
	if daysCount > 0 {
		sum.AvgDays = daysTotal / daysCount
	}
	return sum
}

func (s *server) handleLicenses(w http.ResponseWriter, r *http.Request) {
	tab := r.URL.Query().Get("tab")
	if !licenseTabs[tab] {
		tab = "applications"
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	statusFilter := r.URL.Query().Get("status")
	if statusFilter != "pending" && statusFilter != "approved" {
		statusFilter = "all"
	}

	all, err := s.listLicenseApplications(r.Context(), "", "all")
	if err != nil {
		s.internalError(w, r, "failed to load license applications", err)
		return
	}

	apps := all
	if query != "" || statusFilter != "all" {
		if apps, err = s.listLicenseApplications(r.Context(), query, statusFilter); err != nil {
			s.internalError(w, r, "failed to load license applications", err)
			return
		}
	}

	requirements, err := s.listLicenseRequirements(r.Context())
	if err != nil {
		s.internalError(w, r, "failed to load license requirements", err)
		return
	}

	s.renderTemplate(w, "licenses.html", licensesViewData{
		baseViewData: baseViewData{
			ActivePage:     "licenses",
			ErrorMessage:   r.URL.Query().Get("error"),
			SuccessMessage: r.URL.Query().Get("success"),
		},
		Tab:          tab,
		Query:        query,
		StatusFilter: statusFilter,
		Summary:      summarizeLicenses(all),
		Applications: apps,
		Requirements: requirements,
		LicenseTypes: catalog.LicenseTypes,
		Destinations: catalog.LicenseDestinations,
	})
}

func (s *server) handleLicenseCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	app, err := parseLicenseApplicationForm(r)
	if err != nil {
		http.Redirect(w, r, "/licenses?tab=new&error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	app.Status = statusUnderReview
	app.SubmittedOn = s.now().Format("2006-01-02")

	reference, err := s.createLicenseApplication(r.Context(), app, s.now().Year())
	if err != nil {
		s.internalError(w, r, "failed to create license application", err)
		return
	}
	s.logger.Info("license application submitted", "reference", reference, "type", app.Type, "destination", app.Destination)

	http.Redirect(w, r, "/licenses?success="+url.QueryEscape("Application "+reference+" submitted."), http.StatusSeeOther)
}

func parseLicenseApplicationForm(r *http.Request) (catalog.LicenseApplication, error) {
	app := catalog.LicenseApplication{
		Product: strings.TrimSpace(r.FormValue("product")),
		ECCN:    strings.TrimSpace(r.FormValue("eccn")),
		EndUser: strings.TrimSpace(r.FormValue("end_user")),
		EndUse:  strings.TrimSpace(r.FormValue("end_use")),
	}

	var ok bool
	if app.Type, ok = optionLabel(catalog.LicenseTypes, r.FormValue("license_type")); !ok {
		return app, fmt.Errorf("license type is required")
	}
	if app.Destination, ok = optionLabel(catalog.LicenseDestinations, r.FormValue("destination")); !ok {
		return app, fmt.Errorf("destination is required")
	}
	if app.Priority, ok = optionLabel(catalog.LicensePriorities, r.FormValue("priority")); !ok {
		return app, fmt.Errorf("priority is required")
	}
	if app.Product == "" {
		return app, fmt.Errorf("product description is required")
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(r.FormValue("quantity")), 10, 64)
	if err != nil || quantity <= 0 {
		return app, fmt.Errorf("quantity must be a whole number greater than 0")
	}
	app.Quantity = quantity

	if app.UnitValue, err = parseNonNegativeFloat(r.FormValue("unit_value"), "unit value"); err != nil {
		return app, err
	}

	return app, nil
}

func optionLabel(options []catalog.Option, value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, o := range options {
		if o.Value == value {
			return o.Label, true
		}
	}
	return "", false
}

func parseNonNegativeFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s must be numeric", field)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must be greater than or equal to 0", field)
	}
	return value, nil
}

func (s *server) createLicenseApplication(ctx context.Context, app catalog.LicenseApplication, year int) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin license transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	reference, err := nextLicenseReference(ctx, tx, year)
	if err != nil {
		return "", err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO license_applications (
			reference, license_type, product, destination, status, priority,
			submitted_on, eccn, quantity, unit_value, end_user, end_use
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		reference, app.Type, app.Product, app.Destination, app.Status, app.Priority,
		app.SubmittedOn, app.ECCN, app.Quantity, app.UnitValue, app.EndUser, app.EndUse,
	)
	if err != nil {
		return "", fmt.Errorf("insert license application: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit license transaction: %w", err)
	}
	return reference, nil
}

// nextLicenseReference returns LIC-<year>-<NNN> with the next sequence number for year.
func nextLicenseReference(ctx context.Context, tx *sql.Tx, year int) (string, error) {
	prefix := fmt.Sprintf("%s%d-", licenseRefPrefix, year)

	var last string
	err := tx.QueryRowContext(ctx, `
		SELECT reference
		FROM license_applications
		WHERE reference LIKE ?
		ORDER BY length(reference) DESC, reference DESC
		LIMIT 1
	`, prefix+"%").Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("query last license reference: %w", err)
	}

	seq := 0
	if last != "" {
		if seq, err = strconv.Atoi(strings.TrimPrefix(last, prefix)); err != nil {
			return "", fmt.Errorf("parse license reference %q: %w", last, err)
		}
	}

	return fmt.Sprintf("%s%0*d", prefix, licenseRefSeqDigits, seq+1), nil
}

func (s *server) listLicenseApplications(ctx context.Context, query, statusFilter string) ([]catalog.LicenseApplication, error) {
	search := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			reference,
			license_type,
			product,
			destination,
			status,
			priority,
			submitted_on,
			COALESCE(expected_decision, ''),
			COALESCE(approved_on, ''),
			days_remaining,
			COALESCE(eccn, ''),
			COALESCE(quantity, 0),
			COALESCE(unit_value, 0),
			COALESCE(end_user, ''),
			COALESCE(end_use, '')
		FROM license_applications
		WHERE (? = '' OR reference LIKE ? OR product LIKE ? OR destination LIKE ?)
		  AND (
			? = 'all'
			OR (? = 'pending' AND status IN (?, ?))
			OR (? = 'approved' AND status = ?)
		  )
		ORDER BY submitted_on DESC, id DESC
	`,
		query, search, search, search,
		statusFilter,
		statusFilter, statusUnderReview, statusPendingDocs,
		statusFilter, statusApproved,
	)
	if err != nil {
		return nil, fmt.Errorf("query license applications: %w", err)
	}
	defer rows.Close()

	apps := make([]catalog.LicenseApplication, 0)
	for rows.Next() {
		var a catalog.LicenseApplication
		var days sql.NullInt64
		if err := rows.Scan(
			&a.Reference,
			&a.Type,
			&a.Product,
			&a.Destination,
			&a.Status,
			&a.Priority,
			&a.SubmittedOn,
			&a.ExpectedDecision,
			&a.ApprovedOn,
			&days,
			&a.ECCN,
			&a.Quantity,
			&a.UnitValue,
			&a.EndUser,
			&a.EndUse,
		); err != nil {
			return nil, fmt.Errorf("scan license application: %w", err)
		}
		if days.Valid {
			d := int(days.Int64)
			a.DaysRemaining = &d
		}
		apps = append(apps, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate license applications: %w", err)
	}

	return apps, nil
}

func (s *server) listLicenseRequirements(ctx context.Context) ([]catalog.LicenseRequirement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product, destination, required, license_type, processing_time,
			COALESCE(eccn, ''), COALESCE(reason, ''), COALESCE(exception, '')
		FROM license_requirements
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query license requirements: %w", err)
	}
	defer rows.Close()

	requirements := make([]catalog.LicenseRequirement, 0)
	for rows.Next() {
		var req catalog.LicenseRequirement
		if err := rows.Scan(&req.Product, &req.Destination, &req.Required, &req.Type, &req.ProcessingTime, &req.ECCN, &req.Reason, &req.Exception); err != nil {
			return nil, fmt.Errorf("scan license requirement: %w", err)
		}
		requirements = append(requirements, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate license requirements: %w", err)
	}

	return requirements, nil
}
