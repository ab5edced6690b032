package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Simplici0/tradedesk/internal/catalog"
)

// Config contains the values required by startup seed.
type Config struct {
	AdminEmail    string
	AdminPassword string
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

type seedStep func(ctx context.Context, tx *sql.Tx, stats *Stats) error

// Run executes the startup seed in an idempotent way.
func Run(ctx context.Context, db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}
	steps := []seedStep{
		func(ctx context.Context, tx *sql.Tx, stats *Stats) error {
			return seedAdmin(ctx, tx, cfg.AdminEmail, cfg.AdminPassword, stats)
		},
		ensureTariffCodes,
		ensureRegulatoryUpdates,
		ensureWatchlists,
		ensureScreeningResults,
		ensureLicenseApplications,
		ensureLicenseRequirements,
		ensureIntegrations,
		ensureAPIEndpoints,
	}
	for _, step := range steps {
		if err := step(ctx, tx, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func seedAdmin(ctx context.Context, tx *sql.Tx, email, password string, stats *Stats) error {
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = ? LIMIT 1)`, email).Scan(&exists); err != nil {
		return fmt.Errorf("check admin user existence: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO users (email, password_hash) VALUES (?, ?)`, email, string(hash)); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	stats.Inserts++
	return nil
}

// insertIfMissing runs insert when exists reports no row for the key.
func insertIfMissing(ctx context.Context, tx *sql.Tx, stats *Stats, what, existsQuery string, key []any, insert string, args ...any) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, existsQuery, key...).Scan(&exists); err != nil {
		return fmt.Errorf("check %s existence: %w", what, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
		return fmt.Errorf("insert %s: %w", what, err)
	}
	stats.Inserts++
	return nil
}

func ensureTariffCodes(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, c := range catalog.SampleTariffCodes {
		err := insertIfMissing(ctx, tx, stats, "tariff code",
			`SELECT EXISTS(SELECT 1 FROM tariff_codes WHERE code = ? LIMIT 1)`, []any{c.Code},
			`INSERT INTO tariff_codes (code, description, duty, status) VALUES (?, ?, ?, ?)`,
			c.Code, c.Description, c.Duty, c.Status,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureRegulatoryUpdates(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, u := range catalog.SampleRegulatoryUpdates {
		countries, err := json.Marshal(u.Countries)
		if err != nil {
			return fmt.Errorf("encode regulatory update countries: %w", err)
		}
		err = insertIfMissing(ctx, tx, stats, "regulatory update",
			`SELECT EXISTS(SELECT 1 FROM regulatory_updates WHERE title = ? LIMIT 1)`, []any{u.Title},
			`INSERT INTO regulatory_updates (published_on, title, description, priority, countries_json) VALUES (?, ?, ?, ?, ?)`,
			u.PublishedOn, u.Title, u.Description, u.Priority, string(countries),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureWatchlists(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, w := range catalog.SampleWatchlists {
		err := insertIfMissing(ctx, tx, stats, "watchlist",
			`SELECT EXISTS(SELECT 1 FROM watchlists WHERE name = ? LIMIT 1)`, []any{w.Name},
			`INSERT INTO watchlists (name, entry_count, update_frequency, status) VALUES (?, ?, ?, ?)`,
			w.Name, w.EntryCount, w.UpdateFrequency, w.Status,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureScreeningResults(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, r := range catalog.SampleScreeningResults {
		lists, err := json.Marshal(r.Lists)
		if err != nil {
			return fmt.Errorf("encode screening lists: %w", err)
		}
		err = insertIfMissing(ctx, tx, stats, "screening result",
			`SELECT EXISTS(SELECT 1 FROM screening_results WHERE entity = ? LIMIT 1)`, []any{r.Entity},
			`INSERT INTO screening_results (entity, status, risk_level, lists_json, last_checked) VALUES (?, ?, ?, ?, ?)`,
			r.Entity, r.Status, r.RiskLevel, string(lists), r.LastChecked,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureLicenseApplications(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, a := range catalog.SampleLicenseApplications {
		err := insertIfMissing(ctx, tx, stats, "license application",
			`SELECT EXISTS(SELECT 1 FROM license_applications WHERE reference = ? LIMIT 1)`, []any{a.Reference},
			`INSERT INTO license_applications (
				reference, license_type, product, destination, status, priority,
				submitted_on, expected_decision, approved_on, days_remaining
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.Reference, a.Type, a.Product, a.Destination, a.Status, a.Priority,
			a.SubmittedOn, nullString(a.ExpectedDecision), nullString(a.ApprovedOn), a.DaysRemaining,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureLicenseRequirements(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, r := range catalog.SampleLicenseRequirements {
		err := insertIfMissing(ctx, tx, stats, "license requirement",
			`SELECT EXISTS(SELECT 1 FROM license_requirements WHERE product = ? AND destination = ? LIMIT 1)`, []any{r.Product, r.Destination},
			`INSERT INTO license_requirements (
				product, destination, required, license_type, processing_time, eccn, reason, exception
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.Product, r.Destination, r.Required, r.Type, r.ProcessingTime,
			nullString(r.ECCN), nullString(r.Reason), nullString(r.Exception),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureIntegrations(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, i := range catalog.SampleIntegrations {
		features, err := json.Marshal(i.Features)
		if err != nil {
			return fmt.Errorf("encode integration features: %w", err)
		}
		err = insertIfMissing(ctx, tx, stats, "integration",
			`SELECT EXISTS(SELECT 1 FROM integrations WHERE name = ? LIMIT 1)`, []any{i.Name},
			`INSERT INTO integrations (name, description, status, last_sync, health, features_json) VALUES (?, ?, ?, ?, ?, ?)`,
			i.Name, i.Description, i.Status, i.LastSync, i.Health, string(features),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureAPIEndpoints(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	for _, e := range catalog.SampleAPIEndpoints {
		err := insertIfMissing(ctx, tx, stats, "api endpoint",
			`SELECT EXISTS(SELECT 1 FROM api_endpoints WHERE name = ? LIMIT 1)`, []any{e.Name},
			`INSERT INTO api_endpoints (name, endpoint, status, requests, avg_response_ms) VALUES (?, ?, ?, ?, ?)`,
			e.Name, e.Endpoint, e.Status, e.Requests, e.AvgResponseMS,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
