// Package testutil provides the shared fixtures for handler and model tests:
// an in-memory database carrying the tuition schema, seed helpers for the
// reference tables, and builders for browser-style form submissions.
package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"tuition-calculator/models"
)

// OpenTestDB returns an in-memory database with the tuition schema applied.
// Money columns are TEXT so decimal values round-trip without a float step.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second pool connection would see its own empty in-memory database.
	db.SetMaxOpenConns(1)

	schema := []string{
		`CREATE TABLE CreditCosts (
			Studies TEXT NOT NULL,
			Residency TEXT NOT NULL,
			CreditsCost TEXT NOT NULL,
			NonresidencyFee TEXT NOT NULL
		)`,
		`CREATE TABLE orientation_fee (
			Fee TEXT NOT NULL
		)`,
		`CREATE TABLE UserTuition (
			FirstName TEXT NOT NULL,
			LastName TEXT NOT NULL,
			TuitionCost TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to create schema: %v", err)
		}
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// NewAppState wraps a test database in the application context handlers take.
func NewAppState(db *sql.DB) *models.AppState {
	return &models.AppState{AppName: "Tuition Calculator", DB: db}
}

// SeedRates inserts one CreditCosts row. Money values are decimal strings
// such as "300.00".
func SeedRates(t *testing.T, db *sql.DB, studies models.Studies, residency models.Residency, creditsCost, nonresidencyFee string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO CreditCosts (Studies, Residency, CreditsCost, NonresidencyFee) VALUES (?, ?, ?, ?)`,
		string(studies), string(residency), creditsCost, nonresidencyFee,
	)
	if err != nil {
		t.Fatalf("Failed to seed rates: %v", err)
	}
}

// SeedOrientationFee inserts the singleton orientation fee row.
func SeedOrientationFee(t *testing.T, db *sql.DB, fee string) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO orientation_fee (Fee) VALUES (?)`, fee); err != nil {
		t.Fatalf("Failed to seed orientation fee: %v", err)
	}
}

// SeedDefaultRates populates every rate row plus the orientation fee with
// the same values the seed migrations install.
func SeedDefaultRates(t *testing.T, db *sql.DB) {
	t.Helper()
	SeedRates(t, db, models.Undergraduate, models.Resident, "300.00", "0.00")
	SeedRates(t, db, models.Undergraduate, models.NonResident, "300.00", "500.00")
	SeedRates(t, db, models.Graduate, models.Resident, "450.00", "0.00")
	SeedRates(t, db, models.Graduate, models.NonResident, "450.00", "750.00")
	SeedOrientationFee(t, db, "75.00")
}

// SeedUserTuition inserts a stored calculation directly, bypassing the
// calculate handler.
func SeedUserTuition(t *testing.T, db *sql.DB, firstName, lastName, cost string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO UserTuition (FirstName, LastName, TuitionCost) VALUES (?, ?, ?)`,
		firstName, lastName, cost,
	)
	if err != nil {
		t.Fatalf("Failed to seed UserTuition: %v", err)
	}
}

// PostForm builds a form-encoded POST request the way a browser submits one.
func PostForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// CountUserTuition returns how many records are stored for a name pair.
func CountUserTuition(t *testing.T, db *sql.DB, firstName, lastName string) int {
	t.Helper()
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM UserTuition WHERE FirstName = ? AND LastName = ?`,
		firstName, lastName,
	).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count UserTuition rows: %v", err)
	}
	return count
}

// StoredTuition fetches the stored cost for a name pair.
func StoredTuition(t *testing.T, db *sql.DB, firstName, lastName string) decimal.Decimal {
	t.Helper()
	var cost decimal.Decimal
	err := db.QueryRow(
		`SELECT TuitionCost FROM UserTuition WHERE FirstName = ? AND LastName = ?`,
		firstName, lastName,
	).Scan(&cost)
	if err != nil {
		t.Fatalf("Failed to fetch stored tuition: %v", err)
	}
	return cost
}
