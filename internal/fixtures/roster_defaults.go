package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

// ==========================================
// SCHEMA
// ==========================================

// EnsureSchema creates the employees and submissions tables when they do
// not exist yet. There are no migrations; both tables are otherwise assumed
// to be provisioned externally.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			role TEXT NOT NULL,
			manager TEXT,
			password_hash TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS submissions (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL REFERENCES employees(name),
			date DATE NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// ==========================================
// DEFAULT ROSTER
// ==========================================

func strPtr(s string) *string { return &s }

type RosterEntry struct {
	Name    string
	Role    string
	Manager *string
}

// DefaultRoster is the provisioning roster used when the directory is
// empty. Password hashes are bcrypt of the employee's own name, the
// documented placeholder credential scheme.
var DefaultRoster = []RosterEntry{
	{Name: "Paul Mccartney", Role: "Full Stack Developer", Manager: strPtr("John Lennon")},
	{Name: "George Harrison", Role: "Backend Developer", Manager: strPtr("John Lennon")},
	{Name: "Ringo Starr", Role: "Frontend Developer", Manager: strPtr("John Lennon")},
	{Name: "John Lennon", Role: "Manager", Manager: nil},
}

// SeedDefaultRoster inserts the default roster and its two sample
// submissions when the employees table is empty. Safe to call on every
// startup.
func SeedDefaultRoster(ctx context.Context, db *database.DB) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, entry := range DefaultRoster {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.Name), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash placeholder password: %w", err)
		}
		_, err = db.Exec(ctx, `
			INSERT INTO employees (id, name, role, manager, password_hash)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.NewString(), entry.Name, entry.Role, entry.Manager, string(hash))
		if err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", entry.Name, err)
		}
	}

	sampleDate := time.Date(2024, time.December, 12, 0, 0, 0, 0, time.Local)
	samples := []struct {
		Name  string
		Start time.Time
		End   time.Time
	}{
		{Name: "George Harrison", Start: sampleDate.Add(9 * time.Hour), End: sampleDate.Add(18 * time.Hour)},
		{Name: "Ringo Starr", Start: sampleDate.Add(10 * time.Hour), End: sampleDate.Add(17 * time.Hour)},
	}

	for _, sample := range samples {
		_, err := db.Exec(ctx, `
			INSERT INTO submissions (name, date, start_time, end_time, status)
			VALUES ($1, $2, $3, $4, 'Pending')
		`, sample.Name, sampleDate, sample.Start, sample.End)
		if err != nil {
			return fmt.Errorf("failed to seed submission for %s: %w", sample.Name, err)
		}
	}

	return nil
}
