package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/job"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultDemoEmail    = "testuser@test.com"
	defaultDemoPassword = "secret50"

	demoJobCount  = 75
	demoJobMonths = 6
)

var demoCompanies = []string{
	"Cogilith", "Erdoby", "Canopy Labs", "Vantage Metrics", "Bitwise Harbor",
	"Northcell", "Quantum Forge", "Lunar Works", "Fernhill Systems", "Octave",
	"Praxis Digital", "Halcyon Data", "Ridgeline", "Summit Peak", "Arclight",
}

var demoPositions = []string{
	"Backend Engineer", "Frontend Developer", "Full Stack Developer",
	"Site Reliability Engineer", "Data Engineer", "Platform Engineer",
	"DevOps Engineer", "Software Engineer", "Engineering Manager",
	"QA Engineer",
}

var demoLocations = []string{
	"New York, NY", "Austin, TX", "Seattle, WA", "Denver, CO", "Remote",
	"Boston, MA", "Chicago, IL", "Portland, OR", "San Diego, CA",
}

// DemoSeeder provisions the read-only demo account and fills it with a
// spread of applications over the last few months so list, filter and
// stats views have something to show.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("DEMO_USER_EMAIL")))
	if email == "" {
		email = defaultDemoEmail
	}
	password := os.Getenv("DEMO_USER_PASSWORD")
	if password == "" {
		password = defaultDemoPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var userID string
	err = tx.QueryRow(
		ctx,
		`INSERT INTO users (id, name, last_name, email, password_hash, location, is_demo)
		 VALUES (gen_random_uuid(), 'Zippy', 'ShakeAndBake', $1, $2, 'Codeville', TRUE)
		 ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, is_demo = TRUE
		 RETURNING id`,
		email, string(hash),
	).Scan(&userID)
	if err != nil {
		return fmt.Errorf("upsert demo user: %w", err)
	}

	// Reseed from scratch so repeated runs don't pile up records.
	if _, err := tx.Exec(ctx, `DELETE FROM jobs WHERE created_by = $1`, userID); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for i := 0; i < demoJobCount; i++ {
		createdAt := now.AddDate(0, -rng.Intn(demoJobMonths), -rng.Intn(28))
		status := job.Statuses[rng.Intn(len(job.Statuses))]
		jobType := job.Types[rng.Intn(len(job.Types))]

		_, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (id, company, position, status, job_type, location, created_by, created_at, updated_at)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $7)`,
			demoCompanies[rng.Intn(len(demoCompanies))],
			demoPositions[rng.Intn(len(demoPositions))],
			string(status),
			string(jobType),
			demoLocations[rng.Intn(len(demoLocations))],
			userID,
			createdAt,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
