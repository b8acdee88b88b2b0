package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// ListFilter always scopes to the owner; the optional fields narrow the
// result the way the query string does.
type ListFilter struct {
	CreatedBy uuid.UUID
	Search    string
	Status    string
	JobType   string
	Sort      string
	Limit     int
	Offset    int
}

// JobPatch carries a partial update; nil fields keep the stored value.
type JobPatch struct {
	Company  *string
	Position *string
	Status   *string
	JobType  *string
	Location *string
}

type MonthCount struct {
	Year  int
	Month time.Month
	Count int
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, id, createdBy uuid.UUID) (job.Job, error)
	Update(ctx context.Context, id, createdBy uuid.UUID, patch JobPatch) (job.Job, error)
	Delete(ctx context.Context, id, createdBy uuid.UUID) error
	List(ctx context.Context, f ListFilter) ([]job.Job, error)
	Count(ctx context.Context, f ListFilter) (int, error)
	CountByStatus(ctx context.Context, createdBy uuid.UUID) (map[job.Status]int, error)
	CountByMonth(ctx context.Context, createdBy uuid.UUID, buckets int) ([]MonthCount, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, company, position, status, job_type, location, created_by, created_at, updated_at`

var sortOrders = map[string]string{
	"latest": "created_at DESC",
	"oldest": "created_at ASC",
	"a-z":    "company ASC",
	"z-a":    "company DESC",
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, company, position, status, job_type, location, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+jobColumns,
		j.ID, j.Company, j.Position, string(j.Status), string(j.JobType), j.Location, j.CreatedBy,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id, createdBy uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND created_by = $2`,
		id, createdBy,
	)
	return scanJob(row)
}

// Update replaces the supplied fields in a single statement so concurrent
// mutations of the same document never interleave.
func (r *PostgresJobRepository) Update(ctx context.Context, id, createdBy uuid.UUID, patch JobPatch) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET
			company = COALESCE($3, company),
			position = COALESCE($4, position),
			status = COALESCE($5, status),
			job_type = COALESCE($6, job_type),
			location = COALESCE($7, location),
			updated_at = now()
		 WHERE id = $1 AND created_by = $2
		 RETURNING `+jobColumns,
		id, createdBy, patch.Company, patch.Position, patch.Status, patch.JobType, patch.Location,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id, createdBy uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND created_by = $2`,
		id, createdBy,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) List(ctx context.Context, f ListFilter) ([]job.Job, error) {
	where, args := buildWhere(f)

	order, ok := sortOrders[f.Sort]
	if !ok {
		order = sortOrders["latest"]
	}

	args = append(args, f.Limit)
	limitPos := len(args)
	args = append(args, f.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(
		`SELECT %s FROM jobs WHERE %s ORDER BY %s, id ASC LIMIT $%d OFFSET $%d`,
		jobColumns, where, order, limitPos, offsetPos,
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context, f ListFilter) (int, error) {
	where, args := buildWhere(f)

	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs WHERE `+where, args...)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRepository) CountByStatus(ctx context.Context, createdBy uuid.UUID) (map[job.Status]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT status, COUNT(1) FROM jobs WHERE created_by = $1 GROUP BY status`,
		createdBy,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[job.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		out[job.Status(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByMonth returns at most the given number of (year, month) buckets,
// most recent first.
func (r *PostgresJobRepository) CountByMonth(ctx context.Context, createdBy uuid.UUID, buckets int) ([]MonthCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT EXTRACT(YEAR FROM created_at)::int AS year,
		        EXTRACT(MONTH FROM created_at)::int AS month,
		        COUNT(1)
		 FROM jobs
		 WHERE created_by = $1
		 GROUP BY year, month
		 ORDER BY year DESC, month DESC
		 LIMIT $2`,
		createdBy, buckets,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MonthCount, 0, buckets)
	for rows.Next() {
		var year, month, count int
		if err := rows.Scan(&year, &month, &count); err != nil {
			return nil, err
		}
		out = append(out, MonthCount{Year: year, Month: time.Month(month), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func buildWhere(f ListFilter) (string, []any) {
	where := []string{"created_by = $1"}
	args := []any{f.CreatedBy}

	if f.Search != "" {
		args = append(args, likePattern(f.Search))
		where = append(where, fmt.Sprintf("position ILIKE $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.JobType != "" {
		args = append(args, f.JobType)
		where = append(where, fmt.Sprintf("job_type = $%d", len(args)))
	}

	return strings.Join(where, " AND "), args
}

// likePattern wraps the term for substring matching, neutralizing LIKE
// metacharacters in user input.
func likePattern(term string) string {
	repl := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + repl.Replace(term) + "%"
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var status, jobType string
	err := row.Scan(&j.ID, &j.Company, &j.Position, &status, &jobType, &j.Location, &j.CreatedBy, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	j.JobType = job.Type(jobType)
	return j, nil
}
