package seeder

import (
	"context"

	"jobtrack/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
