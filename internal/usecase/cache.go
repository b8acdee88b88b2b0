package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type jobListCacheKeyInput struct {
	Status  string `json:"status"`
	JobType string `json:"job_type"`
	Search  string `json:"search"`
	Sort    string `json:"sort"`
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
}

// JobsListCacheKey hashes the normalized listing parameters so every
// distinct filter window gets its own entry under the owner's prefix.
func JobsListCacheKey(userID uuid.UUID, p JobListParams) string {
	in := jobListCacheKeyInput{
		Status:  p.Status,
		JobType: p.JobType,
		Search:  p.Search,
		Sort:    p.Sort,
		Page:    p.Page,
		Limit:   p.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:list:" + userID.String() + ":" + hex.EncodeToString(sum[:])
}

func JobsListCachePattern(userID uuid.UUID) string {
	return "jobs:list:" + userID.String() + ":*"
}

func JobsStatsCacheKey(userID uuid.UUID) string {
	return "jobs:stats:" + userID.String()
}
