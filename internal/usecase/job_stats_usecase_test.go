package usecase

import (
	"context"
	"testing"
	"time"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/repository"

	"github.com/google/uuid"
)

func TestGetStats_ZeroFill(t *testing.T) {
	repo := &mockJobRepo{byStatus: map[job.Status]int{
		job.StatusPending:   2,
		job.StatusInterview: 1,
	}}
	uc := NewJobStatsUsecase(repo, nil, nil)

	res, err := uc.GetStats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.DefaultStats.Pending != 2 || res.DefaultStats.Interview != 1 || res.DefaultStats.Declined != 0 {
		t.Fatalf("unexpected defaultStats: %+v", res.DefaultStats)
	}
}

func TestGetStats_UnrecognizedStatusDropped(t *testing.T) {
	repo := &mockJobRepo{byStatus: map[job.Status]int{
		job.StatusPending: 1,
		"ghosted":         9,
	}}
	uc := NewJobStatsUsecase(repo, nil, nil)

	res, err := uc.GetStats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	sum := res.DefaultStats.Pending + res.DefaultStats.Interview + res.DefaultStats.Declined
	if sum != 1 {
		t.Fatalf("unrecognized status leaked into stats: %+v", res.DefaultStats)
	}
}

func TestGetStats_MonthlyChronologicalAscending(t *testing.T) {
	// repository returns newest-first
	repo := &mockJobRepo{byMonth: []repository.MonthCount{
		{Year: 2026, Month: time.August, Count: 4},
		{Year: 2026, Month: time.July, Count: 1},
		{Year: 2026, Month: time.March, Count: 2},
	}}
	uc := NewJobStatsUsecase(repo, nil, nil)

	res, err := uc.GetStats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got := res.MonthlyApplications
	if len(got) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(got))
	}
	want := []MonthlyCount{
		{Date: "Mar 2026", Count: 2},
		{Date: "Jul 2026", Count: 1},
		{Date: "Aug 2026", Count: 4},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGetStats_AtMostSixBuckets(t *testing.T) {
	byMonth := make([]repository.MonthCount, 0, 9)
	for m := 9; m >= 1; m-- {
		byMonth = append(byMonth, repository.MonthCount{Year: 2026, Month: time.Month(m), Count: 1})
	}
	repo := &mockJobRepo{byMonth: byMonth}
	uc := NewJobStatsUsecase(repo, nil, nil)

	res, err := uc.GetStats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.MonthlyApplications) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(res.MonthlyApplications))
	}
	// the six most recent months, oldest of the six first
	if res.MonthlyApplications[0].Date != "Apr 2026" {
		t.Fatalf("expected window to start at Apr 2026, got %s", res.MonthlyApplications[0].Date)
	}
	if res.MonthlyApplications[5].Date != "Sep 2026" {
		t.Fatalf("expected window to end at Sep 2026, got %s", res.MonthlyApplications[5].Date)
	}
}

func TestGetStats_NoJobs(t *testing.T) {
	uc := NewJobStatsUsecase(&mockJobRepo{}, nil, nil)

	res, err := uc.GetStats(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.DefaultStats != (DefaultStats{}) {
		t.Fatalf("expected all-zero stats, got %+v", res.DefaultStats)
	}
	if res.MonthlyApplications == nil || len(res.MonthlyApplications) != 0 {
		t.Fatalf("expected empty non-nil monthly slice, got %#v", res.MonthlyApplications)
	}
}

func TestGetStats_CacheInvalidatedByMutation(t *testing.T) {
	owner := uuid.New()
	cache := newMockCache()
	repo := &mockJobRepo{byStatus: map[job.Status]int{job.StatusPending: 1}}

	stats := NewJobStatsUsecase(repo, cache, nil)
	if _, err := stats.GetStats(context.Background(), owner); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.store) == 0 {
		t.Fatal("expected stats to be cached")
	}

	mut := NewJobMutationUsecase(repo, cache, nil, nil)
	_, err := mut.CreateJob(context.Background(), owner, CreateJobInput{
		Company: "Acme", Position: "SRE", Location: "Remote",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, ok := cache.store[JobsStatsCacheKey(owner)]; ok {
		t.Fatal("stats cache entry survived a mutation")
	}
}
