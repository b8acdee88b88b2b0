package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"jobtrack/internal/domain/job"
	"jobtrack/internal/domain/user"
	"jobtrack/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs []job.Job
	err  error

	lastFilter repository.ListFilter
	byStatus   map[job.Status]int
	byMonth    []repository.MonthCount
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j.CreatedAt = time.Now().UTC()
	j.UpdatedAt = j.CreatedAt
	m.jobs = append(m.jobs, j)
	return j, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id, createdBy uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	for _, j := range m.jobs {
		if j.ID == id && j.CreatedBy == createdBy {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) Update(_ context.Context, id, createdBy uuid.UUID, patch repository.JobPatch) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	for i, j := range m.jobs {
		if j.ID != id || j.CreatedBy != createdBy {
			continue
		}
		if patch.Company != nil {
			j.Company = *patch.Company
		}
		if patch.Position != nil {
			j.Position = *patch.Position
		}
		if patch.Status != nil {
			j.Status = job.Status(*patch.Status)
		}
		if patch.JobType != nil {
			j.JobType = job.Type(*patch.JobType)
		}
		if patch.Location != nil {
			j.Location = *patch.Location
		}
		j.UpdatedAt = time.Now().UTC()
		m.jobs[i] = j
		return j, nil
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) Delete(_ context.Context, id, createdBy uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, j := range m.jobs {
		if j.ID == id && j.CreatedBy == createdBy {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			return nil
		}
	}
	return repository.ErrJobNotFound
}

func (m *mockJobRepo) List(_ context.Context, f repository.ListFilter) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = f
	matched := m.matching(f)
	if f.Offset >= len(matched) {
		return []job.Job{}, nil
	}
	end := f.Offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[f.Offset:end], nil
}

func (m *mockJobRepo) Count(_ context.Context, f repository.ListFilter) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.matching(f)), nil
}

func (m *mockJobRepo) matching(f repository.ListFilter) []job.Job {
	out := make([]job.Job, 0)
	for _, j := range m.jobs {
		if j.CreatedBy != f.CreatedBy {
			continue
		}
		if f.Status != "" && string(j.Status) != f.Status {
			continue
		}
		if f.JobType != "" && string(j.JobType) != f.JobType {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(j.Position), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func (m *mockJobRepo) CountByStatus(_ context.Context, _ uuid.UUID) (map[job.Status]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.byStatus == nil {
		return map[job.Status]int{}, nil
	}
	return m.byStatus, nil
}

func (m *mockJobRepo) CountByMonth(_ context.Context, _ uuid.UUID, buckets int) ([]repository.MonthCount, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.byMonth) > buckets {
		return m.byMonth[:buckets], nil
	}
	return m.byMonth, nil
}

type mockCache struct {
	store map[string][]byte

	deletedKeys     []string
	deletedPatterns []string
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (c *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *mockCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	c.deletedKeys = append(c.deletedKeys, key)
	return nil
}

func (c *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.store {
		if strings.HasPrefix(k, prefix) {
			delete(c.store, k)
		}
	}
	c.deletedPatterns = append(c.deletedPatterns, pattern)
	return nil
}

type mockNotifier struct {
	events []string
}

func (n *mockNotifier) JobChanged(_, _ uuid.UUID, action string) {
	n.events = append(n.events, action)
}

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uuid.UUID]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}
