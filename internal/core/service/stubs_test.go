package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
)

type stubUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *update.Email {
				return nil, domain.ErrUserExists
			}
		}
		u.Email = *update.Email
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	return cloneUser(u), nil
}

type stubStartupRepo struct {
	mu       sync.Mutex
	seq      int
	startups []*domain.Startup
	findByID int
	lastList ports.StartupFilter
}

func (r *stubStartupRepo) Create(_ context.Context, s *domain.Startup) (*domain.Startup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.startups {
		if existing.UserID == s.UserID {
			return nil, domain.ErrStartupExists
		}
	}
	r.seq++
	stored := *s
	stored.ID = fmt.Sprintf("startup-%d", r.seq)
	r.startups = append(r.startups, &stored)
	out := stored
	return &out, nil
}

func (r *stubStartupRepo) FindByID(_ context.Context, id string) (*domain.Startup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findByID++
	for _, s := range r.startups {
		if s.ID == id {
			out := *s
			return &out, nil
		}
	}
	return nil, domain.ErrStartupNotFound
}

func (r *stubStartupRepo) FindByOwner(_ context.Context, userID string) (*domain.Startup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.startups {
		if s.UserID == userID {
			out := *s
			return &out, nil
		}
	}
	return nil, domain.ErrStartupNotFound
}

func (r *stubStartupRepo) UpdateByOwner(_ context.Context, userID string, patch ports.StartupPatch) (*domain.Startup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.startups {
		if s.UserID != userID {
			continue
		}
		if patch.CompanyName != nil {
			s.CompanyName = *patch.CompanyName
		}
		if patch.FundingStage != nil {
			s.FundingStage = *patch.FundingStage
		}
		if patch.Location != nil {
			s.Location = *patch.Location
		}
		out := *s
		return &out, nil
	}
	return nil, domain.ErrStartupNotFound
}

func (r *stubStartupRepo) List(_ context.Context, filter ports.StartupFilter) ([]*domain.Startup, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = filter
	total := int64(len(r.startups))
	start := int(filter.Skip())
	if start > len(r.startups) {
		start = len(r.startups)
	}
	end := start + filter.Limit
	if end > len(r.startups) {
		end = len(r.startups)
	}
	return r.startups[start:end], total, nil
}

type stubInvestorRepo struct {
	mu        sync.Mutex
	seq       int
	investors []*domain.Investor
	lastList  ports.InvestorFilter
}

func (r *stubInvestorRepo) Create(_ context.Context, inv *domain.Investor) (*domain.Investor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.investors {
		if existing.UserID == inv.UserID {
			return nil, domain.ErrInvestorExists
		}
	}
	r.seq++
	stored := *inv
	stored.ID = fmt.Sprintf("investor-%d", r.seq)
	r.investors = append(r.investors, &stored)
	out := stored
	return &out, nil
}

func (r *stubInvestorRepo) FindByID(_ context.Context, id string) (*domain.Investor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.investors {
		if inv.ID == id {
			out := *inv
			return &out, nil
		}
	}
	return nil, domain.ErrInvestorNotFound
}

func (r *stubInvestorRepo) FindByOwner(_ context.Context, userID string) (*domain.Investor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.investors {
		if inv.UserID == userID {
			out := *inv
			return &out, nil
		}
	}
	return nil, domain.ErrInvestorNotFound
}

func (r *stubInvestorRepo) UpdateByOwner(_ context.Context, userID string, patch ports.InvestorPatch) (*domain.Investor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.investors {
		if inv.UserID != userID {
			continue
		}
		if patch.FirmName != nil {
			inv.FirmName = *patch.FirmName
		}
		if patch.InvestorType != nil {
			inv.InvestorType = *patch.InvestorType
		}
		out := *inv
		return &out, nil
	}
	return nil, domain.ErrInvestorNotFound
}

func (r *stubInvestorRepo) List(_ context.Context, filter ports.InvestorFilter) ([]*domain.Investor, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastList = filter
	return r.investors, int64(len(r.investors)), nil
}

// stubCache stores JSON like the Redis cache does.
type stubCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	failGet bool
	failSet bool
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, kind, id string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failGet {
		return false, fmt.Errorf("cache unavailable")
	}
	raw, ok := c.entries[kind+":"+id]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *stubCache) Set(_ context.Context, kind, id string, doc any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSet {
		return fmt.Errorf("cache unavailable")
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	c.entries[kind+":"+id] = raw
	return nil
}

func (c *stubCache) SetIfAbsent(_ context.Context, kind, id string, doc any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failSet {
		return fmt.Errorf("cache unavailable")
	}
	if _, ok := c.entries[kind+":"+id]; ok {
		return nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	c.entries[kind+":"+id] = raw
	return nil
}

func (c *stubCache) Delete(_ context.Context, kind, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, kind+":"+id)
	return nil
}

func (c *stubCache) put(kind, id string, doc any) {
	raw, _ := json.Marshal(doc)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[kind+":"+id] = raw
}

func (c *stubCache) has(kind, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[kind+":"+id]
	return ok
}

// interleavedStartupRepo runs afterFind once, between a FindByID read and
// the caller's next step.
type interleavedStartupRepo struct {
	*stubStartupRepo
	afterFind func()
}

func (r *interleavedStartupRepo) FindByID(ctx context.Context, id string) (*domain.Startup, error) {
	s, err := r.stubStartupRepo.FindByID(ctx, id)
	if hook := r.afterFind; hook != nil {
		r.afterFind = nil
		hook()
	}
	return s, err
}
