package api

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
)

// memStore is an in-memory stand-in for the Mongo repositories with the same
// filtering, ordering and uniqueness rules.
type memStore struct {
	mu        sync.Mutex
	seq       int
	users     map[string]*domain.User
	startups  []*domain.Startup
	investors []*domain.Investor
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*domain.User)}
}

func (m *memStore) nextID() string {
	m.seq++
	return fmt.Sprintf("%024x", m.seq)
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	stored := *u
	stored.ID = r.nextID()
	r.users[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r memUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r memUsers) Update(_ context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *upd.Email {
				return nil, domain.ErrUserExists
			}
		}
		u.Email = *upd.Email
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	out := *u
	return &out, nil
}

func (r memUsers) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func anyOf(have, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}

func window[T any](items []T, p ports.PageRequest) []T {
	start := int(p.Skip())
	if start > len(items) {
		return []T{}
	}
	end := min(start+p.Limit, len(items))
	return items[start:end]
}

type memStartups struct{ *memStore }

func (r memStartups) Create(_ context.Context, s *domain.Startup) (*domain.Startup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.startups {
		if existing.UserID == s.UserID {
			return nil, domain.ErrStartupExists
		}
	}
	stored := *s
	stored.ID = r.nextID()
	r.startups = append(r.startups, &stored)
	out := stored
	return &out, nil
}

func (r memStartups) find(match func(*domain.Startup) bool) (*domain.Startup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.startups {
		if match(s) {
			out := *s
			return &out, nil
		}
	}
	return nil, domain.ErrStartupNotFound
}

func (r memStartups) FindByID(_ context.Context, id string) (*domain.Startup, error) {
	return r.find(func(s *domain.Startup) bool { return s.ID == id })
}

func (r memStartups) FindByOwner(_ context.Context, userID string) (*domain.Startup, error) {
	return r.find(func(s *domain.Startup) bool { return s.UserID == userID })
}

func (r memStartups) UpdateByOwner(_ context.Context, userID string, p ports.StartupPatch) (*domain.Startup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.startups {
		if s.UserID != userID {
			continue
		}
		if p.CompanyName != nil {
			s.CompanyName = *p.CompanyName
		}
		if p.Location != nil {
			s.Location = *p.Location
		}
		if p.FundingStage != nil {
			s.FundingStage = *p.FundingStage
		}
		if p.Industry != nil {
			s.Industry = *p.Industry
		}
		out := *s
		return &out, nil
	}
	return nil, domain.ErrStartupNotFound
}

func (r memStartups) List(_ context.Context, f ports.StartupFilter) ([]*domain.Startup, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Startup
	for _, s := range r.startups {
		if len(f.Industries) > 0 && !anyOf(s.Industry, f.Industries) {
			continue
		}
		if f.Location != "" && !containsFold(s.Location, f.Location) {
			continue
		}
		if f.FundingStage != "" && string(s.FundingStage) != f.FundingStage {
			continue
		}
		out := *s
		matched = append(matched, &out)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return window(matched, f.PageRequest), int64(len(matched)), nil
}

type memInvestors struct{ *memStore }

func (r memInvestors) Create(_ context.Context, inv *domain.Investor) (*domain.Investor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.investors {
		if existing.UserID == inv.UserID {
			return nil, domain.ErrInvestorExists
		}
	}
	stored := *inv
	stored.ID = r.nextID()
	r.investors = append(r.investors, &stored)
	out := stored
	return &out, nil
}

func (r memInvestors) find(match func(*domain.Investor) bool) (*domain.Investor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.investors {
		if match(inv) {
			out := *inv
			return &out, nil
		}
	}
	return nil, domain.ErrInvestorNotFound
}

func (r memInvestors) FindByID(_ context.Context, id string) (*domain.Investor, error) {
	return r.find(func(inv *domain.Investor) bool { return inv.ID == id })
}

func (r memInvestors) FindByOwner(_ context.Context, userID string) (*domain.Investor, error) {
	return r.find(func(inv *domain.Investor) bool { return inv.UserID == userID })
}

func (r memInvestors) UpdateByOwner(_ context.Context, userID string, p ports.InvestorPatch) (*domain.Investor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.investors {
		if inv.UserID != userID {
			continue
		}
		if p.FirmName != nil {
			inv.FirmName = *p.FirmName
		}
		if p.InvestorType != nil {
			inv.InvestorType = *p.InvestorType
		}
		out := *inv
		return &out, nil
	}
	return nil, domain.ErrInvestorNotFound
}

func (r memInvestors) List(_ context.Context, f ports.InvestorFilter) ([]*domain.Investor, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.Investor
	for _, inv := range r.investors {
		if f.InvestorType != "" && string(inv.InvestorType) != f.InvestorType {
			continue
		}
		if len(f.PreferredIndustries) > 0 && !anyOf(inv.PreferredIndustries, f.PreferredIndustries) {
			continue
		}
		if len(f.PreferredStages) > 0 {
			stages := make([]string, len(inv.PreferredStages))
			for i, s := range inv.PreferredStages {
				stages[i] = string(s)
			}
			if !anyOf(stages, f.PreferredStages) {
				continue
			}
		}
		if f.Location != "" && !containsFold(inv.Location, f.Location) {
			continue
		}
		out := *inv
		matched = append(matched, &out)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	return window(matched, f.PageRequest), int64(len(matched)), nil
}
