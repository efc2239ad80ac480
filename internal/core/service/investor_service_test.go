package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
)

var backer = &domain.Principal{ID: "user-9", Name: "Backer", Email: "b@example.com", Role: domain.RoleInvestor}

func TestInvestorService_CreateNormalizesLists(t *testing.T) {
	svc := NewInvestorService(&stubInvestorRepo{}, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), backer, domain.InvestorDetails{
		FirmName:     "Northwind Capital",
		Description:  "Early stage fund",
		InvestorType: domain.InvestorVCFirm,
		Location:     "Berlin",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.PreferredStages == nil || created.PreferredIndustries == nil || created.Portfolio == nil {
		t.Fatalf("expected empty lists instead of nil: %+v", created.InvestorDetails)
	}

	if _, err := svc.Create(context.Background(), backer, domain.InvestorDetails{FirmName: "again"}); !errors.Is(err, domain.ErrInvestorExists) {
		t.Fatalf("expected ErrInvestorExists, got %v", err)
	}
}

func TestInvestorService_UpdateMine(t *testing.T) {
	cache := newStubCache()
	svc := NewInvestorService(&stubInvestorRepo{}, cache, zerolog.Nop())
	ctx := context.Background()

	created, _ := svc.Create(ctx, backer, domain.InvestorDetails{FirmName: "Northwind", InvestorType: domain.InvestorAngel})
	if _, err := svc.Get(ctx, created.ID); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	kind := domain.InvestorFamilyOffice
	updated, err := svc.UpdateMine(ctx, backer, ports.InvestorPatch{InvestorType: &kind})
	if err != nil {
		t.Fatalf("UpdateMine returned error: %v", err)
	}
	if updated.InvestorType != domain.InvestorFamilyOffice || updated.FirmName != "Northwind" {
		t.Fatalf("unexpected merge result: %+v", updated.InvestorDetails)
	}
	if !cache.has(kindInvestor, created.ID) {
		t.Fatalf("expected the updated document to be cached")
	}

	got, _ := svc.Get(ctx, created.ID)
	if got.InvestorType != domain.InvestorFamilyOffice {
		t.Fatalf("stale read after update: %s", got.InvestorType)
	}
}

func TestInvestorService_ListPages(t *testing.T) {
	repo := &stubInvestorRepo{}
	svc := NewInvestorService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		owner := &domain.Principal{ID: string(rune('a' + i)), Role: domain.RoleInvestor}
		_, _ = svc.Create(ctx, owner, domain.InvestorDetails{FirmName: "f", InvestorType: domain.InvestorVCFirm})
	}

	page, err := svc.List(ctx, ports.InvestorFilter{InvestorType: "vc-firm", PageRequest: ports.PageRequest{Limit: 9}})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastList.InvestorType != "vc-firm" || repo.lastList.Page != 1 {
		t.Fatalf("filter not forwarded: %+v", repo.lastList)
	}
	if page.Total != 20 || page.Pages != 3 {
		t.Fatalf("total=%d pages=%d, want 20/3", page.Total, page.Pages)
	}
}

func TestInvestorService_MineWithoutPrincipal(t *testing.T) {
	svc := NewInvestorService(&stubInvestorRepo{}, nil, zerolog.Nop())
	if _, err := svc.Mine(context.Background(), nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
