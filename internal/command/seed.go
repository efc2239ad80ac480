package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
	"github.com/vcplatform/marketplace/internal/core/service"
	mongodb "github.com/vcplatform/marketplace/internal/infrastructure/db/mongo"
)

const seedEmailDomain = "seed.example.com"

var seedIndustries = []string{
	"fintech", "healthtech", "edtech", "saas", "ai", "climate",
	"biotech", "ecommerce", "logistics", "gaming", "cybersecurity", "proptech",
}

var firmSuffixes = []string{"Capital", "Ventures", "Partners", "Fund", "Holdings"}

func seedCommand() *cobra.Command {
	var (
		startups  int
		investors int
		seed      uint64
		password  string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with fake accounts and profiles",
		Long: "Creates startup and investor accounts, each with a generated profile, for\n" +
			"local development. Output is deterministic for a given --seed; accounts that\n" +
			"already exist are skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (runErr error) {
			if startups < 0 || investors < 0 {
				return errors.New("--startups and --investors must not be negative")
			}

			cfg, log, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			conns, err := connect(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer func() {
				if err := conns.Close(cmd.Context()); err != nil {
					runErr = errors.Join(runErr, err)
				}
			}()

			if err := mongodb.EnsureIndexes(cmd.Context(), conns.db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}

			tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
			s := &seeder{
				faker:     gofakeit.New(seed),
				accounts:  service.NewAuthService(mongodb.NewUserRepository(conns.db), tokens, log),
				startups:  service.NewStartupService(mongodb.NewStartupRepository(conns.db), nil, log),
				investors: service.NewInvestorService(mongodb.NewInvestorRepository(conns.db), nil, log),
				password:  password,
				log:       log,
			}

			res, err := s.run(cmd.Context(), startups, investors)
			if err != nil {
				return err
			}
			log.Info().
				Int("startups", res.startups).
				Int("investors", res.investors).
				Int("skipped", res.skipped).
				Uint64("seed", seed).
				Msg("seed complete")
			return nil
		},
	}

	cmd.Flags().IntVar(&startups, "startups", 10, "number of startup accounts to create")
	cmd.Flags().IntVar(&investors, "investors", 10, "number of investor accounts to create")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for generated data")
	cmd.Flags().StringVar(&password, "password", "password123", "password for every generated account")
	return cmd
}

type accountCreator interface {
	CreateUser(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
}

type startupCreator interface {
	Create(ctx context.Context, owner *domain.Principal, details domain.StartupDetails) (*domain.Startup, error)
}

type investorCreator interface {
	Create(ctx context.Context, owner *domain.Principal, details domain.InvestorDetails) (*domain.Investor, error)
}

type seeder struct {
	faker     *gofakeit.Faker
	accounts  accountCreator
	startups  startupCreator
	investors investorCreator
	password  string
	log       zerolog.Logger
}

type seedResult struct {
	startups  int
	investors int
	skipped   int
}

func (s *seeder) run(ctx context.Context, startups, investors int) (seedResult, error) {
	var res seedResult

	for i := range startups {
		owner, err := s.account(ctx, domain.RoleStartup, i)
		if errors.Is(err, domain.ErrUserExists) {
			res.skipped++
			continue
		}
		if err != nil {
			return res, err
		}
		if _, err := s.startups.Create(ctx, owner, fakeStartup(s.faker)); err != nil {
			return res, fmt.Errorf("create startup for %s: %w", owner.Email, err)
		}
		res.startups++
	}

	for i := range investors {
		owner, err := s.account(ctx, domain.RoleInvestor, i)
		if errors.Is(err, domain.ErrUserExists) {
			res.skipped++
			continue
		}
		if err != nil {
			return res, err
		}
		if _, err := s.investors.Create(ctx, owner, fakeInvestor(s.faker)); err != nil {
			return res, fmt.Errorf("create investor for %s: %w", owner.Email, err)
		}
		res.investors++
	}

	return res, nil
}

// account creates a login for the i-th generated user of role. The email is
// derived from role and index so reruns collide instead of duplicating.
func (s *seeder) account(ctx context.Context, role domain.Role, i int) (*domain.Principal, error) {
	email := fmt.Sprintf("%s%03d@%s", role, i+1, seedEmailDomain)
	user, err := s.accounts.CreateUser(ctx, ports.RegisterInput{
		Name:     s.faker.Name(),
		Email:    email,
		Password: s.password,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.log.Debug().Str("email", email).Msg("account exists, skipping")
		}
		return nil, err
	}
	return user.Principal(), nil
}

func fakeStartup(f *gofakeit.Faker) domain.StartupDetails {
	name := f.Company()
	goal := float64(f.IntRange(50, 5000)) * 1000
	revenue := float64(f.IntRange(0, 2000)) * 1000
	users := int64(f.IntRange(0, 250000))
	growth := float64(f.IntRange(0, 300))

	return domain.StartupDetails{
		CompanyName:  name,
		Website:      f.URL(),
		Description:  f.Sentence(14),
		Industry:     pick(f, seedIndustries, 1, 3),
		Location:     f.City() + ", " + f.StateAbr(),
		FoundedYear:  f.IntRange(2005, 2024),
		TeamSize:     f.IntRange(1, 150),
		FundingStage: domain.FundingStages[f.IntN(len(domain.FundingStages))],
		FundingGoal:  &goal,
		Traction: domain.Traction{
			Revenue: &revenue,
			Users:   &users,
			Growth:  &growth,
		},
		SocialMedia: domain.SocialMedia{
			LinkedIn: "https://www.linkedin.com/company/" + slug(name),
		},
	}
}

func fakeInvestor(f *gofakeit.Faker) domain.InvestorDetails {
	kind := domain.InvestorTypes[f.IntN(len(domain.InvestorTypes))]
	name := f.LastName() + " " + firmSuffixes[f.IntN(len(firmSuffixes))]
	if kind == domain.InvestorAngel {
		name = f.Name()
	}

	minCheque := float64(f.IntRange(10, 500)) * 1000
	maxCheque := minCheque * float64(f.IntRange(2, 20))
	stages := pick(f, stageNames(), 1, 3)
	preferred := make([]domain.FundingStage, len(stages))
	for i, st := range stages {
		preferred[i] = domain.FundingStage(st)
	}

	details := domain.InvestorDetails{
		FirmName:            name,
		Website:             f.URL(),
		Description:         f.Sentence(16),
		InvestorType:        kind,
		Location:            f.City() + ", " + f.StateAbr(),
		InvestmentThesis:    f.Sentence(10),
		InvestmentRange:     domain.InvestmentRange{Min: &minCheque, Max: &maxCheque},
		PreferredStages:     preferred,
		PreferredIndustries: pick(f, seedIndustries, 1, 4),
		SocialMedia: domain.SocialMedia{
			Twitter: "https://twitter.com/" + slug(name),
		},
	}
	if kind != domain.InvestorAngel {
		aum := float64(f.IntRange(10, 5000)) * 1_000_000
		founded := f.IntRange(1980, 2024)
		team := f.IntRange(2, 200)
		details.AUM = &aum
		details.FoundedYear = &founded
		details.TeamSize = &team
	}
	for range f.IntN(4) {
		details.Portfolio = append(details.Portfolio, domain.PortfolioCompany{
			CompanyName: f.Company(),
			Website:     f.URL(),
		})
	}
	return details
}

// pick returns between lo and hi distinct values from items.
func pick(f *gofakeit.Faker, items []string, lo, hi int) []string {
	n := lo + f.IntN(hi-lo+1)
	pool := append([]string(nil), items...)
	out := make([]string, 0, n)
	for range n {
		j := f.IntN(len(pool))
		out = append(out, pool[j])
		pool = append(pool[:j], pool[j+1:]...)
	}
	return out
}

func stageNames() []string {
	out := make([]string, len(domain.FundingStages))
	for i, st := range domain.FundingStages {
		out[i] = string(st)
	}
	return out
}

func slug(s string) string {
	return strings.Trim(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, s), "-")
}
