package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcplatform/marketplace/internal/core/domain"
	"github.com/vcplatform/marketplace/internal/core/ports"
	"github.com/vcplatform/marketplace/internal/core/service"
	mongodb "github.com/vcplatform/marketplace/internal/infrastructure/db/mongo"
)

func userCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}
	cmd.AddCommand(
		userCreateCommand(),
	)
	return cmd
}

func userCreateCommand() *cobra.Command {
	var (
		name string
		role string
	)

	cmd := &cobra.Command{
		Use:   "create EMAIL",
		Short: "Create user",
		Long: "Creates an account for the provided email. Unlike public registration, any\n" +
			"role may be given, including admin. Passwords may be provided via stdin or\n" +
			"through the interactive prompt.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (runErr error) {
			input := ports.RegisterInput{Name: name, Email: args[0], Role: domain.Role(role)}
			if !input.Role.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			if input.Name == "" {
				input.Name = input.Email
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

			passwd, err := prompt("password: ", true)
			if err != nil {
				return err
			}
			input.Password = string(passwd)

			tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL, service.WithIssuer(cfg.Auth.JWTIssuer))
			accounts := service.NewAuthService(mongodb.NewUserRepository(conns.db), tokens, log)
			user, err := accounts.CreateUser(cmd.Context(), input)
			if err != nil {
				return err
			}

			log.Info().
				Str("user_id", user.ID).
				Str("email", user.Email).
				Str("role", string(user.Role)).
				Msg("created user")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the email)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "account role: startup, investor or admin")
	return cmd
}
