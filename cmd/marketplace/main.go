package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vcplatform/marketplace/internal/command"
)

// @title          Startup/Investor Marketplace API
// @version        1.0
// @description    Accounts, startup profiles and investor profiles for a two-sided funding marketplace.
// @BasePath       /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := command.RootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
