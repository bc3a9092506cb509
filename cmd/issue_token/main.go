// Command issue_token mints a bearer token for a staff member, signed with the server's
// JWT_SECRET and JWT_ISSUER.
//
//	go run ./cmd/issue_token -staff 12 -ttl 8h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/SscSPs/grouphome_ledger/internal/platform/config"
	"github.com/SscSPs/grouphome_ledger/internal/utils"
)

func main() {
	staffID := flag.Int64("staff", -1, "staff id to put in the token subject (0 is the system attribution)")
	ttl := flag.Duration("ttl", 8*time.Hour, "token lifetime")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *staffID < 0 {
		logger.Error("A non-negative -staff id is required")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	token, err := utils.GenerateStaffToken(domain.StaffID(*staffID), cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
