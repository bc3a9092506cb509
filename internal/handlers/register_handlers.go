package handlers

import (
	"fmt"
	"time"

	portssvc "github.com/SscSPs/grouphome_ledger/internal/core/ports/services"
	"github.com/SscSPs/grouphome_ledger/internal/dto"
	"github.com/SscSPs/grouphome_ledger/internal/middleware"
	"github.com/SscSPs/grouphome_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding rules on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return dto.RegisterValidators(v)
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	RegisterLedgerRoutes(v1, services, cfg.ReportingLocation)
	return nil
}

// RegisterLedgerRoutes registers every cash-ledger route on rg. Calendar-date query
// parameters are read in loc.
func RegisterLedgerRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loc *time.Location) {
	registerCashCountRoutes(rg, services.Reconciliation)
	registerAllowanceRoutes(rg, services.Allowance)
	registerTransactionRoutes(rg, services.Ledger)
	registerResidentRoutes(rg, services, loc)
}
