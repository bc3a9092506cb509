package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/apperrors"
	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// respondError writes err with the status of its class. Server-side failures are logged and
// answered with fallback only.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": apperrors.PublicMessage(err, fallback)})
}

// respondBindError answers a request whose body or query failed binding.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// pathID reads a positive integer path parameter, answering 400 when it is not one.
func pathID(c *gin.Context, logger *slog.Logger, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid path parameter", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

var errBadAsOf = errors.New("asOf must be a YYYY-MM-DD date or an RFC 3339 timestamp")

// dateBound picks which instant a bare calendar date stands for.
type dateBound int

const (
	// startOfDay is local midnight, for lookups keyed by calendar day.
	startOfDay dateBound = iota
	// endOfDay is the last storable instant of the day, so rows created on it are included.
	endOfDay
)

// parseAsOf accepts an RFC 3339 instant or a calendar date in loc. Empty means now.
func parseAsOf(raw string, loc *time.Location, bound dateBound) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, errBadAsOf
	}
	if loc == nil {
		loc = time.UTC
	}
	t := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	if bound == endOfDay {
		// timestamps are stored with microsecond precision
		t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	return &t, nil
}
