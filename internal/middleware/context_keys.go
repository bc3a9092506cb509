package middleware

import (
	"context"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// staffIDKey is the key used to store the authenticated staff member's id.
const staffIDKey = contextKey("staffID")

// WithStaffID returns a copy of ctx carrying the authenticated staff id.
func WithStaffID(ctx context.Context, staffID domain.StaffID) context.Context {
	return context.WithValue(ctx, staffIDKey, staffID)
}

// GetStaffIDFromContext retrieves the authenticated staff id from the request context.
// It returns the id and a boolean indicating if it was found.
func GetStaffIDFromContext(c *gin.Context) (domain.StaffID, bool) {
	staffID, ok := c.Request.Context().Value(staffIDKey).(domain.StaffID)
	return staffID, ok
}
