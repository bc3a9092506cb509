package utils

import (
	"testing"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-that-is-long-enough"

func TestStaffToken_RoundTrip(t *testing.T) {
	token, err := GenerateStaffToken(42, secret, time.Hour, "ledger")
	require.NoError(t, err)

	staffID, err := ParseStaffToken(token, secret, "ledger")
	require.NoError(t, err)
	assert.Equal(t, domain.StaffID(42), staffID)
}

func TestStaffToken_SystemAttributionIsAllowed(t *testing.T) {
	token, err := GenerateStaffToken(domain.SystemAttribution, secret, time.Hour, "")
	require.NoError(t, err)

	staffID, err := ParseStaffToken(token, secret, "")
	require.NoError(t, err)
	assert.True(t, staffID.IsSystem())
}

func TestParseStaffToken_Rejects(t *testing.T) {
	valid, err := GenerateStaffToken(4, secret, time.Hour, "ledger")
	require.NoError(t, err)
	expired, err := GenerateStaffToken(4, secret, -time.Minute, "ledger")
	require.NoError(t, err)
	userSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice", Issuer: "ledger"}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = ParseStaffToken(valid, "another-secret", "ledger")
	assert.Error(t, err, "wrong secret")

	_, err = ParseStaffToken(valid, secret, "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	_, err = ParseStaffToken(expired, secret, "ledger")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseStaffToken(userSubject, secret, "ledger")
	assert.ErrorIs(t, err, ErrInvalidStaffSubject)
}

func TestGenerateStaffToken_NegativeID(t *testing.T) {
	_, err := GenerateStaffToken(-1, secret, time.Hour, "")
	assert.ErrorIs(t, err, ErrInvalidStaffSubject)
}
