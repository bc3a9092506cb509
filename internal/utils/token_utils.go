package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/grouphome_ledger/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidStaffSubject is returned when a token's subject is not a staff id.
var ErrInvalidStaffSubject = errors.New("token subject is not a staff id")

// GenerateStaffToken signs an HS256 token whose subject is the staff id.
func GenerateStaffToken(staffID domain.StaffID, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	if staffID < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidStaffSubject, staffID)
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(int64(staffID), 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseStaffToken validates signature, standard claims and, when issuer is set, the issuer,
// and returns the staff id carried in the subject.
func ParseStaffToken(tokenString, secret, issuer string) (domain.StaffID, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, jwt.ErrTokenSignatureInvalid
	}

	staffID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || staffID < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStaffSubject, claims.Subject)
	}
	return domain.StaffID(staffID), nil
}
