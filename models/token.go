package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the decoded identity produced by a successful token
// verification. It lives for exactly one request: the authentication
// middleware attaches it to the request context and nothing mutates it
// afterwards. It is never persisted.
type Identity struct {
	// UserID is the token subject: the account the token was issued for.
	UserID int64 `json:"id"`

	// Email of the account at issue time.
	Email string `json:"email"`

	// Role of the account at issue time: RoleUser or RoleAdmin.
	Role string `json:"role"`
}

// IsAdmin reports whether the identity carries the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// TokenClaims is the JWT claim set used by every service in the mesh.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, iss, iat,
// exp) and adds the custom "email" and "role" claims so that sibling
// services can authorize a request without calling back to the users
// service. The subject claim holds the user ID encoded as a base-10 string.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the account email, carried as the "email" claim.
	Email string `json:"email,omitempty"`

	// Role is the account role, carried as the "role" claim.
	Role string `json:"role,omitempty"`
}

// Identity extracts the [Identity] encoded in the claim set.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (c *TokenClaims) Identity() (Identity, error) {
	subject, err := c.GetSubject()
	if err != nil {
		return Identity{}, fmt.Errorf("error extracting subject from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("error converting token subject to int64: %w", err)
	}

	return Identity{UserID: userID, Email: c.Email, Role: c.Role}, nil
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Identity is a cached, decoded copy of the claims, populated after a
// successful verification so that callers do not re-parse the claim set.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the issuing process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Identity decoded from the verified claims.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
